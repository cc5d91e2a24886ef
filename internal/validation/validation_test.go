package validation_test

import (
	"testing"

	"coursehub/internal/validation"

	"github.com/stretchr/testify/assert"
)

func validCourseRequest() validation.CreateCourseRequest {
	req := validation.CreateCourseRequest{
		Title:       "Intro to Go",
		Slug:        "intro-to-go",
		Description: "A thorough introduction to the Go programming language.",
		Thumbnail:   "https://example.com/go.png",
		Level:       "beginner",
		Language:    "English",
		Mentor:      "Ana",
		Duration:    "6 weeks",
		Price:       49.99,
	}
	req.Normalize()
	return req
}

func TestCheck_ValidCourse(t *testing.T) {
	req := validCourseRequest()
	assert.Nil(t, validation.Check(&req))
	// Defaults applied by Normalize
	assert.Equal(t, 0.0, *req.Rating)
	assert.Equal(t, 0, *req.StudentsCount)
}

func TestCheck_CourseReportsEveryViolation(t *testing.T) {
	req := validation.CreateCourseRequest{
		Title:       "",
		Description: "too short",
		Thumbnail:   "not a url",
		Level:       "expert",
		Price:       -5,
	}
	req.Normalize()

	fieldErrors := validation.Check(&req)
	assert.NotNil(t, fieldErrors)

	// Every violated field gets its own message, not just the first.
	assert.Contains(t, fieldErrors, "title")
	assert.Contains(t, fieldErrors, "slug")
	assert.Contains(t, fieldErrors, "description")
	assert.Contains(t, fieldErrors, "thumbnail")
	assert.Contains(t, fieldErrors, "level")
	assert.Contains(t, fieldErrors, "language")
	assert.Contains(t, fieldErrors, "mentor")
	assert.Contains(t, fieldErrors, "duration")
	assert.Contains(t, fieldErrors, "price")

	assert.Equal(t, "title is required", fieldErrors["title"])
	assert.Equal(t, "level must be one of: beginner, intermediate, advanced", fieldErrors["level"])
	assert.Equal(t, "price must be at least 0", fieldErrors["price"])
}

func TestCheck_CourseRatingBounds(t *testing.T) {
	req := validCourseRequest()
	six := 6.0
	req.Rating = &six
	fieldErrors := validation.Check(&req)
	assert.Contains(t, fieldErrors, "rating")

	five := 5.0
	req.Rating = &five
	assert.Nil(t, validation.Check(&req))
}

func TestNormalize_DerivesSlugFromTitle(t *testing.T) {
	req := validCourseRequest()
	req.Slug = ""
	req.Title = "Advanced Go Concurrency"
	req.Normalize()
	assert.Equal(t, "advanced-go-concurrency", req.Slug)
}

func TestCheck_ReviewRatingBoundaries(t *testing.T) {
	base := validation.CreateReviewRequest{
		CourseID: "1700000000000",
		UserID:   "user-1",
		UserName: "Ana",
		Comment:  "Great course",
	}

	cases := []struct {
		rating int
		valid  bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{6, false},
	}
	for _, tc := range cases {
		req := base
		req.Rating = tc.rating
		fieldErrors := validation.Check(&req)
		if tc.valid {
			assert.Nil(t, fieldErrors, "rating %d should be accepted", tc.rating)
		} else {
			assert.Contains(t, fieldErrors, "rating", "rating %d should be rejected", tc.rating)
		}
	}
}

func TestCheck_ReviewRequiredFields(t *testing.T) {
	req := validation.CreateReviewRequest{Rating: 3}
	fieldErrors := validation.Check(&req)
	assert.Contains(t, fieldErrors, "courseId")
	assert.Contains(t, fieldErrors, "userId")
	assert.Contains(t, fieldErrors, "userName")
	assert.Contains(t, fieldErrors, "comment")
}

func TestCheck_Login(t *testing.T) {
	assert.Nil(t, validation.Check(&validation.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret",
	}))

	fieldErrors := validation.Check(&validation.LoginRequest{
		Email: "not-an-email",
	})
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
	assert.Equal(t, "email must be a valid email address", fieldErrors["email"])
}

func TestCheck_Register(t *testing.T) {
	req := validation.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	}
	req.Normalize()
	assert.Nil(t, validation.Check(&req))
	assert.Equal(t, "student", req.Role)

	bad := validation.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "short",
		Role:     "superuser",
	}
	bad.Normalize()
	fieldErrors := validation.Check(&bad)
	assert.Contains(t, fieldErrors, "password")
	assert.Contains(t, fieldErrors, "role")
}

func TestCheck_Filters(t *testing.T) {
	assert.Nil(t, validation.Check(&validation.CourseFilters{}))
	assert.Nil(t, validation.Check(&validation.CourseFilters{Level: "advanced", Mentor: "an"}))

	fieldErrors := validation.Check(&validation.CourseFilters{Level: "ninja"})
	assert.Contains(t, fieldErrors, "level")
}

func TestCheck_UpdateCourseAllOptional(t *testing.T) {
	assert.Nil(t, validation.Check(&validation.UpdateCourseRequest{}))

	badLevel := "guru"
	fieldErrors := validation.Check(&validation.UpdateCourseRequest{Level: &badLevel})
	assert.Contains(t, fieldErrors, "level")
}
