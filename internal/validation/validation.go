// Package validation holds the declarative schemas gating API input.
// Each schema is a request struct whose validate tags form the per-field
// constraint list; Check interprets a schema against an input and reports
// every violated constraint with a human-readable message.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the json field name so error maps line up
	// with the request body the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates a schema struct and returns one message per violated
// field constraint, keyed by field name. A nil map means the input passed.
func Check(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	messages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		messages[e.Field()] = message(e)
	}
	return messages
}

// message renders a single violation the way a person reads it, instead of
// the raw tag name.
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(strings.Fields(e.Param()), ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	default:
		return fmt.Sprintf("%s failed on the '%s' constraint", e.Field(), e.Tag())
	}
}

// CreateCourseRequest is the course-create schema. Rating and StudentsCount
// are pointers so an absent value can be told apart from an explicit zero;
// Normalize fills in the defaults and the derived slug before Check runs.
type CreateCourseRequest struct {
	Title         string   `json:"title" validate:"required,max=100"`
	Slug          string   `json:"slug" validate:"required,max=100"`
	Description   string   `json:"description" validate:"required,min=10,max=1000"`
	Thumbnail     string   `json:"thumbnail" validate:"required,url"`
	Level         string   `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Language      string   `json:"language" validate:"required"`
	Mentor        string   `json:"mentor" validate:"required"`
	Duration      string   `json:"duration" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	StudentsCount *int     `json:"studentsCount" validate:"omitempty,gte=0"`
}

// Normalize derives the slug from the title when the client omitted it and
// applies the schema defaults (rating 0, studentsCount 0).
func (r *CreateCourseRequest) Normalize() {
	if r.Slug == "" && r.Title != "" {
		r.Slug = slug.Make(r.Title)
	}
	if r.Rating == nil {
		r.Rating = new(float64)
	}
	if r.StudentsCount == nil {
		r.StudentsCount = new(int)
	}
}

// UpdateCourseRequest is the partial-update schema: every field optional,
// constraints applied only to fields that are present. No update operation
// is exposed yet; the schema exists so the validation surface is complete.
type UpdateCourseRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=100"`
	Slug          *string  `json:"slug" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description" validate:"omitempty,min=10,max=1000"`
	Thumbnail     *string  `json:"thumbnail" validate:"omitempty,url"`
	Level         *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Language      *string  `json:"language" validate:"omitempty,min=1"`
	Mentor        *string  `json:"mentor" validate:"omitempty,min=1"`
	Duration      *string  `json:"duration" validate:"omitempty,min=1"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	StudentsCount *int     `json:"studentsCount" validate:"omitempty,gte=0"`
}

// CreateReviewRequest is the review-create schema. Rating is 1-5 inclusive,
// so the required tag doubles as the lower bound check on the zero value.
type CreateReviewRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required,max=500"`
}

// LoginRequest is the login schema.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the registration schema.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=student mentor admin"`
}

// Normalize applies the default role.
func (r *RegisterRequest) Normalize() {
	if r.Role == "" {
		r.Role = "student"
	}
}

// CourseFilters is the filter schema for the course list endpoint. All
// fields optional; only level is constrained.
type CourseFilters struct {
	Query    string `json:"query"`
	Level    string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Language string `json:"language"`
	Mentor   string `json:"mentor"`
}
