package services_test

import (
	"fmt"
	"testing"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
	"coursehub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCourseRepository is a mock implementation of repositories.CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) GetAll() ([]models.Course, error) {
	args := m.Called()
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseRepository) GetByID(id string) (*models.Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) GetBySlug(slug string) (*models.Course, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) Create(course *models.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func catalogFixture() []models.Course {
	return []models.Course{
		{ID: "1", Title: "Intro to Rust", Description: "Systems programming from scratch", Level: "beginner", Language: "English", Mentor: "Ana"},
		{ID: "2", Title: "Advanced Go", Description: "Concurrency patterns in depth", Level: "advanced", Language: "English", Mentor: "Bo"},
	}
}

func TestCourseService_GetAllCourses(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	expected := catalogFixture()
	mockRepo.On("GetAll").Return(expected, nil).Once()

	courses, err := service.GetAllCourses()

	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, expected, courses)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_GetCourseByID(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	expected := &models.Course{ID: "1", Title: "Intro to Rust"}

	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	course, err := service.GetCourseByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, course)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("course with ID 99: %w", repositories.ErrNotFound)).Once()
	course, err = service.GetCourseByID("99")
	assert.Error(t, err)
	assert.Nil(t, course)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_SearchCourses_TextQuery(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)
	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	// Case-insensitive substring match across title, description, mentor.
	courses, err := service.SearchCourses("rust", services.SearchFilters{})
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, "Intro to Rust", courses[0].Title)
}

func TestCourseService_SearchCourses_MentorSubstring(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)
	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	courses, err := service.SearchCourses("", services.SearchFilters{Mentor: "an"})
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, "Ana", courses[0].Mentor)
}

func TestCourseService_SearchCourses_LevelEquality(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)
	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	courses, err := service.SearchCourses("", services.SearchFilters{Level: "advanced"})
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, "Advanced Go", courses[0].Title)
}

func TestCourseService_SearchCourses_FiltersCompose(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	catalog := append(catalogFixture(),
		models.Course{ID: "3", Title: "Python for Beginners", Description: "Start coding", Level: "beginner", Language: "English", Mentor: "Cy"},
		models.Course{ID: "4", Title: "Intermediate Python", Description: "Beyond the basics of python", Level: "intermediate", Language: "English", Mentor: "Di"},
	)
	mockRepo.On("GetAll").Return(catalog, nil).Times(2)

	// Query AND level must both hold.
	courses, err := service.SearchCourses("python", services.SearchFilters{Level: "beginner"})
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, "Python for Beginners", courses[0].Title)

	// Results keep storage order, not relevance order.
	courses, err = service.SearchCourses("python", services.SearchFilters{})
	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, "3", courses[0].ID)
	assert.Equal(t, "4", courses[1].ID)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_SearchCourses_EmptyQueryReturnsAll(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	catalog := catalogFixture()
	mockRepo.On("GetAll").Return(catalog, nil).Once()

	courses, err := service.SearchCourses("", services.SearchFilters{})
	assert.NoError(t, err)
	assert.Equal(t, catalog, courses)
}

func TestCourseService_SearchCourses_LanguageExactMatch(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	catalog := append(catalogFixture(),
		models.Course{ID: "3", Title: "Go en Español", Description: "Curso de Go", Level: "beginner", Language: "Spanish", Mentor: "Eva"},
	)
	mockRepo.On("GetAll").Return(catalog, nil).Times(2)

	courses, err := service.SearchCourses("", services.SearchFilters{Language: "Spanish"})
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, "3", courses[0].ID)

	// Language matches are case-sensitive exact comparisons.
	courses, err = service.SearchCourses("", services.SearchFilters{Language: "spanish"})
	assert.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseService_CreateCourse_PublishesEvent(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	mockMQ := new(MockEventPublisher)
	service := services.NewCourseService(mockRepo, mockMQ)

	course := &models.Course{Title: "Intro to Rust", Slug: "intro-to-rust"}

	mockRepo.On("GetBySlug", "intro-to-rust").Return(nil, fmt.Errorf("course with slug intro-to-rust: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", course).Return(nil).Once()
	mockMQ.On("Publish", "", "course_events", mock.Anything).Return(nil).Once()

	err := service.CreateCourse(course)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestCourseService_CreateCourse_DuplicateSlugAllowed(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	existing := &models.Course{ID: "1", Slug: "intro-to-rust"}
	course := &models.Course{Title: "Intro to Rust", Slug: "intro-to-rust"}

	// The store stays permissive: a duplicate slug is logged, not rejected.
	mockRepo.On("GetBySlug", "intro-to-rust").Return(existing, nil).Once()
	mockRepo.On("Create", course).Return(nil).Once()

	err := service.CreateCourse(course)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_CreateCourse_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	service := services.NewCourseService(mockRepo, nil)

	course := &models.Course{Title: "Intro to Rust", Slug: "intro-to-rust"}
	mockRepo.On("GetBySlug", "intro-to-rust").Return(nil, fmt.Errorf("course with slug intro-to-rust: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", course).Return(fmt.Errorf("disk full")).Once()

	err := service.CreateCourse(course)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	mockRepo.AssertExpectations(t)
}

func TestCourseService_CreateCourse_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	mockMQ := new(MockEventPublisher)
	service := services.NewCourseService(mockRepo, mockMQ)

	course := &models.Course{Title: "Intro to Rust", Slug: "intro-to-rust"}
	mockRepo.On("GetBySlug", "intro-to-rust").Return(nil, fmt.Errorf("course with slug intro-to-rust: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", course).Return(nil).Once()
	mockMQ.On("Publish", "", "course_events", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	// The course is already persisted; a failed event is only logged.
	err := service.CreateCourse(course)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}
