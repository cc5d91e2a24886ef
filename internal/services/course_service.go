package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
	"coursehub/pkg/rabbitmq"
)

// SearchFilters are the structured filters composed with the free-text
// query when searching the catalog.
type SearchFilters struct {
	Level    string
	Language string
	Mentor   string
}

// CourseService handles business logic related to courses.
type CourseService struct {
	repo repositories.CourseRepository
	mq   EventPublisher
}

// NewCourseService creates a new CourseService. mq may be nil, in which
// case no events are published.
func NewCourseService(repo repositories.CourseRepository, mq EventPublisher) *CourseService {
	return &CourseService{
		repo: repo,
		mq:   mq,
	}
}

// GetAllCourses retrieves all courses in storage order.
func (s *CourseService) GetAllCourses() ([]models.Course, error) {
	return s.repo.GetAll()
}

// GetCourseByID retrieves a single course by its ID.
func (s *CourseService) GetCourseByID(id string) (*models.Course, error) {
	return s.repo.GetByID(id)
}

// GetCourseBySlug retrieves a single course by its slug.
func (s *CourseService) GetCourseBySlug(slug string) (*models.Course, error) {
	return s.repo.GetBySlug(slug)
}

// SearchCourses computes the subset of the catalog matching the free-text
// query and the structured filters. The query matches case-insensitively
// against title, description, or mentor; filters compose with AND on top:
// level and language by exact match, mentor by case-insensitive substring.
// Results keep storage order; this is a full scan, not a search index.
func (s *CourseService) SearchCourses(query string, filters SearchFilters) ([]models.Course, error) {
	courses, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Course, 0, len(courses))
	term := strings.ToLower(query)
	mentorTerm := strings.ToLower(filters.Mentor)

	for _, course := range courses {
		if term != "" &&
			!strings.Contains(strings.ToLower(course.Title), term) &&
			!strings.Contains(strings.ToLower(course.Description), term) &&
			!strings.Contains(strings.ToLower(course.Mentor), term) {
			continue
		}
		if filters.Level != "" && course.Level != filters.Level {
			continue
		}
		if filters.Language != "" && course.Language != filters.Language {
			continue
		}
		if mentorTerm != "" && !strings.Contains(strings.ToLower(course.Mentor), mentorTerm) {
			continue
		}
		matched = append(matched, course)
	}
	return matched, nil
}

// CreateCourse persists a new course and publishes a course.created event.
// Duplicate slugs are allowed for now and only logged; turning that log
// into an error is the place to enforce slug uniqueness.
func (s *CourseService) CreateCourse(course *models.Course) error {
	if existing, err := s.repo.GetBySlug(course.Slug); err == nil && existing != nil {
		log.Printf("Warning: slug %q already in use by course %s", course.Slug, existing.ID)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check slug %q: %w", course.Slug, err)
	}

	if err := s.repo.Create(course); err != nil {
		return fmt.Errorf("failed to create course in repository: %w", err)
	}

	s.publishEvent("course.created", map[string]interface{}{
		"courseId": course.ID,
		"slug":     course.Slug,
		"title":    course.Title,
		"mentor":   course.Mentor,
	})
	return nil
}

// publishEvent publishes a catalog event best-effort: failures are logged,
// never surfaced, since the record is already persisted.
func (s *CourseService) publishEvent(event string, payload map[string]interface{}) {
	if s.mq == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}

	payload["event"] = event
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mq.Publish("", rabbitmq.QueueName, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
