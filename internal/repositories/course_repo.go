package repositories

import (
	"coursehub/internal/models"
)

// CourseRepository defines the interface for course data access.
type CourseRepository interface {
	GetAll() ([]models.Course, error)
	GetByID(id string) (*models.Course, error)
	GetBySlug(slug string) (*models.Course, error)
	Create(course *models.Course) error
}
