package repositories

import (
	"coursehub/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetByCourseID(courseID string) ([]models.Review, error)
	Create(review *models.Review) error
}
