package repositories

import (
	"fmt"
	"time"

	"coursehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// GetByCourseID retrieves all reviews for a course from the database.
func (r *GORMReviewRepository) GetByCourseID(courseID string) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.Find(&reviews, "course_id = ?", courseID).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for course %s: %w", courseID, err)
	}
	return reviews, nil
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now().UTC()
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}
