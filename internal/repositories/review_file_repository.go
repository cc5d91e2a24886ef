package repositories

import (
	"fmt"
	"time"

	"coursehub/internal/models"
	"coursehub/internal/storage"
)

// FileReviewRepository is a ReviewRepository backed by reviews.json.
type FileReviewRepository struct {
	col *storage.Collection[models.Review]
}

// NewFileReviewRepository creates a new instance of FileReviewRepository
// storing its collection under dir.
func NewFileReviewRepository(dir string) *FileReviewRepository {
	return &FileReviewRepository{
		col: storage.NewCollection[models.Review](dir, "reviews.json"),
	}
}

// GetByCourseID returns all reviews for one course in storage order.
func (r *FileReviewRepository) GetByCourseID(courseID string) ([]models.Review, error) {
	all, err := r.col.ReadAll()
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0)
	for _, review := range all {
		if review.CourseID == courseID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// Create appends a review, filling in the generated id and creation time.
// The course reference is not checked here; the store stays permissive.
func (r *FileReviewRepository) Create(review *models.Review) error {
	created, err := r.col.Append(func(id string, now time.Time) models.Review {
		rev := *review
		rev.ID = id
		rev.CreatedAt = now
		return rev
	})
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	*review = created
	return nil
}
