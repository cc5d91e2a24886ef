package services

import (
	"encoding/json"
	"fmt"
	"log"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
	"coursehub/pkg/rabbitmq"
)

// ReviewService handles business logic related to course reviews.
type ReviewService struct {
	repo repositories.ReviewRepository
	mq   EventPublisher
}

// NewReviewService creates a new ReviewService. mq may be nil, in which
// case no events are published.
func NewReviewService(repo repositories.ReviewRepository, mq EventPublisher) *ReviewService {
	return &ReviewService{
		repo: repo,
		mq:   mq,
	}
}

// GetReviewsByCourse retrieves all reviews for one course in storage order.
func (s *ReviewService) GetReviewsByCourse(courseID string) ([]models.Review, error) {
	return s.repo.GetByCourseID(courseID)
}

// CreateReview persists a new review and publishes a review.created event.
// The course reference is deliberately not verified; a review may point at
// a course id that no longer (or never did) exist.
func (s *ReviewService) CreateReview(review *models.Review) error {
	if err := s.repo.Create(review); err != nil {
		return fmt.Errorf("failed to create review in repository: %w", err)
	}

	if s.mq == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":    "review.created",
		"reviewId": review.ID,
		"courseId": review.CourseID,
		"rating":   review.Rating,
	})
	if err != nil {
		log.Printf("Failed to marshal review.created event: %v", err)
		return nil
	}
	if err := s.mq.Publish("", rabbitmq.QueueName, body); err != nil {
		log.Printf("Warning: Failed to publish review.created event for review %s: %v", review.ID, err)
	}
	return nil
}
