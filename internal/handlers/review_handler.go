package handlers

import (
	"log"

	"coursehub/internal/models"
	"coursehub/internal/services"
	"coursehub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for course reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// RegisterRoutes registers the public review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/courses/:id/reviews", h.HandleGetCourseReviews)
}

// RegisterProtectedRoutes registers the review routes that require an
// authenticated user.
func (h *ReviewHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleCreateReview)
}

// HandleGetCourseReviews retrieves all reviews for a course. An unknown
// course id simply yields an empty list; the store is permissive about
// review references.
func (h *ReviewHandler) HandleGetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Params("id")
	reviews, err := h.service.GetReviewsByCourse(courseID)
	if err != nil {
		log.Printf("Error getting reviews for course %s: %v", courseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview validates the review-create schema and persists the
// new review.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req validation.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if fieldErrors := validation.Check(&req); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	review := models.Review{
		CourseID: req.CourseID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := h.service.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
