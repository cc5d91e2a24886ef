package handlers

import (
	"errors"
	"log"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
	"coursehub/internal/services"
	"coursehub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles HTTP requests for the course catalog.
type CourseHandler struct {
	service *services.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{
		service: service,
	}
}

// RegisterRoutes registers the public course routes with the Fiber app.
// The slug route is registered before the id route so it wins the match.
func (h *CourseHandler) RegisterRoutes(router fiber.Router) {
	courseRoutes := router.Group("/courses")
	courseRoutes.Get("/", h.HandleListCourses)
	courseRoutes.Get("/slug/:slug", h.HandleGetCourseBySlug)
	courseRoutes.Get("/:id", h.HandleGetCourseByID)
}

// RegisterProtectedRoutes registers the course routes that require an
// authenticated mentor or admin.
func (h *CourseHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/courses", h.HandleCreateCourse)
}

// HandleListCourses lists the catalog, or searches it when any of the
// query/level/language/mentor params is present. Filters are validated
// before the search runs.
func (h *CourseHandler) HandleListCourses(c *fiber.Ctx) error {
	filters := validation.CourseFilters{
		Query:    c.Query("query"),
		Level:    c.Query("level"),
		Language: c.Query("language"),
		Mentor:   c.Query("mentor"),
	}

	if fieldErrors := validation.Check(&filters); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	var (
		courses []models.Course
		err     error
	)
	if filters.Query == "" && filters.Level == "" && filters.Language == "" && filters.Mentor == "" {
		courses, err = h.service.GetAllCourses()
	} else {
		courses, err = h.service.SearchCourses(filters.Query, services.SearchFilters{
			Level:    filters.Level,
			Language: filters.Language,
			Mentor:   filters.Mentor,
		})
	}
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve courses",
			"error":   err.Error(),
		})
	}
	return c.JSON(courses)
}

// HandleGetCourseByID retrieves a single course by its ID.
func (h *CourseHandler) HandleGetCourseByID(c *fiber.Ctx) error {
	courseID := c.Params("id")
	course, err := h.service.GetCourseByID(courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Course not found",
			})
		}
		log.Printf("Error getting course by ID %s: %v", courseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve course",
			"error":   err.Error(),
		})
	}
	return c.JSON(course)
}

// HandleGetCourseBySlug retrieves a single course by its slug.
func (h *CourseHandler) HandleGetCourseBySlug(c *fiber.Ctx) error {
	courseSlug := c.Params("slug")
	course, err := h.service.GetCourseBySlug(courseSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Course not found",
			})
		}
		log.Printf("Error getting course by slug %s: %v", courseSlug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve course",
			"error":   err.Error(),
		})
	}
	return c.JSON(course)
}

// HandleCreateCourse validates the course-create schema and persists the
// new course, returning it with its generated id and timestamps.
func (h *CourseHandler) HandleCreateCourse(c *fiber.Ctx) error {
	var req validation.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing course request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	req.Normalize()
	if fieldErrors := validation.Check(&req); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	course := models.Course{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		Thumbnail:     req.Thumbnail,
		Level:         req.Level,
		Language:      req.Language,
		Mentor:        req.Mentor,
		Duration:      req.Duration,
		Price:         req.Price,
		Rating:        *req.Rating,
		StudentsCount: *req.StudentsCount,
	}

	if err := h.service.CreateCourse(&course); err != nil {
		log.Printf("Error creating course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create course",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}
