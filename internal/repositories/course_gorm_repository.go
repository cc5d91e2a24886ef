package repositories

import (
	"errors"
	"fmt"
	"time"

	"coursehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCourseRepository is a GORM implementation of CourseRepository.
type GORMCourseRepository struct {
	db *gorm.DB
}

// NewGORMCourseRepository creates a new instance of GORMCourseRepository.
func NewGORMCourseRepository(db *gorm.DB) *GORMCourseRepository {
	return &GORMCourseRepository{
		db: db,
	}
}

// GetAll retrieves all courses from the database.
func (r *GORMCourseRepository) GetAll() ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all courses: %w", err)
	}
	return courses, nil
}

// GetByID retrieves a single course by its ID from the database.
func (r *GORMCourseRepository) GetByID(id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get course by ID %s: %w", id, err)
	}
	return &course, nil
}

// GetBySlug retrieves a single course by its slug from the database.
func (r *GORMCourseRepository) GetBySlug(slug string) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course with slug %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get course by slug %s: %w", slug, err)
	}
	return &course, nil
}

// Create creates a new course in the database.
func (r *GORMCourseRepository) Create(course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	if err := r.db.Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}
