package repositories

import (
	"fmt"
	"time"

	"coursehub/internal/models"
	"coursehub/internal/storage"
)

// FileCourseRepository is a CourseRepository backed by courses.json.
type FileCourseRepository struct {
	col *storage.Collection[models.Course]
}

// NewFileCourseRepository creates a new instance of FileCourseRepository
// storing its collection under dir.
func NewFileCourseRepository(dir string) *FileCourseRepository {
	return &FileCourseRepository{
		col: storage.NewCollection[models.Course](dir, "courses.json"),
	}
}

// GetAll returns all courses in storage order.
func (r *FileCourseRepository) GetAll() ([]models.Course, error) {
	return r.col.ReadAll()
}

// GetByID returns a course by its ID.
func (r *FileCourseRepository) GetByID(id string) (*models.Course, error) {
	course, ok := r.col.Find(func(c models.Course) bool { return c.ID == id })
	if !ok {
		return nil, fmt.Errorf("course with ID %s: %w", id, ErrNotFound)
	}
	return course, nil
}

// GetBySlug returns a course by its slug.
func (r *FileCourseRepository) GetBySlug(slug string) (*models.Course, error) {
	course, ok := r.col.Find(func(c models.Course) bool { return c.Slug == slug })
	if !ok {
		return nil, fmt.Errorf("course with slug %s: %w", slug, ErrNotFound)
	}
	return course, nil
}

// Create appends a course, filling in the generated id and setting both
// timestamps to the same creation instant.
func (r *FileCourseRepository) Create(course *models.Course) error {
	created, err := r.col.Append(func(id string, now time.Time) models.Course {
		c := *course
		c.ID = id
		c.CreatedAt = now
		c.UpdatedAt = now
		return c
	})
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	*course = created
	return nil
}
