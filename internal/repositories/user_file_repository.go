package repositories

import (
	"fmt"
	"time"

	"coursehub/internal/models"
	"coursehub/internal/storage"
)

// FileUserRepository is a UserRepository backed by users.json.
type FileUserRepository struct {
	col *storage.Collection[models.User]
}

// NewFileUserRepository creates a new instance of FileUserRepository
// storing its collection under dir.
func NewFileUserRepository(dir string) *FileUserRepository {
	return &FileUserRepository{
		col: storage.NewCollection[models.User](dir, "users.json"),
	}
}

// Create appends a user, filling in the generated id.
func (r *FileUserRepository) Create(user *models.User) error {
	created, err := r.col.Append(func(id string, _ time.Time) models.User {
		u := *user
		u.ID = id
		return u
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	*user = created
	return nil
}

// GetByEmail returns a user by their email, the lookup key for login.
func (r *FileUserRepository) GetByEmail(email string) (*models.User, error) {
	user, ok := r.col.Find(func(u models.User) bool { return u.Email == email })
	if !ok {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	return user, nil
}

// GetByID returns a user by their ID.
func (r *FileUserRepository) GetByID(id string) (*models.User, error) {
	user, ok := r.col.Find(func(u models.User) bool { return u.ID == id })
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return user, nil
}
