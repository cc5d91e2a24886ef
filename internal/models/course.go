package models

import "time"

// Course levels accepted by the catalog.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course represents a course in the catalog.
// The json tags define the persisted file format and the API wire format.
type Course struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title         string    `json:"title" gorm:"type:varchar(100)"`
	Slug          string    `json:"slug" gorm:"index;type:varchar(100)"`
	Description   string    `json:"description" gorm:"type:varchar(1000)"`
	Thumbnail     string    `json:"thumbnail"`
	Level         string    `json:"level" gorm:"type:varchar(20)"`
	Language      string    `json:"language"`
	Mentor        string    `json:"mentor"`
	Duration      string    `json:"duration"`
	Price         float64   `json:"price"`
	Rating        float64   `json:"rating"`
	StudentsCount int       `json:"studentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
