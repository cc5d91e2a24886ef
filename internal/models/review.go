package models

import "time"

// Review represents one user review of a course. Multiple reviews per
// course and user are allowed; the store enforces no uniqueness here.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CourseID  string    `json:"courseId" gorm:"index;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36)"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment" gorm:"type:varchar(500)"`
	CreatedAt time.Time `json:"createdAt"`
}
