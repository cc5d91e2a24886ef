package models

// User roles accepted at registration.
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// User represents an account. Password holds a bcrypt hash, never the
// plaintext; handlers must blank it before returning a user in a response.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string `json:"name" gorm:"type:varchar(50)"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password string `json:"password,omitempty" gorm:"type:varchar(255)"`
	Role     string `json:"role" gorm:"type:varchar(20)"`
}
