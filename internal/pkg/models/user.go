package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account in the scheduling system
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"-" db:"password"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Role           string    `json:"role" db:"role"`
	Department     string    `json:"department" db:"department"`
	Course         string    `json:"course" db:"course"`
	EmploymentType string    `json:"employment_type" db:"employment_type"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
	IsActive       bool      `json:"is_active" db:"is_active"`
}

// SessionUser is the projection of a user persisted into the session cookie
type SessionUser struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	Department     string    `json:"department"`
	Course         string    `json:"course"`
	EmploymentType string    `json:"employment_type"`
}

// SessionUserFromUser builds the session projection for a user record
func SessionUserFromUser(u *User) *SessionUser {
	return &SessionUser{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		Department:     u.Department,
		Course:         u.Course,
		EmploymentType: u.EmploymentType,
	}
}
