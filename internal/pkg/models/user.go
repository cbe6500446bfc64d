package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)

// User represents a registered account. Identity and credentials are managed
// by the auth collaborator; dispatch only reads the id, role, and verified flag.
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FullName   string    `json:"fullname" db:"fullname"`
	Role       string    `json:"role" db:"role"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
