package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// PasswordHash holds the bcrypt digest and must never appear in any
// outward-facing representation; repository reads leave it empty unless the
// caller goes through the explicit credential accessor.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Credential is the narrow projection used only for login verification.
type Credential struct {
	UserID       string
	PasswordHash string
}
