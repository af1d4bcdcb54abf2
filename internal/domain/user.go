package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. Users own projects.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
