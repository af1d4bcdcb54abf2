package auth

import (
	"time"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}
