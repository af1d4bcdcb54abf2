package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/pkg/ctxutil"
)

// ValidateToken resolves a session token to its user id. Any token problem
// is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "session token rejected", "error", err)
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// Me returns the user of the current session. A session whose user has
// since disappeared is treated as unauthenticated.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
