package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/pkg/ctxutil"
)

// ListProjects returns the session user's projects, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates an empty project with a fresh API key.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	key, err := s.newAPIKey()
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	now := s.now()
	p, err := s.projects.Create(ctx, &domain.Project{
		ID:          uuid.New(),
		OwnerID:     userID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		APIKey:      key,
		Resources:   []domain.Resource{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", p.ID.String()),
	)

	return p, nil
}

// GetProject returns a project owned by the session user.
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	_, p, err := s.owned(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProject removes a project together with all of its records.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	userID, _, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.records.DeleteByProject(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		removed = n

		if err := s.projects.Delete(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", id.String()),
		slog.Int("records", removed),
	)

	return nil
}
