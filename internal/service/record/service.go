// Package record serves the public, API-key protected CRUD surface over a
// project's resource records.
package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/auth"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/pkg/ctxutil"
)

type projectRepo interface {
	GetByIDAndKey(ctx context.Context, id uuid.UUID, apiKey string) (*domain.Project, error)
}

type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	Get(ctx context.Context, scope domain.RecordScope, id uuid.UUID) (*domain.Record, error)
	List(ctx context.Context, scope domain.RecordScope, req domain.PageRequest) ([]domain.Record, int, error)
	Replace(ctx context.Context, scope domain.RecordScope, id uuid.UUID, data map[string]any) (*domain.Record, error)
	Delete(ctx context.Context, scope domain.RecordScope, id uuid.UUID) error
}

// Target addresses one resource of a project on behalf of an API key holder.
type Target struct {
	ProjectID uuid.UUID
	APIKey    string
	Resource  string
}

// Service implements record CRUD for API key holders.
type Service struct {
	projects projectRepo
	records  recordRepo
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new record service.
func NewService(log *slog.Logger, projects projectRepo, records recordRepo) *Service {
	return &Service{
		projects: projects,
		records:  records,
		now:      time.Now,
		log:      log.With("service", "record"),
	}
}

// Authorize returns the project only if apiKey belongs to projectID. A
// missing or malformed key, an unknown project or a foreign key is reported
// as ErrUnauthorized.
func (s *Service) Authorize(ctx context.Context, projectID uuid.UUID, apiKey string) (*domain.Project, error) {
	if !auth.IsAPIKeyFormat(apiKey) {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByIDAndKey(ctx, projectID, apiKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authorize api key: %w", err)
	}
	ctxutil.SetProjectID(ctx, p.ID)
	return p, nil
}

// resolve authorizes t and finds its resource.
func (s *Service) resolve(ctx context.Context, t Target) (*domain.Resource, domain.RecordScope, error) {
	p, err := s.Authorize(ctx, t.ProjectID, t.APIKey)
	if err != nil {
		return nil, domain.RecordScope{}, err
	}

	res, ok := p.Resource(t.Resource)
	if !ok {
		return nil, domain.RecordScope{}, fmt.Errorf("resource %q: %w", t.Resource, domain.ErrNotFound)
	}
	return res, domain.RecordScope{ProjectID: p.ID, ResourceName: res.Name}, nil
}
