package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/pkg/ctxutil"
)

type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error)
	UpdateResources(ctx context.Context, id uuid.UUID, resources []domain.Resource) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type recordRepo interface {
	CreateBatch(ctx context.Context, recs []domain.Record) (int, error)
	List(ctx context.Context, scope domain.RecordScope, req domain.PageRequest) ([]domain.Record, int, error)
	Delete(ctx context.Context, scope domain.RecordScope, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type fixtureGenerator interface {
	Generate(res domain.Resource, count int) ([]map[string]any, error)
}

type fixtureCounter interface {
	AddFixtures(n int)
}

// Service provides owner-scoped project management: projects, their
// resource schemas, and the stored records of each resource.
type Service struct {
	projects  projectRepo
	records   recordRepo
	tx        txManager
	fixtures  fixtureGenerator
	counter   fixtureCounter
	newAPIKey func() (string, error)
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	records recordRepo,
	tx txManager,
	fixtures fixtureGenerator,
	counter fixtureCounter,
	newAPIKey func() (string, error),
) *Service {
	return &Service{
		projects:  projects,
		records:   records,
		tx:        tx,
		fixtures:  fixtures,
		counter:   counter,
		newAPIKey: newAPIKey,
		now:       time.Now,
		log:       log.With("service", "project"),
	}
}

// owned loads project id on behalf of the session user.
func (s *Service) owned(ctx context.Context, id uuid.UUID) (uuid.UUID, *domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByOwner(ctx, userID, id)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get project: %w", err)
	}
	return userID, p, nil
}

// ownedResource loads a project and the resource declared under name.
func (s *Service) ownedResource(ctx context.Context, projectID uuid.UUID, name string) (*domain.Project, *domain.Resource, error) {
	_, p, err := s.owned(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	res, ok := p.Resource(name)
	if !ok {
		return nil, nil, fmt.Errorf("resource %q: %w", domain.NormalizeText(name), domain.ErrNotFound)
	}
	return p, res, nil
}

// mutateResource applies fn to the named resource and persists the project's
// whole resource list.
func (s *Service) mutateResource(
	ctx context.Context,
	projectID uuid.UUID,
	name string,
	fn func(res *domain.Resource) error,
) (*domain.Resource, error) {
	p, res, err := s.ownedResource(ctx, projectID, name)
	if err != nil {
		return nil, err
	}

	if err := fn(res); err != nil {
		return nil, err
	}

	updated, err := s.projects.UpdateResources(ctx, p.ID, p.Resources)
	if err != nil {
		return nil, fmt.Errorf("update resources: %w", err)
	}

	saved, ok := updated.Resource(res.Name)
	if !ok {
		return nil, fmt.Errorf("resource %q: %w", res.Name, domain.ErrNotFound)
	}
	return saved, nil
}
