package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

// CreateResource declares a resource with no fields. Names are lowercased
// and must be unique in the project regardless of case.
func (s *Service) CreateResource(ctx context.Context, projectID uuid.UUID, input CreateResourceInput) (*domain.Resource, error) {
	_, p, err := s.owned(ctx, projectID)
	if err != nil {
		return nil, err
	}

	res, err := p.AddResource(input.Name)
	if err != nil {
		return nil, err
	}
	name := res.Name

	updated, err := s.projects.UpdateResources(ctx, p.ID, p.Resources)
	if err != nil {
		return nil, fmt.Errorf("update resources: %w", err)
	}

	saved, ok := updated.Resource(name)
	if !ok {
		return nil, fmt.Errorf("resource %q: %w", name, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "resource created",
		slog.String("project_id", p.ID.String()),
		slog.String("resource", name),
	)

	return saved, nil
}

// AddField appends a field to a resource.
func (s *Service) AddField(ctx context.Context, projectID uuid.UUID, resource string, input FieldInput) (*domain.Resource, error) {
	return s.mutateResource(ctx, projectID, resource, func(res *domain.Resource) error {
		return res.AddField(input.field())
	})
}

// UpdateField replaces the field named input.OriginalName (or input.Name),
// optionally renaming it. Stored records keep their data untouched.
func (s *Service) UpdateField(ctx context.Context, projectID uuid.UUID, resource string, input FieldInput) (*domain.Resource, error) {
	return s.mutateResource(ctx, projectID, resource, func(res *domain.Resource) error {
		if err := res.UpdateField(input.OriginalName, input.field()); err != nil {
			return fmt.Errorf("update field: %w", err)
		}
		return nil
	})
}

// DeleteField removes a field from a resource.
func (s *Service) DeleteField(ctx context.Context, projectID uuid.UUID, resource, field string) (*domain.Resource, error) {
	return s.mutateResource(ctx, projectID, resource, func(res *domain.Resource) error {
		if err := res.RemoveField(field); err != nil {
			return fmt.Errorf("delete field %q: %w", field, err)
		}
		return nil
	})
}
