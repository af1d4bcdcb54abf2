package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

// List returns one page of flattened records.
func (s *Service) List(ctx context.Context, t Target, req domain.PageRequest) (domain.Page[map[string]any], error) {
	_, scope, err := s.resolve(ctx, t)
	if err != nil {
		return domain.Page[map[string]any]{}, err
	}

	req = req.Normalize()
	recs, total, err := s.records.List(ctx, scope, req)
	if err != nil {
		return domain.Page[map[string]any]{}, fmt.Errorf("list records: %w", err)
	}

	items := make([]map[string]any, len(recs))
	for i, rec := range recs {
		items[i] = rec.Flatten()
	}
	return domain.NewPage(items, total, req), nil
}

// Create validates input against the resource schema, stores its
// projection and returns the flattened record.
func (s *Service) Create(ctx context.Context, t Target, input map[string]any) (map[string]any, error) {
	res, scope, err := s.resolve(ctx, t)
	if err != nil {
		return nil, err
	}

	data, err := res.Shape(input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec, err := s.records.Create(ctx, &domain.Record{
		ID:           uuid.New(),
		ProjectID:    scope.ProjectID,
		ResourceName: scope.ResourceName,
		Data:         data,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.DebugContext(ctx, "record created",
		slog.String("project_id", scope.ProjectID.String()),
		slog.String("resource", scope.ResourceName),
		slog.String("record_id", rec.ID.String()),
	)

	return rec.Flatten(), nil
}

// Get returns one flattened record.
func (s *Service) Get(ctx context.Context, t Target, id uuid.UUID) (map[string]any, error) {
	_, scope, err := s.resolve(ctx, t)
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Get(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec.Flatten(), nil
}

// Replace overwrites a record's data with the projection of input.
func (s *Service) Replace(ctx context.Context, t Target, id uuid.UUID, input map[string]any) (map[string]any, error) {
	res, scope, err := s.resolve(ctx, t)
	if err != nil {
		return nil, err
	}

	data, err := res.Shape(input)
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Replace(ctx, scope, id, data)
	if err != nil {
		return nil, fmt.Errorf("replace record: %w", err)
	}
	return rec.Flatten(), nil
}

// Patch merges the declared fields of patch into the stored data.
func (s *Service) Patch(ctx context.Context, t Target, id uuid.UUID, patch map[string]any) (map[string]any, error) {
	res, scope, err := s.resolve(ctx, t)
	if err != nil {
		return nil, err
	}

	existing, err := s.records.Get(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	merged, err := res.Merge(existing.Data, patch)
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Replace(ctx, scope, id, merged)
	if err != nil {
		return nil, fmt.Errorf("patch record: %w", err)
	}
	return rec.Flatten(), nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, t Target, id uuid.UUID) error {
	_, scope, err := s.resolve(ctx, t)
	if err != nil {
		return err
	}

	if err := s.records.Delete(ctx, scope, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
