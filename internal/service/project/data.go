package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
	"github.com/heartmarshall/mockapi-backend/internal/fixture"
)

// Generate fills a resource with fake records and returns how many were
// stored. Generated data is inserted as is, without the projection applied
// to client writes.
func (s *Service) Generate(ctx context.Context, projectID uuid.UUID, resource string, input GenerateInput) (int, error) {
	p, res, err := s.ownedResource(ctx, projectID, resource)
	if err != nil {
		return 0, err
	}

	count := fixture.DefaultCount
	if input.Count != nil {
		count = *input.Count
	}

	payloads, err := s.fixtures.Generate(*res, count)
	if err != nil {
		return 0, err
	}

	// Spread timestamps by a microsecond so the default newest-first order
	// is the reverse of generation order.
	now := s.now()
	recs := make([]domain.Record, len(payloads))
	for i, data := range payloads {
		ts := now.Add(time.Duration(i) * time.Microsecond)
		recs[i] = domain.Record{
			ID:           uuid.New(),
			ProjectID:    p.ID,
			ResourceName: res.Name,
			Data:         data,
			CreatedAt:    ts,
			UpdatedAt:    ts,
		}
	}

	var inserted int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.records.CreateBatch(txCtx, recs)
		if err != nil {
			return fmt.Errorf("insert generated records: %w", err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.counter != nil {
		s.counter.AddFixtures(inserted)
	}
	s.log.InfoContext(ctx, "fixtures generated",
		slog.String("project_id", p.ID.String()),
		slog.String("resource", res.Name),
		slog.Int("count", inserted),
	)

	return inserted, nil
}

// ListData returns one page of a resource's stored records as they are
// stored, for the owner's inspection.
func (s *Service) ListData(ctx context.Context, projectID uuid.UUID, resource string, req domain.PageRequest) (domain.Page[domain.Record], error) {
	p, res, err := s.ownedResource(ctx, projectID, resource)
	if err != nil {
		return domain.Page[domain.Record]{}, err
	}

	req = req.Normalize()
	recs, total, err := s.records.List(ctx, domain.RecordScope{ProjectID: p.ID, ResourceName: res.Name}, req)
	if err != nil {
		return domain.Page[domain.Record]{}, fmt.Errorf("list records: %w", err)
	}
	return domain.NewPage(recs, total, req), nil
}

// DeleteData removes one stored record of a resource.
func (s *Service) DeleteData(ctx context.Context, projectID uuid.UUID, resource string, recordID uuid.UUID) error {
	p, res, err := s.ownedResource(ctx, projectID, resource)
	if err != nil {
		return err
	}

	if err := s.records.Delete(ctx, domain.RecordScope{ProjectID: p.ID, ResourceName: res.Name}, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
