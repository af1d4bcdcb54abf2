package rest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

// memStore is an in-memory stand-in for the Postgres repositories, used to
// drive the full HTTP stack in tests.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]domain.User
	projects map[uuid.UUID]domain.Project
	records  map[uuid.UUID]domain.Record
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]domain.User{},
		projects: map[uuid.UUID]domain.Project{},
		records:  map[uuid.UUID]domain.Record{},
	}
}

type memUsers struct{ *memStore }
type memProjects struct{ *memStore }
type memRecords struct{ *memStore }

type memTx struct{}

func (memTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func notFound(entity string, key any) error {
	return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
}

// ─── users ─────────────────────────────────────────────────────────────────

func (s memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, notFound("user", email)
}

func (s memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, fmt.Errorf("user %s: %w", u.Email, domain.ErrAlreadyExists)
		}
	}
	s.users[u.ID] = *u
	cp := *u
	return &cp, nil
}

// ─── projects ──────────────────────────────────────────────────────────────

func cloneProject(p domain.Project) *domain.Project {
	res := make([]domain.Resource, len(p.Resources))
	for i, r := range p.Resources {
		res[i] = domain.Resource{Name: r.Name, Fields: append([]domain.Field{}, r.Fields...)}
	}
	p.Resources = res
	return &p
}

func (s memProjects) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = *cloneProject(*p)
	return cloneProject(*p), nil
}

func (s memProjects) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Project{}
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			out = append(out, *cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s memProjects) GetByOwner(_ context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok || p.OwnerID != ownerID {
		return nil, notFound("project", id)
	}
	return cloneProject(p), nil
}

func (s memProjects) GetByIDAndKey(_ context.Context, id uuid.UUID, apiKey string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok || p.APIKey != apiKey {
		return nil, notFound("project", id)
	}
	return cloneProject(p), nil
}

func (s memProjects) UpdateResources(_ context.Context, id uuid.UUID, resources []domain.Resource) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, notFound("project", id)
	}
	p.Resources = resources
	p.UpdatedAt = time.Now()
	s.projects[id] = *cloneProject(p)
	return cloneProject(p), nil
}

func (s memProjects) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok || p.OwnerID != ownerID {
		return notFound("project", id)
	}
	delete(s.projects, id)
	return nil
}

// ─── records ───────────────────────────────────────────────────────────────

func inScope(r domain.Record, scope domain.RecordScope) bool {
	return r.ProjectID == scope.ProjectID && r.ResourceName == scope.ResourceName
}

func (s memRecords) Create(_ context.Context, rec *domain.Record) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	cp := *rec
	return &cp, nil
}

func (s memRecords) CreateBatch(_ context.Context, recs []domain.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		s.records[rec.ID] = rec
	}
	return len(recs), nil
}

func (s memRecords) Get(_ context.Context, scope domain.RecordScope, id uuid.UUID) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok || !inScope(rec, scope) {
		return nil, notFound("record", id)
	}
	return &rec, nil
}

func (s memRecords) List(_ context.Context, scope domain.RecordScope, req domain.PageRequest) ([]domain.Record, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []domain.Record
	for _, rec := range s.records {
		if inScope(rec, scope) {
			all = append(all, rec)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if req.Order == domain.SortAsc {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	total := len(all)
	from := min(req.Skip(), total)
	to := min(from+req.Limit, total)
	return all[from:to], total, nil
}

func (s memRecords) Replace(_ context.Context, scope domain.RecordScope, id uuid.UUID, data map[string]any) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok || !inScope(rec, scope) {
		return nil, notFound("record", id)
	}
	rec.Data = data
	rec.UpdatedAt = time.Now()
	s.records[id] = rec
	return &rec, nil
}

func (s memRecords) Delete(_ context.Context, scope domain.RecordScope, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok || !inScope(rec, scope) {
		return notFound("record", id)
	}
	delete(s.records, id)
	return nil
}

func (s memRecords) DeleteByProject(_ context.Context, projectID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, rec := range s.records {
		if rec.ProjectID == projectID {
			delete(s.records, id)
			n++
		}
	}
	return n, nil
}

func (s *memStore) countRecords(resource string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.records {
		if strings.EqualFold(rec.ResourceName, resource) {
			n++
		}
	}
	return n
}
