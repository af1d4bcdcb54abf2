// Package project implements the Project repository using PostgreSQL.
// Resource definitions are embedded in the project row as a JSONB array.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mockapi-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

const table = "projects"

var columns = []string{"id", "owner_id", "name", "description", "api_key", "resources", "created_at", "updated_at"}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new project and returns the persisted domain.Project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	resources, err := encodeResources(p.Resources)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.OwnerID, p.Name, p.Description, p.APIKey, resources, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert project: %w", err)
	}

	created, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return created, nil
}

// ListByOwner returns all projects owned by ownerID, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "projects of owner", ownerID)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, postgres.MapError(err, "projects of owner", ownerID)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "projects of owner", ownerID)
	}
	return projects, nil
}

// GetByOwner returns the project id if ownerID owns it. A project owned by
// someone else is reported as domain.ErrNotFound.
func (r *Repo) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	return r.getOne(ctx, sq.Eq{"id": id, "owner_id": ownerID}, id)
}

// GetByIDAndKey returns the project id only if apiKey is its key.
func (r *Repo) GetByIDAndKey(ctx context.Context, id uuid.UUID, apiKey string) (*domain.Project, error) {
	return r.getOne(ctx, sq.Eq{"id": id, "api_key": apiKey}, id)
}

// UpdateResources overwrites the embedded resource list. Concurrent writers
// are not detected; the last write wins.
func (r *Repo) UpdateResources(ctx context.Context, id uuid.UUID, resources []domain.Resource) (*domain.Project, error) {
	encoded, err := encodeResources(resources)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("resources", encoded).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project resources: %w", err)
	}

	updated, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return updated, nil
}

// Delete removes a project owned by ownerID. Its records go with it through
// the foreign key cascade.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (*domain.Project, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select project: %w", err)
	}

	p, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// JSONB mapping
// ---------------------------------------------------------------------------

type fieldRow struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type resourceRow struct {
	Name   string     `json:"name"`
	Fields []fieldRow `json:"fields"`
}

func encodeResources(resources []domain.Resource) ([]byte, error) {
	rows := make([]resourceRow, len(resources))
	for i, res := range resources {
		fields := make([]fieldRow, len(res.Fields))
		for j, f := range res.Fields {
			fields[j] = fieldRow{Name: f.Name, Type: string(f.Type), Required: f.Required}
		}
		rows[i] = resourceRow{Name: res.Name, Fields: fields}
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode resources: %w", err)
	}
	return b, nil
}

func decodeResources(raw []byte) ([]domain.Resource, error) {
	var rows []resourceRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("decode resources: %w", err)
		}
	}

	resources := make([]domain.Resource, len(rows))
	for i, row := range rows {
		fields := make([]domain.Field, len(row.Fields))
		for j, f := range row.Fields {
			fields[j] = domain.Field{Name: f.Name, Type: domain.FieldType(f.Type), Required: f.Required}
		}
		resources[i] = domain.Resource{Name: row.Name, Fields: fields}
	}
	return resources, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p   domain.Project
		raw []byte
	)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.APIKey, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	resources, err := decodeResources(raw)
	if err != nil {
		return nil, err
	}
	p.Resources = resources
	return &p, nil
}
