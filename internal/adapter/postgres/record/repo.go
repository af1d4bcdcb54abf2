// Package record implements the generic record store using PostgreSQL.
// Record payloads are schemaless JSONB scoped by (project_id, resource_name).
package record

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
	"github.com/heartmarshall/mockapi-backend/internal/observability"
)

const table = "records"

var columns = []string{"id", "project_id", "resource_name", "data", "created_at", "updated_at"}

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	pool    *pgxpool.Pool
	metrics *observability.Metrics
}

// New creates a new record repository. metrics may be nil.
func New(pool *pgxpool.Pool, metrics *observability.Metrics) *Repo {
	return &Repo{pool: pool, metrics: metrics}
}

// Create inserts one record.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (_ *domain.Record, err error) {
	defer r.observe("create", time.Now(), &err)

	data, err := encodeData(rec.Data)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.ProjectID, rec.ResourceName, data, rec.CreatedAt, rec.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert record: %w", err)
	}

	created, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "record", rec.ID)
	}
	return created, nil
}

// CreateBatch inserts all records in one statement and returns how many
// rows were written.
func (r *Repo) CreateBatch(ctx context.Context, recs []domain.Record) (_ int, err error) {
	defer r.observe("create_batch", time.Now(), &err)

	if len(recs) == 0 {
		return 0, nil
	}

	insert := postgres.Builder().Insert(table).Columns(columns...)
	for _, rec := range recs {
		data, err := encodeData(rec.Data)
		if err != nil {
			return 0, err
		}
		insert = insert.Values(rec.ID, rec.ProjectID, rec.ResourceName, data, rec.CreatedAt, rec.UpdatedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build batch insert records: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "records of project", recs[0].ProjectID)
	}
	return int(tag.RowsAffected()), nil
}

// Get returns the record id inside scope.
func (r *Repo) Get(ctx context.Context, scope domain.RecordScope, id uuid.UUID) (_ *domain.Record, err error) {
	defer r.observe("get", time.Now(), &err)

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(scopeEq(scope)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select record: %w", err)
	}

	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return rec, nil
}

// List returns one page of records in scope plus the total count of the
// scope. req must be normalized.
func (r *Repo) List(ctx context.Context, scope domain.RecordScope, req domain.PageRequest) (_ []domain.Record, _ int, err error) {
	defer r.observe("list", time.Now(), &err)

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(scopeEq(scope)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count records: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "records of resource", scope.ResourceName)
	}

	query, args, err := orderBy(
		postgres.Builder().Select(columns...).From(table).Where(scopeEq(scope)),
		req,
	).
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Skip())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list records: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "records of resource", scope.ResourceName)
	}
	defer rows.Close()

	records := make([]domain.Record, 0, req.Limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "records of resource", scope.ResourceName)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "records of resource", scope.ResourceName)
	}

	return records, total, nil
}

// Replace overwrites the payload of record id and bumps updated_at.
func (r *Repo) Replace(ctx context.Context, scope domain.RecordScope, id uuid.UUID, data map[string]any) (_ *domain.Record, err error) {
	defer r.observe("replace", time.Now(), &err)

	encoded, err := encodeData(data)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("data", encoded).
		Set("updated_at", time.Now().UTC()).
		Where(scopeEq(scope)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record: %w", err)
	}

	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return rec, nil
}

// Delete removes record id from scope.
func (r *Repo) Delete(ctx context.Context, scope domain.RecordScope, id uuid.UUID) (err error) {
	defer r.observe("delete", time.Now(), &err)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(scopeEq(scope)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete record: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByProject removes every record of a project.
func (r *Repo) DeleteByProject(ctx context.Context, projectID uuid.UUID) (_ int, err error) {
	defer r.observe("delete_project", time.Now(), &err)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete project records: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "records of project", projectID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func (r *Repo) observe(operation string, start time.Time, err *error) {
	r.metrics.ObserveStorage(operation, start, *err)
}

func scopeEq(scope domain.RecordScope) sq.Eq {
	return sq.Eq{"project_id": scope.ProjectID, "resource_name": scope.ResourceName}
}

// orderBy maps the public sort key onto a column or a JSONB path. id breaks
// ties so pagination is stable for equal sort values.
func orderBy(b sq.SelectBuilder, req domain.PageRequest) sq.SelectBuilder {
	dir := "DESC"
	if req.Order == domain.SortAsc {
		dir = "ASC"
	}

	switch req.Sort {
	case "createdAt":
		b = b.OrderBy("created_at " + dir)
	case "updatedAt":
		b = b.OrderBy("updated_at " + dir)
	case "id":
		return b.OrderBy("id " + dir)
	default:
		b = b.OrderByClause("data -> ?::text "+dir, req.Sort)
	}
	return b.OrderBy("id " + dir)
}

// ---------------------------------------------------------------------------
// JSONB mapping
// ---------------------------------------------------------------------------

func encodeData(data map[string]any) ([]byte, error) {
	if data == nil {
		data = map[string]any{}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode record data: %w", err)
	}
	return b, nil
}

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var (
		rec domain.Record
		raw []byte
	)
	if err := row.Scan(&rec.ID, &rec.ProjectID, &rec.ResourceName, &raw, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}

	rec.Data = map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rec.Data); err != nil {
			return nil, fmt.Errorf("decode record data: %w", err)
		}
	}
	return &rec, nil
}
