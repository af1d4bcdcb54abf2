package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mockapi-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashsee",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates a project owned by ownerID with the given resources.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, resources ...domain.Resource) domain.Project {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	if resources == nil {
		resources = []domain.Resource{}
	}

	p, err := project.New(pool).Create(context.Background(), &domain.Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Project " + suffix,
		Description: "seeded",
		APIKey:      "mk_test" + suffix + uniqueSuffix(),
		Resources:   resources,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return *p
}

// TodosResource is a small resource definition shared by store tests.
func TodosResource() domain.Resource {
	return domain.Resource{
		Name: "todos",
		Fields: []domain.Field{
			{Name: "title", Type: domain.FieldTypeString, Required: true},
			{Name: "done", Type: domain.FieldTypeBoolean},
		},
	}
}
