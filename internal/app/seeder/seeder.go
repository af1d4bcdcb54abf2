// Package seeder provisions a demo account: one user, one project, a couple
// of resources with typed fields and generated fixture records. It drives the
// same services the HTTP API uses, so the result is indistinguishable from
// data created through the dashboard.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
	authsvc "github.com/heartmarshall/mockapi-backend/internal/service/auth"
	projectsvc "github.com/heartmarshall/mockapi-backend/internal/service/project"
	"github.com/heartmarshall/mockapi-backend/pkg/ctxutil"
)

type accountService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error)
}

type projectService interface {
	CreateProject(ctx context.Context, input projectsvc.CreateProjectInput) (*domain.Project, error)
	CreateResource(ctx context.Context, projectID uuid.UUID, input projectsvc.CreateResourceInput) (*domain.Resource, error)
	AddField(ctx context.Context, projectID uuid.UUID, resource string, input projectsvc.FieldInput) (*domain.Resource, error)
	Generate(ctx context.Context, projectID uuid.UUID, resource string, input projectsvc.GenerateInput) (int, error)
}

// ResourceSpec is a resource to declare on the demo project.
type ResourceSpec struct {
	Name   string
	Fields []projectsvc.FieldInput
}

// DemoResources is the schema the seeder declares.
var DemoResources = []ResourceSpec{
	{
		Name: "todos",
		Fields: []projectsvc.FieldInput{
			{Name: "title", Type: domain.FieldTypeString, Required: true},
			{Name: "completed", Type: domain.FieldTypeBoolean},
			{Name: "priority", Type: domain.FieldTypeNumber},
		},
	},
	{
		Name: "users",
		Fields: []projectsvc.FieldInput{
			{Name: "name", Type: domain.FieldTypeString, Required: true},
			{Name: "email", Type: domain.FieldTypeString, Required: true},
			{Name: "age", Type: domain.FieldTypeNumber},
		},
	},
}

// Result summarizes one seeding run.
type Result struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	APIKey    string
	Records   map[string]int
	Duration  time.Duration
}

// Seeder creates the demo account.
type Seeder struct {
	log       *slog.Logger
	accounts  accountService
	projects  projectService
	cfg       Config
	resources []ResourceSpec
}

// New creates a Seeder declaring DemoResources.
func New(log *slog.Logger, accounts accountService, projects projectService, cfg Config) *Seeder {
	return &Seeder{
		log:       log.With("component", "seeder"),
		accounts:  accounts,
		projects:  projects,
		cfg:       cfg,
		resources: DemoResources,
	}
}

// Run provisions the demo data. An existing demo user is reused, but a new
// project is created on every run. In dry-run mode nothing is written and
// the returned Result is empty.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if s.cfg.DryRun {
		for _, res := range s.resources {
			s.log.Info("dry run: would create resource",
				slog.String("resource", res.Name),
				slog.Int("fields", len(res.Fields)),
				slog.Int("records", s.cfg.Count),
			)
		}
		return &Result{Records: map[string]int{}}, nil
	}

	userID, err := s.account(ctx)
	if err != nil {
		return nil, err
	}
	ctx = ctxutil.WithUserID(ctx, userID)

	project, err := s.projects.CreateProject(ctx, projectsvc.CreateProjectInput{
		Name:        s.cfg.ProjectName,
		Description: "Seeded demo data",
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	result := &Result{
		UserID:    userID,
		ProjectID: project.ID,
		APIKey:    project.APIKey,
		Records:   make(map[string]int, len(s.resources)),
	}

	for _, res := range s.resources {
		n, err := s.seedResource(ctx, project.ID, res)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", res.Name, err)
		}
		result.Records[res.Name] = n
	}

	result.Duration = time.Since(start)
	s.log.Info("demo data seeded",
		slog.String("project_id", project.ID.String()),
		slog.Int("resources", len(result.Records)),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// account registers the demo user, or logs in when the email is taken.
func (s *Seeder) account(ctx context.Context) (uuid.UUID, error) {
	res, err := s.accounts.Register(ctx, authsvc.RegisterInput{
		Email:    s.cfg.Email,
		Password: s.cfg.Password,
		Name:     s.cfg.Name,
	})
	if err == nil {
		s.log.Info("demo user created", slog.String("email", res.User.Email))
		return res.User.ID, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return uuid.Nil, fmt.Errorf("register: %w", err)
	}

	res, err = s.accounts.Login(ctx, authsvc.LoginInput{Email: s.cfg.Email, Password: s.cfg.Password})
	if err != nil {
		return uuid.Nil, fmt.Errorf("login existing demo user: %w", err)
	}
	s.log.Info("reusing demo user", slog.String("email", res.User.Email))
	return res.User.ID, nil
}

func (s *Seeder) seedResource(ctx context.Context, projectID uuid.UUID, res ResourceSpec) (int, error) {
	if _, err := s.projects.CreateResource(ctx, projectID, projectsvc.CreateResourceInput{Name: res.Name}); err != nil {
		return 0, fmt.Errorf("create resource: %w", err)
	}
	for _, f := range res.Fields {
		if _, err := s.projects.AddField(ctx, projectID, res.Name, f); err != nil {
			return 0, fmt.Errorf("add field %s: %w", f.Name, err)
		}
	}

	if s.cfg.Count <= 0 {
		return 0, nil
	}
	count := s.cfg.Count
	n, err := s.projects.Generate(ctx, projectID, res.Name, projectsvc.GenerateInput{Count: &count})
	if err != nil {
		return 0, fmt.Errorf("generate: %w", err)
	}
	return n, nil
}
