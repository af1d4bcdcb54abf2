package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mockapi-backend/internal/adapter/postgres"
	projectrepo "github.com/heartmarshall/mockapi-backend/internal/adapter/postgres/project"
	recordrepo "github.com/heartmarshall/mockapi-backend/internal/adapter/postgres/record"
	userrepo "github.com/heartmarshall/mockapi-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mockapi-backend/internal/auth"
	"github.com/heartmarshall/mockapi-backend/internal/config"
	"github.com/heartmarshall/mockapi-backend/internal/fixture"
	"github.com/heartmarshall/mockapi-backend/internal/observability"
	authsvc "github.com/heartmarshall/mockapi-backend/internal/service/auth"
	projectsvc "github.com/heartmarshall/mockapi-backend/internal/service/project"
	recordsvc "github.com/heartmarshall/mockapi-backend/internal/service/record"
)

// Services bundles the application services built on one database pool.
type Services struct {
	Auth     *authsvc.Service
	Projects *projectsvc.Service
	Records  *recordsvc.Service
}

// NewServices wires the postgres stores into the services. metrics may be nil.
func NewServices(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, metrics *observability.Metrics) *Services {
	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	records := recordrepo.New(pool, metrics)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	return &Services{
		Auth:     authsvc.NewService(logger, users, jwtManager, cfg.Auth),
		Projects: projectsvc.NewService(logger, projects, records, txm, fixture.NewGenerator(), metrics, auth.GenerateAPIKey),
		Records:  recordsvc.NewService(logger, projects, records),
	}
}
