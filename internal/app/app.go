package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/cricket-live/internal/config"
	"github.com/riskibarqy/cricket-live/internal/domain/innings"
	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/domain/player"
	"github.com/riskibarqy/cricket-live/internal/domain/team"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-live/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-live/internal/livehub"
	idgen "github.com/riskibarqy/cricket-live/internal/platform/id"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

// App bundles the HTTP server with the pieces that need explicit shutdown.
type App struct {
	Server   *http.Server
	Hub      *livehub.Hub
	Sessions *usecase.SessionService

	db *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger, hubLogger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if hubLogger == nil {
		hubLogger = logging.NewNop()
	}

	var (
		matchRepo  match.Repository
		teamRepo   team.Repository
		playerRepo player.Repository
		store      innings.Store
		db         *sqlx.DB
	)

	if cfg.UseMemoryStore {
		logger.Info("storage backend", "kind", "memory")
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		store = memory.NewInningsStore()
	} else {
		var err error
		db, err = otelsqlx.Open("postgres",
			prepareDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}

		logger.Info("storage backend", "kind", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
		matchRepo = postgres.NewMatchRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		store = postgres.NewInningsStore(db)
	}

	idGen := idgen.NewRandomGenerator()
	matchSvc := usecase.NewMatchService(matchRepo, teamRepo, playerRepo, idGen)
	sessionSvc := usecase.NewSessionService(matchRepo, playerRepo, store, idGen)

	hub := livehub.New(sessionSvc, hubLogger, cfg.LiveQueueSize)
	sessionSvc.SetBroadcaster(hub)

	handler := httpapi.NewHandler(matchSvc, sessionSvc, hub, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:   server,
		Hub:      hub,
		Sessions: sessionSvc,
		db:       db,
	}, nil
}

// Close releases everything except the HTTP server, which the caller shuts
// down first so no request arrives after the hub is gone.
func (a *App) Close() error {
	a.Hub.Close()
	if a.db != nil {
		return a.db.Close()
	}

	return nil
}
