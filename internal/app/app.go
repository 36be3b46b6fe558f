package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/racedaybr/pitvote/internal/config"
	"github.com/racedaybr/pitvote/internal/domain/pilot"
	cacherepo "github.com/racedaybr/pitvote/internal/infrastructure/repository/cache"
	"github.com/racedaybr/pitvote/internal/infrastructure/repository/postgres"
	"github.com/racedaybr/pitvote/internal/infrastructure/token"
	"github.com/racedaybr/pitvote/internal/interfaces/httpapi"
	"github.com/racedaybr/pitvote/internal/platform/cache"
	"github.com/racedaybr/pitvote/internal/platform/logging"
	"github.com/racedaybr/pitvote/internal/platform/password"
	"github.com/racedaybr/pitvote/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server

	closers []func() error
}

func NewApp(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := connectDB(ctx, cfg.DBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	var pilotRepo pilot.Repository = postgres.NewPilotRepository(db)
	if cfg.CacheEnabled {
		pilotRepo = cacherepo.NewPilotRepository(pilotRepo, cache.NewStore(cfg.CacheTTL))
	}
	raceRepo := postgres.NewRaceRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	tokens, err := token.NewManager(cfg.AuthJWTSecret, cfg.AuthTokenTTL)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build token manager: %w", err)
	}
	hasher := password.NewHasher(cfg.AuthBcryptCost)

	catalogSvc := usecase.NewCatalogService(pilotRepo, raceRepo)
	votingSvc := usecase.NewVotingService(pilotRepo, raceRepo, voteRepo, leaderboardRepo)
	authSvc := usecase.NewAuthService(adminRepo, hasher, tokens)

	handler := httpapi.NewHandler(catalogSvc, votingSvc, authSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:  server,
		closers: []func() error{db.Close},
	}, nil
}

// Close releases resources the app holds besides the HTTP server.
func (a *App) Close() error {
	var firstErr error
	for _, closer := range a.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
