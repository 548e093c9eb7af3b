package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/external/leagueapi"
	"github.com/riskibarqy/hockey-league/internal/config"
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	"github.com/riskibarqy/hockey-league/internal/display"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hockey-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/hockey-league/internal/interfaces/web"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/usecase"
	"github.com/valyala/fasthttp"
)

// NewWebServer builds the public site and admin panel. The site keeps no
// state of its own and reads everything through the league API.
func NewWebServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var transport leagueapi.Transport
	switch cfg.LeagueAPITransport {
	case config.TransportFastHTTP:
		// No Read/WriteTimeout: only the request context bounds a call.
		transport = leagueapi.NewFastHTTPTransport(&fasthttp.Client{
			Name:                cfg.ServiceName,
			MaxResponseBodySize: leagueapi.MaxResponseBodySize,
		})
	default:
		transport = leagueapi.NewHTTPTransport(nil)
	}

	client, err := leagueapi.NewClient(leagueapi.ClientConfig{
		BaseURL:   cfg.LeagueAPIURL,
		Transport: transport,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build league api client: %w", err)
	}

	handler, err := web.NewHandler(web.HandlerConfig{
		Display:      display.NewService(client, cfg.SiteTimezone, logger),
		Admin:        client,
		ProbeWorkers: cfg.ReadyProbeWorkers,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build web handler: %w", err)
	}

	csrfKey := []byte(cfg.WebCSRFKey)
	if len(csrfKey) == 0 {
		csrfKey = make([]byte, 32)
		if _, err := rand.Read(csrfKey); err != nil {
			return nil, fmt.Errorf("generate csrf key: %w", err)
		}
		logger.Warn("WEB_CSRF_KEY not set, admin forms expire on restart")
	}

	router := web.NewRouter(handler, web.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		CSRFKey:            csrfKey,
		SecureCookies:      cfg.WebSecureCookies,
		Logger:             logger,
	})

	return newHTTPServer(cfg, router)
}

type repositories struct {
	conferences conference.Repository
	teams       team.Repository
	matches     match.Repository
	regulations regulation.Repository
}

// NewAPIServer builds the league API over the configured storage. The
// returned cleanup closes the database, if one was opened.
func NewAPIServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Standings:   usecase.NewStandingsService(repos.conferences, repos.teams),
		Teams:       usecase.NewTeamService(repos.teams),
		Schedule:    usecase.NewScheduleService(repos.matches, repos.teams),
		Regulations: usecase.NewRegulationService(repos.regulations),
		Conferences: usecase.NewConferenceService(repos.conferences),
	}, logger)
	router := httpapi.NewRouter(handler, cfg.CORSAllowedOrigins, logger)

	server, err := newHTTPServer(cfg, router)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	return server, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.APIStorage != config.StoragePostgres {
		teams := memory.NewTeamRepository(memory.SeedTeams())
		logger.Info("league storage ready", "storage", config.StorageMemory)
		return repositories{
			conferences: memory.NewConferenceRepository(memory.SeedConferences()),
			teams:       teams,
			matches:     memory.NewMatchRepository(teams, memory.SeedMatches(nowUTC())),
			regulations: memory.NewRegulationRepository(memory.SeedRegulations()),
		}, func() error { return nil }, nil
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	if cfg.AppEnv != config.EnvProd {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	logger.Info("league storage ready", "storage", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL))
	return postgresRepositories(db), db.Close, nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		conferences: postgres.NewConferenceRepository(db),
		teams:       postgres.NewTeamRepository(db),
		matches:     postgres.NewMatchRepository(db),
		regulations: postgres.NewRegulationRepository(db),
	}
}

func newHTTPServer(cfg config.Config, handler http.Handler) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
