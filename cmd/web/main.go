package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Gym-Brothers/Server/internal/envstruct"
	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/inbody"
	"github.com/Gym-Brothers/Server/internal/logging"
	"github.com/Gym-Brothers/Server/internal/nutrition"
	"github.com/Gym-Brothers/Server/internal/sqlite"
	"github.com/Gym-Brothers/Server/internal/training"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	bodyService    *inbody.Service
	nutritionSvc   *nutrition.Service
	trainingSvc    *training.Service
	corsOrigins    []string
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"GYMBRO_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"GYMBRO_SQLITE_URL" envDefault:"./gymbro.sqlite3"`
	// CORSOrigins is a comma-separated list of origins allowed to call the API from a browser.
	CORSOrigins string `env:"GYMBRO_CORS_ORIGINS" envDefault:"http://localhost:3000"`
	// SessionLifetimeHours is how long a login session stays valid.
	SessionLifetimeHours int `env:"GYMBRO_SESSION_LIFETIME_HOURS" envDefault:"12"`
	// SecureCookies marks the session cookie Secure. Disable only for local plain-HTTP setups.
	SecureCookies bool `env:"GYMBRO_SECURE_COOKIES" envDefault:"true"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer db.Close()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db, cfg)

	bodyService := inbody.NewService(db, logger)
	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		bodyService:    bodyService,
		nutritionSvc:   nutrition.NewService(db, bodyService, logger),
		trainingSvc:    training.NewService(db, bodyService, logger),
		corsOrigins:    splitOrigins(cfg.CORSOrigins),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database, cfg config) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = time.Duration(cfg.SessionLifetimeHours) * time.Hour
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = cfg.SecureCookies
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
