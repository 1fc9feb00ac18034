// Package server initializes and runs the application: it opens the database,
// applies schema migrations, wires the services and starts the HTTP server,
// handling graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/citykeeper/internal/logging"
	"github.com/dmitrijs2005/citykeeper/internal/server/auth"
	"github.com/dmitrijs2005/citykeeper/internal/server/config"
	"github.com/dmitrijs2005/citykeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/citykeeper/internal/server/rest"
	"github.com/dmitrijs2005/citykeeper/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	server *rest.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.New(cfg.Env)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	tokens := auth.NewTokenService(cfg)

	accounts := services.NewAccountService(db, m, tokens, cfg)
	cities := services.NewCityService(db, m)

	srv := rest.NewServer(cfg.HTTPServer, logger, accounts, cities, tokens)

	return &App{config: cfg, logger: logger, db: db, repos: m, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}

	return nil
}
