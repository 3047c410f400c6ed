// Package server initializes and runs the API server: it opens the database,
// applies migrations, wires services, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okarpov/taskdeck/internal/logging"
	"github.com/okarpov/taskdeck/internal/server/config"
	"github.com/okarpov/taskdeck/internal/server/httpapi"
	"github.com/okarpov/taskdeck/internal/server/repositories/repomanager"
	"github.com/okarpov/taskdeck/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	taskService *services.TaskService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout)

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	ts := services.NewTaskService(db, rm)

	return &App{config: cfg, logger: logger, userService: us, taskService: ts}, nil
}

func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.taskService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "err", err.Error())
		return err
	}

	app.logger.Info(ctx, "shutdown complete")
	return nil
}
