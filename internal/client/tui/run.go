package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/okarpov/taskdeck/internal/client/api"
	"github.com/okarpov/taskdeck/internal/client/config"
	"github.com/okarpov/taskdeck/internal/client/services"
	"github.com/okarpov/taskdeck/internal/client/store"
	"github.com/okarpov/taskdeck/internal/common"
	"github.com/okarpov/taskdeck/internal/logging"
)

// App wires the client together: the session store, the API client and
// the Bubble Tea program.
type App struct {
	config *config.Config
	logger logging.Logger
	model  Model
	db     io.Closer
}

// NewApp builds the client. A previously saved session is resumed when
// present, otherwise the auth form is shown first.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("stdout is not a terminal")
	}

	// Bubble Tea owns the terminal, logs go to a file next to the
	// session database.
	logFile, err := os.OpenFile(cfg.SessionDBPath+".log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(logFile)

	db, err := store.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	sessions := store.NewSQLiteRepository(db)
	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout)

	// Reachability check only; the UI reports per-request failures itself.
	if err := client.Ping(ctx); err != nil {
		logger.Warn(ctx, "server not reachable", "url", cfg.ServerBaseURL, "error", err)
	}

	auth := services.NewAuthService(client, sessions, logger)
	tasks := services.NewTaskService(client)

	resumed := true
	if err := auth.Resume(ctx); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			logger.Warn(ctx, "could not resume session", "error", err)
		}
		resumed = false
	}

	return &App{
		config: cfg,
		logger: logger,
		model:  NewModel(auth, tasks, resumed),
		db:     db,
	}, nil
}

// Run drives the program until the user quits.
func (a *App) Run() error {
	defer a.db.Close()

	p := tea.NewProgram(a.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
