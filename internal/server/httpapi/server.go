package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/okarpov/taskdeck/internal/logging"
	"github.com/okarpov/taskdeck/internal/server/models"
	"github.com/okarpov/taskdeck/internal/server/services"
)

// UserService is the authentication surface the handlers need.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// TaskService is the task CRUD surface the handlers need.
type TaskService interface {
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, userID, title, description string) (*models.Task, error)
	Update(ctx context.Context, userID, taskID, title, description, status string) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// Server hosts the REST API.
type Server struct {
	addr      string
	logger    logging.Logger
	users     UserService
	tasks     TaskService
	jwtSecret []byte
}

func NewServer(addr string, logger logging.Logger, users UserService, tasks TaskService, jwtSecret string) *Server {
	return &Server{
		addr:      addr,
		logger:    logger,
		users:     users,
		tasks:     tasks,
		jwtSecret: []byte(jwtSecret),
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
