// Package refreshtokens contains the persistence layer for rotating
// refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/okarpov/taskdeck/internal/server/models"
)

// Repository abstracts storage of refresh tokens.
type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
