package session

import (
	"context"
	"errors"

	"github.com/myflix/myflix-client/internal/client/models"
)

// ErrNoSession is returned by mutations that need a cached user when none is
// stored.
var ErrNoSession = errors.New("no active session")

// Store is the single owner of the persisted session.
type Store interface {
	Save(ctx context.Context, token string, user *models.User) error
	Load(ctx context.Context) models.Session
	Token(ctx context.Context) string
	Clear(ctx context.Context) error
	AddFavorite(ctx context.Context, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, movieID string) (*models.User, error)
	ReplaceUser(ctx context.Context, user *models.User) error
}
