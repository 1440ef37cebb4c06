package client

import (
	"context"

	"github.com/myflix/myflix-client/internal/client/models"
)

// Client is the single chokepoint to the myFlix API. Every method is
// fire-once: no retries, no de-duplication of concurrent calls.
type Client interface {
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)

	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, title string) (*models.Movie, error)
	GetDirector(ctx context.Context, name string) (*models.Director, error)
	GetGenre(ctx context.Context, name string) (*models.Genre, error)

	GetFavorites(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, movieID string) (*models.User, error)

	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context) error
}

// SessionStore is the part of the session store the client reads the token
// and cached user from, and mirrors favorite changes into.
type SessionStore interface {
	Load(ctx context.Context) models.Session
	Token(ctx context.Context) string
	AddFavorite(ctx context.Context, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, movieID string) (*models.User, error)
	ReplaceUser(ctx context.Context, user *models.User) error
}
