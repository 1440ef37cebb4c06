package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/client/repositories/session"
	"github.com/myflix/myflix-client/internal/logging"
)

// ---- helpers ----

func setupStore(t *testing.T) *session.SQLiteStore {
	t.Helper()
	db, err := session.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewSQLiteStore(db, logging.Discard())
}

// ---- fake client ----

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	RegisterRet *models.User
	RegisterErr error

	LoginRet *models.LoginResult
	LoginErr error

	MoviesRet []models.Movie
	MoviesErr error
	MovieRet  *models.Movie
	MovieErr  error
	DirRet    *models.Director
	DirErr    error
	GenreRet  *models.Genre
	GenreErr  error

	FavoritesRet []string
	FavoritesErr error
	FavRet       *models.User
	FavErr       error

	UpdateRet *models.User
	UpdateErr error
	DeleteErr error

	// for argument checks
	LastRegister models.Registration
	LastCreds    models.Credentials
	LastTitle    string
	LastName     string
	LastFavID    string
	LastUpdate   models.ProfileUpdate
	ListCalls    int
	DeleteCalls  int
}

func (f *fakeClient) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	f.LastRegister = reg
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	f.LastCreds = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListMovies(ctx context.Context) ([]models.Movie, error) {
	f.ListCalls++
	return f.MoviesRet, f.MoviesErr
}

func (f *fakeClient) GetMovie(ctx context.Context, title string) (*models.Movie, error) {
	f.LastTitle = title
	return f.MovieRet, f.MovieErr
}

func (f *fakeClient) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	f.LastName = name
	return f.DirRet, f.DirErr
}

func (f *fakeClient) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	f.LastName = name
	return f.GenreRet, f.GenreErr
}

func (f *fakeClient) GetFavorites(ctx context.Context) ([]string, error) {
	return f.FavoritesRet, f.FavoritesErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, movieID string) (*models.User, error) {
	f.LastFavID = movieID
	return f.FavRet, f.FavErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, movieID string) (*models.User, error) {
	f.LastFavID = movieID
	return f.FavRet, f.FavErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = upd
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context) error {
	f.DeleteCalls++
	return f.DeleteErr
}
