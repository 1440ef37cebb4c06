package services

import (
	"context"
	"fmt"

	"github.com/myflix/myflix-client/internal/client/client"
	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/client/repositories/session"
)

// MovieService exposes the catalog and the user's favorites.
type MovieService interface {
	List(ctx context.Context) ([]models.Movie, error)
	Get(ctx context.Context, title string) (*models.Movie, error)
	Director(ctx context.Context, name string) (*models.Director, error)
	Genre(ctx context.Context, name string) (*models.Genre, error)

	// Favorites lists the catalog entries whose ids are in the cached
	// user's favorites, in catalog order.
	Favorites(ctx context.Context) ([]models.Movie, error)
	IsFavorite(ctx context.Context, movieID string) bool
	AddFavorite(ctx context.Context, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, movieID string) (*models.User, error)
}

type movieService struct {
	client client.Client
	store  session.Store
}

func NewMovieService(c client.Client, store session.Store) MovieService {
	return &movieService{client: c, store: store}
}

func (m *movieService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := m.client.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (m *movieService) Get(ctx context.Context, title string) (*models.Movie, error) {
	movie, err := m.client.GetMovie(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

func (m *movieService) Director(ctx context.Context, name string) (*models.Director, error) {
	d, err := m.client.GetDirector(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get director: %w", err)
	}
	return d, nil
}

func (m *movieService) Genre(ctx context.Context, name string) (*models.Genre, error) {
	g, err := m.client.GetGenre(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return g, nil
}

func (m *movieService) Favorites(ctx context.Context) ([]models.Movie, error) {
	ids, err := m.client.GetFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	if len(ids) == 0 {
		return []models.Movie{}, nil
	}

	movies, err := m.client.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return models.FilterFavorites(movies, &models.User{FavoriteMovies: ids}), nil
}

func (m *movieService) IsFavorite(ctx context.Context, movieID string) bool {
	u := m.store.Load(ctx).User
	return u != nil && u.HasFavorite(movieID)
}

func (m *movieService) AddFavorite(ctx context.Context, movieID string) (*models.User, error) {
	u, err := m.client.AddFavorite(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return u, nil
}

func (m *movieService) RemoveFavorite(ctx context.Context, movieID string) (*models.User, error) {
	u, err := m.client.RemoveFavorite(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	return u, nil
}
