package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/myflix/myflix-client/internal/client/models"
)

// Movies prints the whole catalog; favorites are starred.
func (a *App) Movies(ctx context.Context) error {
	movies, err := a.movieService.List(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		a.println("The catalog is empty.")
		return nil
	}

	a.printMovies(movies, a.authService.CurrentUser(ctx).User)
	return nil
}

// Movie prints one movie looked up by title.
func (a *App) Movie(ctx context.Context, title string) error {
	m, err := a.movieService.Get(ctx, title)
	if err != nil {
		return err
	}

	a.printf("%s\n\n", m.Title)
	if m.Description != "" {
		a.printf("%s\n\n", m.Description)
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", m.ID)
	fmt.Fprintf(w, "Genre:\t%s\n", valueOr(m.Genre.Name, "-"))
	fmt.Fprintf(w, "Director:\t%s\n", valueOr(m.Director.Name, "-"))
	if m.ImagePath != "" {
		fmt.Fprintf(w, "Image:\t%s\n", m.ImagePath)
	}
	if m.Featured {
		fmt.Fprintf(w, "Featured:\tyes\n")
	}
	fmt.Fprintf(w, "Favorite:\t%s\n", yesNo(a.movieService.IsFavorite(ctx, m.ID)))
	return w.Flush()
}

// Director prints a director looked up by name.
func (a *App) Director(ctx context.Context, name string) error {
	d, err := a.movieService.Director(ctx, name)
	if err != nil {
		return err
	}

	a.printf("%s\n\n", d.Name)
	if d.Bio != "" {
		a.printf("%s\n\n", d.Bio)
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if d.Birth != nil && !d.Birth.IsZero() {
		fmt.Fprintf(w, "Born:\t%s\n", d.Birth)
	}
	if d.Death != nil && !d.Death.IsZero() {
		fmt.Fprintf(w, "Died:\t%s\n", d.Death)
	}
	return w.Flush()
}

// Genre prints a genre looked up by name.
func (a *App) Genre(ctx context.Context, name string) error {
	g, err := a.movieService.Genre(ctx, name)
	if err != nil {
		return err
	}

	a.printf("%s\n", g.Name)
	if g.Description != "" {
		a.printf("\n%s\n", g.Description)
	}
	return nil
}

// Favorites prints the catalog entries marked as favorite.
func (a *App) Favorites(ctx context.Context) error {
	movies, err := a.movieService.Favorites(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		a.println("You have no favorite movies yet.")
		return nil
	}

	a.printMovies(movies, nil)
	return nil
}

func (a *App) AddFavorite(ctx context.Context, movieID string) error {
	if a.movieService.IsFavorite(ctx, movieID) {
		a.println("Movie is already in your favorites.")
		return nil
	}
	if _, err := a.movieService.AddFavorite(ctx, movieID); err != nil {
		return err
	}
	a.println("Movie added to favorites.")
	return nil
}

func (a *App) RemoveFavorite(ctx context.Context, movieID string) error {
	if !a.movieService.IsFavorite(ctx, movieID) {
		a.println("Movie is not in your favorites.")
		return nil
	}
	if _, err := a.movieService.RemoveFavorite(ctx, movieID); err != nil {
		return err
	}
	a.println("Movie removed from favorites.")
	return nil
}

// printMovies renders a table. When user is non-nil a FAV column marks the
// user's favorites.
func (a *App) printMovies(movies []models.Movie, user *models.User) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	writeMovieTable(w, movies, user)
	_ = w.Flush()
}

func writeMovieTable(w io.Writer, movies []models.Movie, user *models.User) {
	if user != nil {
		fmt.Fprintln(w, "FAV\tID\tTITLE\tGENRE\tDIRECTOR")
	} else {
		fmt.Fprintln(w, "ID\tTITLE\tGENRE\tDIRECTOR")
	}
	for _, m := range movies {
		if user != nil {
			mark := ""
			if user.HasFavorite(m.ID) {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t", mark)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Title, valueOr(m.Genre.Name, "-"), valueOr(m.Director.Name, "-"))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
