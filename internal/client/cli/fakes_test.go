package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/logging"
)

// ------------ helpers ------------

// stubInputs replaces the interactive prompts with scripted answers. Text
// prompts consume texts in order, password prompts consume passwords.
func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirmation
	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirmation = origST, origGP, origGC
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return []byte{}, nil
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := getConfirmation
	t.Cleanup(func() { getConfirmation = orig })
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return answer, nil }
}

func newTestApp(auth *fakeAuth, movies *fakeMovies) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		logger:       logging.Discard(),
		authService:  auth,
		movieService: movies,
		reader:       bufio.NewReader(bytes.NewReader(nil)),
		out:          &out,
		now:          time.Now,
	}, &out
}

// ------------ fake services ------------

type fakeAuth struct {
	session models.Session

	regArg models.Registration
	regRet *models.User
	regErr error

	loginArg models.Credentials
	loginErr error

	logoutCalls int
	logoutErr   error

	updateArg   models.ProfileUpdate
	updateCalls int
	updateErr   error

	deleteCalls int
	deleteErr   error
}

func (f *fakeAuth) Register(_ context.Context, reg models.Registration) (*models.User, error) {
	f.regArg = reg
	if f.regErr != nil {
		return nil, f.regErr
	}
	if f.regRet != nil {
		return f.regRet, nil
	}
	return &models.User{Username: reg.Username}, nil
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (*models.User, error) {
	f.loginArg = creds
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u := &models.User{Username: creds.Username}
	f.session = models.Session{Token: "tok", User: u}
	return u, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.session = models.Session{}
	return nil
}

func (f *fakeAuth) CurrentUser(context.Context) models.Session { return f.session }

func (f *fakeAuth) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.updateCalls++
	f.updateArg = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.session.User, nil
}

func (f *fakeAuth) DeleteAccount(context.Context) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.session = models.Session{}
	return nil
}

type fakeMovies struct {
	movies    []models.Movie
	listErr   error
	movie     *models.Movie
	getErr    error
	getArg    string
	director  *models.Director
	genre     *models.Genre
	favorites []string

	addArg    string
	removeArg string
	favErr    error
}

func (f *fakeMovies) List(context.Context) ([]models.Movie, error) {
	return f.movies, f.listErr
}

func (f *fakeMovies) Get(_ context.Context, title string) (*models.Movie, error) {
	f.getArg = title
	return f.movie, f.getErr
}

func (f *fakeMovies) Director(_ context.Context, name string) (*models.Director, error) {
	f.getArg = name
	return f.director, nil
}

func (f *fakeMovies) Genre(_ context.Context, name string) (*models.Genre, error) {
	f.getArg = name
	return f.genre, nil
}

func (f *fakeMovies) Favorites(context.Context) ([]models.Movie, error) {
	return models.FilterFavorites(f.movies, &models.User{FavoriteMovies: f.favorites}), f.listErr
}

func (f *fakeMovies) IsFavorite(_ context.Context, id string) bool {
	for _, fav := range f.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

func (f *fakeMovies) AddFavorite(_ context.Context, id string) (*models.User, error) {
	f.addArg = id
	if f.favErr != nil {
		return nil, f.favErr
	}
	f.favorites = append(f.favorites, id)
	return &models.User{FavoriteMovies: f.favorites}, nil
}

func (f *fakeMovies) RemoveFavorite(_ context.Context, id string) (*models.User, error) {
	f.removeArg = id
	if f.favErr != nil {
		return nil, f.favErr
	}
	return &models.User{}, nil
}
