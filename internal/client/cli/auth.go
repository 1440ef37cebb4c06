package cli

import (
	"context"
	"strings"

	"github.com/myflix/myflix-client/internal/client/models"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Register prompts for username, password, email and birthday and creates
// the account. It does not log in; the server decides what is valid, so
// nothing but the birthday format is checked here.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	birthday, err := a.readDate("Enter birthday (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	reg := models.Registration{
		Username: username,
		Password: string(password),
		Email:    email,
	}
	if birthday != nil {
		reg.Birthday = *birthday
	}

	u, err := a.authService.Register(ctx, reg)
	if err != nil {
		return err
	}

	a.printf("Registration successful. You can now log in as %s.\n", valueOr(u.Username, username))
	return nil
}

// Login prompts for credentials and stores the session on success. A failed
// login leaves the previous session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	u, err := a.authService.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if err != nil {
		a.logger.Info(ctx, "login unsuccessful", "username", username)
		return err
	}

	a.printf("Welcome, %s!\n", u.Username)
	return nil
}

// Logout drops the stored session. No server call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the cached user.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.authService.CurrentUser(ctx)
	if !sess.Valid() {
		a.println("Not logged in.")
		return nil
	}
	if sess.User == nil {
		a.println("Logged in (no cached profile).")
		return nil
	}

	u := sess.User
	a.printf("Username:  %s\n", u.Username)
	a.printf("Email:     %s\n", valueOr(u.Email, "-"))
	a.printf("Birthday:  %s\n", valueOr(u.Birthday.String(), "-"))
	a.printf("Favorites: %d\n", len(u.FavoriteMovies))
	if exp, ok := sess.ExpiresAt(); ok {
		a.printf("Session:   valid until %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// readDate prompts for a date. An empty answer yields nil.
func (a *App) readDate(prompt string) (*models.Date, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
