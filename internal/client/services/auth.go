// Package services contains the application services the CLI talks to.
// They combine the API gateway with the local session store so that the
// presentation layer never touches either directly.
package services

import (
	"context"
	"fmt"

	"github.com/myflix/myflix-client/internal/client/client"
	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/client/repositories/session"
	"github.com/myflix/myflix-client/internal/logging"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create the account on the server. Does not log in.
//   - Login: authenticate and persist token and user locally.
//   - Logout: drop the local session. No server call.
//   - CurrentUser: the locally cached session, possibly empty.
//   - UpdateProfile: update on the server, then refresh the cached user.
//   - DeleteAccount: delete on the server, then drop the local session.
type AuthService interface {
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) models.Session
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(c client.Client, store session.Store, logger logging.Logger) AuthService {
	return &authService{client: c, store: store, logger: logger}
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	u, err := a.client.Register(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return u.Snapshot(), nil
}

// Login stores the session only after the server accepted the credentials.
// A failed login leaves any previous session in place.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	res, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if res.Token == "" {
		a.logger.Error(ctx, "login response carried no token", "username", creds.Username)
		return nil, fmt.Errorf("login: %w", client.ErrServer)
	}

	user := res.User.Snapshot()
	if err := a.store.Save(ctx, res.Token, user); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	a.logger.Info(ctx, "logged in", "username", user.Username)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) models.Session {
	return a.store.Load(ctx)
}

// UpdateProfile caches the server's answer. An answer without a username
// (empty body) is not cached; the previous snapshot stays.
func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	u, err := a.client.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if u == nil || u.Username == "" {
		a.logger.Warn(ctx, "profile update returned no user record")
		return a.store.Load(ctx).User, nil
	}

	if err := a.store.ReplaceUser(ctx, u); err != nil {
		return nil, fmt.Errorf("cache user: %w", err)
	}
	return u.Snapshot(), nil
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	if err := a.client.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
