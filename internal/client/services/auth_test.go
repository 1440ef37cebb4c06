package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myflix/myflix-client/internal/client/client"
	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/logging"
)

func TestRegister_PassesThroughAndDoesNotLogIn(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{RegisterRet: &models.User{ID: "u1", Username: "alice", Password: "hashed"}}
	svc := NewAuthService(fc, store, logging.Discard())
	ctx := context.Background()

	reg := models.Registration{Username: "alice", Password: "pw", Email: "a@example.org", Birthday: models.NewDate(1990, time.April, 12)}
	u, err := svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.Password)
	assert.Equal(t, reg, fc.LastRegister)

	assert.False(t, svc.CurrentUser(ctx).Valid())
}

func TestRegister_ErrorKeepsMessage(t *testing.T) {
	fc := &fakeClient{RegisterErr: &client.APIError{Kind: client.KindValidation, Message: "Username is required"}}
	svc := NewAuthService(fc, setupStore(t), logging.Discard())

	_, err := svc.Register(context.Background(), models.Registration{})
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Equal(t, "Username is required", client.Message(err))
}

func TestLogin_SavesSession(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{LoginRet: &models.LoginResult{
		Token: "tok-1",
		User:  models.User{ID: "u1", Username: "alice", Password: "hash", FavoriteMovies: []string{"m1"}},
	}}
	svc := NewAuthService(fc, store, logging.Discard())
	ctx := context.Background()

	u, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	sess := svc.CurrentUser(ctx)
	assert.Equal(t, "tok-1", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, []string{"m1"}, sess.User.FavoriteMovies)
	assert.Empty(t, sess.User.Password)
}

func TestLogin_FailureKeepsPreviousSession(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "old", &models.User{Username: "bob"}))

	fc := &fakeClient{LoginErr: &client.APIError{Kind: client.KindServer, Message: client.GenericErrorMessage}}
	svc := NewAuthService(fc, store, logging.Discard())

	_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "bad"})
	require.ErrorIs(t, err, client.ErrServer)

	sess := svc.CurrentUser(ctx)
	assert.Equal(t, "old", sess.Token)
	assert.Equal(t, "bob", sess.Username())
}

func TestLogin_MissingToken(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{LoginRet: &models.LoginResult{User: models.User{Username: "alice"}}}
	svc := NewAuthService(fc, store, logging.Discard())

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, client.ErrServer)
	assert.False(t, svc.CurrentUser(context.Background()).Valid())
}

func TestLogout(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.User{Username: "alice"}))

	svc := NewAuthService(&fakeClient{}, store, logging.Discard())
	require.NoError(t, svc.Logout(ctx))

	assert.Equal(t, models.Session{}, svc.CurrentUser(ctx))
	// idempotent
	require.NoError(t, svc.Logout(ctx))
}

func TestUpdateProfile_ReplacesCachedUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.User{Username: "alice", Email: "old@example.org"}))

	fc := &fakeClient{UpdateRet: &models.User{Username: "alice", Email: "new@example.org", FavoriteMovies: []string{"m2"}}}
	svc := NewAuthService(fc, store, logging.Discard())

	u, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Email: "new@example.org"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.org", u.Email)
	assert.Equal(t, "new@example.org", fc.LastUpdate.Email)

	sess := svc.CurrentUser(ctx)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "new@example.org", sess.User.Email)
	assert.Equal(t, []string{"m2"}, sess.User.FavoriteMovies)
}

func TestUpdateProfile_EmptyAnswerKeepsCache(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.User{Username: "alice", Email: "old@example.org"}))

	svc := NewAuthService(&fakeClient{UpdateRet: &models.User{}}, store, logging.Discard())

	u, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Email: "new@example.org"})
	require.NoError(t, err)
	assert.Equal(t, "old@example.org", u.Email)
}

func TestUpdateProfile_ErrorKeepsCache(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.User{Username: "alice", Email: "old@example.org"}))

	fc := &fakeClient{UpdateErr: &client.APIError{Kind: client.KindValidation, Message: "Email does not appear to be valid"}}
	svc := NewAuthService(fc, store, logging.Discard())

	_, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Email: "nope"})
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Equal(t, "old@example.org", svc.CurrentUser(ctx).User.Email)
}

func TestDeleteAccount(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.User{ID: "u1", Username: "alice"}))

	fc := &fakeClient{}
	svc := NewAuthService(fc, store, logging.Discard())

	require.NoError(t, svc.DeleteAccount(ctx))
	assert.Equal(t, 1, fc.DeleteCalls)
	assert.False(t, svc.CurrentUser(ctx).Valid())
}

func TestDeleteAccount_FailureKeepsSession(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.User{ID: "u1", Username: "alice"}))

	fc := &fakeClient{DeleteErr: &client.APIError{Kind: client.KindTransport, Message: "connection refused"}}
	svc := NewAuthService(fc, store, logging.Discard())

	require.ErrorIs(t, svc.DeleteAccount(ctx), client.ErrUnavailable)
	assert.True(t, svc.CurrentUser(ctx).Valid())
}
