package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/dbx"
	"github.com/myflix/myflix-client/internal/logging"
)

// SQLiteStore is the Store backed by the "session" table.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger

	// mu serializes writers; the read-modify-write of the favorites list
	// must not interleave.
	mu sync.Mutex
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger}
}

// Save replaces any existing session. The token is stored as given.
func (s *SQLiteStore) Save(ctx context.Context, token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw []byte
	if user != nil {
		b, err := json.Marshal(user.Snapshot())
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		raw = b
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearAll(ctx, tx); err != nil {
			return err
		}
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		if raw == nil {
			return nil
		}
		return set(ctx, tx, keyUser, raw)
	})
}

// Load returns the stored session, or the zero Session when nothing usable
// is stored.
func (s *SQLiteStore) Load(ctx context.Context) models.Session {
	var sess models.Session

	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		s.logger.Warn(ctx, "session token unreadable", "error", err)
		return models.Session{}
	}
	sess.Token = string(token)

	raw, err := get(ctx, s.db, keyUser)
	if err != nil {
		s.logger.Warn(ctx, "session user unreadable", "error", err)
		return sess
	}
	if raw == nil {
		return sess
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn(ctx, "cached user is corrupted, ignoring it", "error", err)
		return sess
	}
	sess.User = &u
	return sess
}

func (s *SQLiteStore) Token(ctx context.Context) string {
	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		s.logger.Warn(ctx, "session token unreadable", "error", err)
		return ""
	}
	return string(token)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clearAll(ctx, s.db)
}

// AddFavorite appends movieID to the cached user and persists the snapshot.
func (s *SQLiteStore) AddFavorite(ctx context.Context, movieID string) (*models.User, error) {
	return s.mutateUser(ctx, func(u *models.User) {
		u.AddFavorite(movieID)
	})
}

// RemoveFavorite removes the first occurrence of movieID from the cached
// user. Removing an absent id is not an error.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, movieID string) (*models.User, error) {
	return s.mutateUser(ctx, func(u *models.User) {
		u.RemoveFavorite(movieID)
	})
}

// ReplaceUser swaps the cached snapshot and keeps the token.
func (s *SQLiteStore) ReplaceUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("replace user: nil user")
	}

	raw, err := json.Marshal(user.Snapshot())
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return set(ctx, s.db, keyUser, raw)
}

func (s *SQLiteStore) mutateUser(ctx context.Context, fn func(u *models.User)) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		raw, err := get(ctx, tx, keyUser)
		if err != nil {
			return err
		}
		if raw == nil {
			return ErrNoSession
		}

		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return fmt.Errorf("decode cached user: %w", err)
		}

		fn(&u)

		updated, err := json.Marshal(u.Snapshot())
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		if err := set(ctx, tx, keyUser, updated); err != nil {
			return err
		}
		out = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
