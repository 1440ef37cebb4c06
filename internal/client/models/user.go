// Package models holds the client-side records exchanged with the myFlix API
// and cached in the local session.
package models

import "slices"

// User is the client's cached snapshot of the server-side user record.
// Password is write-only: it is sent on register/update and never cached.
type User struct {
	ID             string   `json:"_id,omitempty"`
	Username       string   `json:"Username"`
	Password       string   `json:"Password,omitempty"`
	Email          string   `json:"Email"`
	Birthday       Date     `json:"Birthday"`
	FavoriteMovies []string `json:"FavoriteMovies"`
}

// Snapshot returns a copy safe to cache: the password is dropped and the
// favorites slice is never nil.
func (u User) Snapshot() *User {
	u.Password = ""
	u.FavoriteMovies = slices.Clone(u.FavoriteMovies)
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []string{}
	}
	return &u
}

func (u *User) HasFavorite(movieID string) bool {
	return slices.Contains(u.FavoriteMovies, movieID)
}

// AddFavorite appends movieID. Duplicates are not filtered; the server owns
// set semantics.
func (u *User) AddFavorite(movieID string) {
	u.FavoriteMovies = append(u.FavoriteMovies, movieID)
}

// RemoveFavorite deletes the first occurrence of movieID and reports whether
// anything was removed.
func (u *User) RemoveFavorite(movieID string) bool {
	i := slices.Index(u.FavoriteMovies, movieID)
	if i < 0 {
		return false
	}
	u.FavoriteMovies = slices.Delete(u.FavoriteMovies, i, i+1)
	return true
}

// Credentials is the POST /login body.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// Registration is the POST /users body.
type Registration struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Email    string `json:"Email"`
	Birthday Date   `json:"Birthday"`
}

// ProfileUpdate is the PUT /users/{username} body. Empty fields are omitted
// so the server leaves them unchanged.
type ProfileUpdate struct {
	Username string `json:"Username,omitempty"`
	Password string `json:"Password,omitempty"`
	Email    string `json:"Email,omitempty"`
	Birthday *Date  `json:"Birthday,omitempty"`
}

// LoginResult is the POST /login response.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
