package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session pairs the bearer token with the cached user. The zero value means
// "no session".
type Session struct {
	Token string
	User  *User
}

func (s Session) Valid() bool {
	return s.Token != ""
}

// Username returns the cached username or "".
func (s Session) Username() string {
	if s.User == nil {
		return ""
	}
	return s.User.Username
}

// ExpiresAt reads the exp claim of a JWT token without verifying its
// signature. It is informational only; the server decides whether a token is
// still good. ok is false for opaque tokens or tokens without exp.
func (s Session) ExpiresAt() (exp time.Time, ok bool) {
	if s.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	nd, err := claims.GetExpirationTime()
	if err != nil || nd == nil {
		return time.Time{}, false
	}
	return nd.Time, true
}

// Expired reports whether the token carries an exp claim that is before now.
func (s Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && exp.Before(now)
}
