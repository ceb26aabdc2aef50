package identity

import (
	"net/http"
	"strings"
)

// SessionChecker answers the only question the route guard asks.
type SessionChecker interface {
	HasSession(r *http.Request) bool
}

// PresenceChecker treats any non-empty session cookie as a session.
// It never validates the value.
type PresenceChecker struct {
	Cookie string
}

func (p PresenceChecker) HasSession(r *http.Request) bool {
	c, err := r.Cookie(p.Cookie)
	return err == nil && strings.TrimSpace(c.Value) != ""
}

// TokenChecker requires the cookie to hold a valid session token.
type TokenChecker struct {
	Cookie string
	Tokens *Tokens
}

func (t TokenChecker) HasSession(r *http.Request) bool {
	_, ok := t.UserID(r)
	return ok
}

func (t TokenChecker) UserID(r *http.Request) (string, bool) {
	c, err := r.Cookie(t.Cookie)
	if err != nil {
		return "", false
	}
	id, err := t.Tokens.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id, true
}
