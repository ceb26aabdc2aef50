package routes

import (
	"path"
	"strings"
)

type Action string

const (
	Allow    Action = "allow"
	Redirect Action = "redirect"
)

// Decision is what the guard wants done with a request. Location is set
// only for Redirect.
type Decision struct {
	Action   Action
	Location string
}

func (d Decision) Allowed() bool { return d.Action == Allow }

// RedirectTo builds a redirect decision.
func RedirectTo(location string) Decision {
	return Decision{Action: Redirect, Location: location}
}

// Guard decides, from the path and session presence alone, whether a
// navigation proceeds. It holds no mutable state and is safe for concurrent use.
type Guard struct {
	Table     Table
	Excluded  []string
	LoginPath string
	HomePath  string
}

// NewGuard returns the guard used by the site.
func NewGuard() *Guard {
	return &Guard{
		Table:     DefaultTable,
		Excluded:  []string{"/api", "/static", "/favicon.ico"},
		LoginPath: "/login",
		HomePath:  "/dashboard",
	}
}

// IsExcluded reports whether p bypasses the guard entirely.
func (g *Guard) IsExcluded(p string) bool {
	for _, prefix := range g.Excluded {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Classify exposes the table classification of p.
func (g *Guard) Classify(p string) Classification {
	return g.Table.Classify(p)
}

// Decide returns the decision for a normalized path.
func (g *Guard) Decide(p string, hasSession bool) Decision {
	if g.IsExcluded(p) {
		return Decision{Action: Allow}
	}

	switch g.Table.Classify(p) {
	case AuthOnly:
		if !hasSession {
			return RedirectTo(g.LoginPath)
		}
	case GuestOnly:
		if hasSession {
			return RedirectTo(g.HomePath)
		}
	}
	return Decision{Action: Allow}
}

// Normalize turns a raw request path into the form Decide expects:
// rooted, cleaned, without a trailing slash.
func Normalize(raw string) string {
	if raw == "" {
		return "/"
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return path.Clean(raw)
}
