package routes

import (
	"strings"

	"menyqr-app/internal/domain/access"
)

type Classification string

const (
	Public    Classification = "public"
	AuthOnly  Classification = "auth_only"
	GuestOnly Classification = "guest_only"
)

type MatchMode int

const (
	MatchPrefix MatchMode = iota
	MatchExact
)

// Route is one row of the route table. Rows with a NavLabel also appear in
// the dashboard navigation; Feature (optional) is the entitlement behind the page.
type Route struct {
	Path     string
	Match    MatchMode
	Class    Classification
	Feature  access.Feature
	NavLabel string
}

func (r Route) matches(path string) bool {
	if r.Match == MatchExact {
		return path == r.Path
	}
	return strings.HasPrefix(path, r.Path)
}

type Table []Route

// DefaultTable is shared by the guard and the dashboard navigation.
var DefaultTable = Table{
	{Path: "/dashboard", Match: MatchPrefix, Class: AuthOnly, NavLabel: "Oversikt"},
	{Path: "/dashboard/menus", Match: MatchPrefix, Class: AuthOnly, NavLabel: "Menyer"},
	{Path: "/dashboard/analytics", Match: MatchPrefix, Class: AuthOnly, Feature: access.FeatureDetailedAnalytics, NavLabel: "Analyse"},
	{Path: "/dashboard/subscription", Match: MatchPrefix, Class: AuthOnly, NavLabel: "Abonnement"},
	{Path: "/dashboard/settings", Match: MatchPrefix, Class: AuthOnly, NavLabel: "Innstillinger"},
	{Path: "/login", Match: MatchExact, Class: GuestOnly},
	{Path: "/register", Match: MatchExact, Class: GuestOnly},
}

// Classify returns the classification of path. Exact guest rules win over
// prefix rules; a path no rule matches is Public.
func (t Table) Classify(path string) Classification {
	for _, r := range t {
		if r.Class == GuestOnly && r.matches(path) {
			return GuestOnly
		}
	}
	for _, r := range t {
		if r.Class == AuthOnly && r.matches(path) {
			return AuthOnly
		}
	}
	return Public
}
