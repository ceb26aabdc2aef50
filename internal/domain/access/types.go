package access

import "menyqr-app/internal/domain/plans"

// Feature identifies a tier-gated piece of the product.
type Feature string

const (
	FeatureBasicBranding     Feature = "basic-branding"
	FeatureDetailedAnalytics Feature = "detailed-analytics"
	FeatureMonthlyReports    Feature = "monthly-reports"
	FeatureWhiteLabel        Feature = "white-label"
	FeatureTeamAccess        Feature = "team-access"
)

// Minimum tier per gated feature (single source of truth).
// Anything not listed here is open to every tier.
var rules = map[Feature]plans.Tier{
	FeatureBasicBranding:     plans.Bronze,
	FeatureDetailedAnalytics: plans.Silver,
	FeatureMonthlyReports:    plans.Silver,
	FeatureWhiteLabel:        plans.Gold,
	FeatureTeamAccess:        plans.Gold,
}

// MinimumTier returns the rule for f; ok is false for ungated features.
func MinimumTier(f Feature) (plans.Tier, bool) {
	t, ok := rules[f]
	return t, ok
}
