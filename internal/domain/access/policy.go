package access

import "menyqr-app/internal/domain/plans"

// IsEntitled reports whether tier may see the full content of f.
func IsEntitled(tier plans.Tier, f Feature) bool {
	min, gated := MinimumTier(f)
	if !gated {
		return true
	}
	return tier.AtLeast(min)
}

// RenderGate picks full when tier is entitled to f, upsell otherwise.
func RenderGate[V any](tier plans.Tier, f Feature, full, upsell V) V {
	if IsEntitled(tier, f) {
		return full
	}
	return upsell
}

// RenderGateFunc is RenderGate for full views that are costly to build:
// full is only invoked for entitled tiers.
func RenderGateFunc[V any](tier plans.Tier, f Feature, full func() (V, error), upsell V) (V, error) {
	if !IsEntitled(tier, f) {
		return upsell, nil
	}
	return full()
}
