package access

import (
	"sort"

	"menyqr-app/internal/domain/plans"
)

// EntitledFeatures lists the gated features tier has unlocked, sorted by name.
func EntitledFeatures(tier plans.Tier) []Feature {
	out := []Feature{}
	for f := range rules {
		if IsEntitled(tier, f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GatedFeatures lists every feature that has a rule, sorted by name.
func GatedFeatures() []Feature {
	out := make([]Feature, 0, len(rules))
	for f := range rules {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
