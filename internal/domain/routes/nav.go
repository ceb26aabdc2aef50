package routes

import (
	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/plans"
)

type NavItem struct {
	Href         string      `json:"href"`
	Label        string      `json:"label"`
	Active       bool        `json:"active"`
	Locked       bool        `json:"locked"`
	RequiredTier *plans.Tier `json:"required_tier,omitempty"`
}

// Navigation lists the table rows carrying a NavLabel, in table order.
// Locked rows are still linked; the page itself renders the upsell.
func (t Table) Navigation(current string, tier plans.Tier) []NavItem {
	out := []NavItem{}
	for _, r := range t {
		if r.NavLabel == "" {
			continue
		}
		item := NavItem{
			Href:   r.Path,
			Label:  r.NavLabel,
			Active: current == r.Path,
		}
		if r.Feature != "" {
			if min, gated := access.MinimumTier(r.Feature); gated {
				item.RequiredTier = &min
				item.Locked = !access.IsEntitled(tier, r.Feature)
			}
		}
		out = append(out, item)
	}
	return out
}
