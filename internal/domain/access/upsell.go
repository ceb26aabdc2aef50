package access

import (
	"fmt"

	"menyqr-app/internal/domain/plans"
)

// SubscriptionPath is where every upgrade call-to-action points.
const SubscriptionPath = "/dashboard/subscription"

// Upsell is the placeholder shown instead of gated content.
type Upsell struct {
	Feature      Feature    `json:"feature"`
	RequiredTier plans.Tier `json:"required_tier"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	CTALabel     string     `json:"cta_label"`
	CTAHref      string     `json:"cta_href"`
}

var upsellCopy = map[Feature]struct{ title, message string }{
	FeatureDetailedAnalytics: {
		title:   "Detaljert Analyse er en Premium-funksjon",
		message: "Oppgrader til %s-pakken for å få full innsikt i menyens ytelse, inkludert klikk per rett og månedlige rapporter.",
	},
}

// UpsellFor returns the fixed upgrade prompt for f, or the zero Upsell
// when f is not gated.
func UpsellFor(f Feature) Upsell {
	min, gated := MinimumTier(f)
	if !gated {
		return Upsell{}
	}

	title := "Denne funksjonen krever en oppgradering"
	message := "Oppgrader til %s-pakken for å låse opp denne funksjonen."
	if c, ok := upsellCopy[f]; ok {
		title, message = c.title, c.message
	}

	return Upsell{
		Feature:      f,
		RequiredTier: min,
		Title:        title,
		Message:      fmt.Sprintf(message, min),
		CTALabel:     "Oppgrader Nå",
		CTAHref:      SubscriptionPath,
	}
}
