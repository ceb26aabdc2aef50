package users

import (
	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
)

func BuildMeResponse(p profile.Profile) MeResponse {
	u := p.User
	return MeResponse{
		User: UserDTO{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
			PhotoURL:    u.PhotoURL,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(p.Tier),
			Subscription: BuildSubscriptionDTO(p),
		},
		Access: AccessDTO{
			Entitled: access.EntitledFeatures(p.Tier),
			Gated:    access.GatedFeatures(),
			Limits:   plans.LimitsFor(p.Tier),
		},
	}
}

func BuildPlanDTO(t plans.Tier) PlanDTO {
	plan := plans.PlanFor(t)
	return PlanDTO{Tier: plan.Tier, Name: plan.Name, PriceMonthly: plan.PriceMonthly}
}

// BuildSubscriptionDTO is nil until billing has reported a subscription.
func BuildSubscriptionDTO(p profile.Profile) *SubscriptionDTO {
	if p.User.SubscriptionID == nil || *p.User.SubscriptionID == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStatus(p.User.SubscriptionStatus),
		CurrentPeriodEnd:     p.User.CurrentPeriodEnd,
		StripeSubscriptionID: p.User.SubscriptionID,
	}
}
