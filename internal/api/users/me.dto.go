package users

import (
	"time"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/plans"
)

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email"`
	PhotoURL    *string `json:"photo_url"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         PlanDTO          `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

type PlanDTO struct {
	Tier         plans.Tier `json:"tier"`
	Name         string     `json:"name"`
	PriceMonthly int        `json:"price_monthly"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Entitled []access.Feature `json:"entitled"`
	Gated    []access.Feature `json:"gated"`
	Limits   plans.Limits     `json:"limits"`
}
