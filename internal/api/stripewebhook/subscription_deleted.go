package stripewebhooks

import (
	"context"

	stripeapi "github.com/stripe/stripe-go/v75"

	"menyqr-app/internal/domain/plans"
)

func (h *Handler) handleSubscriptionDeleted(ctx context.Context, sub *stripeapi.Subscription) (string, error) {
	return h.applyTier(ctx, sub, plans.Freemium, string(stripeapi.SubscriptionStatusCanceled))
}
