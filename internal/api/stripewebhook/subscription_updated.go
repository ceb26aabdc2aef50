package stripewebhooks

import (
	"context"
	"errors"
	"time"

	stripeapi "github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"

	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/metrics"
	"menyqr-app/internal/repository"
)

const (
	received = "received"
	ignored  = "ignored"
)

var errMissingPrice = errors.New("subscription missing items/price")

// handleSubscriptionUpdated covers created and updated events. A status
// that no longer entitles the user drops them to freemium.
func (h *Handler) handleSubscriptionUpdated(ctx context.Context, sub *stripeapi.Subscription) (string, error) {
	status := string(sub.Status)
	if !stripe.Entitles(status) {
		return h.applyTier(ctx, sub, plans.Freemium, status)
	}

	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return "", errMissingPrice
	}
	price := sub.Items.Data[0].Price
	tier, ok := h.Prices.TierFor(price.ID, price.Metadata)
	if !ok {
		h.Log.Warn("subscription with unknown price", zap.String("price_id", price.ID))
		return ignored, nil
	}
	return h.applyTier(ctx, sub, tier, status)
}

// applyTier returns "ignored" when the subscription cannot be matched to
// a user. Unmatched events are acknowledged so Stripe stops retrying.
func (h *Handler) applyTier(ctx context.Context, sub *stripeapi.Subscription, tier plans.Tier, status string) (string, error) {
	var customerID *string
	if sub.Customer != nil && sub.Customer.ID != "" {
		id := sub.Customer.ID
		customerID = &id
	}

	userID, err := h.userFor(ctx, sub.Metadata["user_id"], customerID)
	if err != nil || userID == "" {
		return ignored, err
	}

	subID := sub.ID
	upd := repository.SubscriptionUpdate{
		Tier:               tier,
		StripeCustomerID:   customerID,
		SubscriptionID:     &subID,
		SubscriptionStatus: &status,
	}
	if sub.CurrentPeriodEnd > 0 {
		end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		upd.CurrentPeriodEnd = &end
	}

	err = h.Users.UpdateSubscription(ctx, userID, upd)
	if errors.Is(err, repository.ErrNotFound) {
		// acknowledge to avoid Stripe retries if user deleted
		return ignored, nil
	}
	if err != nil {
		return "", err
	}

	if h.Profiles != nil {
		h.Profiles.Invalidate(ctx, userID)
	}
	metrics.TierTransitions.WithLabelValues(tier.Key()).Inc()
	h.Log.Info("tier updated from billing",
		zap.String("user_id", userID),
		zap.String("tier", tier.Key()),
		zap.String("status", status),
	)
	return received, nil
}

// userFor prefers metadata.user_id and falls back to the stored customer.
func (h *Handler) userFor(ctx context.Context, userID string, customerID *string) (string, error) {
	if userID != "" || customerID == nil {
		return userID, nil
	}
	u, err := h.Users.FindUserByStripeCustomer(ctx, *customerID)
	if errors.Is(err, repository.ErrNotFound) {
		h.Log.Info("subscription for unknown customer", zap.String("customer_id", *customerID))
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
