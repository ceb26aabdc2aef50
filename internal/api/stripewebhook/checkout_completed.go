package stripewebhooks

import (
	"context"
	"errors"

	stripeapi "github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"

	"menyqr-app/internal/repository"
)

// handleCheckoutSessionCompleted links the Stripe customer to the user
// named by client_reference_id. The tier is left alone; it follows the
// subscription events.
func (h *Handler) handleCheckoutSessionCompleted(ctx context.Context, session *stripeapi.CheckoutSession) (string, error) {
	if session.ClientReferenceID == "" || session.Customer == nil || session.Customer.ID == "" {
		return ignored, nil
	}

	u, err := h.Users.GetUser(ctx, session.ClientReferenceID)
	if errors.Is(err, repository.ErrNotFound) {
		return ignored, nil
	}
	if err != nil {
		return "", err
	}
	if u.StripeCustomerID != nil && *u.StripeCustomerID == session.Customer.ID {
		return received, nil
	}

	customerID := session.Customer.ID
	if err := h.Users.LinkCustomer(ctx, u.ID, customerID); err != nil {
		return "", err
	}
	if h.Profiles != nil {
		h.Profiles.Invalidate(ctx, u.ID)
	}
	h.Log.Info("stripe customer linked", zap.String("user_id", u.ID), zap.String("customer_id", customerID))
	return received, nil
}
