package stripewebhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	stripeapi "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
	"go.uber.org/zap"

	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/repository"
)

const maxBody = 65536

type Invalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// Handler turns Stripe events into tier transitions. It is the only
// writer of users.tier.
type Handler struct {
	Secret   string
	Prices   stripe.PriceMap
	Users    repository.Store
	Profiles Invalidator
	Log      *zap.Logger
}

// Handle serves POST /api/billing/webhook. The body must reach it unmodified.
func (h *Handler) Handle(c *gin.Context) {
	if h.Secret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, maxBody)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.Secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.Log.Warn("stripe signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	ctx := c.Request.Context()
	var status string

	switch event.Type {
	case "checkout.session.completed":
		var session stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		status, err = h.handleCheckoutSessionCompleted(ctx, &session)

	case "customer.subscription.created", "customer.subscription.updated":
		var sub stripeapi.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil || sub.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		status, err = h.handleSubscriptionUpdated(ctx, &sub)

	case "customer.subscription.deleted":
		var sub stripeapi.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil || sub.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		status, err = h.handleSubscriptionDeleted(ctx, &sub)

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err != nil {
		h.Log.Error("stripe event failed",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
