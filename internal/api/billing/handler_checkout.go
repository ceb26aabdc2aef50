package billing

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
)

type Gateway interface {
	EnsureCustomer(ctx context.Context, u users.User) (id string, created bool, err error)
	CreateCheckout(ctx context.Context, req stripe.CheckoutRequest) (string, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type CheckoutHandler struct {
	Gateway  Gateway // nil when Stripe is not configured
	Prices   stripe.PriceMap
	Users    repository.Writer
	Profiles Invalidator
	BaseURL  string
	Log      *zap.Logger
}

// POST /dashboard/subscription/checkout
func (h *CheckoutHandler) Create(c *gin.Context) {
	var body struct {
		Tier string `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid tier"})
		return
	}

	if h.Gateway == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stripe is not configured"})
		return
	}

	p, ok := profile.From(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	tier := plans.ParseTier(body.Tier)
	if tier == plans.Freemium {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown or free tier"})
		return
	}
	priceID, ok := h.Prices.PriceFor(tier)
	if !ok || plans.PlanFor(tier).ComingSoon {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tier is not available for purchase"})
		return
	}
	if tier == p.Tier {
		c.JSON(http.StatusConflict, gin.H{"error": "Already on this plan"})
		return
	}

	ctx := c.Request.Context()
	customerID, created, err := h.Gateway.EnsureCustomer(ctx, p.User)
	if err != nil {
		h.Log.Error("create stripe customer failed", zap.String("user_id", p.User.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
		return
	}
	if created {
		if err := h.Users.LinkCustomer(ctx, p.User.ID, customerID); err != nil {
			h.Log.Error("store stripe customer failed", zap.String("user_id", p.User.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}
		if h.Profiles != nil {
			h.Profiles.Invalidate(ctx, p.User.ID)
		}
	}

	base := strings.TrimRight(h.BaseURL, "/")
	url, err := h.Gateway.CreateCheckout(ctx, stripe.CheckoutRequest{
		CustomerID: customerID,
		PriceID:    priceID,
		UserID:     p.User.ID,
		Tier:       tier,
		SuccessURL: base + access.SubscriptionPath + "?checkout=success",
		CancelURL:  base + access.SubscriptionPath + "?checkout=canceled",
	})
	if err != nil {
		h.Log.Error("create checkout session failed", zap.String("user_id", p.User.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
