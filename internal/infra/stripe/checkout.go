package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"

	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
)

type CheckoutRequest struct {
	CustomerID string
	PriceID    string
	UserID     string
	Tier       plans.Tier
	SuccessURL string
	CancelURL  string
}

// Client talks to the Stripe API with its own key instead of the
// package-level stripe.Key.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	return &Client{api: client.New(secretKey, nil)}
}

// EnsureCustomer returns the user's Stripe customer, creating it when missing.
// created tells the caller to persist the id.
func (c *Client) EnsureCustomer(ctx context.Context, u users.User) (id string, created bool, err error) {
	if u.StripeCustomerID != nil && *u.StripeCustomerID != "" {
		return *u.StripeCustomerID, false, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(u.Email),
		Name:  stripe.String(u.DisplayName),
		Metadata: map[string]string{
			"user_id": u.ID,
		},
	}
	params.Context = ctx

	cus, err := c.api.Customers.New(params)
	if err != nil {
		return "", false, err
	}
	return cus.ID, true, nil
}

// CreateCheckout opens a subscription checkout and returns its hosted URL.
// The user id and tier travel in the subscription metadata so webhook
// events can be matched back without a customer lookup.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(req.CustomerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(req.PriceID), Quantity: stripe.Int64(1)},
		},

		ClientReferenceID: stripe.String(req.UserID),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"user_id": req.UserID,
				"tier":    req.Tier.Key(),
			},
		},
	}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
