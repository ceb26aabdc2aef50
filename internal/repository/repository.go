package repository

import (
	"context"
	"errors"
	"time"

	"menyqr-app/internal/domain/analytics"
	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
)

var ErrNotFound = errors.New("not found")

// Reader is what the pages need. The gating code only ever sees the
// tier these lookups produce, never the store.
type Reader interface {
	GetUser(ctx context.Context, id string) (users.User, error)
	ListMenus(ctx context.Context, restaurantID string) ([]menus.Menu, error)
	GetMenu(ctx context.Context, menuID string) (menus.Menu, error)
	GetAnalytics(ctx context.Context, restaurantID string) (analytics.Snapshot, error)
}

// Writer is used by the session and billing collaborators.
type Writer interface {
	// UpsertUser creates the user or refreshes its profile fields.
	// Billing columns (tier, stripe ids) are never touched here.
	UpsertUser(ctx context.Context, u *users.User) error
	FindUserByStripeCustomer(ctx context.Context, customerID string) (users.User, error)
	UpdateSubscription(ctx context.Context, userID string, upd SubscriptionUpdate) error
	// LinkCustomer stores the Stripe customer id and nothing else.
	LinkCustomer(ctx context.Context, userID, customerID string) error
}

type Store interface {
	Reader
	Writer
}

// SubscriptionUpdate is a tier transition reported by billing.
// Nil pointers leave the column unchanged.
type SubscriptionUpdate struct {
	Tier               plans.Tier
	StripeCustomerID   *string
	SubscriptionID     *string
	SubscriptionStatus *string
	CurrentPeriodEnd   *time.Time
}
