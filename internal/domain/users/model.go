package users

import "time"

// User is a restaurant account. ID is the identity provider's subject.
type User struct {
	ID          string `gorm:"primaryKey;type:varchar(128)"`
	DisplayName string `gorm:"not null;default:''"`
	Email       string `gorm:"index:idx_users_email"`
	PhotoURL    *string

	// Tier is written only by the billing webhook; read it with plans.ParseTier.
	Tier string `gorm:"type:varchar(20);not null;default:'freemium'"`

	StripeCustomerID   *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	SubscriptionID     *string `gorm:"column:subscription_id"`
	SubscriptionStatus *string `gorm:"column:subscription_status"`
	CurrentPeriodEnd   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
