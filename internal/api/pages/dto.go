package pages

import (
	"time"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/analytics"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/routes"
)

type FeatureDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomeResponse struct {
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	CTALabel     string       `json:"cta_label"`
	CTAHref      string       `json:"cta_href"`
	Features     []FeatureDTO `json:"features"`
	Plans        []plans.Plan `json:"plans"`
	LoginHref    string       `json:"login_href"`
	RegisterHref string       `json:"register_href"`
}

type GuestResponse struct {
	Mode        string   `json:"mode"` // login | register
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Providers   []string `json:"providers"`
	SessionURL  string   `json:"session_url"`
	AltLabel    string   `json:"alt_label"`
	AltHref     string   `json:"alt_href"`
}

type RestaurantDTO struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email,omitempty"`
	PhotoURL *string    `json:"photo_url,omitempty"`
	Tier     plans.Tier `json:"tier"`
}

// Shell is embedded by every dashboard view.
type Shell struct {
	Restaurant RestaurantDTO    `json:"restaurant"`
	Navigation []routes.NavItem `json:"navigation"`
}

type OverviewResponse struct {
	Shell
	Greeting   string                 `json:"greeting"`
	MenuCount  int                    `json:"menu_count"`
	TotalViews int                    `json:"total_views"`
	TopItem    *analytics.ItemClicks  `json:"top_item,omitempty"`
	ViewsByDay []analytics.DailyViews `json:"views_by_day"`
	TopItems   []analytics.ItemClicks `json:"top_items"`
}

type MenuCardDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryCount int       `json:"category_count"`
	ItemCount     int       `json:"item_count"`
	UpdatedAt     time.Time `json:"updated_at"`
	PublicURL     string    `json:"public_url"`
}

type MenusResponse struct {
	Shell
	Menus   []MenuCardDTO `json:"menus"`
	Limits  plans.Limits  `json:"limits"`
	AtLimit bool          `json:"at_limit"`
}

// AnalyticsView is either the full snapshot or the upsell, never both.
type AnalyticsView struct {
	Gated    bool                `json:"gated"`
	Snapshot *analytics.Snapshot `json:"snapshot,omitempty"`
	Upsell   *access.Upsell      `json:"upsell,omitempty"`
}

type AnalyticsResponse struct {
	Shell
	AnalyticsView
}

type PlanOfferDTO struct {
	plans.Plan
	Current           bool `json:"current"`
	CheckoutAvailable bool `json:"checkout_available"`
}

type SubscriptionDTO struct {
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

type SubscriptionResponse struct {
	Shell
	CurrentPlan  plans.Plan       `json:"current_plan"`
	Subscription SubscriptionDTO  `json:"subscription"`
	Offers       []PlanOfferDTO   `json:"offers"`
	Entitled     []access.Feature `json:"entitled_features"`
	Limits       plans.Limits     `json:"limits"`
}

type SettingsResponse struct {
	Shell
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	MemberSince time.Time `json:"member_since"`
}

type PublicItemDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Allergens   []string `json:"allergens"`
}

type PublicCategoryDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Items []PublicItemDTO `json:"items"`
}

type PublicMenuResponse struct {
	RestaurantName  string              `json:"restaurant_name"`
	RestaurantPhoto *string             `json:"restaurant_photo,omitempty"`
	Initials        string              `json:"initials"`
	MenuName        string              `json:"menu_name"`
	Categories      []PublicCategoryDTO `json:"categories"`
	Footer          string              `json:"footer,omitempty"`
}
