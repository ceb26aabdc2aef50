package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/metrics"
)

// GET /dashboard
func (h *Handler) Overview(c *gin.Context) {
	p, ok := h.currentProfile(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	list, err := h.Store.ListMenus(ctx, p.User.ID)
	if err != nil {
		h.internalError(c, "Failed to load menus", err)
		return
	}
	snap, err := h.Store.GetAnalytics(ctx, p.User.ID)
	if err != nil {
		h.internalError(c, "Failed to load analytics", err)
		return
	}

	resp := OverviewResponse{
		Shell:      BuildShell(h.Table, p, "/dashboard"),
		Greeting:   "Velkommen tilbake, " + firstName(p.User.DisplayName) + "!",
		MenuCount:  len(list),
		TotalViews: snap.TotalViews,
		ViewsByDay: snap.ViewsByDay,
		TopItems:   snap.TopItems,
	}
	if len(snap.TopItems) > 0 {
		top := snap.TopItems[0]
		resp.TopItem = &top
	}
	c.JSON(http.StatusOK, resp)
}

// GET /dashboard/menus
func (h *Handler) Menus(c *gin.Context) {
	p, ok := h.currentProfile(c)
	if !ok {
		return
	}

	list, err := h.Store.ListMenus(c.Request.Context(), p.User.ID)
	if err != nil {
		h.internalError(c, "Failed to load menus", err)
		return
	}

	limits := plans.LimitsFor(p.Tier)
	c.JSON(http.StatusOK, MenusResponse{
		Shell:   BuildShell(h.Table, p, "/dashboard/menus"),
		Menus:   BuildMenuCards(h.BaseURL, list),
		Limits:  limits,
		AtLimit: plans.Reached(limits.MaxMenus, len(list)),
	})
}

// GET /dashboard/analytics
// The snapshot is only read for tiers entitled to detailed analytics.
func (h *Handler) Analytics(c *gin.Context) {
	p, ok := h.currentProfile(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	full := func() (AnalyticsView, error) {
		snap, err := h.Store.GetAnalytics(ctx, p.User.ID)
		if err != nil {
			return AnalyticsView{}, err
		}
		return AnalyticsView{Snapshot: &snap}, nil
	}
	upsell := access.UpsellFor(access.FeatureDetailedAnalytics)

	view, err := access.RenderGateFunc(p.Tier, access.FeatureDetailedAnalytics, full,
		AnalyticsView{Gated: true, Upsell: &upsell})
	if err != nil {
		h.internalError(c, "Failed to load analytics", err)
		return
	}

	outcome := "full"
	if view.Gated {
		outcome = "upsell"
	}
	metrics.GateDecisions.WithLabelValues(string(access.FeatureDetailedAnalytics), outcome).Inc()

	c.JSON(http.StatusOK, AnalyticsResponse{
		Shell:         BuildShell(h.Table, p, "/dashboard/analytics"),
		AnalyticsView: view,
	})
}

// GET /dashboard/subscription
func (h *Handler) Subscription(c *gin.Context) {
	p, ok := h.currentProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SubscriptionResponse{
		Shell:       BuildShell(h.Table, p, "/dashboard/subscription"),
		CurrentPlan: plans.PlanFor(p.Tier),
		Subscription: SubscriptionDTO{
			Status:           stripe.NormalizeStatus(p.User.SubscriptionStatus),
			CurrentPeriodEnd: p.User.CurrentPeriodEnd,
		},
		Offers:   BuildOffers(p.Tier, h.Prices),
		Entitled: access.EntitledFeatures(p.Tier),
		Limits:   plans.LimitsFor(p.Tier),
	})
}

// GET /dashboard/settings
func (h *Handler) Settings(c *gin.Context) {
	p, ok := h.currentProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{
		Shell:       BuildShell(h.Table, p, "/dashboard/settings"),
		Email:       p.User.Email,
		DisplayName: p.User.DisplayName,
		MemberSince: p.User.CreatedAt,
	})
}
