package pages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/routes"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
	"menyqr-app/internal/repository/memstore"
)

func setupRouter(t *testing.T, store *memstore.Store, tier *plans.Tier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(store, routes.DefaultTable, "https://menyqr.no",
		stripe.PriceMap{plans.Bronze: "price_b", plans.Silver: "price_s"}, zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/", h.Home)
	r.GET("/login", h.Login)
	r.GET("/m/:menuId", h.PublicMenu)

	dash := r.Group("/dashboard")
	if tier != nil {
		dash.Use(func(c *gin.Context) {
			u, err := store.GetUser(c.Request.Context(), repository.DemoRestaurantID)
			require.NoError(t, err)
			profile.Set(c, profile.Profile{User: u, Tier: *tier})
			c.Next()
		})
	}
	dash.GET("", h.Overview)
	dash.GET("/menus", h.Menus)
	dash.GET("/analytics", h.Analytics)
	dash.GET("/subscription", h.Subscription)
	dash.GET("/settings", h.Settings)
	return r
}

func get(t *testing.T, r http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func tierPtr(t plans.Tier) *plans.Tier { return &t }

func TestHome(t *testing.T) {
	r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), nil)

	var resp HomeResponse
	w := get(t, r, "/", &resp)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Plans, 4)
	assert.Equal(t, "/register", resp.CTAHref)
}

func TestDashboardRequiresProfile(t *testing.T) {
	r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), nil)

	w := get(t, r, "/dashboard/analytics", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnalyticsUpsellForBronze(t *testing.T) {
	r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), tierPtr(plans.Bronze))

	var resp AnalyticsResponse
	w := get(t, r, "/dashboard/analytics", &resp)
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, resp.Gated)
	assert.Nil(t, resp.Snapshot)
	require.NotNil(t, resp.Upsell)
	assert.Equal(t, access.SubscriptionPath, resp.Upsell.CTAHref)
	assert.Equal(t, plans.Silver, resp.Upsell.RequiredTier)

	var analyticsNav *routes.NavItem
	for i := range resp.Navigation {
		if resp.Navigation[i].Href == "/dashboard/analytics" {
			analyticsNav = &resp.Navigation[i]
		}
	}
	require.NotNil(t, analyticsNav)
	assert.True(t, analyticsNav.Locked)
	assert.True(t, analyticsNav.Active)
}

func TestAnalyticsFullForSilverAndGold(t *testing.T) {
	for _, tier := range []plans.Tier{plans.Silver, plans.Gold} {
		r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), tierPtr(tier))

		var resp AnalyticsResponse
		w := get(t, r, "/dashboard/analytics", &resp)
		require.Equal(t, http.StatusOK, w.Code)

		assert.False(t, resp.Gated, tier.String())
		assert.Nil(t, resp.Upsell)
		require.NotNil(t, resp.Snapshot)
		assert.Equal(t, 1489, resp.Snapshot.TotalViews)
		assert.Len(t, resp.Snapshot.ViewsByDay, 7)
	}
}

func TestOverview(t *testing.T) {
	r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), tierPtr(plans.Silver))

	var resp OverviewResponse
	w := get(t, r, "/dashboard", &resp)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Velkommen tilbake, Espresso!", resp.Greeting)
	assert.Equal(t, 2, resp.MenuCount)
	assert.Equal(t, 1489, resp.TotalViews)
	require.NotNil(t, resp.TopItem)
	assert.Equal(t, "Cappuccino", resp.TopItem.Name)
	assert.Equal(t, plans.Silver, resp.Restaurant.Tier)
	assert.NotEmpty(t, resp.Navigation)
}

func TestMenusLimits(t *testing.T) {
	store := memstore.NewSeeded(repository.DemoFixtures())

	var free MenusResponse
	get(t, setupRouter(t, store, tierPtr(plans.Freemium)), "/dashboard/menus", &free)
	require.Len(t, free.Menus, 2)
	assert.True(t, free.AtLimit)
	assert.Equal(t, 1, free.Limits.MaxMenus)
	assert.Equal(t, "https://menyqr.no/m/menu-1", free.Menus[0].PublicURL)
	assert.Equal(t, 2, free.Menus[0].CategoryCount)
	assert.Equal(t, 4, free.Menus[0].ItemCount)

	var silver MenusResponse
	get(t, setupRouter(t, store, tierPtr(plans.Silver)), "/dashboard/menus", &silver)
	assert.False(t, silver.AtLimit)
}

func TestSubscription(t *testing.T) {
	r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), tierPtr(plans.Silver))

	var resp SubscriptionResponse
	w := get(t, r, "/dashboard/subscription", &resp)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, plans.Silver, resp.CurrentPlan.Tier)
	assert.Equal(t, "none", resp.Subscription.Status)
	require.Len(t, resp.Offers, 3)

	byTier := map[plans.Tier]PlanOfferDTO{}
	for _, o := range resp.Offers {
		byTier[o.Tier] = o
	}
	assert.True(t, byTier[plans.Silver].Current)
	assert.False(t, byTier[plans.Silver].CheckoutAvailable)
	assert.True(t, byTier[plans.Bronze].CheckoutAvailable)
	assert.False(t, byTier[plans.Gold].CheckoutAvailable)

	assert.Contains(t, resp.Entitled, access.FeatureDetailedAnalytics)
	assert.NotContains(t, resp.Entitled, access.FeatureWhiteLabel)
}

func TestPublicMenu(t *testing.T) {
	r := setupRouter(t, memstore.NewSeeded(repository.DemoFixtures()), nil)

	var resp PublicMenuResponse
	w := get(t, r, "/m/menu-1", &resp)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Espresso House", resp.RestaurantName)
	assert.Equal(t, "EH", resp.Initials)
	assert.Equal(t, "Vintermeny", resp.MenuName)
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, []string{"Gluten", "Melk", "Sennep"}, resp.Categories[1].Items[0].Allergens)
	assert.Equal(t, poweredBy, resp.Footer)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/m/menu-9", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/m/..%2Fetc", nil).Code)
}

func TestPublicMenuSanitisesAndWhiteLabels(t *testing.T) {
	f := repository.DemoFixtures()
	f.Users[0].Tier = plans.Gold.Key()
	f.Menus[0].Categories[0].Items[0].Name = `<b>Cappuccino</b><script>alert(1)</script>`
	r := setupRouter(t, memstore.NewSeeded(f), nil)

	var resp PublicMenuResponse
	get(t, r, "/m/menu-1", &resp)
	assert.Equal(t, "Cappuccino", resp.Categories[0].Items[0].Name)
	assert.Empty(t, resp.Footer)
}

func TestPublicMenuWithoutOwner(t *testing.T) {
	store := memstore.New()
	store.Load(repository.Fixtures{Menus: []menus.Menu{{ID: "orphan", RestaurantID: "gone", Name: "Lunsj"}}})
	r := setupRouter(t, store, nil)

	var resp PublicMenuResponse
	w := get(t, r, "/m/orphan", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lunsj", resp.MenuName)
	assert.Equal(t, poweredBy, resp.Footer)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "EH", Initials("Espresso House"))
	assert.Equal(t, "K", Initials("kafé"))
	assert.Equal(t, "", Initials("   "))
}
