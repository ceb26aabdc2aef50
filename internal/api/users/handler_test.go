package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
	"menyqr-app/internal/profile"
)

func serveMe(t *testing.T, p *profile.Profile) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/dashboard/me", func(c *gin.Context) {
		if p != nil {
			profile.Set(c, *p)
		}
	}, GetCurrentUser)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/me", nil))
	return w
}

func TestGetCurrentUser(t *testing.T) {
	subID, status := "sub_1", "active"
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := profile.Profile{
		User: users.User{
			ID:                 "user-123",
			DisplayName:        "Espresso House",
			SubscriptionID:     &subID,
			SubscriptionStatus: &status,
			CurrentPeriodEnd:   &end,
		},
		Tier: plans.Silver,
	}

	w := serveMe(t, &p)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-123", resp.User.ID)
	assert.Equal(t, plans.Silver, resp.Billing.Plan.Tier)
	assert.Equal(t, 129, resp.Billing.Plan.PriceMonthly)
	require.NotNil(t, resp.Billing.Subscription)
	assert.Equal(t, "active", resp.Billing.Subscription.Status)
	assert.Contains(t, resp.Access.Entitled, access.FeatureDetailedAnalytics)
	assert.NotContains(t, resp.Access.Entitled, access.FeatureWhiteLabel)
	assert.ElementsMatch(t, access.GatedFeatures(), resp.Access.Gated)
}

func TestGetCurrentUserFreemium(t *testing.T) {
	w := serveMe(t, &profile.Profile{User: users.User{ID: "u"}, Tier: plans.Freemium})
	require.Equal(t, http.StatusOK, w.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Billing.Subscription)
	assert.Empty(t, resp.Access.Entitled)
	assert.Equal(t, plans.LimitsFor(plans.Freemium), resp.Access.Limits)
}

func TestGetCurrentUserUnidentified(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serveMe(t, nil).Code)
}
