package access

import (
	"errors"
	"testing"

	"menyqr-app/internal/domain/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailedAnalyticsRule(t *testing.T) {
	assert.False(t, IsEntitled(plans.Freemium, FeatureDetailedAnalytics))
	assert.False(t, IsEntitled(plans.Bronze, FeatureDetailedAnalytics))
	assert.True(t, IsEntitled(plans.Silver, FeatureDetailedAnalytics))
	assert.True(t, IsEntitled(plans.Gold, FeatureDetailedAnalytics))
}

func TestUnknownFeatureIsOpen(t *testing.T) {
	for _, tier := range plans.All() {
		assert.True(t, IsEntitled(tier, Feature("menu-list")), tier.String())
	}
	_, gated := MinimumTier(Feature("menu-list"))
	assert.False(t, gated)
}

func TestMissingTierIsFreemium(t *testing.T) {
	missing := plans.ParseTier("")
	assert.False(t, IsEntitled(missing, FeatureBasicBranding))
	assert.False(t, IsEntitled(plans.Tier(99), FeatureDetailedAnalytics))
}

func TestEntitlementIsMonotonic(t *testing.T) {
	features := append(GatedFeatures(), Feature("ungated"))
	for _, f := range features {
		for _, t1 := range plans.All() {
			for _, t2 := range plans.All() {
				if t1 <= t2 && IsEntitled(t1, f) {
					assert.True(t, IsEntitled(t2, f), "%s entitled to %s but %s is not", t1, f, t2)
				}
			}
		}
	}
}

func TestRenderGate(t *testing.T) {
	type view struct{ name string }
	full, upsell := view{"full"}, view{"upsell"}

	assert.Equal(t, full, RenderGate(plans.Gold, FeatureDetailedAnalytics, full, upsell))
	assert.Equal(t, upsell, RenderGate(plans.Freemium, FeatureDetailedAnalytics, full, upsell))

	for i := 0; i < 3; i++ {
		assert.Equal(t, full, RenderGate(plans.Silver, FeatureDetailedAnalytics, full, upsell))
		assert.Equal(t, upsell, RenderGate(plans.Bronze, FeatureDetailedAnalytics, full, upsell))
	}

	assert.Equal(t, "a", RenderGate(plans.Freemium, Feature("ungated"), "a", "b"))
}

func TestRenderGateFunc(t *testing.T) {
	calls := 0
	full := func() (string, error) {
		calls++
		return "full", nil
	}

	got, err := RenderGateFunc(plans.Bronze, FeatureDetailedAnalytics, full, "upsell")
	require.NoError(t, err)
	assert.Equal(t, "upsell", got)
	assert.Zero(t, calls)

	got, err = RenderGateFunc(plans.Silver, FeatureDetailedAnalytics, full, "upsell")
	require.NoError(t, err)
	assert.Equal(t, "full", got)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = RenderGateFunc(plans.Gold, FeatureDetailedAnalytics, func() (string, error) { return "", boom }, "upsell")
	assert.ErrorIs(t, err, boom)
}

func TestUpsellFor(t *testing.T) {
	u := UpsellFor(FeatureDetailedAnalytics)
	assert.Equal(t, SubscriptionPath, u.CTAHref)
	assert.Equal(t, plans.Silver, u.RequiredTier)
	assert.Contains(t, u.Message, "Silver")
	assert.Equal(t, u, UpsellFor(FeatureDetailedAnalytics))

	generic := UpsellFor(FeatureTeamAccess)
	assert.Equal(t, plans.Gold, generic.RequiredTier)
	assert.Contains(t, generic.Message, "Gold")
	assert.Equal(t, SubscriptionPath, generic.CTAHref)

	assert.Equal(t, Upsell{}, UpsellFor(Feature("menu-editor")))
}

func TestEntitledFeatures(t *testing.T) {
	assert.Empty(t, EntitledFeatures(plans.Freemium))
	assert.Equal(t, []Feature{FeatureBasicBranding}, EntitledFeatures(plans.Bronze))
	assert.Equal(t,
		[]Feature{FeatureBasicBranding, FeatureDetailedAnalytics, FeatureMonthlyReports},
		EntitledFeatures(plans.Silver))
	assert.Equal(t, GatedFeatures(), EntitledFeatures(plans.Gold))
}
