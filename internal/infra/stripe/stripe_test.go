package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"menyqr-app/config"
	"menyqr-app/internal/domain/plans"
)

func TestNormalizeStatus(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.Equal(t, "none", NormalizeStatus(nil))
	assert.Equal(t, "none", NormalizeStatus(s("  ")))
	assert.Equal(t, "active", NormalizeStatus(s("active")))
	assert.Equal(t, "past_due", NormalizeStatus(s("unpaid")))
	assert.Equal(t, "canceled", NormalizeStatus(s("incomplete_expired")))
	assert.Equal(t, "something_new", NormalizeStatus(s("something_new")))
}

func TestEntitles(t *testing.T) {
	assert.True(t, Entitles("active"))
	assert.True(t, Entitles("trialing"))
	assert.True(t, Entitles("past_due"))
	assert.False(t, Entitles("unpaid"))
	assert.False(t, Entitles("canceled"))
	assert.False(t, Entitles("incomplete"))
	assert.False(t, Entitles(""))
}

func TestPriceMap(t *testing.T) {
	m := PricesFromConfig(config.StripeConfig{PriceBronze: "price_b", PriceGold: "price_g"})

	id, ok := m.PriceFor(plans.Bronze)
	assert.True(t, ok)
	assert.Equal(t, "price_b", id)

	_, ok = m.PriceFor(plans.Silver)
	assert.False(t, ok)
	_, ok = m.PriceFor(plans.Freemium)
	assert.False(t, ok)

	tier, ok := m.TierFor("price_g", nil)
	assert.True(t, ok)
	assert.Equal(t, plans.Gold, tier)

	tier, ok = m.TierFor("price_unknown", map[string]string{"tier": "Silver"})
	assert.True(t, ok)
	assert.Equal(t, plans.Silver, tier)

	_, ok = m.TierFor("price_unknown", map[string]string{"tier": "platinum"})
	assert.False(t, ok)
}
