package stripe

import (
	"menyqr-app/config"
	"menyqr-app/internal/domain/plans"
)

// PriceMap links paid tiers to Stripe price ids.
type PriceMap map[plans.Tier]string

func PricesFromConfig(cfg config.StripeConfig) PriceMap {
	m := PriceMap{}
	if cfg.PriceBronze != "" {
		m[plans.Bronze] = cfg.PriceBronze
	}
	if cfg.PriceSilver != "" {
		m[plans.Silver] = cfg.PriceSilver
	}
	if cfg.PriceGold != "" {
		m[plans.Gold] = cfg.PriceGold
	}
	return m
}

// PriceFor returns the price of a paid tier. Freemium never has one.
func (m PriceMap) PriceFor(t plans.Tier) (string, bool) {
	if t == plans.Freemium {
		return "", false
	}
	id, ok := m[t]
	return id, ok && id != ""
}

// TierFor resolves a price. A `tier` entry in the price metadata wins over
// the configured ids.
func (m PriceMap) TierFor(priceID string, metadata map[string]string) (plans.Tier, bool) {
	if raw, ok := metadata["tier"]; ok {
		if t := plans.ParseTier(raw); t != plans.Freemium {
			return t, true
		}
	}
	for t, id := range m {
		if id == priceID {
			return t, true
		}
	}
	return plans.Freemium, false
}
