package plans

import (
	"encoding/json"
	"strings"
)

// Tier is a subscription level. The zero value is Freemium and the
// constants are declared in entitlement order, so tiers compare as ints.
type Tier int

const (
	Freemium Tier = iota
	Bronze
	Silver
	Gold
)

var tierKeys = [...]string{"freemium", "bronze", "silver", "gold"}
var tierNames = [...]string{"Freemium", "Bronze", "Silver", "Gold"}

// All returns every tier, lowest first.
func All() []Tier {
	return []Tier{Freemium, Bronze, Silver, Gold}
}

// ParseTier maps a stored or user-supplied tier to a Tier.
// Empty and unrecognised values resolve to Freemium, never to a paid tier.
func ParseTier(s string) Tier {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range tierKeys {
		if k == key {
			return Tier(i)
		}
	}
	return Freemium
}

func (t Tier) Valid() bool {
	return t >= Freemium && t <= Gold
}

// AtLeast reports whether t is entitled to everything min is.
func (t Tier) AtLeast(min Tier) bool {
	return t.normalized() >= min.normalized()
}

// Key is the lower-case identifier used in storage, URLs and Stripe metadata.
func (t Tier) Key() string {
	return tierKeys[t.normalized()]
}

func (t Tier) String() string {
	return tierNames[t.normalized()]
}

func (t Tier) normalized() Tier {
	if !t.Valid() {
		return Freemium
	}
	return t
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ParseTier(s)
	return nil
}
