package plans

// Unlimited marks a limit that does not apply.
const Unlimited = 0

// Limits are the content quotas of a tier.
type Limits struct {
	MaxMenus      int `json:"max_menus"`
	MaxCategories int `json:"max_categories"`
	MaxItems      int `json:"max_items"`
	MaxLocations  int `json:"max_locations"`
}

// LimitsFor returns the quotas advertised in the pricing table.
func LimitsFor(t Tier) Limits {
	switch t.normalized() {
	case Bronze:
		return Limits{MaxMenus: 1, MaxCategories: 3, MaxItems: Unlimited, MaxLocations: 1}
	case Silver:
		return Limits{MaxMenus: Unlimited, MaxCategories: Unlimited, MaxItems: Unlimited, MaxLocations: 5}
	case Gold:
		return Limits{}
	default:
		return Limits{MaxMenus: 1, MaxCategories: 2, MaxItems: 7, MaxLocations: 1}
	}
}

// Reached reports whether count has used up limit.
func Reached(limit, count int) bool {
	return limit != Unlimited && count >= limit
}
