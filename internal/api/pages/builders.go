package pages

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"menyqr-app/internal/domain/access"
	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/routes"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
)

const poweredBy = "Powered by MenyQR"

func BuildRestaurantDTO(p profile.Profile) RestaurantDTO {
	return RestaurantDTO{
		ID:       p.User.ID,
		Name:     p.User.DisplayName,
		Email:    p.User.Email,
		PhotoURL: p.User.PhotoURL,
		Tier:     p.Tier,
	}
}

func BuildShell(table routes.Table, p profile.Profile, current string) Shell {
	return Shell{
		Restaurant: BuildRestaurantDTO(p),
		Navigation: table.Navigation(current, p.Tier),
	}
}

func BuildMenuCards(baseURL string, list []menus.Menu) []MenuCardDTO {
	out := make([]MenuCardDTO, 0, len(list))
	for _, m := range list {
		out = append(out, MenuCardDTO{
			ID:            m.ID,
			Name:          m.Name,
			Description:   m.Description,
			CategoryCount: len(m.Categories),
			ItemCount:     m.ItemCount(),
			UpdatedAt:     m.UpdatedAt,
			PublicURL:     menus.BuildPublicURL(baseURL, m.ID),
		})
	}
	return out
}

// BuildOffers lists the paid plans. Freemium is never offered.
func BuildOffers(current plans.Tier, prices stripe.PriceMap) []PlanOfferDTO {
	out := []PlanOfferDTO{}
	for _, p := range plans.Catalogue() {
		if p.Tier == plans.Freemium {
			continue
		}
		_, priced := prices.PriceFor(p.Tier)
		out = append(out, PlanOfferDTO{
			Plan:              p,
			Current:           p.Tier == current,
			CheckoutAvailable: priced && !p.ComingSoon && p.Tier != current,
		})
	}
	return out
}

// BuildPublicMenu strips any markup from owner-entered text. Gold menus
// drop the platform footer.
func BuildPublicMenu(policy *bluemonday.Policy, owner profile.Profile, m menus.Menu) PublicMenuResponse {
	clean := func(s string) string {
		return strings.TrimSpace(policy.Sanitize(s))
	}

	cats := make([]PublicCategoryDTO, 0, len(m.Categories))
	for _, c := range m.Categories {
		items := make([]PublicItemDTO, 0, len(c.Items))
		for _, it := range c.Items {
			allergens := make([]string, 0, len(it.Allergens))
			for _, a := range it.Allergens {
				allergens = append(allergens, clean(a))
			}
			items = append(items, PublicItemDTO{
				ID:          it.ID,
				Name:        clean(it.Name),
				Description: clean(it.Description),
				Price:       it.PriceNOK,
				ImageURL:    it.ImageURL,
				Allergens:   allergens,
			})
		}
		cats = append(cats, PublicCategoryDTO{ID: c.ID, Name: clean(c.Name), Items: items})
	}

	return PublicMenuResponse{
		RestaurantName:  clean(owner.User.DisplayName),
		RestaurantPhoto: owner.User.PhotoURL,
		Initials:        Initials(owner.User.DisplayName),
		MenuName:        clean(m.Name),
		Categories:      cats,
		Footer:          access.RenderGate(owner.Tier, access.FeatureWhiteLabel, "", poweredBy),
	}
}

// Initials: "Espresso House" -> "EH"
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}
