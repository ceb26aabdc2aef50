package plans

// Plan is one entry of the public pricing table.
type Plan struct {
	Tier          Tier     `json:"tier"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PriceMonthly  int      `json:"price_monthly"` // NOK
	PriceYearly   int      `json:"price_yearly"`  // NOK
	Features      []string `json:"features"`
	CTA           string   `json:"cta"`
	IsMostPopular bool     `json:"is_most_popular"`
	ComingSoon    bool     `json:"coming_soon"`
}

var catalogue = []Plan{
	{
		Tier:         Freemium,
		ID:           "freemium",
		Name:         "Freemium",
		PriceMonthly: 0,
		PriceYearly:  0,
		Features: []string{
			"1 meny",
			"Opptil 2 kategorier",
			"Maks 7 retter totalt",
			"Standard design-tema",
			"Enkel statistikk (totale visninger)",
			"1 lokasjon",
		},
		CTA: "Start Gratis",
	},
	{
		Tier:         Bronze,
		ID:           "bronze",
		Name:         "Bronze",
		PriceMonthly: 80,
		PriceYearly:  768,
		Features: []string{
			"Alt i Freemium, pluss:",
			"Opptil 3 kategorier",
			"Ubegrenset antall retter",
			"Basis tilpasning (5-10 temaer, logo)",
			"QR-kode nedlasting (PDF)",
		},
		CTA: "Velg Bronze",
	},
	{
		Tier:          Silver,
		ID:            "silver",
		Name:          "Silver",
		PriceMonthly:  129,
		PriceYearly:   1238,
		IsMostPopular: true,
		Features: []string{
			"Alt i Bronze, pluss:",
			"Ubegrenset kategorier & menyer",
			"Full tilpasning (farger, bakgrunn)",
			"Detaljert statistikk (klikk per rett)",
			"Månedlige e-postrapporter",
			"Støtte for 2-5 lokasjoner",
		},
		CTA: "Velg Silver",
	},
	{
		Tier:         Gold,
		ID:           "gold",
		Name:         "Gold",
		PriceMonthly: 189,
		PriceYearly:  1814,
		ComingSoon:   true,
		Features: []string{
			"Kommer snart!",
			"Alt i Silver, pluss:",
			"White-label løsning",
			"Team-tilgang",
			"Betalingsintegrasjon (Stripe)",
			"Ubegrenset lokasjoner",
		},
		CTA: "Kommer Snart",
	},
}

// Catalogue returns a copy of the pricing table, lowest tier first.
func Catalogue() []Plan {
	out := make([]Plan, len(catalogue))
	for i, p := range catalogue {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// PlanFor returns the pricing entry of t (Freemium for invalid tiers).
func PlanFor(t Tier) Plan {
	return Catalogue()[t.normalized()]
}
