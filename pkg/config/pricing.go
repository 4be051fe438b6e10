package config

// PricingPlan describes one promotional offer shown on the landing page.
type PricingPlan struct {
	Name          string   `json:"name"`
	OriginalPrice string   `json:"originalPrice"`
	PromoPrice    string   `json:"promoPrice"`
	Currency      string   `json:"currency"`
	BillingPeriod string   `json:"billingPeriod"`
	Features      []string `json:"features"`
}

// Pricing is the promotional-pricing configuration served to the site.
type Pricing struct {
	PromoActive bool          `json:"promoActive"`
	PromoLabel  string        `json:"promoLabel"`
	Plans       []PricingPlan `json:"plans"`
}

// PromoPricing returns the current promotional-pricing configuration.
// This is static content; editing it requires a redeploy.
func PromoPricing() Pricing {
	return Pricing{
		PromoActive: true,
		PromoLabel:  "Oferta de lançamento",
		Plans: []PricingPlan{
			{
				Name:          "Essencial",
				OriginalPrice: "497",
				PromoPrice:    "297",
				Currency:      "BRL",
				BillingPeriod: "month",
				Features: []string{
					"Gestão de redes sociais",
					"2 campanhas por mês",
					"Relatório mensal",
				},
			},
			{
				Name:          "Crescimento",
				OriginalPrice: "997",
				PromoPrice:    "697",
				Currency:      "BRL",
				BillingPeriod: "month",
				Features: []string{
					"Tudo do Essencial",
					"Campanhas ilimitadas",
					"Landing pages dedicadas",
					"Atendimento prioritário no WhatsApp",
				},
			},
		},
	}
}
