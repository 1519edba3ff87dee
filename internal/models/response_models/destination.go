package response_models

import "strings"

// Budget tiers for a destination's cost level.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

type Destination struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code,omitempty"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lng"`
	Population  int64    `json:"population"`
	Timezone    string   `json:"timezone,omitempty"`
	AdminRegion string   `json:"admin_region,omitempty"`
	FeatureCode string   `json:"feature_code,omitempty"`
	Activities  []string `json:"activities,omitempty"`
	BudgetTier  string   `json:"budget_tier,omitempty"`
}

// Key is the case-normalized (name, country) identity used for deduplication
// across retrieval stages.
func (d Destination) Key() string {
	return strings.ToLower(d.Name) + "|" + strings.ToLower(d.Country)
}

type NearbyPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Category  string  `json:"category,omitempty"`
	Country   string  `json:"country,omitempty"`
}

type CountryInfo struct {
	Continent    string `json:"continent"`
	Population   int64  `json:"population"`
	Capital      string `json:"capital"`
	CurrencyCode string `json:"currency_code"`
}
