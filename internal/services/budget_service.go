package services

import (
	"tripwise/internal/models/response_models"
)

type BudgetServiceInterface interface {
	EstimateDailyCost(dest response_models.Destination) int
	ClassifyTier(country string) string
}

// Daily budget estimates in USD per person, keyed by country.
var highBudgetCountries = map[string]int{
	"Switzerland": 250, "Norway": 230, "Iceland": 220, "Japan": 200,
	"Singapore": 190, "United States": 180, "United Kingdom": 170,
	"Australia": 160, "Denmark": 190, "Sweden": 180, "Finland": 170,
	"Ireland": 160, "France": 150, "Netherlands": 150,
}

var mediumBudgetCountries = map[string]int{
	"Spain": 120, "Italy": 130, "Germany": 140, "Canada": 140,
	"New Zealand": 130, "South Korea": 120, "Portugal": 110,
	"Greece": 100, "Czech Republic": 90, "Poland": 80,
}

var lowBudgetCountries = map[string]int{
	"Thailand": 50, "Vietnam": 40, "Cambodia": 35, "Laos": 35,
	"Indonesia": 45, "India": 30, "Nepal": 25, "Bolivia": 35,
	"Colombia": 40, "Mexico": 45, "Philippines": 40, "Sri Lanka": 35,
	"Morocco": 45, "Egypt": 40,
}

// Defaults when the country is not in any tier table.
const (
	defaultHighDailyCost   = 180
	defaultMediumDailyCost = 100
	defaultLowDailyCost    = 40
)

type BudgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &BudgetService{}
}

func (b *BudgetService) EstimateDailyCost(dest response_models.Destination) int {
	if cost, ok := highBudgetCountries[dest.Country]; ok {
		return cost
	}
	if cost, ok := mediumBudgetCountries[dest.Country]; ok {
		return cost
	}
	if cost, ok := lowBudgetCountries[dest.Country]; ok {
		return cost
	}

	switch dest.BudgetTier {
	case response_models.BudgetHigh:
		return defaultHighDailyCost
	case response_models.BudgetLow:
		return defaultLowDailyCost
	default:
		return defaultMediumDailyCost
	}
}

func (b *BudgetService) ClassifyTier(country string) string {
	if _, ok := highBudgetCountries[country]; ok {
		return response_models.BudgetHigh
	}
	if _, ok := lowBudgetCountries[country]; ok {
		return response_models.BudgetLow
	}
	return response_models.BudgetMedium
}
