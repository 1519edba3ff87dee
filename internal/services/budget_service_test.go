package services

import (
	"testing"
	"tripwise/internal/models/response_models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDailyCostKnownCountries(t *testing.T) {
	budgetService := NewBudgetService()

	assert.Equal(t, 250, budgetService.EstimateDailyCost(response_models.Destination{Country: "Switzerland"}))
	assert.Equal(t, 130, budgetService.EstimateDailyCost(response_models.Destination{Country: "Italy"}))
	assert.Equal(t, 50, budgetService.EstimateDailyCost(response_models.Destination{Country: "Thailand"}))
}

func TestEstimateDailyCostFallsBackToTier(t *testing.T) {
	budgetService := NewBudgetService()

	assert.Equal(t, 180, budgetService.EstimateDailyCost(response_models.Destination{Country: "Atlantis", BudgetTier: response_models.BudgetHigh}))
	assert.Equal(t, 40, budgetService.EstimateDailyCost(response_models.Destination{Country: "Atlantis", BudgetTier: response_models.BudgetLow}))
	assert.Equal(t, 100, budgetService.EstimateDailyCost(response_models.Destination{Country: "Atlantis"}))
}

func TestClassifyTier(t *testing.T) {
	budgetService := NewBudgetService()

	assert.Equal(t, response_models.BudgetHigh, budgetService.ClassifyTier("Japan"))
	assert.Equal(t, response_models.BudgetLow, budgetService.ClassifyTier("Vietnam"))
	assert.Equal(t, response_models.BudgetMedium, budgetService.ClassifyTier("Atlantis"))
}
