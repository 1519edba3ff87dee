package services

import (
	"math/rand"
	"testing"
	"tripwise/internal/models/response_models"

	"github.com/stretchr/testify/assert"
)

func TestTemplateSelectionIsDeterministicForSeed(t *testing.T) {
	first := NewRenderer(rand.New(rand.NewSource(42)))
	second := NewRenderer(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, first.DestinationTemplate(), second.DestinationTemplate())
		assert.Equal(t, first.FollowUpPrompt(), second.FollowUpPrompt())
	}
}

func TestTemplatesComeFromFixedPools(t *testing.T) {
	renderer := NewRenderer(rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		assert.Contains(t, destinationTemplates, renderer.DestinationTemplate())
		assert.Contains(t, noResultsTemplates, renderer.NoResultsMessage())
		assert.Contains(t, followUpTemplates, renderer.FollowUpPrompt())
	}

	assert.Equal(t, "With your $1500 budget, consider these options:", renderer.BudgetTemplate(1500))
}

func TestRenderItinerary(t *testing.T) {
	renderer := NewRenderer(rand.New(rand.NewSource(1)))

	itinerary := &response_models.Itinerary{
		DestinationName: "Paris",
		Country:         "France",
		Days: []response_models.DayPlan{
			{
				Day:       1,
				Weather:   &response_models.DayWeather{Conditions: "Sunny", TempMin: 15, TempMax: 25},
				Morning:   []string{"Visit Louvre Museum"},
				Afternoon: []string{"Lunch at a recommended restaurant"},
				Evening:   []string{"Dinner at a local restaurant"},
			},
		},
		TravelTips: []string{"Research public transportation options"},
	}

	text := renderer.RenderItinerary(itinerary)

	assert.Contains(t, text, "1-Day Itinerary for Paris, France:")
	assert.Contains(t, text, "Day 1 - Weather: Sunny, 15°C to 25°C:")
	assert.Contains(t, text, "- Visit Louvre Museum")
	assert.Contains(t, text, "Travel Tips for Paris:")
	assert.Contains(t, text, "- Research public transportation options")
}

func TestRenderFlights(t *testing.T) {
	renderer := NewRenderer(rand.New(rand.NewSource(1)))

	flights := []response_models.Flight{
		{Carrier: "AA", FlightNumber: "101", DepartureTime: "2026-09-01T10:00:00", ArrivalTime: "2026-09-01T17:30:00", DurationMinutes: 450},
	}

	text := renderer.RenderFlights("New York", "JFK", "London", "LHR", flights)

	assert.Contains(t, text, "Flights from New York (JFK) to London (LHR):")
	assert.Contains(t, text, "Flight 1: AA 101")
	assert.Contains(t, text, "Duration: 7h 30m")
}

func TestRenderWeather(t *testing.T) {
	renderer := NewRenderer(rand.New(rand.NewSource(1)))

	forecast := []response_models.ForecastDay{
		{Date: "2026-09-07", Conditions: "Sunny", TempMin: 15, TempMax: 25, PrecipProbability: 10},
	}

	text := renderer.RenderWeather("Paris", "France", forecast)

	assert.Contains(t, text, "Weather forecast for Paris, France:")
	assert.Contains(t, text, "Monday, Sep 07: Sunny, 15°C to 25°C")
	assert.Contains(t, text, "Precipitation: 10%")
}
