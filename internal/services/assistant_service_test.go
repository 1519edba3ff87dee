package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"tripwise/internal/models/response_models"
	"tripwise/internal/search"
	"tripwise/pkg/memcache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(geo *stubGeoService) (AssistantServiceInterface, ContextServiceInterface) {
	contextService := NewContextService(memcache.NewConversationStore(5))
	budgetService := NewBudgetService()
	retriever := NewRetrieverService(geo, budgetService, search.NewIndex(), nil)
	itinerary := NewItineraryService(geo, NewRouteService(""), NewWeatherService(""))
	renderer := NewRenderer(rand.New(rand.NewSource(1)))

	assistant := NewAssistantService(
		contextService,
		retriever,
		itinerary,
		geo,
		NewFlightService("", ""),
		NewWeatherService(""),
		budgetService,
		renderer,
		&stubHistoryRepo{},
	)
	return assistant, contextService
}

func parisGeoStub() *stubGeoService {
	geo := newStubGeoService()
	geo.destinations["paris"] = []response_models.Destination{parisDestination()}
	geo.countryInfo["France"] = response_models.CountryInfo{Continent: "Europe", Population: 67390000}
	return geo
}

func TestExtractBudget(t *testing.T) {
	cases := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"I have a $1500 budget", 1500, true},
		{"around 2000 dollars total", 2000, true},
		{"500 USD for the week", 500, true},
		{"no numbers here", 0, false},
		{"itinerary for Paris for 5 days", 0, false},
	}

	for _, tc := range cases {
		got, ok := extractBudget(tc.text)
		assert.Equal(t, tc.wantOK, ok, tc.text)
		if tc.wantOK {
			assert.Equal(t, tc.want, got, tc.text)
		}
	}
}

func TestProcessQueryItineraryEndToEnd(t *testing.T) {
	assistant, _ := newTestAssistant(parisGeoStub())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "itinerary for Paris for 5 days")
	require.NoError(t, err)

	assert.Equal(t, IntentItineraryRequest, reply.Intent)
	assert.Contains(t, reply.Response, "5-Day Itinerary for Paris, France:")
	assert.Equal(t, 5, strings.Count(reply.Response, "\nDay "))
	assert.Contains(t, reply.Response, "Spring (April-June) and Fall (September-October)")
}

func TestProcessQueryItineraryNotFound(t *testing.T) {
	assistant, _ := newTestAssistant(newStubGeoService())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "itinerary for Atlantis")
	require.NoError(t, err)

	assert.Contains(t, reply.Response, "Could not generate itinerary for Atlantis")
}

func TestProcessQueryFlightsEndToEnd(t *testing.T) {
	assistant, _ := newTestAssistant(newStubGeoService())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "flights from New York to London")
	require.NoError(t, err)

	assert.Equal(t, IntentFlightSearch, reply.Intent)
	assert.Contains(t, reply.Response, "Flights from New York (JFK) to London (LHR):")
	assert.Contains(t, reply.Response, "Flight 1:")
	assert.Contains(t, reply.Response, "Flight 3:")
	assert.NotContains(t, reply.Response, "Flight 4:")
	assert.Contains(t, reply.Response, "Duration: 7h 30m")
}

func TestProcessQueryWeather(t *testing.T) {
	assistant, _ := newTestAssistant(parisGeoStub())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "weather in Paris")
	require.NoError(t, err)

	assert.Equal(t, IntentWeatherInfo, reply.Intent)
	assert.Contains(t, reply.Response, "Weather forecast for Paris, France:")
	assert.Contains(t, reply.Response, "Sunny")
	assert.Contains(t, reply.Response, "Precipitation:")
}

func TestProcessQueryDestinationSearch(t *testing.T) {
	assistant, _ := newTestAssistant(newStubGeoService())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "where to go for a city break")
	require.NoError(t, err)

	assert.Equal(t, IntentDestinationSearch, reply.Intent)
	assert.Contains(t, reply.Response, "Option 1:")
	assert.Contains(t, reply.Response, "Estimated daily cost:")
}

func TestProcessQueryRecommendationsWithBudget(t *testing.T) {
	assistant, _ := newTestAssistant(newStubGeoService())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "looking for a beach trip with a $400 budget")
	require.NoError(t, err)

	assert.Equal(t, IntentTravelRecommendations, reply.Intent)
	assert.Contains(t, reply.Response, "With your $400 budget, consider these options:")
	assert.Contains(t, reply.Response, "Budget assessment:")
}

func TestProcessQueryIntentOrder(t *testing.T) {
	// "recommend destinations" is a destination_search trigger and must win
	// over the later travel_recommendations pattern.
	assistant, _ := newTestAssistant(newStubGeoService())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "recommend destinations for me")
	require.NoError(t, err)

	assert.Equal(t, IntentDestinationSearch, reply.Intent)
}

func TestProcessQueryBareDestinationName(t *testing.T) {
	assistant, _ := newTestAssistant(parisGeoStub())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, IntentItineraryRequest, reply.Intent)
	assert.Contains(t, reply.Response, "Itinerary for Paris, France:")
}

func TestProcessQueryExcursionsListsNearbyAttractions(t *testing.T) {
	geo := parisGeoStub()
	geo.nearby = []response_models.NearbyPlace{
		{Name: "Paris"},
		{Name: "Eiffel Tower", Category: "tower"},
		{Name: "Louvre Museum", Category: "museum"},
	}
	assistant, _ := newTestAssistant(geo)

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "things to do in Paris")
	require.NoError(t, err)

	assert.Equal(t, IntentExcursionSearch, reply.Intent)
	assert.Contains(t, reply.Response, "Top attractions and things to do in Paris, France:")
	assert.Contains(t, reply.Response, "1. Eiffel Tower")
	assert.Contains(t, reply.Response, "   Type: tower")
	assert.Contains(t, reply.Response, "2. Louvre Museum")
	assert.NotContains(t, reply.Response, "1. Paris")
}

func TestProcessQueryExcursionsGenericFallback(t *testing.T) {
	assistant, _ := newTestAssistant(parisGeoStub())

	reply, err := assistant.ProcessQuery(context.Background(), uuid.New(), "excursions in Paris")
	require.NoError(t, err)

	assert.Equal(t, IntentExcursionSearch, reply.Intent)
	assert.Contains(t, reply.Response, "1. Explore the historic center of Paris")
	assert.Contains(t, reply.Response, "Take a guided city tour")
}

func TestProcessQueryAffirmativeExpandsDestinationList(t *testing.T) {
	assistant, contextService := newTestAssistant(parisGeoStub())
	userID := uuid.New()

	contextService.Record(userID.String(), "where to go",
		"Here are some great options matching your search:\n\nOption 1: Paris, France\n")

	reply, err := assistant.ProcessQuery(context.Background(), userID, "yes")
	require.NoError(t, err)

	assert.Equal(t, "contextual_followup", reply.Intent)
	assert.Contains(t, reply.Response, "3-Day Itinerary for Paris, France:")
}

func TestProcessQueryAffirmativeExpandsItinerary(t *testing.T) {
	assistant, contextService := newTestAssistant(parisGeoStub())
	userID := uuid.New()

	contextService.Record(userID.String(), "itinerary for Paris",
		"\n3-Day Itinerary for Paris, France:\nDay 1:\n...")

	reply, err := assistant.ProcessQuery(context.Background(), userID, "more")
	require.NoError(t, err)

	assert.Equal(t, IntentFollowUp, reply.Intent)
	assert.Contains(t, reply.Response, "5-Day Itinerary for Paris, France:")
	assert.Contains(t, reply.Response, "I've expanded the itinerary to 5 days")
}

func TestProcessQueryRejectsEmptyQuery(t *testing.T) {
	assistant, _ := newTestAssistant(newStubGeoService())

	_, err := assistant.ProcessQuery(context.Background(), uuid.New(), "   ")
	assert.Error(t, err)
}
