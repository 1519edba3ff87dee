package services

import (
	"context"
	"testing"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItineraryService(geo *stubGeoService) ItineraryServiceInterface {
	return NewItineraryService(geo, NewRouteService(""), NewWeatherService(""))
}

func TestComposeReturnsExactlyRequestedDays(t *testing.T) {
	geo := newStubGeoService()
	geo.countryInfo["France"] = response_models.CountryInfo{Continent: "Europe", Population: 67390000}
	svc := newTestItineraryService(geo)

	for _, days := range []int{1, 3, 5} {
		itinerary := svc.Compose(context.Background(), parisDestination(), days)
		require.Len(t, itinerary.Days, days)
		for _, day := range itinerary.Days {
			assert.NotEmpty(t, day.Morning)
			assert.NotEmpty(t, day.Evening)
		}
	}
}

func TestComposeWeatherConditionedBreakfast(t *testing.T) {
	geo := newStubGeoService()
	svc := newTestItineraryService(geo)

	// Simulated forecast: day 1 Sunny, day 2 Partly Cloudy, day 3 Cloudy.
	itinerary := svc.Compose(context.Background(), parisDestination(), 3)
	require.Len(t, itinerary.Days, 3)

	assert.Contains(t, itinerary.Days[0].Morning, "Enjoy breakfast at an outdoor café")
	assert.Contains(t, itinerary.Days[1].Morning, "Breakfast at a local café")

	// Day 3 is Cloudy with 60% precipitation, so the indoor line appears.
	assert.Contains(t, itinerary.Days[2].Afternoon, "Visit indoor attractions due to possible rain")
	assert.NotContains(t, itinerary.Days[0].Afternoon, "Visit indoor attractions due to possible rain")
}

func TestComposeEveningSuffixes(t *testing.T) {
	geo := newStubGeoService()
	svc := newTestItineraryService(geo)

	itinerary := svc.Compose(context.Background(), parisDestination(), 3)

	assert.Contains(t, itinerary.Days[0].Evening, "Evening stroll to get oriented with the area")
	assert.Contains(t, itinerary.Days[1].Evening, "Relax and enjoy local entertainment")
	assert.Contains(t, itinerary.Days[2].Evening, "Farewell dinner with local specialties")
}

func TestComposeTravelTips(t *testing.T) {
	geo := newStubGeoService()
	geo.countryInfo["France"] = response_models.CountryInfo{Continent: "Europe", Population: 67390000}
	svc := newTestItineraryService(geo)

	itinerary := svc.Compose(context.Background(), parisDestination(), 3)

	assert.Contains(t, itinerary.TravelTips, "Best time to visit: Spring (April-June) and Fall (September-October)")
	assert.Contains(t, itinerary.TravelTips, "Budget range: Medium to High")
	assert.Contains(t, itinerary.TravelTips, "Consider internal flights for longer distances")
	assert.Contains(t, itinerary.TravelTips, "Research public transportation options")
}

func TestComposeSouthernHemisphereSeasons(t *testing.T) {
	geo := newStubGeoService()
	svc := newTestItineraryService(geo)

	sydney := response_models.Destination{Name: "Sydney", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093}
	itinerary := svc.Compose(context.Background(), sydney, 2)

	assert.Contains(t, itinerary.TravelTips, "Best time to visit: Spring (September-November) and Fall (March-May)")
}

func TestComposeForNameNotFound(t *testing.T) {
	geo := newStubGeoService()
	svc := newTestItineraryService(geo)

	_, err := svc.ComposeForName(context.Background(), "Atlantis", 3)
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestComposeForNameResolvesDestination(t *testing.T) {
	geo := newStubGeoService()
	geo.destinations["paris"] = []response_models.Destination{parisDestination()}
	svc := newTestItineraryService(geo)

	itinerary, err := svc.ComposeForName(context.Background(), "Paris", 4)
	require.NoError(t, err)
	assert.Equal(t, "Paris", itinerary.DestinationName)
	assert.Len(t, itinerary.Days, 4)
}
