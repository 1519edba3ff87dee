package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDestinationsAppliesRegionFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/searchJSON", r.URL.Path)
		assert.Equal(t, "Springfield", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"geonames": [
			{"name": "Springfield", "countryName": "United States", "adminName1": "Ohio", "fcode": "PPL", "population": 58662, "lat": "39.92", "lng": "-83.81"},
			{"name": "Springfield", "countryName": "United States", "adminName1": "Illinois", "fcode": "PPLA", "population": 114394, "lat": "39.80", "lng": "-89.64"}
		]}`)
	}))
	defer server.Close()

	geoService := NewGeoService("demo", server.URL)
	results := geoService.SearchDestinations(context.Background(), "Springfield, Ohio", 10, "P")

	require.Len(t, results, 1)
	assert.Equal(t, "Ohio", results[0].AdminRegion)
}

func TestSearchDestinationsSortsByPopulation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"geonames": [
			{"name": "Small Town", "countryName": "France", "fcode": "PPL", "population": 1000, "lat": "48.0", "lng": "2.0"},
			{"name": "Big City", "countryName": "France", "fcode": "PPLC", "population": 2000000, "lat": "48.8", "lng": "2.3"}
		]}`)
	}))
	defer server.Close()

	geoService := NewGeoService("demo", server.URL)
	results := geoService.SearchDestinations(context.Background(), "somewhere", 10, "P")

	require.Len(t, results, 2)
	assert.Equal(t, "Big City", results[0].Name)
}

func TestSearchDestinationsSkipsNonPopulatedPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"geonames": [
			{"name": "Some Mountain", "countryName": "France", "fcode": "MT", "population": 0, "lat": "45.0", "lng": "6.0"},
			{"name": "Lyon", "countryName": "France", "fcode": "PPLA", "population": 513275, "lat": "45.75", "lng": "4.85"}
		]}`)
	}))
	defer server.Close()

	geoService := NewGeoService("demo", server.URL)

	filtered := geoService.SearchDestinations(context.Background(), "lyon", 10, "P")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Lyon", filtered[0].Name)

	broadened := geoService.SearchDestinations(context.Background(), "lyon", 10, "")
	assert.Len(t, broadened, 2)
}

func TestSearchDestinationsFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	geoService := NewGeoService("demo", server.URL)
	results := geoService.SearchDestinations(context.Background(), "Paris", 5, "P")

	require.Len(t, results, 1)
	assert.Equal(t, "Paris", results[0].Name)
	assert.Equal(t, "France", results[0].Country)
	assert.InDelta(t, 48.8566, results[0].Latitude, 0.001)
}

func TestGetNearbyPlacesFallsBackByProximity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	geoService := NewGeoService("demo", server.URL)

	places := geoService.GetNearbyPlaces(context.Background(), 48.86, 2.35, 10, 10, "P")
	require.NotEmpty(t, places)
	assert.Equal(t, "Eiffel Tower", places[0].Name)

	nowhere := geoService.GetNearbyPlaces(context.Background(), 0, 0, 10, 10, "P")
	assert.Empty(t, nowhere)
}

func TestGetCountryInfoFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	geoService := NewGeoService("demo", server.URL)

	info := geoService.GetCountryInfo(context.Background(), "france")
	assert.Equal(t, "Europe", info.Continent)
	assert.Equal(t, "Paris", info.Capital)

	unknown := geoService.GetCountryInfo(context.Background(), "Atlantis")
	assert.Equal(t, "Unknown", unknown.Continent)
	assert.Zero(t, unknown.Population)
}
