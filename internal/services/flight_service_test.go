package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAirportsSimulated(t *testing.T) {
	flightService := NewFlightService("", "")

	airports := flightService.SearchAirports(context.Background(), "flights from New York")
	require.Len(t, airports, 1)
	assert.Equal(t, "JFK", airports[0].Code)

	assert.Empty(t, flightService.SearchAirports(context.Background(), "Atlantis"))
}

func TestGetFlightsSimulated(t *testing.T) {
	flightService := NewFlightService("", "")

	flights := flightService.GetFlights(context.Background(), "JFK", "LHR", "2026/10/01")
	require.Len(t, flights, 3)

	for i, flight := range flights {
		assert.Equal(t, simulatedAirlines[i%len(simulatedAirlines)], flight.Carrier)
		assert.Equal(t, simulatedFlightNumbers[i%len(simulatedFlightNumbers)], flight.FlightNumber)
		assert.Equal(t, 450, flight.DurationMinutes)
		assert.Equal(t, "Scheduled", flight.Status)
	}
}

func TestGetFlightsDurationHeuristics(t *testing.T) {
	flightService := NewFlightService("", "")

	jfkCdg := flightService.GetFlights(context.Background(), "CDG", "JFK", "2026/10/01")
	require.NotEmpty(t, jfkCdg)
	assert.Equal(t, 420, jfkCdg[0].DurationMinutes)

	nrtJfk := flightService.GetFlights(context.Background(), "NRT", "JFK", "2026/10/01")
	require.NotEmpty(t, nrtJfk)
	assert.Equal(t, 840, nrtJfk[0].DurationMinutes)

	other := flightService.GetFlights(context.Background(), "SYD", "BKK", "2026/10/01")
	require.NotEmpty(t, other)
	assert.Equal(t, 150, other[0].DurationMinutes)
}
