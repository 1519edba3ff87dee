package services

import (
	"fmt"
	"math/rand"
	"strings"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

// Renderer turns structured results into the assistant's reply text. The
// random source is injected so tests can pin template choices.
type Renderer struct {
	rng *rand.Rand
}

func NewRenderer(rng *rand.Rand) *Renderer {
	return &Renderer{rng: rng}
}

var destinationTemplates = []string{
	"Here are some great options matching your search:",
	"Based on your preferences, I recommend:",
	"You might enjoy these destinations:",
	"I found these perfect locations for you:",
	"Top picks for your travel plans:",
}

var noResultsTemplates = []string{
	"I couldn't find any destinations matching your search. Could you provide more details?",
	"No results found. Try being more specific about your destination.",
	"Hmm, I'm not finding anything. Maybe try a different location?",
}

var followUpTemplates = []string{
	"Would you like a detailed itinerary for any of these destinations?",
	"Shall I create a full itinerary for one of these options?",
	"Would you like more information about any of these destinations?",
}

func (r *Renderer) DestinationTemplate() string {
	return destinationTemplates[r.rng.Intn(len(destinationTemplates))]
}

func (r *Renderer) BudgetTemplate(budget int) string {
	return fmt.Sprintf("With your $%d budget, consider these options:", budget)
}

func (r *Renderer) NoResultsMessage() string {
	return noResultsTemplates[r.rng.Intn(len(noResultsTemplates))]
}

func (r *Renderer) FollowUpPrompt() string {
	return followUpTemplates[r.rng.Intn(len(followUpTemplates))]
}

func (r *Renderer) ItineraryPreview(destinationName string) string {
	previews := []string{
		fmt.Sprintf("A 3-day trip to %s could include exploring the city center, visiting top attractions, and enjoying local cuisine.", destinationName),
		fmt.Sprintf("Your %s adventure might feature cultural experiences, delicious food, and scenic views.", destinationName),
		fmt.Sprintf("In %s, you could spend your days sightseeing, relaxing, and immersing yourself in local culture.", destinationName),
	}
	return previews[r.rng.Intn(len(previews))]
}

func (r *Renderer) RenderItinerary(itinerary *response_models.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%d-Day Itinerary for %s, %s:\n", len(itinerary.Days), itinerary.DestinationName, itinerary.Country)

	for _, day := range itinerary.Days {
		fmt.Fprintf(&b, "\nDay %d", day.Day)
		if day.Weather != nil {
			fmt.Fprintf(&b, " - Weather: %s, %g°C to %g°C", day.Weather.Conditions, day.Weather.TempMin, day.Weather.TempMax)
		}
		b.WriteString(":\n")

		b.WriteString("Morning:\n")
		for _, line := range day.Morning {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\nAfternoon:\n")
		for _, line := range day.Afternoon {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\nEvening:\n")
		for _, line := range day.Evening {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	fmt.Fprintf(&b, "\nTravel Tips for %s:\n", itinerary.DestinationName)
	for _, tip := range itinerary.TravelTips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	return b.String()
}

func (r *Renderer) RenderFlights(origin, originCode, destination, destinationCode string, flights []response_models.Flight) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Flights from %s (%s) to %s (%s):\n\n", origin, originCode, destination, destinationCode)

	for i, flight := range flights {
		hours := flight.DurationMinutes / 60
		minutes := flight.DurationMinutes % 60

		fmt.Fprintf(&b, "Flight %d: %s %s\n", i+1, flight.Carrier, flight.FlightNumber)
		fmt.Fprintf(&b, "  Departure: %s\n", flight.DepartureTime)
		fmt.Fprintf(&b, "  Arrival: %s\n", flight.ArrivalTime)
		fmt.Fprintf(&b, "  Duration: %dh %dm\n\n", hours, minutes)
	}

	return b.String()
}

func (r *Renderer) RenderWeather(destinationName, country string, forecast []response_models.ForecastDay) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather forecast for %s, %s:\n\n", destinationName, country)

	for _, day := range forecast {
		fmt.Fprintf(&b, "%s: %s, %g°C to %g°C\n", utils.FormatForecastDay(day.Date), day.Conditions, day.TempMin, day.TempMax)
		fmt.Fprintf(&b, "  Precipitation: %g%%\n\n", day.PrecipProbability)
	}

	return b.String()
}
