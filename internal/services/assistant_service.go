package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"

	"github.com/google/uuid"
)

// Intent labels for a classified query.
const (
	IntentDestinationSearch     = "destination_search"
	IntentItineraryRequest      = "itinerary_request"
	IntentFlightSearch          = "flight_search"
	IntentWeatherInfo           = "weather_info"
	IntentTravelRecommendations = "travel_recommendations"
	IntentExcursionSearch       = "excursion_search"
	IntentFollowUp              = "contextual_followup"
)

type AssistantServiceInterface interface {
	ProcessQuery(ctx context.Context, userID uuid.UUID, query string) (*response_models.AssistantReply, error)
}

// AssistantService routes a free-text query to the right composer: it resolves
// short affirmative follow-ups against the previous reply, otherwise classifies
// the query with an ordered pattern table and dispatches. Every path ends in a
// user-facing string; lookups that come up empty produce a sentinel message,
// never an error.
type AssistantService struct {
	contextService   ContextServiceInterface
	retrieverService RetrieverServiceInterface
	itineraryService ItineraryServiceInterface
	geoService       GeoServiceInterface
	flightService    FlightServiceInterface
	weatherService   WeatherServiceInterface
	budgetService    BudgetServiceInterface
	renderer         *Renderer
	historyRepo      repositories.HistoryRepository
}

func NewAssistantService(
	contextService ContextServiceInterface,
	retrieverService RetrieverServiceInterface,
	itineraryService ItineraryServiceInterface,
	geoService GeoServiceInterface,
	flightService FlightServiceInterface,
	weatherService WeatherServiceInterface,
	budgetService BudgetServiceInterface,
	renderer *Renderer,
	historyRepo repositories.HistoryRepository,
) AssistantServiceInterface {
	return &AssistantService{
		contextService:   contextService,
		retrieverService: retrieverService,
		itineraryService: itineraryService,
		geoService:       geoService,
		flightService:    flightService,
		weatherService:   weatherService,
		budgetService:    budgetService,
		renderer:         renderer,
		historyRepo:      historyRepo,
	}
}

type intentPattern struct {
	intent  string
	pattern *regexp.Regexp
}

// Evaluated in declared order; the first match wins.
var intentPatterns = []intentPattern{
	{IntentDestinationSearch, regexp.MustCompile(`(?i)where to go|recommend destinations|suggest places|where should I visit`)},
	{IntentItineraryRequest, regexp.MustCompile(`(?i)itinerary for|travel plan for|things to do in|activities in|visit|go to`)},
	{IntentFlightSearch, regexp.MustCompile(`(?i)flights from|flights to|flights between`)},
	{IntentWeatherInfo, regexp.MustCompile(`(?i)weather in|weather forecast for|climate in`)},
	{IntentTravelRecommendations, regexp.MustCompile(`(?i)recommend|suggest|looking for|\$\d+|budget of|within budget`)},
	{IntentExcursionSearch, regexp.MustCompile(`(?i)excursions in|things to do in|activities in|attractions in|places to visit in`)},
}

var (
	budgetRe             = regexp.MustCompile(`(?i)\$(\d+)|(\d+)\s*(?:dollars|USD)`)
	itineraryDestRe      = regexp.MustCompile(`(?i)(?:itinerary for|travel plan for|things to do in|activities in|visit|go to)\s+(?:the\s+)?([\w\s,]+)`)
	trailingDaysRe       = regexp.MustCompile(`(?i)[\s,]*(?:for\s+)?\d+\s+days?\b.*$`)
	daysRe               = regexp.MustCompile(`(?i)(\d+)\s+days?`)
	excursionLocationRe  = regexp.MustCompile(`(?i)(?:excursions in|things to do in|activities in|attractions in|places to visit in)\s+(?:the\s+)?([\w\s,]+)`)
	flightRouteRe        = regexp.MustCompile(`(?i)flights from\s+([\w\s]+?)\s+to\s+([\w\s]+)`)
	flightDateRe         = regexp.MustCompile(`(?i)on\s+(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})`)
	weatherLocationRe    = regexp.MustCompile(`(?i)weather (?:in|forecast for|for)\s+([\w\s]+)`)
	optionDestinationRe  = regexp.MustCompile(`Option 1: ([\w\s]+), ([\w\s]+)`)
	numberedDestRe       = regexp.MustCompile(`(?m)^1\. ([\w\s]+), ([\w\s]+)$`)
	itineraryHeadingRe   = regexp.MustCompile(`Itinerary for ([\w\s]+),`)
	preferenceTypeRe     = regexp.MustCompile(`beach|mountain|city|rural|island|nature|culture|historical`)
	preferenceActivityRe = regexp.MustCompile(`hiking|swimming|shopping|museums|food|dining|adventure|relaxation`)
)

var affirmativeTokens = map[string]bool{"yes": true, "more": true, "sure": true, "please": true}

func (s *AssistantService) ProcessQuery(ctx context.Context, userID uuid.UUID, query string) (*response_models.AssistantReply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	userKey := userID.String()

	intent, response := s.answer(ctx, userKey, query)

	s.contextService.Record(userKey, query, response)
	s.appendHistory(userID, query, response, intent)

	return &response_models.AssistantReply{Intent: intent, Response: response}, nil
}

func (s *AssistantService) answer(ctx context.Context, userKey, query string) (string, string) {
	lastResponse := s.contextService.LastResponse(userKey)
	if lastResponse != "" && affirmativeTokens[strings.ToLower(query)] {
		if reply, ok := s.resolveFollowUp(ctx, lastResponse); ok {
			return IntentFollowUp, reply
		}
	}

	augmented := s.contextService.Rewrite(userKey, query)

	intent := ""
	for _, entry := range intentPatterns {
		if entry.pattern.MatchString(augmented) {
			intent = entry.intent
			break
		}
	}
	if intent == "" {
		// Bare destination names read as itinerary requests.
		if len(s.geoService.SearchDestinations(ctx, query, 1, "P")) > 0 {
			intent = IntentItineraryRequest
			augmented = query
		} else {
			intent = IntentTravelRecommendations
		}
	}

	switch intent {
	case IntentDestinationSearch:
		return intent, s.planTrip(ctx, augmented)
	case IntentItineraryRequest:
		return intent, s.itineraryReply(ctx, augmented)
	case IntentExcursionSearch:
		return intent, s.excursionReply(ctx, augmented)
	case IntentFlightSearch:
		return intent, s.flightReply(ctx, augmented)
	case IntentWeatherInfo:
		return intent, s.weatherReply(ctx, augmented)
	default:
		return IntentTravelRecommendations, s.recommendationsReply(ctx, augmented)
	}
}

// resolveFollowUp handles a bare affirmative by re-reading the previous reply:
// a destination list expands into a 3-day itinerary for its first option, a
// previous itinerary expands to 5 days.
func (s *AssistantService) resolveFollowUp(ctx context.Context, lastResponse string) (string, bool) {
	switch {
	case strings.Contains(lastResponse, "recommended destinations") || strings.Contains(lastResponse, "options matching your search"):
		match := optionDestinationRe.FindStringSubmatch(lastResponse)
		if match == nil {
			match = numberedDestRe.FindStringSubmatch(lastResponse)
		}
		if match == nil {
			return "I couldn't find destination details from our previous conversation. Could you specify which destination you're interested in?", true
		}
		return s.composeItineraryText(ctx, strings.TrimSpace(match[1]), 3), true

	case strings.Contains(strings.ToLower(lastResponse), "itinerary"):
		match := itineraryHeadingRe.FindStringSubmatch(lastResponse)
		if match == nil {
			return "I couldn't find the destination from our previous conversation. Could you specify which destination you'd like more details about?", true
		}
		text := s.composeItineraryText(ctx, strings.TrimSpace(match[1]), 5)
		return text + "\n\nI've expanded the itinerary to 5 days with more detailed activities and recommendations.", true
	}
	return "", false
}

// extractBudget pulls a total trip-budget ceiling out of the query. Only
// numbers with a currency marker count, so a bare day count never reads as
// money.
func extractBudget(text string) (int, bool) {
	match := budgetRe.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	raw := match[1]
	if raw == "" {
		raw = match[2]
	}
	budget, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return budget, true
}

// filterByBudget keeps destinations whose estimated 7-day cost fits the
// ceiling. When nothing fits, the unfiltered set is kept so the user still
// gets options, annotated as tight.
func (s *AssistantService) filterByBudget(destinations []response_models.Destination, budget int) []response_models.Destination {
	var filtered []response_models.Destination
	for _, dest := range destinations {
		if s.budgetService.EstimateDailyCost(dest)*7 <= budget {
			filtered = append(filtered, dest)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}
	return destinations
}

func (s *AssistantService) budgetAssessment(dailyCost, budget int) string {
	totalTripCost := dailyCost * 7
	switch {
	case float64(totalTripCost) <= float64(budget)*0.7:
		return fmt.Sprintf("Excellent value for your $%d budget", budget)
	case totalTripCost <= budget:
		return fmt.Sprintf("Good match for your $%d budget", budget)
	default:
		return fmt.Sprintf("May be tight for your $%d budget", budget)
	}
}

func (s *AssistantService) planTrip(ctx context.Context, query string) string {
	budget, hasBudget := extractBudget(query)

	template := s.renderer.DestinationTemplate()
	if hasBudget {
		template = s.renderer.BudgetTemplate(budget)
	}

	destinations := s.retrieverService.SearchDestinations(ctx, query, 3)
	if len(destinations) == 0 {
		return s.renderer.NoResultsMessage()
	}
	if hasBudget {
		destinations = s.filterByBudget(destinations, budget)
	}

	var b strings.Builder
	b.WriteString(template)
	b.WriteString("\n\n")

	for i, dest := range destinations {
		fmt.Fprintf(&b, "Option %d: %s, %s\n", i+1, dest.Name, dest.Country)

		if nearby := s.nearbyAttractions(ctx, dest); len(nearby) > 0 {
			fmt.Fprintf(&b, "  - Nearby attractions: %s\n", strings.Join(nearby, ", "))
		}
		if dest.Population > 0 {
			fmt.Fprintf(&b, "  - Population: %d\n", dest.Population)
		}
		if len(dest.Activities) > 0 {
			activities := dest.Activities
			if len(activities) > 3 {
				activities = activities[:3]
			}
			fmt.Fprintf(&b, "  - Top activities: %s\n", strings.Join(activities, ", "))
		}

		dailyCost := s.budgetService.EstimateDailyCost(dest)
		fmt.Fprintf(&b, "  - Estimated daily cost: $%d per person\n", dailyCost)

		tier := dest.BudgetTier
		if tier == "" {
			tier = response_models.BudgetMedium
		}
		fmt.Fprintf(&b, "  - Budget level: %s\n", titleCase(tier))

		if hasBudget {
			fmt.Fprintf(&b, "  - Budget assessment: %s\n", s.budgetAssessment(dailyCost, budget))
		}

		fmt.Fprintf(&b, "\n  Sample itinerary preview:\n%s\n\n", s.renderer.ItineraryPreview(dest.Name))
	}

	b.WriteString(s.renderer.FollowUpPrompt())
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *AssistantService) nearbyAttractions(ctx context.Context, dest response_models.Destination) []string {
	if dest.Latitude == 0 && dest.Longitude == 0 {
		return nil
	}
	var names []string
	for _, place := range s.geoService.GetNearbyPlaces(ctx, dest.Latitude, dest.Longitude, 5, 3, "P") {
		if place.Name != dest.Name {
			names = append(names, place.Name)
		}
	}
	return names
}

func (s *AssistantService) itineraryReply(ctx context.Context, query string) string {
	destination := query
	if match := itineraryDestRe.FindStringSubmatch(query); match != nil {
		destination = strings.TrimSpace(match[1])
	}
	// "Paris for 5 days" names a duration, not a place.
	destination = strings.TrimSpace(trailingDaysRe.ReplaceAllString(destination, ""))
	if destination == "" {
		return "Please specify a destination for your itinerary."
	}

	days := 3
	if match := daysRe.FindStringSubmatch(query); match != nil {
		if parsed, err := strconv.Atoi(match[1]); err == nil && parsed > 0 {
			days = parsed
		}
	}

	return s.composeItineraryText(ctx, destination, days)
}

func (s *AssistantService) composeItineraryText(ctx context.Context, destination string, days int) string {
	itinerary, err := s.itineraryService.ComposeForName(ctx, destination, days)
	if err != nil {
		if errors.Is(err, utils.ErrDestinationNotFound) {
			return fmt.Sprintf("Could not generate itinerary for %s. Destination not found in database.", destination)
		}
		log.Printf("Error composing itinerary for %s: %v", destination, err)
		return fmt.Sprintf("Could not generate itinerary for %s. Destination not found in database.", destination)
	}
	return s.renderer.RenderItinerary(itinerary)
}

func (s *AssistantService) excursionReply(ctx context.Context, query string) string {
	match := excursionLocationRe.FindStringSubmatch(query)
	if match == nil {
		return "Please specify a location to find excursions and attractions."
	}
	location := strings.TrimSpace(match[1])

	destinations := s.geoService.SearchDestinations(ctx, location, 1, "P")
	if len(destinations) == 0 {
		return fmt.Sprintf("I couldn't find information about %s. Could you try another destination?", location)
	}
	dest := destinations[0]

	var b strings.Builder
	fmt.Fprintf(&b, "Top attractions and things to do in %s, %s:\n\n", dest.Name, dest.Country)

	nearby := s.geoService.GetNearbyPlaces(ctx, dest.Latitude, dest.Longitude, 20, 10, "")
	if len(nearby) > 0 {
		i := 0
		for _, place := range nearby {
			if place.Name == dest.Name {
				continue
			}
			i++
			fmt.Fprintf(&b, "%d. %s\n", i, place.Name)
			if place.Category != "" {
				fmt.Fprintf(&b, "   Type: %s\n", place.Category)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	generic := []string{
		fmt.Sprintf("Explore the historic center of %s", dest.Name),
		"Visit local museums and galleries",
		"Experience the local cuisine at restaurants and cafes",
		"Shop at local markets and boutiques",
		"Take a guided city tour",
		"Enjoy the nightlife and entertainment",
		"Relax in parks and green spaces",
		"Take day trips to nearby attractions",
	}
	for i, activity := range generic {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, activity)
	}
	return b.String()
}

func (s *AssistantService) flightReply(ctx context.Context, query string) string {
	match := flightRouteRe.FindStringSubmatch(query)
	if match == nil {
		return "Please specify origin and destination for flight search."
	}
	origin := strings.TrimSpace(match[1])
	destination := strings.TrimSpace(match[2])

	date := utils.DefaultTravelDate()
	if dateMatch := flightDateRe.FindStringSubmatch(query); dateMatch != nil {
		date = utils.NormalizeTravelDate(dateMatch[1])
	}

	originAirports := s.flightService.SearchAirports(ctx, origin)
	destinationAirports := s.flightService.SearchAirports(ctx, destination)
	if len(originAirports) == 0 || len(destinationAirports) == 0 {
		return fmt.Sprintf("Could not find airports for %s and/or %s.", origin, destination)
	}

	originCode := originAirports[0].Code
	destinationCode := destinationAirports[0].Code

	flights := s.flightService.GetFlights(ctx, originCode, destinationCode, date)
	if len(flights) == 0 {
		return fmt.Sprintf("No flights found from %s (%s) to %s (%s) on %s.", origin, originCode, destination, destinationCode, date)
	}

	return s.renderer.RenderFlights(origin, originCode, destination, destinationCode, flights)
}

func (s *AssistantService) weatherReply(ctx context.Context, query string) string {
	match := weatherLocationRe.FindStringSubmatch(query)
	if match == nil {
		return "Please specify a location for weather information."
	}
	location := strings.TrimSpace(match[1])

	destinations := s.geoService.SearchDestinations(ctx, location, 1, "P")
	if len(destinations) == 0 {
		return fmt.Sprintf("Could not find weather information for %s.", location)
	}
	dest := destinations[0]

	forecast := s.weatherService.GetForecast(ctx, dest.Latitude, dest.Longitude, 7)
	if len(forecast) == 0 {
		return fmt.Sprintf("Weather forecast not available for %s, %s.", dest.Name, dest.Country)
	}

	return s.renderer.RenderWeather(dest.Name, dest.Country, forecast)
}

func (s *AssistantService) recommendationsReply(ctx context.Context, query string) string {
	queryLower := strings.ToLower(query)

	var queryParts []string
	queryParts = append(queryParts, preferenceTypeRe.FindAllString(queryLower, -1)...)
	queryParts = append(queryParts, preferenceActivityRe.FindAllString(queryLower, -1)...)

	searchQuery := query
	if len(queryParts) > 0 {
		searchQuery = strings.Join(queryParts, " ")
	}

	budget, hasBudget := extractBudget(query)

	destinations := s.retrieverService.SearchDestinations(ctx, searchQuery, 3)
	if len(destinations) == 0 {
		return "I couldn't find any destinations matching your preferences. Could you provide more details?"
	}
	if hasBudget {
		destinations = s.filterByBudget(destinations, budget)
	}

	var b strings.Builder
	if hasBudget {
		fmt.Fprintf(&b, "With your $%d budget, consider these options:\n\n", budget)
	} else {
		b.WriteString("Based on your preferences, here are some recommended destinations:\n\n")
	}

	for i, dest := range destinations {
		fmt.Fprintf(&b, "%d. %s, %s\n", i+1, dest.Name, dest.Country)

		if len(dest.Activities) > 0 {
			activities := dest.Activities
			if len(activities) > 3 {
				activities = activities[:3]
			}
			fmt.Fprintf(&b, "   Perfect for: %s\n", strings.Join(activities, ", "))
		}

		switch dest.BudgetTier {
		case response_models.BudgetLow:
			b.WriteString("   Affordability: Budget-friendly destination\n")
		case response_models.BudgetHigh:
			b.WriteString("   Affordability: Premium destination\n")
		default:
			b.WriteString("   Affordability: Moderately priced destination\n")
		}

		dailyCost := s.budgetService.EstimateDailyCost(dest)
		fmt.Fprintf(&b, "   Estimated daily cost: $%d per person\n", dailyCost)

		if hasBudget {
			fmt.Fprintf(&b, "   Budget assessment: %s\n", s.budgetAssessment(dailyCost, budget))
		}
		b.WriteString("\n")
	}

	b.WriteString("Would you like more information about any of these destinations?")
	return b.String()
}

func (s *AssistantService) appendHistory(userID uuid.UUID, query, response, intent string) {
	entry := &db_models.QueryHistory{
		UserID:   userID,
		Query:    query,
		Response: response,
		Intent:   intent,
	}
	go func() {
		if err := s.historyRepo.Insert(context.Background(), entry); err != nil {
			log.Printf("Failed to store query history for user %s: %v", userID, err)
		}
	}()
}
