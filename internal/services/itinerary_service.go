package services

import (
	"context"
	"fmt"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type ItineraryServiceInterface interface {
	Compose(ctx context.Context, destination response_models.Destination, days int) *response_models.Itinerary
	ComposeForName(ctx context.Context, destinationName string, days int) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	geoService     GeoServiceInterface
	routeService   RouteServiceInterface
	weatherService WeatherServiceInterface
}

func NewItineraryService(geoService GeoServiceInterface, routeService RouteServiceInterface, weatherService WeatherServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		geoService:     geoService,
		routeService:   routeService,
		weatherService: weatherService,
	}
}

// ComposeForName resolves the destination by name first, then composes.
func (s *ItineraryService) ComposeForName(ctx context.Context, destinationName string, days int) (*response_models.Itinerary, error) {
	destinations := s.geoService.SearchDestinations(ctx, destinationName, 1, "P")
	if len(destinations) == 0 {
		return nil, utils.ErrDestinationNotFound
	}
	return s.Compose(ctx, destinations[0], days), nil
}

// Compose builds a day-by-day plan. Activities come from OpenRoute POIs when
// available, otherwise nearby GeoNames places padded with generic ones. The
// pool is repeated cyclically so short lists still fill every day.
func (s *ItineraryService) Compose(ctx context.Context, destination response_models.Destination, days int) *response_models.Itinerary {
	if days < 1 {
		days = 1
	}

	forecast := s.weatherService.GetForecast(ctx, destination.Latitude, destination.Longitude, days)
	activities := s.collectActivities(ctx, destination)

	if len(activities) < days*3 {
		repeated := make([]string, 0, days*3)
		for len(repeated) < days*3 {
			repeated = append(repeated, activities...)
		}
		activities = repeated
	}

	// At most 5 activities per day.
	perDay := len(activities) / days
	if perDay < 1 {
		perDay = 1
	}
	if perDay > 5 {
		perDay = 5
	}

	itinerary := &response_models.Itinerary{
		DestinationName: destination.Name,
		Country:         destination.Country,
		Days:            make([]response_models.DayPlan, 0, days),
	}

	for day := 1; day <= days; day++ {
		plan := response_models.DayPlan{Day: day}

		var dayWeather *response_models.DayWeather
		if day <= len(forecast) {
			entry := forecast[day-1]
			dayWeather = &response_models.DayWeather{
				Conditions:        entry.Conditions,
				TempMin:           entry.TempMin,
				TempMax:           entry.TempMax,
				PrecipProbability: entry.PrecipProbability,
			}
		}
		plan.Weather = dayWeather

		startIdx := (day - 1) * perDay
		endIdx := startIdx + perDay
		if endIdx > len(activities) {
			endIdx = len(activities)
		}

		if startIdx < endIdx {
			plan.Morning = append(plan.Morning, activities[startIdx])
		}
		if dayWeather != nil && dayWeather.Conditions == "Sunny" {
			plan.Morning = append(plan.Morning, "Enjoy breakfast at an outdoor café")
		} else {
			plan.Morning = append(plan.Morning, "Breakfast at a local café")
		}

		for i := startIdx + 1; i < startIdx+3 && i < endIdx; i++ {
			plan.Afternoon = append(plan.Afternoon, activities[i])
		}
		if dayWeather != nil && dayWeather.PrecipProbability > 50 {
			plan.Afternoon = append(plan.Afternoon, "Visit indoor attractions due to possible rain")
		}
		plan.Afternoon = append(plan.Afternoon, "Lunch at a recommended restaurant")

		if startIdx+3 < endIdx {
			plan.Evening = append(plan.Evening, activities[startIdx+3])
		}
		plan.Evening = append(plan.Evening, "Dinner at a local restaurant")
		switch {
		case day == 1:
			plan.Evening = append(plan.Evening, "Evening stroll to get oriented with the area")
		case day == days:
			plan.Evening = append(plan.Evening, "Farewell dinner with local specialties")
		default:
			plan.Evening = append(plan.Evening, "Relax and enjoy local entertainment")
		}

		itinerary.Days = append(itinerary.Days, plan)
	}

	itinerary.TravelTips = s.travelTips(ctx, destination)
	return itinerary
}

func (s *ItineraryService) collectActivities(ctx context.Context, destination response_models.Destination) []string {
	pois := s.routeService.GetPlacesOfInterest(ctx, destination.Longitude, destination.Latitude, 10000)
	if len(pois) > 0 {
		activities := make([]string, 0, len(pois))
		for _, poi := range pois {
			activities = append(activities, "Visit "+poi.Name)
		}
		return activities
	}

	var activities []string
	nearby := s.geoService.GetNearbyPlaces(ctx, destination.Latitude, destination.Longitude, 10, 10, "")
	for _, place := range nearby {
		activities = append(activities, "Visit "+place.Name)
	}

	activities = append(activities,
		fmt.Sprintf("Explore the city center of %s", destination.Name),
		fmt.Sprintf("Try local cuisine in %s", destination.Name),
		"Shop at local markets",
		"Visit museums and galleries",
		"Take a guided city tour",
		"Relax in a local park",
		"Experience the nightlife",
		"Join a walking tour",
	)
	return activities
}

func (s *ItineraryService) travelTips(ctx context.Context, destination response_models.Destination) []string {
	var tips []string

	if destination.Latitude > 0 {
		tips = append(tips, "Best time to visit: Spring (April-June) and Fall (September-October)")
	} else {
		tips = append(tips, "Best time to visit: Spring (September-November) and Fall (March-May)")
	}

	var countryInfo response_models.CountryInfo
	if destination.Country != "" {
		countryInfo = s.geoService.GetCountryInfo(ctx, destination.Country)

		budgetRange := ""
		switch {
		case countryInfo.Continent == "Europe" || countryInfo.Continent == "North America" || countryInfo.Continent == "Australia":
			budgetRange = "Medium to High"
		case destination.Name == "Tokyo" || destination.Name == "Singapore" || destination.Name == "Hong Kong" || destination.Name == "Dubai":
			budgetRange = "High"
		default:
			budgetRange = "Low to Medium"
		}
		tips = append(tips, "Budget range: "+budgetRange)
	}

	tips = append(tips,
		"Remember to research local customs and etiquette",
		"Check for any required travel documents or vaccinations",
	)

	if countryInfo.Population > 50000000 {
		tips = append(tips, "Consider internal flights for longer distances")
	}
	tips = append(tips, "Research public transportation options")
	return tips
}
