package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"tripwise/internal/models/response_models"
	"tripwise/internal/search"
)

type RetrieverServiceInterface interface {
	SearchDestinations(ctx context.Context, query string, topK int) []response_models.Destination
}

// RetrieverService layers four retrieval stages on top of each other: direct
// gazetteer search, the keyword index (plus the dense path when configured),
// a broadened gazetteer retry, and a fixed fallback set. Later stages only run
// when earlier ones leave the result short, and every stage deduplicates by
// (name, country).
type RetrieverService struct {
	geoService    GeoServiceInterface
	budgetService BudgetServiceInterface
	index         *search.Index
	denseSearcher DenseSearcherInterface
}

func NewRetrieverService(geoService GeoServiceInterface, budgetService BudgetServiceInterface, index *search.Index, denseSearcher DenseSearcherInterface) RetrieverServiceInterface {
	return &RetrieverService{
		geoService:    geoService,
		budgetService: budgetService,
		index:         index,
		denseSearcher: denseSearcher,
	}
}

func (s *RetrieverService) SearchDestinations(ctx context.Context, query string, topK int) []response_models.Destination {
	if topK < 1 {
		topK = 3
	}

	var destinations []response_models.Destination
	seen := make(map[string]bool)

	appendUnique := func(dest response_models.Destination) {
		key := dest.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		destinations = append(destinations, dest)
	}

	// Stage 1: direct gazetteer search, enriched with nearby attractions.
	for _, dest := range s.geoService.SearchDestinations(ctx, query, topK*2, "P") {
		appendUnique(s.enrich(ctx, dest))
	}

	// Stage 2: keyword index, merged with the dense path when available.
	if len(destinations) < topK {
		for _, doc := range s.index.Search(query, topK) {
			if doc.Meta.Name == "" {
				continue
			}
			tier := doc.Meta.BudgetTier
			if tier == "" {
				tier = s.budgetService.ClassifyTier(doc.Meta.Country)
			}
			appendUnique(response_models.Destination{
				Name:       doc.Meta.Name,
				Country:    doc.Meta.Country,
				Latitude:   doc.Meta.Latitude,
				Longitude:  doc.Meta.Longitude,
				Population: doc.Meta.Population,
				Activities: doc.Meta.Activities,
				BudgetTier: tier,
			})
		}
		if s.denseSearcher != nil {
			for _, dest := range s.denseSearcher.Search(ctx, query, topK) {
				if dest.BudgetTier == "" {
					dest.BudgetTier = s.budgetService.ClassifyTier(dest.Country)
				}
				appendUnique(dest)
			}
		}
	}

	// Stage 3: broadened gazetteer retry without the feature-class filter.
	if len(destinations) < topK {
		for _, dest := range s.geoService.SearchDestinations(ctx, query, topK*2, "") {
			dest.BudgetTier = s.budgetService.ClassifyTier(dest.Country)
			dest.Activities = []string{
				fmt.Sprintf("Explore %s", dest.Name),
				fmt.Sprintf("Experience local culture in %s", dest.Name),
				"Try authentic cuisine",
			}
			appendUnique(dest)
		}
	}

	// Stage 4: fixed fallback set, preferring cities the query mentions.
	if len(destinations) == 0 {
		log.Printf("No results found for %q, using fallback destinations", query)
		for _, dest := range fallbackCities(query) {
			appendUnique(dest)
		}
	}

	if len(destinations) > topK {
		destinations = destinations[:topK]
	}
	return destinations
}

// enrich fills in activities and a budget tier for a bare gazetteer hit.
func (s *RetrieverService) enrich(ctx context.Context, dest response_models.Destination) response_models.Destination {
	var activities []string
	for _, place := range s.geoService.GetNearbyPlaces(ctx, dest.Latitude, dest.Longitude, 10, 5, "P") {
		if place.Name != dest.Name {
			activities = append(activities, "Visit "+place.Name)
		}
	}
	if len(activities) < 3 {
		activities = append(activities,
			fmt.Sprintf("Explore the city center of %s", dest.Name),
			fmt.Sprintf("Try local cuisine in %s", dest.Name),
			"Shop at local markets",
			"Visit museums and galleries",
			"Take a guided city tour",
		)
	}
	if len(activities) > 5 {
		activities = activities[:5]
	}

	dest.Activities = activities
	dest.BudgetTier = s.budgetService.ClassifyTier(dest.Country)
	return dest
}

var wellKnownCities = []response_models.Destination{
	{
		Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522, Population: 2140526,
		Activities: []string{"Visit Eiffel Tower", "Explore Louvre Museum", "Stroll along Seine River"},
		BudgetTier: response_models.BudgetHigh,
	},
	{
		Name: "Rome", Country: "Italy", Latitude: 41.9028, Longitude: 12.4964, Population: 2873000,
		Activities: []string{"Visit Colosseum", "Explore Vatican Museums", "Throw a coin in Trevi Fountain"},
		BudgetTier: response_models.BudgetMedium,
	},
	{
		Name: "Barcelona", Country: "Spain", Latitude: 41.3851, Longitude: 2.1734, Population: 1620343,
		Activities: []string{"Visit Sagrada Familia", "Explore Park Güell", "Stroll along La Rambla"},
		BudgetTier: response_models.BudgetMedium,
	},
	{
		Name: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503, Population: 13960000,
		Activities: []string{"Visit Tokyo Skytree", "Explore Senso-ji Temple", "Experience Shibuya Crossing"},
		BudgetTier: response_models.BudgetHigh,
	},
	{
		Name: "New York", Country: "United States", Latitude: 40.7128, Longitude: -74.0060, Population: 8804190,
		Activities: []string{"Visit Times Square", "Explore Central Park", "See Statue of Liberty"},
		BudgetTier: response_models.BudgetHigh,
	},
}

// fallbackCities returns the well-known cities the query mentions, or the full
// set when it mentions none.
func fallbackCities(query string) []response_models.Destination {
	queryLower := strings.ToLower(query)

	var matched []response_models.Destination
	for _, city := range wellKnownCities {
		nameLower := strings.ToLower(city.Name)
		if queryLower == nameLower || strings.Contains(queryLower, nameLower) || strings.Contains(nameLower, queryLower) {
			matched = append(matched, city)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	return wellKnownCities
}
