package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"tripwise/internal/search"
)

var popularLocations = []string{"Paris", "New York", "Tokyo", "London", "Rome", "Iceland", "Bangkok", "Sydney"}

type IndexSeederInterface interface {
	Refresh(ctx context.Context) error
}

// IndexSeeder rebuilds the keyword index from the gazetteer. The whole
// document set is swapped in one Replace call, so searches never observe a
// half-built index.
type IndexSeeder struct {
	geoService GeoServiceInterface
	index      *search.Index
}

func NewIndexSeeder(geoService GeoServiceInterface, index *search.Index) IndexSeederInterface {
	return &IndexSeeder{
		geoService: geoService,
		index:      index,
	}
}

func (s *IndexSeeder) Refresh(ctx context.Context) error {
	var docs []search.Document

	for _, location := range popularLocations {
		destinations := s.geoService.SearchDestinations(ctx, location, 1, "P")
		if len(destinations) == 0 {
			continue
		}
		dest := destinations[0]

		var activities []string
		for _, place := range s.geoService.GetNearbyPlaces(ctx, dest.Latitude, dest.Longitude, 5, 5, "P") {
			if place.Name != dest.Name {
				activities = append(activities, "Visit "+place.Name)
			}
		}
		activities = append(activities,
			fmt.Sprintf("Explore the city center of %s", dest.Name),
			fmt.Sprintf("Try local cuisine in %s", dest.Name),
			"Shop at local markets",
			"Visit museums and galleries",
			"Take a guided city tour",
		)
		if len(activities) > 6 {
			activities = activities[:6]
		}

		content := fmt.Sprintf("%s, %s: A vibrant destination with a population of approximately %d. Activities include: %s.",
			dest.Name, dest.Country, dest.Population, strings.Join(activities, ", "))

		docs = append(docs, search.Document{
			Content: content,
			Meta: search.DocumentMeta{
				Name:       dest.Name,
				Country:    dest.Country,
				Latitude:   dest.Latitude,
				Longitude:  dest.Longitude,
				Population: dest.Population,
				Activities: activities,
				Tags:       []string{"city", "tourism", "travel"},
				Type:       "destination",
			},
		})
	}

	// Even a fully failed refresh leaves something searchable behind.
	if len(docs) == 0 {
		for _, location := range popularLocations {
			docs = append(docs, search.Document{
				Content: fmt.Sprintf("%s: Popular destination with various attractions.", location),
				Meta: search.DocumentMeta{
					Name:       location,
					Country:    "Unknown",
					BudgetTier: "medium",
					Tags:       []string{"city", "tourism"},
					Type:       "destination",
				},
			})
		}
	}

	s.index.Replace(docs)
	log.Printf("Updated keyword index with %d destination documents", len(docs))
	return nil
}
