package services

import (
	"context"
	"strings"
	"sync"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"

	"github.com/google/uuid"
)

// stubGeoService serves canned gazetteer data keyed by query substring.
type stubGeoService struct {
	destinations map[string][]response_models.Destination
	nearby       []response_models.NearbyPlace
	countryInfo  map[string]response_models.CountryInfo
}

func newStubGeoService() *stubGeoService {
	return &stubGeoService{
		destinations: map[string][]response_models.Destination{},
		countryInfo:  map[string]response_models.CountryInfo{},
	}
}

func (s *stubGeoService) SearchDestinations(_ context.Context, query string, maxRows int, _ string) []response_models.Destination {
	queryLower := strings.ToLower(query)
	for key, dests := range s.destinations {
		if strings.Contains(queryLower, strings.ToLower(key)) {
			if len(dests) > maxRows {
				return dests[:maxRows]
			}
			return dests
		}
	}
	return nil
}

func (s *stubGeoService) GetNearbyPlaces(_ context.Context, _, _ float64, _, maxRows int, _ string) []response_models.NearbyPlace {
	if len(s.nearby) > maxRows {
		return s.nearby[:maxRows]
	}
	return s.nearby
}

func (s *stubGeoService) GetCountryInfo(_ context.Context, countryName string) response_models.CountryInfo {
	if info, ok := s.countryInfo[countryName]; ok {
		return info
	}
	return response_models.CountryInfo{Continent: "Unknown", Capital: "Unknown"}
}

// stubHistoryRepo records inserts in memory.
type stubHistoryRepo struct {
	mu      sync.Mutex
	entries []db_models.QueryHistory
}

func (r *stubHistoryRepo) Insert(_ context.Context, entry *db_models.QueryHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubHistoryRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]db_models.QueryHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.QueryHistory
	for _, entry := range r.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func parisDestination() response_models.Destination {
	return response_models.Destination{
		Name:       "Paris",
		Country:    "France",
		Latitude:   48.8566,
		Longitude:  2.3522,
		Population: 2140526,
	}
}
