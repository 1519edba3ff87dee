package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"tripwise/internal/models/response_models"
)

// GeoServiceInterface is the gazetteer lookup surface. It never returns an
// error: any transport or parsing failure degrades to the static fallback
// tables and, past those, to empty results.
type GeoServiceInterface interface {
	SearchDestinations(ctx context.Context, query string, maxRows int, featureClass string) []response_models.Destination
	GetNearbyPlaces(ctx context.Context, lat, lng float64, radiusKm, maxRows int, featureClass string) []response_models.NearbyPlace
	GetCountryInfo(ctx context.Context, countryName string) response_models.CountryInfo
}

type GeoService struct {
	httpClient *http.Client
	baseURL    string
	username   string
}

func NewGeoService(username, baseURL string) GeoServiceInterface {
	if baseURL == "" {
		baseURL = "http://api.geonames.org"
	}
	return &GeoService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		username:   username,
	}
}

// Static fallback destinations for when the gazetteer is unreachable.
var fallbackDestinations = map[string]response_models.Destination{
	"hong kong": {Name: "Hong Kong", Country: "China", CountryCode: "HK", Population: 7482500, Latitude: 22.3193, Longitude: 114.1694},
	"paris":     {Name: "Paris", Country: "France", CountryCode: "FR", Population: 2140526, Latitude: 48.8566, Longitude: 2.3522},
	"new york":  {Name: "New York", Country: "United States", CountryCode: "US", Population: 8804190, Latitude: 40.7128, Longitude: -74.0060},
	"tokyo":     {Name: "Tokyo", Country: "Japan", CountryCode: "JP", Population: 13960000, Latitude: 35.6762, Longitude: 139.6503},
	"london":    {Name: "London", Country: "United Kingdom", CountryCode: "GB", Population: 8982000, Latitude: 51.5074, Longitude: -0.1278},
	"rome":      {Name: "Rome", Country: "Italy", CountryCode: "IT", Population: 2873000, Latitude: 41.9028, Longitude: 12.4964},
	"sydney":    {Name: "Sydney", Country: "Australia", CountryCode: "AU", Population: 5312000, Latitude: -33.8688, Longitude: 151.2093},
	"bangkok":   {Name: "Bangkok", Country: "Thailand", CountryCode: "TH", Population: 8281000, Latitude: 13.7563, Longitude: 100.5018},
}

var fallbackNearby = map[string][]response_models.NearbyPlace{
	"paris": {
		{Name: "Eiffel Tower", Latitude: 48.8584, Longitude: 2.2945, Category: "Tourist Attraction"},
		{Name: "Louvre Museum", Latitude: 48.8606, Longitude: 2.3376, Category: "Museum"},
		{Name: "Notre-Dame Cathedral", Latitude: 48.8530, Longitude: 2.3499, Category: "Religious Site"},
	},
	"new york": {
		{Name: "Statue of Liberty", Latitude: 40.6892, Longitude: -74.0445, Category: "Monument"},
		{Name: "Central Park", Latitude: 40.7851, Longitude: -73.9683, Category: "Park"},
		{Name: "Times Square", Latitude: 40.7580, Longitude: -73.9855, Category: "Square"},
	},
}

var fallbackCountries = map[string]response_models.CountryInfo{
	"France":        {Continent: "Europe", Population: 67390000, Capital: "Paris", CurrencyCode: "EUR"},
	"United States": {Continent: "North America", Population: 331900000, Capital: "Washington, D.C.", CurrencyCode: "USD"},
	"China":         {Continent: "Asia", Population: 1409670000, Capital: "Beijing", CurrencyCode: "CNY"},
	"Japan":         {Continent: "Asia", Population: 125700000, Capital: "Tokyo", CurrencyCode: "JPY"},
	"Thailand":      {Continent: "Asia", Population: 71800000, Capital: "Bangkok", CurrencyCode: "THB"},
	"Australia":     {Continent: "Oceania", Population: 25690000, Capital: "Canberra", CurrencyCode: "AUD"},
}

type geonamesPlace struct {
	Name        string          `json:"name"`
	CountryName string          `json:"countryName"`
	CountryCode string          `json:"countryCode"`
	Population  int64           `json:"population"`
	Lat         json.Number     `json:"lat"`
	Lng         json.Number     `json:"lng"`
	Fcode       string          `json:"fcode"`
	AdminName1  string          `json:"adminName1"`
	Timezone    struct {
		TimeZoneID string `json:"timeZoneId"`
	} `json:"timezone"`
}

type geonamesEnvelope struct {
	Geonames []geonamesPlace `json:"geonames"`
}

func (g *GeoService) SearchDestinations(ctx context.Context, query string, maxRows int, featureClass string) []response_models.Destination {
	originalQuery := query
	countryFilter := ""

	// A trailing comma token is treated as a country/state filter.
	if strings.Contains(query, ",") {
		parts := strings.Split(query, ",")
		query = strings.TrimSpace(parts[0])
		countryFilter = strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	}

	log.Printf("Searching destinations for: %s", query)

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxRows", strconv.Itoa(maxRows))
	params.Set("username", g.username)
	params.Set("style", "FULL")
	params.Set("isNameRequired", "true")
	params.Set("orderby", "relevance")
	if featureClass != "" {
		params.Set("featureClass", featureClass)
	}

	envelope, err := g.fetchGeonames(ctx, "/searchJSON", params)
	if err != nil {
		log.Printf("GeoNames API error: %v", err)
		return g.fallbackSearch(query, maxRows)
	}

	destinations := make([]response_models.Destination, 0, len(envelope.Geonames))
	for _, place := range envelope.Geonames {
		// With a feature class set we only keep populated places; a broadened
		// search (empty class) accepts everything the gazetteer returns.
		if featureClass != "" && !strings.HasPrefix(place.Fcode, "PP") {
			continue
		}
		lat, _ := place.Lat.Float64()
		lng, _ := place.Lng.Float64()
		destinations = append(destinations, response_models.Destination{
			Name:        place.Name,
			Country:     place.CountryName,
			CountryCode: place.CountryCode,
			Population:  place.Population,
			Latitude:    lat,
			Longitude:   lng,
			Timezone:    place.Timezone.TimeZoneID,
			FeatureCode: place.Fcode,
			AdminRegion: place.AdminName1,
		})
	}

	// Largest cities first.
	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].Population > destinations[j].Population
	})

	if countryFilter != "" {
		filtered := destinations[:0]
		for _, dest := range destinations {
			if strings.Contains(strings.ToLower(dest.Country), countryFilter) ||
				strings.Contains(strings.ToLower(dest.AdminRegion), countryFilter) {
				filtered = append(filtered, dest)
			}
		}
		destinations = filtered
	}

	if len(destinations) == 0 {
		log.Printf("No results found for %s, trying fallback", originalQuery)
		return g.fallbackSearch(originalQuery, maxRows)
	}

	if len(destinations) > maxRows {
		destinations = destinations[:maxRows]
	}
	return destinations
}

func (g *GeoService) fallbackSearch(query string, maxRows int) []response_models.Destination {
	log.Printf("Using local fallback data for: %s", query)

	queryLower := strings.ToLower(strings.TrimSpace(query))

	if dest, ok := fallbackDestinations[queryLower]; ok {
		return []response_models.Destination{dest}
	}

	var results []response_models.Destination
	for _, key := range fallbackKeyOrder {
		dest := fallbackDestinations[key]
		if strings.Contains(key, queryLower) || anyWordIn(queryLower, key) {
			results = append(results, dest)
			if len(results) >= maxRows {
				return results
			}
		}
	}

	if len(results) == 0 {
		for _, key := range fallbackKeyOrder {
			dest := fallbackDestinations[key]
			if strings.Contains(strings.ToLower(dest.Name), queryLower) {
				results = append(results, dest)
				if len(results) >= maxRows {
					break
				}
			}
		}
	}

	return results
}

// Deterministic iteration order for the fallback table.
var fallbackKeyOrder = []string{
	"hong kong", "paris", "new york", "tokyo", "london", "rome", "sydney", "bangkok",
}

func anyWordIn(query, key string) bool {
	for _, word := range strings.Fields(query) {
		if strings.Contains(key, word) {
			return true
		}
	}
	return false
}

func (g *GeoService) GetNearbyPlaces(ctx context.Context, lat, lng float64, radiusKm, maxRows int, featureClass string) []response_models.NearbyPlace {
	log.Printf("Searching nearby places around (%f, %f)", lat, lng)

	if featureClass == "" {
		featureClass = "P"
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radiusKm))
	params.Set("maxRows", strconv.Itoa(maxRows))
	params.Set("username", g.username)
	params.Set("featureClass", featureClass)

	envelope, err := g.fetchGeonames(ctx, "/findNearbyPlaceNameJSON", params)
	if err != nil {
		log.Printf("Error fetching nearby places: %v", err)
		return nearbyFallbackFor(lat, lng)
	}

	places := make([]response_models.NearbyPlace, 0, len(envelope.Geonames))
	for _, place := range envelope.Geonames {
		pLat, _ := place.Lat.Float64()
		pLng, _ := place.Lng.Float64()
		name := place.Name
		if name == "" {
			name = "Unnamed Place"
		}
		places = append(places, response_models.NearbyPlace{
			Name:      name,
			Latitude:  pLat,
			Longitude: pLng,
			Category:  place.Fcode,
			Country:   place.CountryName,
		})
	}

	if len(places) > 0 {
		if len(places) > maxRows {
			places = places[:maxRows]
		}
		return places
	}

	return nearbyFallbackFor(lat, lng)
}

// nearbyFallbackFor returns the canned POI list whose reference city lies
// within one degree of the requested point.
func nearbyFallbackFor(lat, lng float64) []response_models.NearbyPlace {
	for city, places := range fallbackNearby {
		ref, ok := fallbackDestinations[city]
		if !ok {
			continue
		}
		if math.Abs(ref.Latitude-lat) < 1 && math.Abs(ref.Longitude-lng) < 1 {
			return places
		}
	}
	return nil
}

func (g *GeoService) GetCountryInfo(ctx context.Context, countryName string) response_models.CountryInfo {
	log.Printf("Fetching country info for: %s", countryName)

	params := url.Values{}
	params.Set("country", countryName)
	params.Set("username", g.username)

	type countryEnvelope struct {
		Geonames []struct {
			ContinentName string `json:"continentName"`
			Population    int64  `json:"population,string"`
			Capital       string `json:"capital"`
			CurrencyCode  string `json:"currencyCode"`
		} `json:"geonames"`
	}

	reqURL := g.baseURL + "/countryInfoJSON?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err == nil {
		resp, err := g.httpClient.Do(req)
		if err == nil {
			defer resp.Body.Close()
			if resp.StatusCode/100 == 2 {
				var envelope countryEnvelope
				if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && len(envelope.Geonames) > 0 {
					info := envelope.Geonames[0]
					return response_models.CountryInfo{
						Continent:    info.ContinentName,
						Population:   info.Population,
						Capital:      info.Capital,
						CurrencyCode: info.CurrencyCode,
					}
				}
			}
		}
	}

	for name, info := range fallbackCountries {
		if strings.EqualFold(name, countryName) {
			return info
		}
	}

	return response_models.CountryInfo{
		Continent:    "Unknown",
		Population:   0,
		Capital:      "Unknown",
		CurrencyCode: "",
	}
}

func (g *GeoService) fetchGeonames(ctx context.Context, path string, params url.Values) (*geonamesEnvelope, error) {
	reqURL := g.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("geonames bad status: %s", resp.Status)
	}

	var envelope geonamesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("geonames decode: %w", err)
	}
	return &envelope, nil
}
