package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
	"tripwise/internal/models/response_models"
)

// RouteSummary is what callers get back from GetDirections. With no API key
// configured the route degrades to a straight two-point line with zero
// distance and duration.
type RouteSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
	Route           [][2]float64
}

type GeocodedPlace struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type RouteServiceInterface interface {
	Geocode(ctx context.Context, query string) *GeocodedPlace
	GetDirections(ctx context.Context, start, end [2]float64, profile string) *RouteSummary
	GetPlacesOfInterest(ctx context.Context, lng, lat float64, radiusMeters int) []response_models.NearbyPlace
}

type RouteService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	geocodeURL string
}

func NewRouteService(apiKey string) RouteServiceInterface {
	return &RouteService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    "https://api.openrouteservice.org",
		geocodeURL: "https://nominatim.openstreetmap.org/search",
	}
}

func (r *RouteService) Geocode(ctx context.Context, query string) *GeocodedPlace {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.geocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("Error geocoding location: %v", err)
		return nil
	}
	defer resp.Body.Close()

	var results []struct {
		DisplayName string      `json:"display_name"`
		Lat         json.Number `json:"lat"`
		Lon         json.Number `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return nil
	}

	lat, _ := results[0].Lat.Float64()
	lng, _ := results[0].Lon.Float64()
	return &GeocodedPlace{Name: results[0].DisplayName, Latitude: lat, Longitude: lng}
}

func (r *RouteService) GetDirections(ctx context.Context, start, end [2]float64, profile string) *RouteSummary {
	if profile == "" {
		profile = "foot-walking"
	}

	if r.apiKey == "" {
		log.Println("OpenRoute API key not provided, returning simplified directions")
		return &RouteSummary{Route: [][2]float64{start, end}}
	}

	body, _ := json.Marshal(map[string]interface{}{
		"coordinates": [][2]float64{start, end},
	})

	reqURL := fmt.Sprintf("%s/v2/directions/%s", r.baseURL, profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("Error getting directions: %v", err)
		return nil
	}
	defer resp.Body.Close()

	var payload struct {
		Routes []struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload.Routes) == 0 {
		return nil
	}

	return &RouteSummary{
		DistanceMeters:  payload.Routes[0].Summary.Distance,
		DurationSeconds: payload.Routes[0].Summary.Duration,
		Route:           [][2]float64{start, end},
	}
}

func (r *RouteService) GetPlacesOfInterest(ctx context.Context, lng, lat float64, radiusMeters int) []response_models.NearbyPlace {
	if r.apiKey == "" {
		log.Println("OpenRoute API key not provided, cannot fetch places of interest")
		return nil
	}

	body, _ := json.Marshal(map[string]interface{}{
		"request": "pois",
		"geometry": map[string]interface{}{
			"buffer": radiusMeters,
			"geojson": map[string]interface{}{
				"type":        "Point",
				"coordinates": [2]float64{lng, lat},
			},
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/pois", bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("Error getting places of interest: %v", err)
		return nil
	}
	defer resp.Body.Close()

	var payload struct {
		Features []struct {
			Properties struct {
				Name         string `json:"name"`
				CategoryName string `json:"category_name"`
			} `json:"properties"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding places of interest: %v", err)
		return nil
	}

	pois := make([]response_models.NearbyPlace, 0, len(payload.Features))
	for _, feature := range payload.Features {
		poi := response_models.NearbyPlace{
			Name:     feature.Properties.Name,
			Category: feature.Properties.CategoryName,
		}
		if poi.Name == "" {
			poi.Name = "Unknown"
		}
		if len(feature.Geometry.Coordinates) > 0 {
			poi.Longitude = feature.Geometry.Coordinates[0]
		}
		if len(feature.Geometry.Coordinates) > 1 {
			poi.Latitude = feature.Geometry.Coordinates[1]
		}
		pois = append(pois, poi)
	}
	return pois
}
