package services

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"tripwise/internal/models/response_models"
)

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, lat, lng float64, days int) []response_models.ForecastDay
}

type WeatherService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	now        func() time.Time
}

func NewWeatherService(apiKey string) WeatherServiceInterface {
	return &WeatherService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5/onecall",
		now:        time.Now,
	}
}

func (w *WeatherService) GetForecast(ctx context.Context, lat, lng float64, days int) []response_models.ForecastDay {
	if w.apiKey == "" {
		log.Println("Weather API key not provided, returning simulated weather data")
		return simulatedForecast(w.now(), days)
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("exclude", "current,minutely,hourly,alerts")
	params.Set("units", "metric")
	params.Set("appid", w.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.Printf("Error getting weather forecast: %v", err)
		return nil
	}
	defer resp.Body.Close()

	var payload struct {
		Daily []struct {
			Dt   int64 `json:"dt"`
			Temp struct {
				Day float64 `json:"day"`
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"temp"`
			Weather []struct {
				Main        string `json:"main"`
				Description string `json:"description"`
			} `json:"weather"`
			Pop float64 `json:"pop"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding weather forecast: %v", err)
		return nil
	}

	forecast := make([]response_models.ForecastDay, 0, days)
	for i, day := range payload.Daily {
		if i >= days {
			break
		}
		entry := response_models.ForecastDay{
			Date:              time.Unix(day.Dt, 0).Format("2006-01-02"),
			Temp:              day.Temp.Day,
			TempMin:           day.Temp.Min,
			TempMax:           day.Temp.Max,
			PrecipProbability: day.Pop * 100,
		}
		if len(day.Weather) > 0 {
			entry.Conditions = day.Weather[0].Main
			entry.Description = day.Weather[0].Description
		}
		forecast = append(forecast, entry)
	}
	return forecast
}

// simulatedForecast is the deterministic stand-in used without credentials:
// base 22°C with a small cyclic variation, conditions cycling every three
// days, precipitation probability tied to conditions.
func simulatedForecast(start time.Time, days int) []response_models.ForecastDay {
	forecast := make([]response_models.ForecastDay, 0, days)
	const baseTemp = 22.0

	for i := 0; i < days; i++ {
		temp := baseTemp + float64(-2+(i%5))

		var conditions string
		var precip float64
		switch i % 3 {
		case 0:
			conditions, precip = "Sunny", 10
		case 1:
			conditions, precip = "Partly Cloudy", 30
		default:
			conditions, precip = "Cloudy", 60
		}

		forecast = append(forecast, response_models.ForecastDay{
			Date:              start.AddDate(0, 0, i).Format("2006-01-02"),
			Temp:              temp,
			TempMin:           temp - 5,
			TempMax:           temp + 5,
			Conditions:        conditions,
			PrecipProbability: precip,
		})
	}
	return forecast
}
