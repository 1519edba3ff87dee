package response_models

type DayWeather struct {
	Conditions        string  `json:"conditions"`
	TempMin           float64 `json:"temp_min"`
	TempMax           float64 `json:"temp_max"`
	PrecipProbability float64 `json:"precipitation_probability"`
}

type DayPlan struct {
	Day       int         `json:"day"`
	Weather   *DayWeather `json:"weather,omitempty"`
	Morning   []string    `json:"morning"`
	Afternoon []string    `json:"afternoon"`
	Evening   []string    `json:"evening"`
}

type Itinerary struct {
	DestinationName string    `json:"destination"`
	Country         string    `json:"country"`
	Days            []DayPlan `json:"days"`
	TravelTips      []string  `json:"travel_tips"`
}
