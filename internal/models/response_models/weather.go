package response_models

type ForecastDay struct {
	Date              string  `json:"date"`
	Temp              float64 `json:"temp"`
	TempMin           float64 `json:"temp_min"`
	TempMax           float64 `json:"temp_max"`
	Conditions        string  `json:"conditions"`
	Description       string  `json:"description,omitempty"`
	PrecipProbability float64 `json:"precipitation_probability"`
}
