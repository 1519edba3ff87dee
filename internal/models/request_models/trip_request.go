package request_models

type SaveTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Country     string   `json:"country"`
	Days        int      `json:"days"`
	Itinerary   string   `json:"itinerary"`
	Activities  []string `json:"activities"`
}

type PreferenceRequest struct {
	DestinationTypes []string `json:"destination_types"`
	Activities       []string `json:"activities"`
	BudgetCeiling    int      `json:"budget_ceiling"`
}
