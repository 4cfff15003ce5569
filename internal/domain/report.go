package domain

// WaitEstimate is the expected wait at one delivery stop.
type WaitEstimate struct {
	Minutes      float64      `json:"minutes"`
	BuildingType BuildingType `json:"building_type"`
	Label        string       `json:"label"`
	IsOverride   bool         `json:"is_override"`
}

// WaitSummary aggregates per-stop waits. The pickup wait is a single global
// value tracked separately from the stop estimates; TotalMinutes includes it.
type WaitSummary struct {
	PerStop           []WaitEstimate `json:"per_stop"`
	StopMinutes       float64        `json:"stop_minutes"`
	PickupWaitMinutes float64        `json:"pickup_wait_minutes"`
	TotalMinutes      float64        `json:"total_minutes"`
}

// FuelEstimate is the fuel consumption and cost for a total route distance.
// CostPerKm is non-finite when the distance is zero; display layers must
// guard it before rendering or encoding.
type FuelEstimate struct {
	LitresUsed float64 `json:"litres_used"`
	Cost       float64 `json:"cost"`
	CostPerKm  float64 `json:"cost_per_km"`
}

// Rating is the discrete profitability tier derived from profit per hour.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingOkay      Rating = "okay"
	RatingPoor      Rating = "poor"
)

// TimeBreakdown shows where the order's time and money go.
type TimeBreakdown struct {
	TravelMinutes      float64 `json:"travel_minutes"`
	WaitMinutes        float64 `json:"wait_minutes"`
	PickupWaitMinutes  float64 `json:"pickup_wait_minutes"`
	FuelCostPercentage float64 `json:"fuel_cost_percentage"`
}

// ProfitabilityResult is the money-versus-time verdict for one order.
type ProfitabilityResult struct {
	Fare             float64       `json:"fare"`
	NetFare          float64       `json:"net_fare"`
	FareBreakdown    FareBreakdown `json:"fare_breakdown"`
	FuelCost         float64       `json:"fuel_cost"`
	NetProfit        float64       `json:"net_profit"`
	TotalTimeMinutes float64       `json:"total_time_minutes"`
	ProfitPerHour    float64       `json:"profit_per_hour"`
	Rating           Rating        `json:"rating"`
	Breakdown        TimeBreakdown `json:"breakdown"`
	Insights         []string      `json:"insights,omitempty"`
}

// AnalysisInputs echoes the resolved inputs a report was computed from.
type AnalysisInputs struct {
	CurrentLocation  string           `json:"current_location"`
	Pickup           string           `json:"pickup"`
	Stops            []string         `json:"stops"`
	Fare             float64          `json:"fare"`
	EfficiencyKmPerL float64          `json:"efficiency_km_per_l"`
	PetrolPricePerL  float64          `json:"petrol_price_per_litre"`
	Traffic          TrafficCondition `json:"traffic"`
}

// AnalysisReport is the root aggregate for one calculation. Constructed once
// per request and never mutated after construction.
type AnalysisReport struct {
	Locations     []Location          `json:"locations"`
	Route         Route               `json:"route"`
	Fuel          FuelEstimate        `json:"fuel"`
	WaitTime      WaitSummary         `json:"wait_time"`
	Profitability ProfitabilityResult `json:"profitability"`
	Inputs        AnalysisInputs      `json:"inputs"`
}
