package domain

// TrafficCondition selects the assumed average riding speed for a route.
type TrafficCondition string

const (
	TrafficLight  TrafficCondition = "light"
	TrafficNormal TrafficCondition = "normal"
	TrafficHeavy  TrafficCondition = "heavy"
)

// Valid reports whether the condition is one of the known values.
func (t TrafficCondition) Valid() bool {
	switch t {
	case TrafficLight, TrafficNormal, TrafficHeavy:
		return true
	}
	return false
}

// RouteLeg is one point-to-point segment of a multi-stop route.
// IsEstimate marks a leg computed by the straight-line fallback heuristic
// rather than the live routing service.
type RouteLeg struct {
	FromAddress string  `json:"from_address"`
	ToAddress   string  `json:"to_address"`
	DistanceKm  float64 `json:"distance_km"`
	TimeMinutes float64 `json:"time_minutes"`
	IsEstimate  bool    `json:"is_estimate"`
}

// Route is the ordered sequence of legs covering the full visiting order
// (current location, pickup, stops), plus aggregate metrics.
// It is immutable planning data and contains no side effects.
type Route struct {
	Legs               []RouteLeg       `json:"legs"`
	TotalDistanceKm    float64          `json:"total_distance_km"`
	TotalTravelMinutes float64          `json:"total_travel_minutes"`
	HasEstimates       bool             `json:"has_estimates"`
	Traffic            TrafficCondition `json:"traffic"`
}
