package dto

import (
	"fmt"
	"strconv"
	"strings"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/services"
)

// AnalyzeRequest mirrors the raw form a client submits: numeric fields arrive
// as strings and are converted exactly once, here, into the typed service
// request. Pipeline components never see unparsed input.
type AnalyzeRequest struct {
	CurrentLocation string            `json:"current_location"`
	Pickup          string            `json:"pickup"`
	Stops           []string          `json:"stops"`
	Fare            string            `json:"fare"`
	BikeModel       string            `json:"bike_model,omitempty"`
	CustomKmPerL    string            `json:"custom_efficiency_km_per_l,omitempty"`
	PetrolPrice     string            `json:"petrol_price_per_litre"`
	WaitOverrides   map[string]string `json:"wait_overrides,omitempty"`
	PickupWaitMins  string            `json:"pickup_wait_minutes,omitempty"`
	Traffic         string            `json:"traffic,omitempty"`
}

// Parse validates and converts the raw request. All failures wrap
// domain.ErrInvalidInput so the transport maps them uniformly.
func (r AnalyzeRequest) Parse() (services.AnalyzeRequest, error) {
	out := services.AnalyzeRequest{
		CurrentLocation: strings.TrimSpace(r.CurrentLocation),
		Pickup:          strings.TrimSpace(r.Pickup),
		BikeModel:       strings.TrimSpace(r.BikeModel),
	}

	if out.CurrentLocation == "" {
		return services.AnalyzeRequest{}, fmt.Errorf("current_location is required: %w", domain.ErrInvalidInput)
	}
	if out.Pickup == "" {
		return services.AnalyzeRequest{}, fmt.Errorf("pickup is required: %w", domain.ErrInvalidInput)
	}

	for _, s := range r.Stops {
		if s = strings.TrimSpace(s); s != "" {
			out.Stops = append(out.Stops, s)
		}
	}
	if len(out.Stops) == 0 {
		return services.AnalyzeRequest{}, fmt.Errorf("at least one stop is required: %w", domain.ErrInvalidInput)
	}

	fare, err := parsePositiveFloat("fare", r.Fare)
	if err != nil {
		return services.AnalyzeRequest{}, err
	}
	out.Fare = fare

	price, err := parsePositiveFloat("petrol_price_per_litre", r.PetrolPrice)
	if err != nil {
		return services.AnalyzeRequest{}, err
	}
	out.PetrolPricePerL = price

	if r.CustomKmPerL != "" {
		v, err := parsePositiveFloat("custom_efficiency_km_per_l", r.CustomKmPerL)
		if err != nil {
			return services.AnalyzeRequest{}, err
		}
		out.CustomKmPerL = v
	}

	if r.PickupWaitMins != "" {
		v, err := parsePositiveFloat("pickup_wait_minutes", r.PickupWaitMins)
		if err != nil {
			return services.AnalyzeRequest{}, err
		}
		out.PickupWaitMins = v
	}

	if len(r.WaitOverrides) > 0 {
		out.WaitOverrides = make(map[int]float64, len(r.WaitOverrides))
		for k, v := range r.WaitOverrides {
			idx, err := strconv.Atoi(k)
			if err != nil || idx < 0 || idx >= len(out.Stops) {
				return services.AnalyzeRequest{}, fmt.Errorf(
					"wait_overrides key %q is not a valid stop index: %w", k, domain.ErrInvalidInput,
				)
			}
			minutes, err := strconv.ParseFloat(v, 64)
			if err != nil || minutes < 0 {
				return services.AnalyzeRequest{}, fmt.Errorf(
					"wait_overrides[%s]=%q is not a valid duration: %w", k, v, domain.ErrInvalidInput,
				)
			}
			out.WaitOverrides[idx] = minutes
		}
	}

	if r.Traffic != "" {
		traffic := domain.TrafficCondition(strings.ToLower(strings.TrimSpace(r.Traffic)))
		if !traffic.Valid() {
			return services.AnalyzeRequest{}, fmt.Errorf(
				"traffic %q must be light, normal or heavy: %w", r.Traffic, domain.ErrInvalidInput,
			)
		}
		out.Traffic = traffic
	}

	return out, nil
}

func parsePositiveFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number: %w", field, raw, domain.ErrInvalidInput)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive: %w", field, domain.ErrInvalidInput)
	}
	return v, nil
}
