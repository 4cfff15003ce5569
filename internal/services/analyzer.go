package services

import (
	"context"
	"fmt"

	"courier-profit-service/internal/domain"
)

// defaultPickupWaitMinutes is the fixed global pickup wait applied when the
// caller does not override it.
const defaultPickupWaitMinutes = 3.0

// AnalyzeRequest is the validated, strongly typed input to one analysis.
// String-to-number conversion happens once at the transport boundary; this
// struct never carries raw form values.
type AnalyzeRequest struct {
	CurrentLocation string
	Pickup          string
	Stops           []string
	Fare            float64
	BikeModel       string
	CustomKmPerL    float64
	PetrolPricePerL float64
	WaitOverrides   map[int]float64
	PickupWaitMins  float64
	Traffic         domain.TrafficCondition
}

// OrderAnalyzer orchestrates the full pipeline: geocode every location, route
// across them, estimate waits and fuel, then score profitability. It holds no
// state across calls; every report is independent.
type OrderAnalyzer struct {
	geocoder *Geocoder
	router   *Router
	waits    *WaitTimeEstimator
	fuel     FuelEstimator
	profit   *ProfitabilityEngine
}

func NewOrderAnalyzer(geocoder *Geocoder, router *Router, waits *WaitTimeEstimator, fuel FuelEstimator, profit *ProfitabilityEngine) *OrderAnalyzer {
	return &OrderAnalyzer{
		geocoder: geocoder,
		router:   router,
		waits:    waits,
		fuel:     fuel,
		profit:   profit,
	}
}

// Analyze runs one calculation end to end. Configuration problems surface
// before any network call; geocoding failures abort the analysis; routing
// self-heals per leg and is never fatal.
func (a *OrderAnalyzer) Analyze(ctx context.Context, req AnalyzeRequest) (*domain.AnalysisReport, error) {
	if req.CurrentLocation == "" || req.Pickup == "" {
		return nil, fmt.Errorf("analyze: current location and pickup are required: %w", domain.ErrInvalidInput)
	}
	if len(req.Stops) == 0 {
		return nil, fmt.Errorf("analyze: at least one delivery stop is required: %w", domain.ErrInvalidInput)
	}

	efficiency, err := ResolveEfficiency(req.BikeModel, req.CustomKmPerL)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	inputs := make([]string, 0, 2+len(req.Stops))
	inputs = append(inputs, req.CurrentLocation, req.Pickup)
	inputs = append(inputs, req.Stops...)

	locations, err := a.geocoder.ResolveAll(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	route, err := a.router.ComputeRoute(ctx, locations, req.Traffic)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	fuel, err := a.fuel.Cost(route.TotalDistanceKm, efficiency, req.PetrolPricePerL)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	pickupWait := req.PickupWaitMins
	if pickupWait <= 0 {
		pickupWait = defaultPickupWaitMinutes
	}
	waits := a.waits.EstimateAll(locations[2:], req.WaitOverrides, pickupWait)

	profitability := a.profit.Evaluate(ProfitabilityInput{
		Fare:              req.Fare,
		FuelCost:          fuel.Cost,
		TravelMinutes:     route.TotalTravelMinutes,
		WaitMinutes:       waits.StopMinutes,
		PickupWaitMinutes: waits.PickupWaitMinutes,
	})

	return &domain.AnalysisReport{
		Locations:     locations,
		Route:         route,
		Fuel:          fuel,
		WaitTime:      waits,
		Profitability: profitability,
		Inputs: domain.AnalysisInputs{
			CurrentLocation:  req.CurrentLocation,
			Pickup:           req.Pickup,
			Stops:            req.Stops,
			Fare:             req.Fare,
			EfficiencyKmPerL: efficiency,
			PetrolPricePerL:  req.PetrolPricePerL,
			Traffic:          route.Traffic,
		},
	}, nil
}
