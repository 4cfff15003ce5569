package services

import (
	"fmt"

	"courier-profit-service/internal/domain"
)

// maxPlausibleEfficiency rejects typo inputs like 450 km/L.
const maxPlausibleEfficiency = 100.0

// FuelEstimator converts distance, bike efficiency and petrol price into a
// fuel cost. Stateless.
type FuelEstimator struct{}

func NewFuelEstimator() FuelEstimator { return FuelEstimator{} }

// Cost computes litres used and the resulting cost for a trip.
// CostPerKm is deliberately left non-finite when distanceKm is zero; callers
// rendering it must guard (the estimator never errors on zero distance).
func (FuelEstimator) Cost(distanceKm, efficiencyKmPerL, pricePerLitre float64) (domain.FuelEstimate, error) {
	if efficiencyKmPerL <= 0 || efficiencyKmPerL > maxPlausibleEfficiency {
		return domain.FuelEstimate{}, fmt.Errorf(
			"fuel cost: efficiency %.2f km/L out of range (0, %.0f]: %w",
			efficiencyKmPerL, maxPlausibleEfficiency, domain.ErrInvalidParameter,
		)
	}
	if pricePerLitre <= 0 {
		return domain.FuelEstimate{}, fmt.Errorf(
			"fuel cost: petrol price %.2f must be positive: %w",
			pricePerLitre, domain.ErrInvalidParameter,
		)
	}

	litres := distanceKm / efficiencyKmPerL
	cost := litres * pricePerLitre

	return domain.FuelEstimate{
		LitresUsed: litres,
		Cost:       cost,
		CostPerKm:  cost / distanceKm,
	}, nil
}
