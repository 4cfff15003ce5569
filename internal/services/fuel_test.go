package services

import (
	"errors"
	"math"
	"testing"

	"courier-profit-service/internal/domain"
)

func TestFuelCost(t *testing.T) {
	est, err := NewFuelEstimator().Cost(12, 45, 2.87)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(est.LitresUsed, 12.0/45.0) {
		t.Fatalf("LitresUsed = %v, want %v", est.LitresUsed, 12.0/45.0)
	}
	if !almostEqual(est.Cost, 12.0/45.0*2.87) {
		t.Fatalf("Cost = %v, want %v", est.Cost, 12.0/45.0*2.87)
	}
	if !almostEqual(est.CostPerKm, est.Cost/12) {
		t.Fatalf("CostPerKm = %v, want %v", est.CostPerKm, est.Cost/12)
	}
}

// Zero distance is a legitimate input (all points identical); the per-km rate
// has no meaning then and is left non-finite for the rendering layer to guard.
func TestFuelCostZeroDistance(t *testing.T) {
	est, err := NewFuelEstimator().Cost(0, 45, 2.87)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.LitresUsed != 0 || est.Cost != 0 {
		t.Fatalf("litres = %v cost = %v, want both 0", est.LitresUsed, est.Cost)
	}
	if !math.IsNaN(est.CostPerKm) {
		t.Fatalf("CostPerKm = %v, want NaN", est.CostPerKm)
	}
}

func TestFuelCostRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name       string
		efficiency float64
		price      float64
	}{
		{name: "zero efficiency", efficiency: 0, price: 2.87},
		{name: "negative efficiency", efficiency: -5, price: 2.87},
		{name: "implausible efficiency", efficiency: 450, price: 2.87},
		{name: "zero price", efficiency: 45, price: 0},
		{name: "negative price", efficiency: 45, price: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFuelEstimator().Cost(10, tc.efficiency, tc.price)
			if !errors.Is(err, domain.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
