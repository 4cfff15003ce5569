package services

import (
	"strings"
	"testing"

	"courier-profit-service/internal/domain"
)

func newProfitEngine() *ProfitabilityEngine {
	return NewProfitabilityEngine(NewFareDeductionEngine())
}

func TestRatingBands(t *testing.T) {
	cases := []struct {
		profitPerHour float64
		want          domain.Rating
	}{
		{25, domain.RatingExcellent},
		{20, domain.RatingExcellent},
		{19.99, domain.RatingGood},
		{15, domain.RatingGood},
		{14.99, domain.RatingOkay},
		{10, domain.RatingOkay},
		{9.99, domain.RatingPoor},
		{0, domain.RatingPoor},
		{-3, domain.RatingPoor},
	}

	for _, tc := range cases {
		if got := ratingFor(tc.profitPerHour); got != tc.want {
			t.Fatalf("ratingFor(%v) = %q, want %q", tc.profitPerHour, got, tc.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	r := newProfitEngine().Evaluate(ProfitabilityInput{
		Fare:              10,
		FuelCost:          1,
		TravelMinutes:     30,
		WaitMinutes:       10,
		PickupWaitMinutes: 3,
	})

	if !almostEqual(r.NetFare, 7.22) {
		t.Fatalf("NetFare = %v, want 7.22", r.NetFare)
	}
	if !almostEqual(r.NetProfit, 6.22) {
		t.Fatalf("NetProfit = %v, want 6.22", r.NetProfit)
	}
	if r.TotalTimeMinutes != 43 {
		t.Fatalf("TotalTimeMinutes = %v, want 43", r.TotalTimeMinutes)
	}
	if !almostEqual(r.ProfitPerHour, 6.22/(43.0/60.0)) {
		t.Fatalf("ProfitPerHour = %v, want %v", r.ProfitPerHour, 6.22/(43.0/60.0))
	}
	if r.Rating != domain.RatingPoor {
		t.Fatalf("Rating = %q, want poor", r.Rating)
	}
	if !almostEqual(r.Breakdown.FuelCostPercentage, 1/7.22*100) {
		t.Fatalf("FuelCostPercentage = %v, want %v", r.Breakdown.FuelCostPercentage, 1/7.22*100)
	}
}

// An order with zero total time cannot divide; profit per hour pins to zero
// and the rating lands on poor.
func TestEvaluateZeroTime(t *testing.T) {
	r := newProfitEngine().Evaluate(ProfitabilityInput{Fare: 10})

	if r.ProfitPerHour != 0 {
		t.Fatalf("ProfitPerHour = %v, want 0", r.ProfitPerHour)
	}
	if r.Rating != domain.RatingPoor {
		t.Fatalf("Rating = %q, want poor", r.Rating)
	}
}

func TestInsightFuelShare(t *testing.T) {
	// Fuel at 2.00 against a net fare of 7.22 is roughly 28 percent.
	r := newProfitEngine().Evaluate(ProfitabilityInput{
		Fare:          10,
		FuelCost:      2,
		TravelMinutes: 20,
	})

	if !hasInsightContaining(r.Insights, "Fuel takes") {
		t.Fatalf("expected fuel share insight, got %v", r.Insights)
	}
}

func TestInsightWaitDominates(t *testing.T) {
	r := newProfitEngine().Evaluate(ProfitabilityInput{
		Fare:          10,
		TravelMinutes: 5,
		WaitMinutes:   15,
	})

	if !hasInsightContaining(r.Insights, "waiting") {
		t.Fatalf("expected wait-dominates insight, got %v", r.Insights)
	}
}

func TestInsightMinimumFare(t *testing.T) {
	in := ProfitabilityInput{
		Fare:          8,
		FuelCost:      1,
		TravelMinutes: 40,
		WaitMinutes:   8,
	}
	r := newProfitEngine().Evaluate(in)

	if r.Rating != domain.RatingPoor && r.Rating != domain.RatingOkay {
		t.Fatalf("setup broken: rating = %q", r.Rating)
	}
	// minimum = fuel + 15/h over 48 minutes = 1 + 12 = 13.
	if !hasInsightContaining(r.Insights, "S$13.00") {
		t.Fatalf("expected minimum fare suggestion of S$13.00, got %v", r.Insights)
	}
}

func TestInsightExcellent(t *testing.T) {
	// S$30 over 30 minutes of travel clears the excellent bar comfortably.
	r := newProfitEngine().Evaluate(ProfitabilityInput{
		Fare:          30,
		FuelCost:      1,
		TravelMinutes: 30,
	})

	if r.Rating != domain.RatingExcellent {
		t.Fatalf("setup broken: rating = %q", r.Rating)
	}
	if !hasInsightContaining(r.Insights, "well above") {
		t.Fatalf("expected excellent insight, got %v", r.Insights)
	}
}

func hasInsightContaining(insights []string, substr string) bool {
	for _, s := range insights {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
