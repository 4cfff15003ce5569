package services

import (
	"fmt"

	"courier-profit-service/internal/domain"
)

// Rating thresholds in profit per hour, evaluated highest first; each band's
// lower bound is inclusive.
const (
	excellentThreshold = 20.0
	goodThreshold      = 15.0
	okayThreshold      = 10.0
)

// fuelShareWarnPct flags orders where fuel eats an outsized share of the fare.
const fuelShareWarnPct = 20.0

// ProfitabilityInput collects the already-computed pieces an evaluation needs.
type ProfitabilityInput struct {
	Fare              float64
	FuelCost          float64
	TravelMinutes     float64
	WaitMinutes       float64
	PickupWaitMinutes float64
}

// ProfitabilityEngine combines net fare, fuel cost and total time into a
// profit-per-hour figure, a discrete rating and informational insights.
type ProfitabilityEngine struct {
	fares *FareDeductionEngine
}

func NewProfitabilityEngine(fares *FareDeductionEngine) *ProfitabilityEngine {
	return &ProfitabilityEngine{fares: fares}
}

// Evaluate is deterministic: the same input always yields the same result.
func (e *ProfitabilityEngine) Evaluate(in ProfitabilityInput) domain.ProfitabilityResult {
	breakdown := e.fares.Breakdown(in.Fare)

	netProfit := breakdown.NetFare - in.FuelCost
	totalMinutes := in.TravelMinutes + in.WaitMinutes + in.PickupWaitMinutes

	profitPerHour := 0.0
	if totalMinutes > 0 {
		profitPerHour = netProfit / (totalMinutes / 60)
	}

	fuelPct := 0.0
	if breakdown.NetFare > 0 {
		fuelPct = in.FuelCost / breakdown.NetFare * 100
	}

	result := domain.ProfitabilityResult{
		Fare:             in.Fare,
		NetFare:          breakdown.NetFare,
		FareBreakdown:    breakdown,
		FuelCost:         in.FuelCost,
		NetProfit:        netProfit,
		TotalTimeMinutes: totalMinutes,
		ProfitPerHour:    profitPerHour,
		Rating:           ratingFor(profitPerHour),
		Breakdown: domain.TimeBreakdown{
			TravelMinutes:      in.TravelMinutes,
			WaitMinutes:        in.WaitMinutes,
			PickupWaitMinutes:  in.PickupWaitMinutes,
			FuelCostPercentage: fuelPct,
		},
	}
	result.Insights = e.insights(in, result, fuelPct, totalMinutes)

	return result
}

func ratingFor(profitPerHour float64) domain.Rating {
	switch {
	case profitPerHour >= excellentThreshold:
		return domain.RatingExcellent
	case profitPerHour >= goodThreshold:
		return domain.RatingGood
	case profitPerHour >= okayThreshold:
		return domain.RatingOkay
	default:
		return domain.RatingPoor
	}
}

// insights produces informational, non-authoritative commentary. Nothing here
// feeds back into the numbers.
func (e *ProfitabilityEngine) insights(in ProfitabilityInput, r domain.ProfitabilityResult, fuelPct, totalMinutes float64) []string {
	var out []string

	if fuelPct > fuelShareWarnPct {
		out = append(out, fmt.Sprintf(
			"Fuel takes %.0f%% of the net fare; this trip burns an unusually large share of your earnings.",
			fuelPct,
		))
	}

	if in.WaitMinutes > in.TravelMinutes {
		out = append(out, "You would spend more time waiting at doors than riding; consider confirming the recipient is ready.")
	}

	switch r.Rating {
	case domain.RatingPoor:
		out = append(out, fmt.Sprintf(
			"At S$%.2f/hour this order pays below typical minimum-wage benchmarks; it is usually worth declining.",
			r.ProfitPerHour,
		))
	case domain.RatingExcellent:
		out = append(out, fmt.Sprintf(
			"At S$%.2f/hour this order is well above the good threshold; take it if the route suits you.",
			r.ProfitPerHour,
		))
	}

	// Recommend the fare that would lift the order to "good", when short.
	if r.Rating == domain.RatingOkay || r.Rating == domain.RatingPoor {
		minimumFareForGood := in.FuelCost + goodThreshold*(totalMinutes/60)
		if in.Fare < minimumFareForGood {
			out = append(out, fmt.Sprintf(
				"Ask for at least S$%.2f to clear S$%.0f/hour on this route.",
				minimumFareForGood, goodThreshold,
			))
		}
	}

	return out
}
