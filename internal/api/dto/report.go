package dto

import (
	"math"

	"courier-profit-service/internal/domain"
)

// FuelResponse carries the fuel figures with non-finite values zeroed:
// cost per km has no meaning on a zero-distance route, and JSON cannot
// encode NaN or Inf.
type FuelResponse struct {
	LitresUsed float64 `json:"litres_used"`
	Cost       float64 `json:"cost"`
	CostPerKm  float64 `json:"cost_per_km"`
}

// ReportResponse is the wire form of an analysis report.
type ReportResponse struct {
	Locations     []domain.Location          `json:"locations"`
	Route         domain.Route               `json:"route"`
	Fuel          FuelResponse               `json:"fuel"`
	WaitTime      domain.WaitSummary         `json:"wait_time"`
	Profitability domain.ProfitabilityResult `json:"profitability"`
	Inputs        domain.AnalysisInputs      `json:"inputs"`
}

// NewReportResponse maps a domain report onto the wire contract.
func NewReportResponse(r domain.AnalysisReport) ReportResponse {
	return ReportResponse{
		Locations: r.Locations,
		Route:     r.Route,
		Fuel: FuelResponse{
			LitresUsed: r.Fuel.LitresUsed,
			Cost:       r.Fuel.Cost,
			CostPerKm:  finiteOrZero(r.Fuel.CostPerKm),
		},
		WaitTime:      r.WaitTime,
		Profitability: r.Profitability,
		Inputs:        r.Inputs,
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
