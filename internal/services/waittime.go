package services

import "courier-profit-service/internal/domain"

// waitProfile is the expected handover wait for one building category.
type waitProfile struct {
	minutes float64
	label   string
}

var waitByBuilding = map[domain.BuildingType]waitProfile{
	domain.BuildingHDB:        {minutes: 3, label: "HDB block"},
	domain.BuildingLanded:     {minutes: 2, label: "Landed house"},
	domain.BuildingCondo:      {minutes: 7, label: "Condominium"},
	domain.BuildingMall:       {minutes: 8, label: "Shopping mall"},
	domain.BuildingIndustrial: {minutes: 5, label: "Industrial estate"},
	domain.BuildingOffice:     {minutes: 10, label: "Office building"},
	domain.BuildingUnknown:    {minutes: 5, label: "Unknown building"},
}

// WaitTimeEstimator maps building types (plus optional per-stop manual
// overrides) to expected wait durations from a fixed lookup table.
type WaitTimeEstimator struct{}

func NewWaitTimeEstimator() *WaitTimeEstimator { return &WaitTimeEstimator{} }

// Estimate returns the table wait for a building type. Unlisted types fall
// back to the unknown profile.
func (e *WaitTimeEstimator) Estimate(bt domain.BuildingType) (minutes float64, label string) {
	p, ok := waitByBuilding[bt]
	if !ok {
		p = waitByBuilding[domain.BuildingUnknown]
	}
	return p.minutes, p.label
}

// EstimateAll produces one estimate per delivery stop. An override present for
// a stop index is used verbatim and flagged; otherwise the table applies.
// The pickup wait is tracked separately from the stop estimates and added to
// the total.
func (e *WaitTimeEstimator) EstimateAll(stops []domain.Location, overrides map[int]float64, pickupWaitMinutes float64) domain.WaitSummary {
	summary := domain.WaitSummary{
		PerStop:           make([]domain.WaitEstimate, 0, len(stops)),
		PickupWaitMinutes: pickupWaitMinutes,
	}

	for i, stop := range stops {
		minutes, label := e.Estimate(stop.BuildingType)
		est := domain.WaitEstimate{
			Minutes:      minutes,
			BuildingType: stop.BuildingType,
			Label:        label,
		}
		if v, ok := overrides[i]; ok {
			est.Minutes = v
			est.IsOverride = true
		}
		summary.PerStop = append(summary.PerStop, est)
		summary.StopMinutes += est.Minutes
	}

	summary.TotalMinutes = summary.StopMinutes + summary.PickupWaitMinutes
	return summary
}
