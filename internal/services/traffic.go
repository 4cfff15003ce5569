package services

import (
	"time"

	"courier-profit-service/internal/domain"
)

// Assumed average riding speeds per traffic condition, and the baseline the
// routing service's reported times are calibrated against.
const referenceSpeedKmh = 25.0

var trafficSpeedKmh = map[domain.TrafficCondition]float64{
	domain.TrafficLight:  35,
	domain.TrafficNormal: 25,
	domain.TrafficHeavy:  15,
}

// trafficWindow is a half-open [startHour, endHour) slot of the daily schedule.
type trafficWindow struct {
	startHour int
	endHour   int
	condition domain.TrafficCondition
}

// Static time-of-day schedule. Hours outside every window default to light.
var trafficSchedule = []trafficWindow{
	{startHour: 7, endHour: 10, condition: domain.TrafficHeavy},
	{startHour: 17, endHour: 20, condition: domain.TrafficHeavy},
	{startHour: 11, endHour: 14, condition: domain.TrafficNormal},
	{startHour: 14, endHour: 17, condition: domain.TrafficNormal},
}

// DetectTraffic maps a local clock time onto the static schedule.
func DetectTraffic(now time.Time) domain.TrafficCondition {
	hour := now.Hour()
	for _, w := range trafficSchedule {
		if hour >= w.startHour && hour < w.endHour {
			return w.condition
		}
	}
	return domain.TrafficLight
}

// speedFor returns the assumed speed, falling back to normal for unknown
// conditions so arithmetic never divides by zero.
func speedFor(traffic domain.TrafficCondition) float64 {
	if v, ok := trafficSpeedKmh[traffic]; ok {
		return v
	}
	return trafficSpeedKmh[domain.TrafficNormal]
}
