package services

import (
	"fmt"
	"strings"

	"courier-profit-service/internal/domain"
)

// Typical real-world fuel efficiency (km/L) for bikes commonly ridden by
// Singapore delivery couriers.
var bikeEfficiency = map[string]float64{
	"honda-wave-125":   55,
	"yamaha-ybr-125":   48,
	"honda-pcx-150":    45,
	"yamaha-nmax-155":  42,
	"honda-adv-150":    40,
	"yamaha-aerox-155": 38,
	"honda-cb400":      25,
}

// ResolveEfficiency picks the fuel efficiency for an analysis: a known bike
// model wins, then a positive caller-supplied custom value. Neither yielding
// a positive number is a configuration error.
func ResolveEfficiency(bikeModel string, customKmPerL float64) (float64, error) {
	model := strings.ToLower(strings.TrimSpace(bikeModel))
	if model != "" {
		if v, ok := bikeEfficiency[model]; ok {
			return v, nil
		}
	}

	if customKmPerL > 0 {
		return customKmPerL, nil
	}

	if model != "" {
		return 0, fmt.Errorf(
			"resolve efficiency: unknown bike model %q and no custom value: %w",
			bikeModel, domain.ErrInvalidConfiguration,
		)
	}
	return 0, fmt.Errorf(
		"resolve efficiency: no bike model or custom value supplied: %w",
		domain.ErrInvalidConfiguration,
	)
}
