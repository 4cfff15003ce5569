package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"courier-profit-service/internal/adapters/onemap"
	"courier-profit-service/internal/api/dto"
	"courier-profit-service/internal/config"
	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/ports"
	"courier-profit-service/internal/services"
)

// profitcheck runs a single analysis from the command line and prints the
// report as JSON. It shares the server's OneMap configuration but skips the
// geocode cache; a one-shot run gains nothing from persistence.
func main() {
	var (
		current    = flag.String("current", "", "current location (address, postal code or \"lat,lng\")")
		pickup     = flag.String("pickup", "", "pickup location")
		stops      = flag.String("stops", "", "delivery stops, separated by ';'")
		fare       = flag.Float64("fare", 0, "gross fare in dollars")
		bike       = flag.String("bike", "", "bike model key (e.g. honda-wave-125)")
		kmPerL     = flag.Float64("km-per-l", 0, "custom fuel efficiency, used when no bike model is given")
		petrol     = flag.Float64("petrol", 0, "petrol price per litre")
		traffic    = flag.String("traffic", "", "traffic condition: light, normal or heavy (default: by time of day)")
		pickupWait = flag.Float64("pickup-wait", 0, "pickup wait in minutes (default 3)")
	)
	flag.Parse()

	// A .env file is optional for the CLI; env vars alone are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	var tokens ports.TokenProvider
	switch {
	case cfg.OneMapToken != "":
		tokens = onemap.NewStaticTokenSource(cfg.OneMapToken)
	case cfg.OneMapEmail != "" && cfg.OneMapPassword != "":
		tokens = onemap.NewTokenSource(cfg.OneMapBaseURL, cfg.OneMapEmail, cfg.OneMapPassword)
	}

	client := onemap.NewClient(cfg.OneMapBaseURL, tokens)

	analyzer := services.NewOrderAnalyzer(
		services.NewGeocoder(client, client, nil, services.NewBuildingClassifier()),
		services.NewRouter(client, tokens),
		services.NewWaitTimeEstimator(),
		services.NewFuelEstimator(),
		services.NewProfitabilityEngine(services.NewFareDeductionEngine()),
	)

	req := services.AnalyzeRequest{
		CurrentLocation: *current,
		Pickup:          *pickup,
		Stops:           splitStops(*stops),
		Fare:            *fare,
		BikeModel:       *bike,
		CustomKmPerL:    *kmPerL,
		PetrolPricePerL: *petrol,
		PickupWaitMins:  *pickupWait,
		Traffic:         domain.TrafficCondition(*traffic),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report, err := analyzer.Analyze(ctx, req)
	if err != nil {
		fatal(err)
	}

	out, err := json.MarshalIndent(dto.NewReportResponse(*report), "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func splitStops(s string) []string {
	var stops []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			stops = append(stops, part)
		}
	}
	return stops
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "profitcheck:", err)
	os.Exit(1)
}
