package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"courier-profit-service/internal/adapters/cache"
	"courier-profit-service/internal/adapters/onemap"
	"courier-profit-service/internal/api"
	"courier-profit-service/internal/config"
	"courier-profit-service/internal/platform/db"
	"courier-profit-service/internal/ports"
	"courier-profit-service/internal/services"
)

// main is the application composition root. It wires concrete adapters
// (OneMap, the selected geocode cache) behind ports and starts the HTTP
// server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	geocodeCache, closeCache, err := buildGeocodeCache(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	var tokens ports.TokenProvider
	switch {
	case cfg.OneMapToken != "":
		tokens = onemap.NewStaticTokenSource(cfg.OneMapToken)
	case cfg.OneMapEmail != "" && cfg.OneMapPassword != "":
		tokens = onemap.NewTokenSource(cfg.OneMapBaseURL, cfg.OneMapEmail, cfg.OneMapPassword)
	default:
		log.Println("No OneMap credentials configured, routes will be estimated")
	}

	client := onemap.NewClient(cfg.OneMapBaseURL, tokens)

	geocoder := services.NewGeocoder(client, client, geocodeCache, services.NewBuildingClassifier())
	router := services.NewRouter(client, tokens)
	analyzer := services.NewOrderAnalyzer(
		geocoder,
		router,
		services.NewWaitTimeEstimator(),
		services.NewFuelEstimator(),
		services.NewProfitabilityEngine(services.NewFareDeductionEngine()),
	)

	log.Printf("Server listening addr=%s cache=%s", cfg.HTTPAddr, cfg.CacheBackend)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(analyzer),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Worst case is a cold-cache analysis with several live routing calls.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGeocodeCache opens the configured cache backend. The returned close
// function is nil for backends without a handle to release.
func buildGeocodeCache(cfg config.Config) (ports.GeocodeCache, func(), error) {
	ctx := context.Background()

	switch cfg.CacheBackend {
	case "none":
		return nil, nil, nil

	case "sqlite":
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		c := cache.NewSqliteGeocodeCache(conn)
		if err := c.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return c, func() { conn.Close() }, nil

	case "postgres":
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		c := cache.NewPostgresGeocodeCache(conn)
		if err := c.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return c, func() { conn.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}
		return cache.NewRedisGeocodeCache(client, cfg.CacheTTL), func() { client.Close() }, nil
	}

	// config.Load rejects unknown backends.
	return nil, nil, nil
}
