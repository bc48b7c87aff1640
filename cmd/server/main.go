package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"rail-dispatch-service/internal/adapters/congestion"
	"rail-dispatch-service/internal/adapters/kv"
	"rail-dispatch-service/internal/adapters/routestore"
	"rail-dispatch-service/internal/api"
	"rail-dispatch-service/internal/config"
	"rail-dispatch-service/internal/ledger"
	"rail-dispatch-service/internal/platform/db"
	"rail-dispatch-service/internal/ports"
	"rail-dispatch-service/internal/services"
)

// main is the application composition root. It wires concrete adapters
// (Postgres route store, Redis cache, seeded congestion source) behind
// ports and starts the HTTP server. Both external backends are
// optional: without Postgres the resolver starts at the preset tier,
// without Redis every request computes directly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	scoreTTL := durationEnv("SCORE_CACHE_TTL_SECONDS", 30)
	kpiTTL := durationEnv("KPI_CACHE_TTL_SECONDS", 15)
	upstreamTimeout := durationEnv("UPSTREAM_TIMEOUT_SECONDS", 2)
	seed := int64Env("CONGESTION_SEED", time.Now().UnixNano())

	var store ports.RouteStore
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		sqlDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlDB.Close()
		store = routestore.NewPostgresRouteStore(sqlDB)
	} else {
		log.Println("DATABASE_URL not set; route store tier disabled")
	}

	var cacheBackend ports.KVCache
	if redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		cacheBackend = kv.NewRedisKVCache(client)
	} else {
		log.Println("REDIS_ADDR not set; cache disabled, computing directly")
	}

	resolver := services.NewRouteResolver(store, upstreamTimeout)
	scorer := services.NewRouteScorer(resolver, congestion.NewSeededSource(seed))
	cacheAside := services.NewCacheAside(cacheBackend, upstreamTimeout)

	dispatchLedger := ledger.New()
	kpiService := services.NewKPIService(dispatchLedger, cacheAside, kpiTTL)

	router := api.NewRouter(scorer, cacheAside, dispatchLedger, kpiService, scoreTTL)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func durationEnv(key string, fallbackSeconds int) time.Duration {
	raw := config.Get(key, strconv.Itoa(fallbackSeconds))
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("invalid %s=%q, using %ds", key, raw, fallbackSeconds)
		secs = fallbackSeconds
	}
	return time.Duration(secs) * time.Second
}

func int64Env(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default", key, raw)
		return fallback
	}
	return v
}
