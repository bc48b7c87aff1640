package api

import (
	"net/http"
	"time"

	"rail-dispatch-service/internal/api/handlers"
	"rail-dispatch-service/internal/ledger"
	"rail-dispatch-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	scorer *services.RouteScorer,
	cache *services.CacheAside,
	l *ledger.Ledger,
	kpi *services.KPIService,
	scoreCacheTTL time.Duration,
) http.Handler {
	mux := http.NewServeMux()

	scoreHandler := &handlers.ScoreHandler{
		Scorer:   scorer,
		Cache:    cache,
		CacheTTL: scoreCacheTTL,
	}
	ledgerHandler := &handlers.LedgerHandler{Ledger: l}
	kpiHandler := &handlers.KPIHandler{KPI: kpi}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes/score", scoreHandler.Score)
	mux.HandleFunc("/ledger", ledgerHandler.List)
	mux.HandleFunc("/ledger/events", ledgerHandler.Append)
	mux.HandleFunc("/ledger/verify", ledgerHandler.Verify)
	mux.HandleFunc("/kpi", kpiHandler.Snapshot)

	return loggingMiddleware(requestIDMiddleware(mux))
}
