package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"rail-dispatch-service/internal/api/dto"
	"rail-dispatch-service/internal/domain"
	"rail-dispatch-service/internal/services"
)

type ScoreHandler struct {
	Scorer   *services.RouteScorer
	Cache    *services.CacheAside
	CacheTTL time.Duration
}

// Score runs the eco-route scoring pipeline through the cache-aside
// coordinator. The serialized response is the unit cached, so repeat
// calls within the TTL window return byte-identical output without
// re-invoking the resolver.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScoreRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	ec := domain.EmissionContext{
		CargoType:      req.Cargo,
		LocomotiveType: req.Loco,
		GradePercent:   req.Grade,
		Tonnage:        req.Tonnage,
	}

	key := services.ScoreCacheKey(req.RouteKey, ec)
	raw, err := h.Cache.GetOrCompute(r.Context(), key, h.CacheTTL, func(ctx context.Context) ([]byte, error) {
		res := h.Scorer.Score(ctx, req.RouteKey, ec)
		return json.Marshal(dto.FromScoringResult(res))
	})
	if err != nil {
		log.Printf("score route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		log.Printf("write score response failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
