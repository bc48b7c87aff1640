package handlers

import (
	"log"
	"net/http"

	"rail-dispatch-service/internal/services"
)

type KPIHandler struct {
	KPI *services.KPIService
}

// Snapshot serves the cached dispatch KPI aggregate.
func (h *KPIHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	kpi, err := h.KPI.Snapshot(r.Context())
	if err != nil {
		log.Printf("kpi snapshot failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, kpi)
}
