package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"rail-dispatch-service/internal/api/dto"
	"rail-dispatch-service/internal/ledger"
)

type LedgerHandler struct {
	Ledger *ledger.Ledger
}

// Append records a dispatch-lifecycle event on the hash chain. The
// actor is an opaque authenticated identity supplied by the caller;
// authentication itself happens upstream.
func (h *LedgerHandler) Append(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AppendEventRequest

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

	if strings.TrimSpace(req.EventType) == "" {
		writeError(w, r, http.StatusBadRequest, "event_type is required")
		return
	}

	block, err := h.Ledger.Append(req.EventType, req.RakeID, req.Actor, req.Fields)
	if err != nil {
		if errors.Is(err, ledger.ErrValidation) {
			writeError(w, r, http.StatusBadRequest, "rake_id is required")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, block)
}

// List returns a snapshot of the full chain.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	chain := h.Ledger.List()
	writeJSON(w, r, http.StatusOK, dto.LedgerListResponse{
		Length: len(chain),
		Chain:  chain,
	})
}

// Verify walks the chain and reports the first invalid block, if any.
// An invalid chain is a 409: the caller must be told, never handed a
// silently repaired result.
func (h *LedgerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := h.Ledger.Verify()

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusConflict
	}
	writeJSON(w, r, status, res)
}
