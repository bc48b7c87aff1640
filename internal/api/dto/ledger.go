package dto

import "rail-dispatch-service/internal/ledger"

type AppendEventRequest struct {
	EventType string            `json:"event_type"`
	RakeID    string            `json:"rake_id"`
	Actor     string            `json:"actor"`
	Fields    map[string]string `json:"fields"`
}

type LedgerListResponse struct {
	Length int            `json:"length"`
	Chain  []ledger.Block `json:"chain"`
}
