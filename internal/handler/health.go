package handler

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler reports overall backend health. ledgerUp is read from the
// connectivity prober; a failing ledger degrades the message but the backend
// itself keeps answering.
func HealthHandler(ledgerUp func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := healthResponse{Status: "healthy", Message: "WhatsApp Glass Bot Backend is running"}
		if ledgerUp != nil && !ledgerUp() {
			res.Status = "degraded"
			res.Message = "WhatsApp Glass Bot Backend is running, ledger unreachable"
		}
		writeJSON(w, res)
	}
}

// TextHealthHandler reports that the text-processing pipeline is live.
func TextHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, healthResponse{Status: "OK", Message: "Text processing is active"})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
