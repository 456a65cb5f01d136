package handler

import (
	"log/slog"
	"net/http"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/service"
)

// OrdersHandler dumps the default sheet's records as JSON. Debug and testing
// only; the chat channel is the real interface.
func OrdersHandler(orders *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := orders.Query(r.Context(), "")
		if err != nil {
			slog.Error("orders dump failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, records)
	}
}
