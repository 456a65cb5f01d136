package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/extract"
	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/service"
)

type inboundMessage struct {
	Body string `json:"body"`
	From string `json:"from"`
}

const (
	emptyBodyPrompt = "Please send your order details as text."
	unknownCommand  = "Unknown command. Type /help for available commands."
	genericApology  = "Sorry, there was an error processing your order. Please try again or contact support."
)

// WhatsAppInHandler handles one inbound chat message and produces its reply.
// Commands are dispatched by intent; anything else is treated as an order and
// extracted. Ledger failures collapse to one generic apology; detail stays in
// the server log.
func WhatsAppInHandler(orders *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The chat channel only understands replies, so even a panic must
		// come back as the generic apology.
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic while handling message", "panic", rec)
				reply(w, genericApology)
			}
		}()

		var msg inboundMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			reply(w, emptyBodyPrompt)
			return
		}

		body := strings.TrimSpace(msg.Body)
		if body == "" {
			reply(w, emptyBodyPrompt)
			return
		}

		ctx := r.Context()
		intent := extract.ParseIntent(body)

		switch intent.Kind {
		case extract.KindViewTab:
			tabOrders, err := orders.TabOrders(ctx, intent.Tab)
			if err != nil {
				apologize(w, "tab view failed", err)
				return
			}
			reply(w, service.FormatTab(intent.Tab, tabOrders))

		case extract.KindViewAllTabs:
			counts, err := orders.AllTabs(ctx)
			if err != nil {
				apologize(w, "summary failed", err)
				return
			}
			reply(w, service.FormatAllTabs(counts))

		case extract.KindSearch:
			found, err := orders.Search(ctx, intent.Term)
			if err != nil {
				apologize(w, "search failed", err)
				return
			}
			reply(w, service.FormatSearch(intent.Term, found))

		case extract.KindHelp:
			reply(w, service.HelpText())

		case extract.KindUpdateHelp:
			reply(w, service.UpdateHelpText())

		case extract.KindSearchHelp:
			reply(w, service.SearchHelpText())

		case extract.KindQuery:
			records, err := orders.Query(ctx, intent.Term)
			if err != nil {
				apologize(w, "query failed", err)
				return
			}
			reply(w, service.FormatQuery(records, intent.Term))

		case extract.KindUpdate:
			status, err := orders.UpdateStatus(ctx, intent.OrderID, intent.Status)
			if err != nil {
				slog.Error("status update failed", "order", intent.OrderID, "error", err)
				reply(w, "❌ Failed to update order "+intent.OrderID+". Please check the order ID and try again.")
				return
			}
			reply(w, "✅ Order "+intent.OrderID+" status updated to "+status+" and moved to "+status+" tab.")

		case extract.KindUnknown:
			reply(w, unknownCommand)

		default: // free text: extract and persist a new order
			draft := extract.OrderDraft(body)
			orderID, err := orders.Submit(ctx, draft)
			if err != nil {
				apologize(w, "order submission failed", err)
				return
			}
			slog.Info("order added", "id", orderID, "client", draft.ClientName, "from", msg.From)
			reply(w, service.FormatSubmitted(orderID, draft))
		}
	}
}

func reply(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"reply": text}); err != nil {
		slog.Error("reply encode failed", "error", err)
	}
}

func apologize(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	reply(w, genericApology)
}
