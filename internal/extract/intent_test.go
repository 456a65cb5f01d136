package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{
			name: "pending tab",
			text: "/pending",
			want: Intent{Kind: KindViewTab, Tab: model.StatusPending},
		},
		{
			name: "ready tab uppercase",
			text: "/READY",
			want: Intent{Kind: KindViewTab, Tab: model.StatusReady},
		},
		{
			name: "delivered tab with surrounding space",
			text: "  /delivered  ",
			want: Intent{Kind: KindViewTab, Tab: model.StatusDelivered},
		},
		{
			name: "completed tab",
			text: "/completed",
			want: Intent{Kind: KindViewTab, Tab: model.StatusCompleted},
		},
		{
			name: "all tabs",
			text: "/all",
			want: Intent{Kind: KindViewAllTabs},
		},
		{
			name: "help",
			text: "/help",
			want: Intent{Kind: KindHelp},
		},
		{
			name: "status with term",
			text: "/status Jane Doe",
			want: Intent{Kind: KindQuery, Term: "jane doe"},
		},
		{
			name: "status without term",
			text: "/status",
			want: Intent{Kind: KindQuery},
		},
		{
			name: "update with both args",
			text: "/update 123 ready",
			want: Intent{Kind: KindUpdate, OrderID: "123", Status: "ready"},
		},
		{
			name: "update missing status",
			text: "/update 123",
			want: Intent{Kind: KindUpdateHelp},
		},
		{
			name: "update with no args",
			text: "/update",
			want: Intent{Kind: KindUpdateHelp},
		},
		{
			name: "update with too many args",
			text: "/update 123 ready now",
			want: Intent{Kind: KindUpdateHelp},
		},
		{
			name: "search with term",
			text: "/search 10mm glass",
			want: Intent{Kind: KindSearch, Term: "10mm glass"},
		},
		{
			name: "search without term",
			text: "/search",
			want: Intent{Kind: KindSearchHelp},
		},
		{
			name: "legacy query",
			text: "/query",
			want: Intent{Kind: KindQuery},
		},
		{
			name: "unknown slash command",
			text: "/frobnicate",
			want: Intent{Kind: KindUnknown},
		},
		{
			name: "plain text is not a command",
			text: "Client Name: Jane",
			want: Intent{Kind: KindNotACommand},
		},
		{
			name: "empty text is not a command",
			text: "",
			want: Intent{Kind: KindNotACommand},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntent(tt.text))
		})
	}
}
