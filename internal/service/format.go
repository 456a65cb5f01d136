package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// WhatsApp reply rendering. Replies use WhatsApp markdown (*bold*).

var tabDisplayNames = map[string]string{
	model.StatusPending:   "Pending Orders",
	model.StatusReady:     "Ready Orders",
	model.StatusDelivered: "Glass Delivered",
	model.StatusCompleted: "Completed Orders",
}

func displayName(tab string) string {
	if name, ok := tabDisplayNames[tab]; ok {
		return name
	}
	return tab + " Orders"
}

// FormatTab renders one tab's reconstructed orders.
func FormatTab(tab string, orders []model.Order) string {
	if len(orders) == 0 {
		return fmt.Sprintf("📋 *%s Tab*\nNo orders found in %s tab.", tab, tab)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s - %d orders*\n", displayName(tab), len(orders))
	b.WriteString("*" + strings.Repeat("=", 40) + "*\n\n")

	for _, o := range orders {
		fmt.Fprintf(&b, "*Order ID:* %s\n", o.ID)
		fmt.Fprintf(&b, "*Client:* %s\n", o.ClientName)
		fmt.Fprintf(&b, "*Specs:* %s\n", o.Specifications)
		if len(o.Items) > 0 {
			b.WriteString("*Glass Sizes:*\n")
			for _, item := range o.Items {
				fmt.Fprintf(&b, "  • %s - Qty: %s\n", item.Size, item.Quantity)
			}
		}
		if o.CreatedAt != "" {
			fmt.Fprintf(&b, "*Created:* %s\n", formatDate(o.CreatedAt))
		}
		// Pending orders have never moved, so their update stamp is noise.
		if tab != model.StatusPending && o.UpdatedAt != "" && o.UpdatedAt != o.CreatedAt {
			fmt.Fprintf(&b, "*Updated:* %s\n", formatDate(o.UpdatedAt))
		}
		if tab == model.StatusDelivered && o.Notes != "" {
			fmt.Fprintf(&b, "*Notes:* %s\n", o.Notes)
		}
		b.WriteString("\n*" + strings.Repeat("-", 30) + "*\n\n")
	}
	return b.String()
}

// FormatAllTabs renders the per-tab order counts.
func FormatAllTabs(counts []TabCount) string {
	emojis := map[string]string{
		model.StatusPending:   "⏳",
		model.StatusReady:     "✅",
		model.StatusDelivered: "🚚",
		model.StatusCompleted: "🎉",
	}

	var b strings.Builder
	b.WriteString("📊 *Order Summary - All Tabs*\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")
	for _, tc := range counts {
		emoji, ok := emojis[tc.Tab]
		if !ok {
			emoji = "📋"
		}
		fmt.Fprintf(&b, "%s *%s:* %d orders\n", emoji, tc.Tab, tc.Count)
	}
	b.WriteString("\n💡 Use /pending, /ready, /delivered, or /completed to see detailed orders.")
	return b.String()
}

// FormatSearch renders cross-tab search results.
func FormatSearch(term string, orders []model.Order) string {
	if len(orders) == 0 {
		return fmt.Sprintf("🔍 *Search Results*\nNo orders found matching '%s'", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Search Results for '%s'*\n", term)
	fmt.Fprintf(&b, "*Found %d orders*\n", len(orders))
	b.WriteString("*" + strings.Repeat("=", 40) + "*\n\n")

	for _, o := range orders {
		fmt.Fprintf(&b, "*%s*\n", displayName(o.SourceTab))
		fmt.Fprintf(&b, "*Order ID:* %s\n", o.ID)
		fmt.Fprintf(&b, "*Client:* %s\n", o.ClientName)
		fmt.Fprintf(&b, "*Specs:* %s\n", o.Specifications)
		if len(o.Items) > 0 {
			b.WriteString("*Items:*\n")
			for _, item := range o.Items {
				fmt.Fprintf(&b, "  • %s - Qty: %s\n", item.Size, item.Quantity)
			}
		}
		if o.CreatedAt != "" {
			fmt.Fprintf(&b, "*Created:* %s\n", formatDate(o.CreatedAt))
		}
		if o.UpdatedAt != "" && o.UpdatedAt != o.CreatedAt {
			fmt.Fprintf(&b, "*Updated:* %s\n", formatDate(o.UpdatedAt))
		}
		b.WriteString("\n*" + strings.Repeat("-", 30) + "*\n\n")
	}
	return b.String()
}

// FormatQuery renders the flat default-sheet listing of /status and /query.
func FormatQuery(records []model.Record, filter string) string {
	if len(records) == 0 {
		if filter != "" {
			return "No orders found matching the criteria."
		}
		return "No orders found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d orders:\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(&b, "\nClient: %s\n", orDefault(rec.ClientName))
		fmt.Fprintf(&b, "Specs: %s\n", orDefault(rec.Specifications))
		fmt.Fprintf(&b, "Sizes: %s\n", orDefault(rec.Sizes))
		fmt.Fprintf(&b, "Qty: %s\n", orDefault(rec.Quantity))
		fmt.Fprintf(&b, "Status: %s\n---", orDefault(rec.Status))
	}
	return b.String()
}

func orDefault(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// FormatSubmitted confirms a persisted order.
func FormatSubmitted(orderID string, draft model.OrderDraft) string {
	var b strings.Builder
	b.WriteString("✅ Order added successfully!\n\n")
	fmt.Fprintf(&b, "Client: %s\n", draft.ClientName)
	fmt.Fprintf(&b, "Order ID: %s\n", orderID)
	if draft.Specifications != "" {
		fmt.Fprintf(&b, "Specs: %s\n", draft.Specifications)
	}
	if n := len(draft.Pairs); n > 0 {
		fmt.Fprintf(&b, "Items: %d\n", n)
	}
	return b.String()
}

// formatDate renders a stored timestamp as "28 June 2025", falling back to
// the raw string when it cannot be parsed.
func formatDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", timeLayout, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02 January 2006")
		}
	}
	return s
}

// HelpText lists every command the bot understands.
func HelpText() string {
	return `🤖 *WhatsApp Glass Bot Commands*

📋 *View Orders:*
• ` + "`/pending`" + ` - Show all pending orders
• ` + "`/ready`" + ` - Show all ready orders
• ` + "`/delivered`" + ` - Show all delivered orders
• ` + "`/completed`" + ` - Show all completed orders
• ` + "`/all`" + ` - Show summary of all tabs

🔍 *Search & Status:*
• ` + "`/search [term]`" + ` - Search orders by ID, client name, or specs
• ` + "`/status [client/ID]`" + ` - Find specific order status

🔄 *Update Orders:*
• ` + "`/update [order_id] [status]`" + ` - Update order status
  Example: ` + "`/update 123456 Ready`" + `

📝 *Add New Order:*
Just send your order details as text:
` + "```" + `
Client Name: John Doe
Glass Specifications: 10mm Clear Glass
Sizes: 2000x1000
Quantity: 2
` + "```" + `

💡 *Status Options:* Pending, Ready, Delivered, Completed
`
}

// UpdateHelpText explains /update usage.
func UpdateHelpText() string {
	return `🔄 *Update Order Status*

Usage: ` + "`/update [order_id] [status]`" + `

Examples:
• ` + "`/update 123456 Ready`" + `
• ` + "`/update 789012 Delivered`" + `
• ` + "`/update 345678 Completed`" + `

Available statuses: Pending, Ready, Delivered, Completed

💡 The order will automatically move to the appropriate tab.
`
}

// SearchHelpText explains /search usage.
func SearchHelpText() string {
	return `🔍 *Search Orders*

Usage: ` + "`/search [search_term]`" + `

Examples:
• ` + "`/search John Doe`" + ` - Find orders for client "John Doe"
• ` + "`/search 123456`" + ` - Find order with ID "123456"
• ` + "`/search glass`" + ` - Find orders with "glass" in specifications

💡 Searches across all tabs (Pending, Ready, Delivered, Completed)
`
}
