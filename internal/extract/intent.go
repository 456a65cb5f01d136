package extract

import (
	"strings"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// Kind identifies what a message asks the bot to do.
type Kind int

const (
	// KindNotACommand marks plain text that should go through extraction.
	KindNotACommand Kind = iota
	KindViewTab
	KindViewAllTabs
	KindSearch
	KindHelp
	KindUpdateHelp
	KindSearchHelp
	KindQuery
	KindUpdate
	KindUnknown
)

// Intent is the decoded meaning of one inbound message.
type Intent struct {
	Kind    Kind
	Tab     string // KindViewTab
	Term    string // KindSearch / KindQuery filter, may be empty for KindQuery
	OrderID string // KindUpdate
	Status  string // KindUpdate
}

// ParseIntent classifies a message. Matching is case-insensitive on the
// trimmed text; anything not starting with "/" is not a command.
func ParseIntent(text string) Intent {
	text = strings.ToLower(strings.TrimSpace(text))
	if !strings.HasPrefix(text, "/") {
		return Intent{Kind: KindNotACommand}
	}

	switch {
	case strings.HasPrefix(text, "/pending"):
		return Intent{Kind: KindViewTab, Tab: model.StatusPending}
	case strings.HasPrefix(text, "/ready"):
		return Intent{Kind: KindViewTab, Tab: model.StatusReady}
	case strings.HasPrefix(text, "/delivered"):
		return Intent{Kind: KindViewTab, Tab: model.StatusDelivered}
	case strings.HasPrefix(text, "/completed"):
		return Intent{Kind: KindViewTab, Tab: model.StatusCompleted}
	case strings.HasPrefix(text, "/all"):
		return Intent{Kind: KindViewAllTabs}
	case strings.HasPrefix(text, "/help"):
		return Intent{Kind: KindHelp}
	case strings.HasPrefix(text, "/status"):
		return Intent{Kind: KindQuery, Term: remainder(text)}
	case strings.HasPrefix(text, "/update"):
		parts := strings.Fields(text)
		if len(parts) != 3 {
			return Intent{Kind: KindUpdateHelp}
		}
		return Intent{Kind: KindUpdate, OrderID: parts[1], Status: parts[2]}
	case strings.HasPrefix(text, "/search"):
		term := remainder(text)
		if term == "" {
			return Intent{Kind: KindSearchHelp}
		}
		return Intent{Kind: KindSearch, Term: term}
	case strings.HasPrefix(text, "/query"):
		return Intent{Kind: KindQuery}
	}
	return Intent{Kind: KindUnknown}
}

// remainder returns everything after the command token, trimmed.
func remainder(text string) string {
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return ""
}
