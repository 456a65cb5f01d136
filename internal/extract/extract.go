// Package extract turns free-form WhatsApp text into order drafts and
// decodes slash commands. Everything here is pure: same input, same output.
package extract

import (
	"regexp"
	"strings"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

const DefaultClientName = "UNKNOWN"

var (
	clientRe  = regexp.MustCompile(`(?i)Client Name[:\-]?\s*(.+)`)
	specsRe   = regexp.MustCompile(`(?i)Glass Specifications[:\-]?\s*(.+)`)
	invoiceRe = regexp.MustCompile(`(?i)Proforma Invoice No\.?[:\-]?\s*([A-Za-z0-9\-/]+)`)

	numberedPairRe = regexp.MustCompile(`\d+\.\s*([\d\s./x]+)\s*-\s*(\d+)`)
	barePairRe     = regexp.MustCompile(`([\d\s./x]+)\s*-\s*(\d+)`)

	sizesHeaderRe      = regexp.MustCompile(`(?i)Sizes[:\-]?`)
	quantitiesHeaderRe = regexp.MustCompile(`(?i)Quantities[:\-]?`)
	actualSectionRe    = regexp.MustCompile(`(?i)Actual Size and Quantity[:\-]?`)
	quantityFieldRe    = regexp.MustCompile(`(?i)Quantity[:\-]?\s*(\d+)`)
)

// OrderDraft extracts client, specifications, external id and size/quantity
// pairs from arbitrary message text. Pair tiers are tried in fixed priority;
// the first tier yielding at least one pair wins.
func OrderDraft(text string) model.OrderDraft {
	draft := model.OrderDraft{
		ClientName:     labeledValue(clientRe, text, DefaultClientName),
		Specifications: labeledValue(specsRe, text, ""),
		ExternalID:     labeledValue(invoiceRe, text, ""),
	}

	tiers := []func(string) []model.SizeQuantity{
		numberedPairs,
		barePairs,
		blockPairs,
		actualSectionPairs,
	}
	for _, tier := range tiers {
		if pairs := tier(text); len(pairs) > 0 {
			draft.Pairs = pairs
			return draft
		}
	}

	// Last resort: the specifications line itself stands in for the size.
	if draft.Specifications != "" {
		qty := labeledValue(quantityFieldRe, text, "1")
		draft.Pairs = []model.SizeQuantity{{Size: draft.Specifications, Quantity: qty}}
	}
	return draft
}

func labeledValue(re *regexp.Regexp, text, fallback string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallback
}

// numberedPairs matches lines like "1. 83 x 72 1/8 - 1".
func numberedPairs(text string) []model.SizeQuantity {
	return pairMatches(numberedPairRe, text)
}

// barePairs matches the same shape without the leading index.
func barePairs(text string) []model.SizeQuantity {
	return pairMatches(barePairRe, text)
}

func pairMatches(re *regexp.Regexp, text string) []model.SizeQuantity {
	var pairs []model.SizeQuantity
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		size := strings.TrimSpace(m[1])
		qty := strings.TrimSpace(m[2])
		if size == "" {
			continue
		}
		pairs = append(pairs, model.SizeQuantity{Size: size, Quantity: qty})
	}
	return pairs
}

// blockPairs pairs the lines of a "Sizes:" block with those of a
// "Quantities:" block positionally. When the blocks differ in length the
// extra entries of the longer one are dropped.
func blockPairs(text string) []model.SizeQuantity {
	sizesLoc := sizesHeaderRe.FindStringIndex(text)
	qtyLoc := quantitiesHeaderRe.FindStringIndex(text)
	if sizesLoc == nil || qtyLoc == nil || qtyLoc[0] < sizesLoc[1] {
		return nil
	}

	sizes := blockLines(text[sizesLoc[1]:qtyLoc[0]], sizesHeaderRe)
	quantities := blockLines(text[qtyLoc[1]:], quantitiesHeaderRe)

	n := len(sizes)
	if len(quantities) < n {
		n = len(quantities)
	}
	pairs := make([]model.SizeQuantity, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, model.SizeQuantity{Size: sizes[i], Quantity: quantities[i]})
	}
	return pairs
}

func blockLines(block string, header *regexp.Regexp) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || header.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// actualSectionPairs re-runs the numbered and bare tiers inside an
// "Actual Size and Quantity:" section.
func actualSectionPairs(text string) []model.SizeQuantity {
	loc := actualSectionRe.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	section := text[loc[1]:]
	if pairs := numberedPairs(section); len(pairs) > 0 {
		return pairs
	}
	return barePairs(section)
}
