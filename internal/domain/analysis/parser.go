package analysis

import (
	"regexp"
	"strings"

	"photostock/internal/domain/entities"
)

const (
	invAnchor   = "INV#:"
	totalAnchor = "Total:"
)

// amountPattern matches the currency amount that must follow a Total:
// anchor: optional whitespace, an RM prefix (any case), at most one
// separating space, then digits with optional thousand separators.
var amountPattern = regexp.MustCompile(`^\s*(?i:rm)\s?[0-9,]+`)

// Parse scans freeform pasted text for invoice blocks and returns one
// Entry per block, each tagged with the shared NAS location.
//
// A block is an "INV#:" anchor, the invoice token after it, and the
// nearest following "Total:" anchor with a parseable amount. The scan is
// deliberately lazy: an anchor binds to the closest amount-bearing Total
// even when another "INV#:" sits in between, and an anchor with no such
// Total yields nothing while later anchors still match. Matches never
// overlap.
//
// Text with no blocks returns an empty slice, not an error.
func Parse(text, nasLocation string) []entities.Entry {
	var entries []entities.Entry

	pos := 0
	for {
		rel := strings.Index(text[pos:], invAnchor)
		if rel < 0 {
			break
		}
		start := pos + rel

		tokenStart := start + len(invAnchor)
		for tokenStart < len(text) && isSpace(text[tokenStart]) {
			tokenStart++
		}
		tokenEnd := tokenStart
		for tokenEnd < len(text) && !isSpace(text[tokenEnd]) {
			tokenEnd++
		}
		if tokenEnd == tokenStart {
			break // anchor at end of input, nothing to capture
		}
		rawInv := text[tokenStart:tokenEnd]

		end, total, ok := findTotal(text, tokenEnd)
		if !ok {
			// Dangling anchor: skip past it and keep scanning.
			pos = start + len(invAnchor)
			continue
		}

		entries = append(entries, entities.Entry{
			InvNumber:       strings.ReplaceAll(rawInv, "-", ""),
			Total:           total,
			OriginalContent: strings.TrimSpace(text[start:end]),
			NasLocation:     nasLocation,
		})
		pos = end
	}

	if entries == nil {
		return []entities.Entry{}
	}
	return entries
}

// findTotal locates the nearest "Total:" at or after from that is
// followed by a valid amount. It returns the span end and the normalized
// total ("RM" + digits, commas and inner whitespace removed).
func findTotal(text string, from int) (end int, total string, ok bool) {
	for {
		rel := strings.Index(text[from:], totalAnchor)
		if rel < 0 {
			return 0, "", false
		}
		after := from + rel + len(totalAnchor)

		loc := amountPattern.FindStringIndex(text[after:])
		if loc != nil {
			amount := text[after+loc[0] : after+loc[1]]
			return after + loc[1], normalizeTotal(amount), true
		}
		from = after
	}
}

// normalizeTotal reduces a matched amount like "rm 7,660" to "RM7660".
func normalizeTotal(amount string) string {
	var digits strings.Builder
	for _, r := range amount {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "RM" + digits.String()
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
