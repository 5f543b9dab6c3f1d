package analysis

import "regexp"

// MatchImage finds the uploaded file that belongs to an invoice: the
// first filename containing the invoice number, optionally followed by a
// parenthesized duplicate-upload suffix like " (1)". Matching is
// case-insensitive and leaves the inputs untouched.
//
// The second return value is false when no candidate qualifies.
func MatchImage(invNumber string, filenames []string) (string, bool) {
	if invNumber == "" {
		return "", false
	}
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(invNumber) + `(?:\s*\(\d+\))?`)
	for _, name := range filenames {
		if pattern.MatchString(name) {
			return name, true
		}
	}
	return "", false
}
