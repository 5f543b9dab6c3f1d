package search

import (
	"regexp"
	"strings"
)

// Users paste whole spec-sheet lines into the search box, so the raw
// query carries category labels, price suffixes, warranty notes and
// marketing filler that never appear verbatim in stored content. The
// preprocessor trades literal-match precision for tolerance of that
// noise: it rewrites the query through an ordered rule table before
// tokenization.

// bypassPatterns detect queries that target a structured field directly
// (NAS locations, totals, formatted dates, the total_invNumber probe).
// Those are assumed well-formed and skip all cleaning.
var bypassPatterns = []*regexp.Regexp{
	regexp.MustCompile(`naslocation|\\\\`),
	regexp.MustCompile(`(?i)\btotal\b`),
	regexp.MustCompile(`(?i)created_at,\s*'%d/%m/%y'`),
	regexp.MustCompile(`(?i)\btotal,\s*'_',\s*invnumber\b`),
}

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// cleanupRules run in order; the list is configuration and grows as new
// spec-sheet noise shows up in pasted queries.
var cleanupRules = []rewriteRule{
	// Brand synonym: the informal spelling becomes the canonical one.
	{regexp.MustCompile(`(?i)\bgskill\b`), "g.skill"},
	// Component-category labels pasted along with the part name.
	{regexp.MustCompile(`(?i)\b(speaker|accessories|monitor & accessories|powersupply \(psu\)|peripherals|gaming chair|gaming desk|software \(optional\)|optical drive|networking \(wifi receiver\)|networking \(wifi router\)|amd ryzen prcessor|intel processor|psu|ram|ssd|hdd|os|powersupplyunit|motherboard \(intel\)|motherboard \(amd\)|cooler|graphic card|case):\s*`), ""},
	// Trailing "| RM 123" price suffixes.
	{regexp.MustCompile(`(?i)\s?\|\s?rm\s?\d+\b`), ""},
	// "7 years warranty" and friends.
	{regexp.MustCompile(`(?i)\b\d+\s?years?\s?warranty\b`), ""},
	// Bracketed annotations, brackets included.
	{regexp.MustCompile(`\s?\[.*?\]\s?`), ""},
	// Collapse runs of whitespace.
	{regexp.MustCompile(`\s+`), " "},
	// Purely descriptive marketing words.
	{regexp.MustCompile(`(?i)\b(dual chamber|touchscreen|atx case|with|cooling|matte)\b`), ""},
}

// PreprocessQuery lowercases and cleans a raw user query into a string
// ready for tokenization. Empty input yields empty output; cleaning is
// lossy by design.
func PreprocessQuery(raw string) string {
	q := strings.ToLower(raw)

	for _, p := range bypassPatterns {
		if p.MatchString(q) {
			return strings.TrimSpace(q)
		}
	}

	for _, rule := range cleanupRules {
		q = rule.pattern.ReplaceAllString(q, rule.replacement)
	}
	return strings.TrimSpace(q)
}
