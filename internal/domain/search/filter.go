package search

import (
	"strings"

	"photostock/internal/domain/entities"
)

// Stopwords are query tokens the filter ignores. "core" would otherwise
// match every Intel CPU line in the catalog.
var Stopwords = []string{"core"}

// createdAtLayout renders created_at the way the catalog UI shows it, so
// users can search by the displayed date.
const createdAtLayout = "02/01/2006"

// Tokenize splits a cleaned query on whitespace, dropping empty tokens
// and stopwords.
func Tokenize(cleaned string) []string {
	fields := strings.Fields(cleaned)
	terms := fields[:0]
	for _, f := range fields {
		if isStopword(f) {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

func isStopword(term string) bool {
	for _, s := range Stopwords {
		if term == s {
			return true
		}
	}
	return false
}

// Filter returns the results matching every term: a result matches a
// term when any of its searchable fields contains it (AND across terms,
// OR across fields). An empty term list matches everything. Matching is
// case-insensitive and O(results x terms x fields), which is fine for an
// internal catalog.
func Filter(results []entities.Result, terms []string) []entities.Result {
	if len(terms) == 0 {
		return results
	}

	matched := make([]entities.Result, 0, len(results))
	for _, r := range results {
		if matchesAll(r, terms) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesAll(r entities.Result, terms []string) bool {
	fields := searchFields(r)
	for _, term := range terms {
		if !matchesTerm(r, fields, term) {
			return false
		}
	}
	return true
}

func matchesTerm(r entities.Result, fields []string, term string) bool {
	// Either spelling of the brand matches either spelling in the
	// content; this bridges the normalization the preprocessor applies to
	// queries but not to stored text.
	if term == "g.skill" || term == "gskill" {
		content := strings.ToLower(r.OriginalContent)
		return strings.Contains(content, "gskill") || strings.Contains(content, "g.skill")
	}

	for _, f := range fields {
		if strings.Contains(f, term) {
			return true
		}
	}
	return false
}

func searchFields(r entities.Result) []string {
	return []string{
		strings.ToLower(r.InvNumber),
		strings.ToLower(r.Total),
		strings.ToLower(r.OriginalContent),
		strings.ToLower(r.NasLocation),
		strings.ToLower(string(r.Status)),
		r.CreatedAt.Format(createdAtLayout),
		strings.ToLower(r.Total + "_" + r.InvNumber),
	}
}
