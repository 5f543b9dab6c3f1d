package analysis

import (
	"fmt"
	"strings"

	"photostock/internal/domain/entities"
)

// RequiredSpecs are the component tokens every invoice block must list.
// This is catalog configuration, not logic; adjust when the shop changes
// what a complete build includes.
var RequiredSpecs = []string{"INV#", "CPU", "GPU", "CASE", "MOBO", "RAM", "PSU"}

// Validate checks e against the set of invoice numbers already in the
// catalog and returns the accumulated error message, newline-separated.
// An empty return means the entry is savable.
//
// Validation is a pure function: missing data is a data-quality fact
// recorded in the message, never an error.
func Validate(e entities.Entry, existing map[string]bool) string {
	var msgs []string

	if existing[e.InvNumber] {
		msgs = append(msgs, fmt.Sprintf("INV#: %s is already in the database.", e.InvNumber))
	}

	if e.ImageName == "" {
		msgs = append(msgs, "Missing image, ensure image filename matches INV#.")
	}

	var missing []string
	for _, spec := range RequiredSpecs {
		if !strings.Contains(e.OriginalContent, spec) {
			missing = append(missing, spec)
		}
	}
	if len(missing) > 0 {
		msgs = append(msgs, fmt.Sprintf("Missing %s: Ensure spec list format is correct.", strings.Join(missing, ", ")))
	}

	return strings.Join(msgs, "\n")
}
