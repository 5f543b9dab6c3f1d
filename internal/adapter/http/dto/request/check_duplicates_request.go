package request

import "strings"

// CheckDuplicatesRequest asks which candidate invoice numbers already
// exist in the catalog.
type CheckDuplicatesRequest struct {
	InvNumbers []string `json:"invNumbers" binding:"required"`
}

// ResolveInvNumbers returns the candidates with blanks trimmed away.
func (r CheckDuplicatesRequest) ResolveInvNumbers() []string {
	out := make([]string, 0, len(r.InvNumbers))
	for _, inv := range r.InvNumbers {
		if v := strings.TrimSpace(inv); v != "" {
			out = append(out, v)
		}
	}
	return out
}
