package entities

import "time"

// Status represents the workflow state of a cataloged invoice.
//
// Domain notes:
//   - Results start as Ready when saved and move through Scheduled/Posted
//     as the photos get used.
//   - Transitions are driven by the catalog UI; any of the three values is
//     a legal target at any time.

type Status string

const (
	StatusReady     Status = "Ready"
	StatusScheduled Status = "Scheduled"
	StatusPosted    Status = "Posted"
)

// IsValid reports whether s is one of the three workflow states.
func (s Status) IsValid() bool {
	switch s {
	case StatusReady, StatusScheduled, StatusPosted:
		return true
	}
	return false
}

// Result is a cataloged invoice persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: invNumber
//
// InvNumber is the natural unique key: the analyze pipeline flags
// duplicates before save, and the repository enforces uniqueness with a
// conditional put.
type Result struct {
	InvNumber       string    `json:"invNumber"`
	Total           string    `json:"total"`
	OriginalContent string    `json:"originalContent"`
	NasLocation     string    `json:"nasLocation"`
	ImagePath       string    `json:"imagePath"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
