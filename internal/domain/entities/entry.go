package entities

// Entry is an analyzed but not yet saved invoice extracted from pasted
// spec text. It becomes a Result once validated and persisted.
//
// ErrorMessage accumulates newline-separated validation failures
// (duplicate invoice number, missing image, missing spec tokens). An Entry
// is savable iff ErrorMessage is empty.
type Entry struct {
	InvNumber       string `json:"invNumber"`
	Total           string `json:"total"`
	OriginalContent string `json:"originalContent"`
	NasLocation     string `json:"nasLocation"`
	ImageName       string `json:"imageName,omitempty"`
	ErrorMessage    string `json:"errorMessage,omitempty"`
}

// Savable reports whether the entry passed validation.
func (e Entry) Savable() bool {
	return e.ErrorMessage == ""
}
