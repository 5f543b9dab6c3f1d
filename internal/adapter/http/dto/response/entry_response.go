package response

import "photostock/internal/domain/entities"

// EntryResponse is one analyzed preview entry. ErrorMessage is null when
// the entry is savable, matching what the preview cards expect.
type EntryResponse struct {
	InvNumber       string  `json:"invNumber"`
	Total           string  `json:"total"`
	OriginalContent string  `json:"originalContent"`
	NasLocation     string  `json:"nasLocation"`
	ImageName       string  `json:"imageName,omitempty"`
	ErrorMessage    *string `json:"errorMessage"`
}

func FromEntry(e entities.Entry) EntryResponse {
	resp := EntryResponse{
		InvNumber:       e.InvNumber,
		Total:           e.Total,
		OriginalContent: e.OriginalContent,
		NasLocation:     e.NasLocation,
		ImageName:       e.ImageName,
	}
	if !e.Savable() {
		msg := e.ErrorMessage
		resp.ErrorMessage = &msg
	}
	return resp
}

// AnalyzeResponse wraps the analyzed batch.
type AnalyzeResponse struct {
	Entries []EntryResponse `json:"entries"`
}

func FromEntries(entries []entities.Entry) AnalyzeResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return AnalyzeResponse{Entries: out}
}
