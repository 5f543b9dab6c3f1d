package response

import (
	"time"

	"photostock/internal/domain/entities"
)

// ResultResponse is one cataloged invoice as the UI consumes it.
type ResultResponse struct {
	InvNumber       string    `json:"invNumber"`
	Total           string    `json:"total"`
	OriginalContent string    `json:"originalContent"`
	NasLocation     string    `json:"nasLocation"`
	ImagePath       string    `json:"imagePath"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromResult(r entities.Result) ResultResponse {
	return ResultResponse{
		InvNumber:       r.InvNumber,
		Total:           r.Total,
		OriginalContent: r.OriginalContent,
		NasLocation:     r.NasLocation,
		ImagePath:       r.ImagePath,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

// ListResponse is one page of results plus the filtered total the
// pagination widget needs.
type ListResponse struct {
	Results    []ResultResponse `json:"results"`
	TotalCount int              `json:"totalCount"`
}

func FromResults(results []entities.Result, totalCount int) ListResponse {
	out := make([]ResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FromResult(r))
	}
	return ListResponse{Results: out, TotalCount: totalCount}
}
