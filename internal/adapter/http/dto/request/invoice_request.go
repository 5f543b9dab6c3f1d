package request

import (
	"encoding/base64"
	"errors"
	"strings"

	"photostock/internal/domain/entities"
)

var (
	ErrUnknownStatus  = errors.New("unknown status")
	ErrInvalidPayload = errors.New("invalid image payload")
)

// StatusUpdateRequest moves one result to a new workflow state.
type StatusUpdateRequest struct {
	InvNumber string `json:"invNumber" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveInvNumber() string {
	return strings.TrimSpace(r.InvNumber)
}

// ResolveStatus maps the raw status string onto the workflow enum.
func (r StatusUpdateRequest) ResolveStatus() (entities.Status, error) {
	s := entities.Status(strings.TrimSpace(r.Status))
	if !s.IsValid() {
		return "", ErrUnknownStatus
	}
	return s, nil
}

// DeleteRequest removes one result (and its photo) from the catalog.
type DeleteRequest struct {
	InvNumber string `json:"invNumber" binding:"required"`
}

func (r DeleteRequest) ResolveInvNumber() string {
	return strings.TrimSpace(r.InvNumber)
}

// OverwriteImageRequest replaces a stored photo with a client-compressed
// rendition, base64-encoded.
type OverwriteImageRequest struct {
	InvNumber        string `json:"invNumber" binding:"required"`
	OriginalFilename string `json:"originalFilename" binding:"required"`
	CompressedImage  string `json:"compressedImage" binding:"required"`
}

func (r OverwriteImageRequest) ResolveInvNumber() string {
	return strings.TrimSpace(r.InvNumber)
}

// DecodeImage returns the raw image bytes from the base64 payload.
func (r OverwriteImageRequest) DecodeImage() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.CompressedImage)
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidPayload
	}
	return data, nil
}
