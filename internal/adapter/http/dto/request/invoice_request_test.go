package request

import (
	"encoding/base64"
	"errors"
	"testing"

	"photostock/internal/domain/entities"
)

func TestCheckDuplicatesRequest_ResolveInvNumbers(t *testing.T) {
	r := CheckDuplicatesRequest{InvNumbers: []string{" AG49724 ", "", "  ", "SE53224"}}
	got := r.ResolveInvNumbers()
	if len(got) != 2 || got[0] != "AG49724" || got[1] != "SE53224" {
		t.Fatalf("expected trimmed non-empty candidates, got %v", got)
	}
}

func TestStatusUpdateRequest_ResolveStatus(t *testing.T) {
	for _, raw := range []string{"Ready", "Scheduled", "Posted", " Posted "} {
		r := StatusUpdateRequest{InvNumber: "AG49724", Status: raw}
		s, err := r.ResolveStatus()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if !s.IsValid() {
			t.Fatalf("expected valid status for %q, got %q", raw, s)
		}
	}

	r := StatusUpdateRequest{InvNumber: "AG49724", Status: "Archived"}
	if _, err := r.ResolveStatus(); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestStatusUpdateRequest_StatusEnum(t *testing.T) {
	r := StatusUpdateRequest{Status: "Scheduled"}
	s, err := r.ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != entities.StatusScheduled {
		t.Fatalf("expected StatusScheduled, got %q", s)
	}
}

func TestOverwriteImageRequest_DecodeImage(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF}
	r := OverwriteImageRequest{
		InvNumber:        "AG49724",
		OriginalFilename: "AG49724.webp",
		CompressedImage:  base64.StdEncoding.EncodeToString(payload),
	}
	data, err := r.DecodeImage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != len(payload) {
		t.Fatalf("expected %d bytes, got %d", len(payload), len(data))
	}

	bad := OverwriteImageRequest{CompressedImage: "%%% not base64 %%%"}
	if _, err := bad.DecodeImage(); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}

	empty := OverwriteImageRequest{CompressedImage: ""}
	if _, err := empty.DecodeImage(); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for empty payload, got %v", err)
	}
}
