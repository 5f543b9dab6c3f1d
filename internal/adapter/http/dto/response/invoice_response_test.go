package response

import (
	"testing"
	"time"

	"photostock/internal/domain/entities"
)

func TestFromResults(t *testing.T) {
	now := time.Date(2024, time.October, 4, 12, 0, 0, 0, time.UTC)
	results := []entities.Result{
		{InvNumber: "AG49724", Total: "RM7660", Status: entities.StatusReady, CreatedAt: now},
	}

	resp := FromResults(results, 42)
	if resp.TotalCount != 42 {
		t.Fatalf("expected filtered total 42, got %d", resp.TotalCount)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].InvNumber != "AG49724" || resp.Results[0].Status != "Ready" {
		t.Fatalf("unexpected mapping: %+v", resp.Results[0])
	}

	empty := FromResults(nil, 0)
	if empty.Results == nil {
		t.Fatal("results must marshal as [], not null")
	}
}

func TestFromEntry_ErrorMessageNullability(t *testing.T) {
	clean := FromEntry(entities.Entry{InvNumber: "AG49724"})
	if clean.ErrorMessage != nil {
		t.Fatalf("savable entry must have null errorMessage, got %q", *clean.ErrorMessage)
	}

	flagged := FromEntry(entities.Entry{InvNumber: "AG49724", ErrorMessage: "Missing image, ensure image filename matches INV#."})
	if flagged.ErrorMessage == nil || *flagged.ErrorMessage == "" {
		t.Fatal("expected errorMessage to carry the validation failure")
	}
}
