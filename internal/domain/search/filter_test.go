package search

import (
	"testing"
	"time"

	"photostock/internal/domain/entities"
)

func catalogFixture() []entities.Result {
	return []entities.Result{
		{
			InvNumber:       "AG49724",
			Total:           "RM7660",
			OriginalContent: "INV#: AG497-24\nRAM: GSKILL RIPJAWS S5\nGPU: MSI RTX4070",
			NasLocation:     `W:\2024\241004_Photo`,
			Status:          entities.StatusReady,
			CreatedAt:       time.Date(2024, time.October, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			InvNumber:       "SE53224",
			Total:           "RM5100",
			OriginalContent: "INV#: SE532-24\nRAM: KINGSTON FURY\nGPU: RTX4060",
			NasLocation:     `W:\2024\240910_Photo`,
			Status:          entities.StatusPosted,
			CreatedAt:       time.Date(2024, time.September, 11, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestTokenize(t *testing.T) {
	t.Run("splits and drops stopword", func(t *testing.T) {
		terms := Tokenize("intel core i7  14700f")
		want := []string{"intel", "i7", "14700f"}
		if len(terms) != len(want) {
			t.Fatalf("expected %v, got %v", want, terms)
		}
		for i := range want {
			if terms[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, terms)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		if terms := Tokenize("   "); len(terms) != 0 {
			t.Fatalf("expected no terms, got %v", terms)
		}
	})
}

func TestFilter_AndAcrossTerms(t *testing.T) {
	results := catalogFixture()

	matched := Filter(results, []string{"ripjaws", "rtx4070"})
	if len(matched) != 1 || matched[0].InvNumber != "AG49724" {
		t.Fatalf("expected only AG49724, got %v", invNumbers(matched))
	}

	matched = Filter(results, []string{"ripjaws", "rtx4060"})
	if len(matched) != 0 {
		t.Fatalf("terms spanning different results must not match, got %v", invNumbers(matched))
	}
}

func TestFilter_FieldCoverage(t *testing.T) {
	results := catalogFixture()

	cases := []struct {
		name string
		term string
		want string
	}{
		{"invoice number", "se53224", "SE53224"},
		{"total", "rm7660", "AG49724"},
		{"nas location", `240910_photo`, "SE53224"},
		{"status", "posted", "SE53224"},
		{"formatted created_at", "04/10/2024", "AG49724"},
		{"total_invNumber concat", "rm5100_se53224", "SE53224"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched := Filter(results, []string{tc.term})
			if len(matched) != 1 || matched[0].InvNumber != tc.want {
				t.Fatalf("term %q: expected %s, got %v", tc.term, tc.want, invNumbers(matched))
			}
		})
	}
}

func TestFilter_BrandSynonym(t *testing.T) {
	results := catalogFixture()

	for _, term := range []string{"g.skill", "gskill"} {
		matched := Filter(results, []string{term})
		if len(matched) != 1 || matched[0].InvNumber != "AG49724" {
			t.Fatalf("term %q: expected AG49724, got %v", term, invNumbers(matched))
		}
	}
}

func TestFilter_EmptyTermsMatchesAll(t *testing.T) {
	results := catalogFixture()
	matched := Filter(results, nil)
	if len(matched) != len(results) {
		t.Fatalf("expected all %d results, got %d", len(results), len(matched))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	results := catalogFixture()
	terms := []string{"ram"}

	once := Filter(results, terms)
	twice := Filter(once, terms)
	if len(once) != len(twice) {
		t.Fatalf("re-filtering changed result count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].InvNumber != twice[i].InvNumber {
			t.Fatalf("re-filtering changed order: %v vs %v", invNumbers(once), invNumbers(twice))
		}
	}
}
