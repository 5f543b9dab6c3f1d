package analysis

import "testing"

func TestMatchImage(t *testing.T) {
	t.Run("plain substring", func(t *testing.T) {
		name, ok := MatchImage("AG49724", []string{"RM10360_AG49724.webp"})
		if !ok || name != "RM10360_AG49724.webp" {
			t.Fatalf("expected match, got %q ok=%v", name, ok)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		_, ok := MatchImage("AG49724", []string{"rm10360_ag49724.jpg"})
		if !ok {
			t.Fatal("expected case-insensitive match")
		}
	})

	t.Run("duplicate upload suffix", func(t *testing.T) {
		name, ok := MatchImage("AG49724", []string{"AG49724 (1).png"})
		if !ok || name != "AG49724 (1).png" {
			t.Fatalf("expected match with (1) suffix, got %q ok=%v", name, ok)
		}
	})

	t.Run("first match wins", func(t *testing.T) {
		name, ok := MatchImage("SE53224", []string{"other.png", "SE53224_a.png", "SE53224_b.png"})
		if !ok || name != "SE53224_a.png" {
			t.Fatalf("expected first matching file, got %q ok=%v", name, ok)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := MatchImage("AG49724", []string{"unrelated.png", "AG499.png"})
		if ok {
			t.Fatal("expected no match")
		}
	})

	t.Run("empty invoice number", func(t *testing.T) {
		_, ok := MatchImage("", []string{"anything.png"})
		if ok {
			t.Fatal("empty invoice number must not match")
		}
	})

	t.Run("inputs untouched", func(t *testing.T) {
		files := []string{"a.png", "SE53224.png"}
		MatchImage("SE53224", files)
		if files[0] != "a.png" || files[1] != "SE53224.png" {
			t.Fatalf("candidate slice mutated: %v", files)
		}
	})
}
