package highlight

import (
	"strings"
	"testing"
)

func TestFindWordBoundaries(t *testing.T) {
	spans := Find("add the salted butter, then more salt", Keywords{
		Ingredients: []string{"salt"},
	})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].Start != 33 || spans[0].End != 37 {
		t.Errorf("span [%d, %d], want [33, 37]", spans[0].Start, spans[0].End)
	}
	if spans[0].Kind != KindIngredient {
		t.Errorf("kind = %q", spans[0].Kind)
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	spans := Find("Whisk the EGGS thoroughly", Keywords{
		Ingredients: []string{"eggs"},
		Techniques:  []string{"whisk"},
	})
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Keyword != "whisk" || spans[1].Keyword != "eggs" {
		t.Errorf("keywords %q, %q", spans[0].Keyword, spans[1].Keyword)
	}
}

func TestFindOverlapLongestWins(t *testing.T) {
	spans := Find("heat the olive oil in the pan", Keywords{
		Ingredients: []string{"olive oil", "oil"},
	})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].Keyword != "olive oil" {
		t.Errorf("kept %q, want the longer match", spans[0].Keyword)
	}
}

func TestFindNonOverlapping(t *testing.T) {
	spans := Find("pan sear the pan-seared fish in a pan", Keywords{
		Techniques: []string{"sear"},
		Equipment:  []string{"pan"},
	})
	last := 0
	for _, s := range spans {
		if s.Start < last {
			t.Fatalf("overlapping spans: %+v", spans)
		}
		last = s.End
	}
}

func TestFindRejectsShortKeywords(t *testing.T) {
	if spans := Find("a b c", Keywords{Ingredients: []string{"a", ""}}); spans != nil {
		t.Errorf("single-char keywords must not match: %+v", spans)
	}
}

func TestFindSorted(t *testing.T) {
	spans := Find("whisk eggs then whisk cream", Keywords{
		Techniques:  []string{"whisk"},
		Ingredients: []string{"eggs", "cream"},
	})
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].Start {
			t.Fatalf("spans out of order: %+v", spans)
		}
	}
	if len(spans) != 4 {
		t.Errorf("got %d spans, want 4", len(spans))
	}
}

func TestFindOffsetsIndexOriginalText(t *testing.T) {
	// Runes like U+212A (KELVIN SIGN) change byte length under full
	// Unicode lowercasing. Spans must still index the original string.
	texts := []string{
		"K salt",         // 3-byte rune that would shrink to "k"
		"Ⱥ salt",         // 2-byte rune that would grow to 3 bytes
		"café with salt", // plain multibyte text
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			spans := Find(text, Keywords{Ingredients: []string{"salt"}})
			if len(spans) != 1 {
				t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
			}
			if got := text[spans[0].Start:spans[0].End]; got != "salt" {
				t.Errorf("span covers %q, want %q", got, "salt")
			}
		})
	}
}

func TestRenderMultibyteText(t *testing.T) {
	out := Render("Ⱥ salt and K eggs", Keywords{
		Ingredients: []string{"salt", "eggs"},
	})
	for _, want := range []string{"Ⱥ ", "salt", " and K ", "eggs"} {
		if !strings.Contains(out, want) {
			t.Errorf("render lost %q: %q", want, out)
		}
	}
}

func TestRenderPreservesText(t *testing.T) {
	// Styling depends on the terminal's color profile, so only the
	// text content is asserted.
	out := Render("whisk the eggs", Keywords{Techniques: []string{"whisk"}})
	if !strings.Contains(out, "whisk") || !strings.Contains(out, "the eggs") {
		t.Errorf("render lost text: %q", out)
	}
	if out := Render("no keywords here", Keywords{}); out != "no keywords here" {
		t.Errorf("unmatched text changed: %q", out)
	}
}
