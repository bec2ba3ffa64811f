// Package timing locates recipe keywords in the transcript and derives
// a start/end window for every instruction step.
package timing

import (
	"sort"
	"strings"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
	"github.com/vuhoanglam/recipe-flow/internal/transcript"
)

// dedupeWindow collapses repeat sightings of the same keyword that fall
// within this many seconds of an earlier one.
const dedupeWindow = 3

// maxContextLen caps the excerpt attached to a reference.
const maxContextLen = 100

// stopwords are terms too generic to anchor a timestamp.
var stopwords = map[string]bool{
	"form": true, "place": true, "put": true, "add": true, "make": true,
	"take": true, "get": true, "use": true, "set": true, "turn": true,
	"let": true, "give": true, "keep": true, "bring": true, "start": true,
	"try": true, "want": true,
	"top": true, "side": true, "bit": true, "way": true, "time": true,
	"thing": true, "part": true, "end": true,
}

// FindReferences scans the transcript for each keyword and returns all
// sightings with timestamps and a short context excerpt, sorted by
// time. Matches respect word boundaries, so "salt" does not fire
// inside "salted".
func FindReferences(t *transcript.Transcript, keywords []string) []recipe.VideoReference {
	if t == nil || len(t.Segments) == 0 {
		return nil
	}

	var matches []recipe.VideoReference
	seen := make(map[string][]int)

	for _, keyword := range keywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if len(kw) < 2 || stopwords[kw] {
			continue
		}

		for i, seg := range t.Segments {
			if !containsWord(strings.ToLower(seg.Text), kw) {
				continue
			}

			ts := int(seg.StartTime)
			if nearSeen(seen[kw], ts) {
				continue
			}
			seen[kw] = append(seen[kw], ts)

			matches = append(matches, recipe.VideoReference{
				Keyword:          keyword,
				TimestampSeconds: ts,
				Context:          contextExcerpt(t.Segments, i, kw),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].TimestampSeconds < matches[j].TimestampSeconds
	})
	return matches
}

// AttachReferences resolves every instruction's keywords against the
// transcript and stores the sightings on the instruction.
func AttachReferences(t *transcript.Transcript, r *recipe.Recipe) {
	for i := range r.Instructions {
		inst := &r.Instructions[i]
		kws := instructionKeywords(inst)
		if len(kws) == 0 {
			continue
		}
		inst.VideoReferences = FindReferences(t, kws)
	}
}

func instructionKeywords(inst *recipe.Instruction) []string {
	if inst.Keywords == nil {
		return nil
	}
	var kws []string
	kws = append(kws, recipe.IngredientTerms(inst.Keywords.Ingredients)...)
	kws = append(kws, inst.Keywords.Techniques...)
	kws = append(kws, inst.Keywords.Equipment...)
	return kws
}

// containsWord reports whether needle occurs in haystack bounded by
// non-alphanumeric runes or the string edges on both sides.
func containsWord(haystack, needle string) bool {
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		idx += from
		end := idx + len(needle)
		if boundaryBefore(haystack, idx) && boundaryAfter(haystack, end) {
			return true
		}
		from = idx + 1
	}
}

func boundaryBefore(s string, idx int) bool {
	return idx == 0 || !isWordByte(s[idx-1])
}

func boundaryAfter(s string, idx int) bool {
	return idx >= len(s) || !isWordByte(s[idx])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func nearSeen(seen []int, ts int) bool {
	for _, s := range seen {
		d := ts - s
		if d < 0 {
			d = -d
		}
		if d <= dedupeWindow {
			return true
		}
	}
	return false
}

// contextExcerpt joins the matching segment with its neighbors, then
// trims to roughly maxContextLen characters around the keyword.
func contextExcerpt(segs []transcript.Segment, i int, kw string) string {
	var parts []string
	if i > 0 {
		parts = append(parts, segs[i-1].Text)
	}
	parts = append(parts, segs[i].Text)
	if i < len(segs)-1 {
		parts = append(parts, segs[i+1].Text)
	}
	context := strings.Join(parts, " ")
	if len(context) <= maxContextLen {
		return context
	}

	idx := strings.Index(strings.ToLower(context), kw)
	if idx < 0 {
		return context[:maxContextLen] + "..."
	}
	start := idx - 40
	if start < 0 {
		start = 0
	}
	end := idx + len(kw) + 40
	if end > len(context) {
		end = len(context)
	}
	out := context[start:end]
	if start > 0 {
		out = "..." + out
	}
	if end < len(context) {
		out += "..."
	}
	return out
}
