// Package highlight marks recipe keywords inside transcript text.
package highlight

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind is the keyword category a span belongs to.
type Kind string

const (
	KindIngredient Kind = "ingredient"
	KindTechnique  Kind = "technique"
	KindEquipment  Kind = "equipment"
)

// Span is one highlighted region of the text, as byte offsets.
type Span struct {
	Start   int
	End     int
	Kind    Kind
	Keyword string
}

// Keywords are the terms to mark, partitioned by category.
type Keywords struct {
	Ingredients []string
	Techniques  []string
	Equipment   []string
}

// Find locates every keyword occurrence in text and returns a
// non-overlapping span set. Matching is case-insensitive for ASCII and
// respects word boundaries, so "salt" never fires inside "salted".
// Keywords must be at least two characters. Overlaps resolve greedily:
// spans sort by start, then longer first, and a span is kept only when
// it starts at or after the previous kept span's end. Case folding is
// byte-for-byte so span offsets always index the original text.
func Find(text string, kws Keywords) []Span {
	lower := lowerASCII(text)

	var all []Span
	collect := func(terms []string, kind Kind) {
		for _, term := range terms {
			t := lowerASCII(strings.TrimSpace(term))
			if len(t) < 2 {
				continue
			}
			for _, start := range wordMatches(lower, t) {
				all = append(all, Span{
					Start:   start,
					End:     start + len(t),
					Kind:    kind,
					Keyword: term,
				})
			}
		}
	}
	collect(kws.Ingredients, KindIngredient)
	collect(kws.Techniques, KindTechnique)
	collect(kws.Equipment, KindEquipment)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		return all[i].End > all[j].End
	})

	var kept []Span
	lastEnd := 0
	for _, s := range all {
		if s.Start >= lastEnd {
			kept = append(kept, s)
			lastEnd = s.End
		}
	}
	return kept
}

// wordMatches returns the start offset of every boundary-delimited
// occurrence of needle in haystack.
func wordMatches(haystack, needle string) []int {
	var out []int
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return out
		}
		idx += from
		end := idx + len(needle)
		if boundary(haystack, idx-1) && boundary(haystack, end) {
			out = append(out, idx)
		}
		from = idx + 1
	}
}

// lowerASCII lowercases only the ASCII letters of s, leaving every
// other byte untouched. Unlike strings.ToLower it never changes the
// byte length, so offsets into the result index s as well.
func lowerASCII(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + 'a' - 'A'
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

// boundary reports whether position idx is outside the string or holds
// a non-word byte.
func boundary(s string, idx int) bool {
	if idx < 0 || idx >= len(s) {
		return true
	}
	b := s[idx]
	return !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9')
}

var kindStyles = map[Kind]lipgloss.Style{
	KindIngredient: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
	KindTechnique:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	KindEquipment:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
}

// Render returns text with every found span styled for the terminal.
func Render(text string, kws Keywords) string {
	spans := Find(text, kws)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		b.WriteString(text[pos:s.Start])
		b.WriteString(kindStyles[s.Kind].Render(text[s.Start:s.End]))
		pos = s.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
