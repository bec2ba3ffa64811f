// Package description parses YouTube video descriptions for chapter
// timestamps and estimates how many distinct recipes a video covers.
package description

import (
	"regexp"
	"strconv"
	"strings"
)

// Chapter is one "timestamp - label" line from a video description.
type Chapter struct {
	Seconds float64
	Label   string
}

// reChapter matches lines like "0:45 - Carbonara" or "1:02:30 – Outro".
// The timestamp may appear anywhere at the start of the line, the label
// follows a hyphen or en dash separator.
var reChapter = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::(\d{2}))?\s*[-–—]\s*(.+?)\s*$`)

// nonRecipePrefixes marks chapter labels that never introduce a recipe.
// Matching is case-insensitive on the label prefix.
var nonRecipePrefixes = []string{
	"intro",
	"outro",
	"final",
	"wheel",
	"conclusion",
	"thanks",
	"subscribe",
	"end",
	"credits",
	"sponsor",
	"music",
	"disclaimer",
	"closing",
	"opening",
}

// ParseChapters extracts every timestamp line from a description, in
// the order they appear. Lines that do not match the chapter shape are
// ignored.
func ParseChapters(description string) []Chapter {
	var chapters []Chapter
	for _, line := range strings.Split(description, "\n") {
		m := reChapter.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		var secs float64
		if m[3] != "" {
			third, _ := strconv.Atoi(m[3])
			secs = float64(first*3600 + second*60 + third)
		} else {
			secs = float64(first*60 + second)
		}
		chapters = append(chapters, Chapter{Seconds: secs, Label: m[4]})
	}
	return chapters
}

// IsRecipeChapter reports whether a chapter label plausibly names a
// recipe rather than channel boilerplate.
func IsRecipeChapter(label string) bool {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return false
	}
	for _, p := range nonRecipePrefixes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	return true
}

// EstimateRecipeCount returns the number of chapter lines whose labels
// look like recipes. Zero means the description carries no usable
// chapter signal, not that the video has no recipes.
func EstimateRecipeCount(description string) int {
	n := 0
	for _, ch := range ParseChapters(description) {
		if IsRecipeChapter(ch.Label) {
			n++
		}
	}
	return n
}
