package transcript

import (
	"fmt"
	"strings"
)

// FormatMarker renders seconds as the literal [MM:SS] or [H:MM:SS] marker
// used to annotate transcripts before sending them to the model.
func FormatMarker(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("[%d:%02d:%02d]", h, m, s)
	}
	return fmt.Sprintf("[%d:%02d]", m, s)
}

// Annotate renders the transcript with one marker-prefixed line per
// segment. Section cleaning prompts require the model to reuse these
// literal markers for section boundaries.
func Annotate(t *Transcript) string {
	var b strings.Builder
	for i, seg := range t.Segments {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatMarker(seg.StartTime))
		b.WriteString(" ")
		b.WriteString(seg.Text)
	}
	return b.String()
}

// MarkerTimes returns the set of segment start times, keyed by their
// literal marker, for validating that model-produced section boundaries
// point at real transcript positions.
func MarkerTimes(t *Transcript) map[string]float64 {
	out := make(map[string]float64, len(t.Segments))
	for _, seg := range t.Segments {
		out[FormatMarker(seg.StartTime)] = seg.StartTime
	}
	return out
}
