package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reCueTiming = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}\.\d{3})`)
	reVTTTag    = regexp.MustCompile(`<[^>]+>`)
	reSpaces    = regexp.MustCompile(` +`)
)

type cue struct {
	start float64
	end   float64
	text  string
}

// Normalize parses WebVTT caption content into an ordered transcript with
// deduplicated overlapping text. YouTube auto-captions repeat each line in
// consecutive cues as words stream in; the dedupe pass collapses those
// repeats so every segment carries text exactly once.
func Normalize(vtt string) (*Transcript, error) {
	cues, err := parseCues(vtt)
	if err != nil {
		return nil, err
	}
	cues = dedupeCues(cues)

	t := &Transcript{Segments: make([]Segment, 0, len(cues))}
	var b strings.Builder
	for i, c := range cues {
		t.Segments = append(t.Segments, Segment{
			ID:        fmt.Sprintf("seg-%04d", i+1),
			StartTime: c.start,
			EndTime:   c.end,
			Text:      c.text,
		})

		if i > 0 {
			// A gap in speech becomes a paragraph or line break in the
			// plain text so prompts keep some narrative shape.
			gap := c.start - cues[i-1].end
			switch {
			case gap >= 2:
				b.WriteString("\n\n")
			case gap >= 1:
				b.WriteString("\n")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString(c.text)
	}

	t.PlainText = reSpaces.ReplaceAllString(b.String(), " ")
	return t, nil
}

func parseCues(vtt string) ([]cue, error) {
	if !strings.Contains(vtt, "-->") {
		return nil, fmt.Errorf("no cue timings found in caption content")
	}

	lines := strings.Split(vtt, "\n")
	var cues []cue

	for i := 0; i < len(lines); i++ {
		m := reCueTiming.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		start, err := parseTimestamp(m[1])
		if err != nil {
			return nil, fmt.Errorf("cue timing %q: %w", m[1], err)
		}
		end, err := parseTimestamp(m[2])
		if err != nil {
			return nil, fmt.Errorf("cue timing %q: %w", m[2], err)
		}

		var textLines []string
		for i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next == "" || reCueTiming.MatchString(next) {
				break
			}
			textLines = append(textLines, next)
			i++
		}

		raw := strings.Join(textLines, "\n")
		clean := reVTTTag.ReplaceAllString(raw, "")
		clean = strings.TrimSpace(clean)
		if clean == "" {
			continue
		}
		cues = append(cues, cue{start: start, end: end, text: clean})
	}

	return cues, nil
}

// dedupeCues collapses YouTube's rolling auto-caption duplication, where
// each new cue repeats the previous cue's last line before adding words.
func dedupeCues(cues []cue) []cue {
	var out []cue
	var prev *cue

	for i := range cues {
		c := cues[i]
		c.text = strings.TrimSpace(c.text)
		if c.text == "" {
			continue
		}
		if prev == nil {
			prev = &c
			continue
		}

		// A cue fully contained in the previous one is a re-display, not
		// new speech; extend the previous cue over its time range.
		if strings.Contains(prev.text, c.text) {
			prev.end = c.end
			continue
		}

		currentLines := strings.Split(c.text, "\n")
		lastLines := strings.Split(prev.text, "\n")
		singleWord := false

		if currentLines[0] == lastLines[len(lastLines)-1] {
			if len(lastLines) == 1 && len(strings.Fields(lastLines[0])) < 2 && len(lastLines[0]) > 2 {
				// The previous cue was one dangling word; keep it on the
				// current cue rather than emitting it alone.
				singleWord = true
				c.text = currentLines[0]
				if len(currentLines) > 1 {
					c.text += " " + strings.Join(currentLines[1:], "\n")
				}
			} else {
				c.text = strings.Join(currentLines[1:], "\n")
			}
		} else if len(strings.Fields(c.text)) <= 2 {
			// Tiny trailing fragment; fold it into the previous cue.
			prev.end = c.end
			prev.text += " " + strings.TrimSpace(c.text)
			continue
		}

		if c.start <= prev.end {
			prev.end = maxFloat(c.start-0.001, 0)
		}
		if c.start >= c.end {
			c.start, c.end = c.end, c.start
		}

		if !singleWord {
			out = append(out, *prev)
		}
		prev = &c
	}

	if prev != nil {
		out = append(out, *prev)
	}
	return out
}

// parseTimestamp converts an HH:MM:SS.mmm WebVTT timestamp to seconds.
func parseTimestamp(ts string) (float64, error) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS.mmm")
	}
	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, err
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}
	return hours*3600 + minutes*60 + seconds, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
