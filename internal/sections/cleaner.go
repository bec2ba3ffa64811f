package sections

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vuhoanglam/recipe-flow/internal/description"
	"github.com/vuhoanglam/recipe-flow/internal/llm"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
	"github.com/vuhoanglam/recipe-flow/internal/transcript"
)

const systemPrompt = `You are a transcript editor for cooking videos. You clean up auto-generated captions and split them into coherent sections. You always reply with a single JSON object and nothing else.`

const cleanPromptFmt = `Below is a cooking video transcript. Each line starts with a timestamp marker like [1:23] or [1:02:45].

Split the transcript into coherent sections (one per recipe phase, topic change, or recipe). For each section:
- "start_marker": the marker of the line where the section begins, copied EXACTLY as it appears in the transcript
- "heading": a short title for the section, or "" if none fits
- "text": the section's spoken content, cleaned up (fix caption artifacts, remove filler words, keep all cooking details, measurements and timings)

Reply with JSON in this exact shape:
{"sections":[{"start_marker":"[0:00]","heading":"...","text":"..."}]}

Rules:
- Sections must be in transcript order.
- Every start_marker must be copied verbatim from the transcript.
- Do not invent content that is not in the transcript.

Transcript:
---
%s
---%s`

const chapterHintFmt = `

The video description lists these chapters. Use them as hints for where sections begin, but trust the transcript when they disagree:
%s`

type sectionPayload struct {
	StartMarker string `json:"start_marker"`
	Heading     string `json:"heading"`
	Text        string `json:"text"`
}

type cleanResponse struct {
	Sections []sectionPayload `json:"sections"`
}

// Clean asks the model to section and clean the transcript, then maps
// the returned markers back onto segment times. A section ends where
// the next one begins; the last section ends at the video's end.
func (c *implCleaner) Clean(ctx context.Context, t *transcript.Transcript, chapters []description.Chapter) (*recipe.CleanedTranscript, error) {
	if t == nil || len(t.Segments) == 0 {
		return nil, fmt.Errorf("empty transcript")
	}

	annotated := transcript.Annotate(t)
	raw, err := c.client.Complete(ctx, llm.Request{
		System: systemPrompt,
		User:   fmt.Sprintf(cleanPromptFmt, annotated, chapterHints(chapters)),
	})
	if err != nil {
		return nil, fmt.Errorf("clean transcript: %w", err)
	}

	cleaned, err := parseSections(raw, t)
	if err != nil {
		c.logger.Warn(ctx, "Section cleaning produced unusable output, keeping raw transcript: %v", err)
		return Fallback(t), nil
	}

	cleaned.Model = c.client.Model()
	cleaned.PromptUsed = "section-cleaner-v1"
	return cleaned, nil
}

// chapterHints renders description chapters as a prompt block, or ""
// when there are none.
func chapterHints(chapters []description.Chapter) string {
	if len(chapters) == 0 {
		return ""
	}
	var b strings.Builder
	for _, ch := range chapters {
		fmt.Fprintf(&b, "- %s: %s\n", formatOffset(ch.Seconds), ch.Label)
	}
	return fmt.Sprintf(chapterHintFmt, strings.TrimRight(b.String(), "\n"))
}

func formatOffset(seconds float64) string {
	s := int(seconds)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func parseSections(raw string, t *transcript.Transcript) (*recipe.CleanedTranscript, error) {
	obj := llm.ExtractJSONObject(raw)
	if obj == "" {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var resp cleanResponse
	if err := json.Unmarshal([]byte(obj), &resp); err != nil {
		return nil, fmt.Errorf("parse sections: %w", err)
	}
	if len(resp.Sections) == 0 {
		return nil, fmt.Errorf("no sections in reply")
	}

	markers := transcript.MarkerTimes(t)
	duration := t.Duration()

	out := make([]recipe.Section, 0, len(resp.Sections))
	for i, s := range resp.Sections {
		start, ok := markers[strings.TrimSpace(s.StartMarker)]
		if !ok {
			return nil, fmt.Errorf("section %d: unknown marker %q", i, s.StartMarker)
		}
		if strings.TrimSpace(s.Text) == "" {
			return nil, fmt.Errorf("section %d: empty text", i)
		}
		out = append(out, recipe.Section{
			ID:        uuid.NewString(),
			StartTime: start,
			Heading:   strings.TrimSpace(s.Heading),
			Text:      strings.TrimSpace(s.Text),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	for i := range out {
		if i+1 < len(out) {
			out[i].EndTime = out[i+1].StartTime
		} else {
			out[i].EndTime = duration
		}
		if out[i].EndTime < out[i].StartTime {
			out[i].EndTime = out[i].StartTime
		}
	}

	cleaned := &recipe.CleanedTranscript{
		Sections:    out,
		GeneratedAt: time.Now().UTC(),
	}
	if err := validate(cleaned, duration); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// Fallback wraps the whole transcript in a single unsectioned block.
// Used when the model's sectioning cannot be trusted.
func Fallback(t *transcript.Transcript) *recipe.CleanedTranscript {
	return &recipe.CleanedTranscript{
		Sections: []recipe.Section{{
			ID:        uuid.NewString(),
			StartTime: 0,
			EndTime:   t.Duration(),
			Text:      t.PlainText,
		}},
		GeneratedAt: time.Now().UTC(),
	}
}

func validate(c *recipe.CleanedTranscript, duration float64) error {
	for i, s := range c.Sections {
		if s.StartTime < 0 || s.EndTime > duration {
			return fmt.Errorf("section %d: range [%.3f, %.3f] outside video", i, s.StartTime, s.EndTime)
		}
		if s.EndTime < s.StartTime {
			return fmt.Errorf("section %d: end before start", i)
		}
		if i > 0 && s.StartTime < c.Sections[i-1].StartTime {
			return fmt.Errorf("section %d: out of order", i)
		}
	}
	return nil
}
