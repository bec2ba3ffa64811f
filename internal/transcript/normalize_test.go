package transcript

import (
	"strings"
	"testing"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:01.000 --> 00:00:03.400
welcome back to the kitchen

00:00:03.500 --> 00:00:06.000
today we're making pasta

00:00:08.200 --> 00:00:10.000
first boil the water
`

func TestNormalize(t *testing.T) {
	tr, err := Normalize(sampleVTT)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if len(tr.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(tr.Segments))
	}

	first := tr.Segments[0]
	if first.ID != "seg-0001" {
		t.Errorf("ID = %q, want seg-0001", first.ID)
	}
	if first.StartTime != 1.0 || first.EndTime != 3.4 {
		t.Errorf("times = [%v, %v], want [1, 3.4]", first.StartTime, first.EndTime)
	}
	if first.Text != "welcome back to the kitchen" {
		t.Errorf("text = %q", first.Text)
	}

	// 2.2 second gap before the third cue becomes a paragraph break.
	if !strings.Contains(tr.PlainText, "pasta\n\nfirst") {
		t.Errorf("plain text missing paragraph break: %q", tr.PlainText)
	}
}

func TestNormalizeStripsTags(t *testing.T) {
	vtt := `WEBVTT

00:00:01.000 --> 00:00:02.000
hello<00:00:01.480><c> there</c> friends
`
	tr, err := Normalize(vtt)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(tr.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(tr.Segments))
	}
	if tr.Segments[0].Text != "hello there friends" {
		t.Errorf("text = %q, want tags stripped", tr.Segments[0].Text)
	}
}

func TestNormalizeDedupesRollingCaptions(t *testing.T) {
	// YouTube auto-captions repeat the previous cue's last line.
	vtt := `WEBVTT

00:00:01.000 --> 00:00:03.000
add the garlic now

00:00:03.000 --> 00:00:05.000
add the garlic now
stir it gently

00:00:05.000 --> 00:00:07.000
stir it gently
until golden brown
`
	tr, err := Normalize(vtt)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for _, seg := range tr.Segments {
		if strings.Count(seg.Text, "stir it gently") > 1 {
			t.Errorf("segment still duplicated: %q", seg.Text)
		}
	}
	joined := strings.Join([]string{tr.Segments[0].Text}, " ")
	if !strings.Contains(joined, "add the garlic") {
		t.Errorf("first segment lost its text: %q", joined)
	}
	if got := strings.Count(tr.PlainText, "add the garlic now"); got != 1 {
		t.Errorf("plain text repeats first line %d times", got)
	}
}

func TestNormalizeOrdering(t *testing.T) {
	tr, err := Normalize(sampleVTT)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for i := 1; i < len(tr.Segments); i++ {
		if tr.Segments[i].StartTime < tr.Segments[i-1].StartTime {
			t.Errorf("segments out of order at %d", i)
		}
	}
	if tr.Duration() != 10.0 {
		t.Errorf("Duration() = %v, want 10", tr.Duration())
	}
}

func TestNormalizeNoCues(t *testing.T) {
	if _, err := Normalize("just some text"); err == nil {
		t.Error("Normalize() should fail without cue timings")
	}
}

func TestFormatMarker(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "[0:00]"},
		{65, "[1:05]"},
		{754, "[12:34]"},
		{3725, "[1:02:05]"},
	}
	for _, tt := range tests {
		if got := FormatMarker(tt.seconds); got != tt.want {
			t.Errorf("FormatMarker(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	tr, err := Normalize(sampleVTT)
	if err != nil {
		t.Fatal(err)
	}
	annotated := Annotate(tr)
	if !strings.HasPrefix(annotated, "[0:01] welcome back") {
		t.Errorf("Annotate() = %q", annotated)
	}
	if !strings.Contains(annotated, "\n[0:08] first boil") {
		t.Errorf("missing marker for third segment: %q", annotated)
	}

	times := MarkerTimes(tr)
	if times["[0:08]"] != 8.2 {
		t.Errorf("MarkerTimes missing [0:08]: %v", times)
	}
}
