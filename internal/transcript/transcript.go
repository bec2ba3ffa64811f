package transcript

// Segment is one time-bounded span of transcript text. Segments are
// immutable once produced by Normalize; editors layer changes on top of
// them instead of mutating the transcript.
type Segment struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Text      string  `json:"text"`
}

// Transcript is the normalized form of one video's captions.
type Transcript struct {
	Language  string    `json:"language,omitempty"`
	Type      string    `json:"type,omitempty"` // "manual" or "auto-generated"
	Segments  []Segment `json:"segments"`
	PlainText string    `json:"plainText"`
}

// Duration returns the end time of the last segment, or 0 for an empty
// transcript.
func (t *Transcript) Duration() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].EndTime
}
