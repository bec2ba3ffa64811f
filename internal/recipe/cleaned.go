package recipe

import "time"

// Section is a contiguous narrative grouping of transcript time, possibly
// spanning several recipe steps.
type Section struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Heading   string  `json:"heading,omitempty"`
	Text      string  `json:"text"`
}

// CleanedTranscript is the result of one section-cleaning call. A
// regenerate action replaces the whole value.
type CleanedTranscript struct {
	Sections    []Section `json:"sections"`
	GeneratedAt time.Time `json:"generated_at"`
	Model       string    `json:"model"`
	PromptUsed  string    `json:"prompt_used"`
}

// SectionByID returns the section with the given id, or nil.
func (c *CleanedTranscript) SectionByID(id string) *Section {
	if c == nil || id == "" {
		return nil
	}
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i]
		}
	}
	return nil
}
