// Package editor holds the review session for extracted recipes:
// pending edits, boundary resolution, and drag commits.
package editor

import "github.com/vuhoanglam/recipe-flow/internal/recipe"

// Provenance says where a resolved boundary value came from.
type Provenance string

const (
	SourceEdited  Provenance = "edited"
	SourceSection Provenance = "section"
	SourceStep    Provenance = "step"
	SourceUnset   Provenance = "unset"
)

// Boundary is a step's resolved time window with per-field provenance.
type Boundary struct {
	Start       float64
	End         float64
	StartSource Provenance
	EndSource   Provenance
}

// ResolveBoundary picks the effective start and end for a step. Each
// field resolves independently: a pending edit wins, then the step's
// section, then the step's own extracted timestamps. A field with no
// source at all stays zero and is tagged unset.
func ResolveBoundary(inst *recipe.Instruction, section *recipe.Section, pending *PendingEdit) Boundary {
	var b Boundary
	b.StartSource = SourceUnset
	b.EndSource = SourceUnset

	switch {
	case pending != nil && pending.Start != nil:
		b.Start = *pending.Start
		b.StartSource = SourceEdited
	case section != nil:
		b.Start = section.StartTime
		b.StartSource = SourceSection
	case inst != nil && inst.TimestampSeconds != nil:
		b.Start = *inst.TimestampSeconds
		b.StartSource = SourceStep
	}

	switch {
	case pending != nil && pending.End != nil:
		b.End = *pending.End
		b.EndSource = SourceEdited
	case section != nil:
		b.End = section.EndTime
		b.EndSource = SourceSection
	case inst != nil && inst.EndTimeSeconds != nil:
		b.End = *inst.EndTimeSeconds
		b.EndSource = SourceStep
	}

	return b
}
