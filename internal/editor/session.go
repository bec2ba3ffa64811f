package editor

import (
	"fmt"
	"math"
	"sort"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// minDragDuration is the shortest window a drag may commit, in seconds.
const minDragDuration = 5

// PendingEdit is one step's uncommitted changes. A nil field means the
// field is untouched.
type PendingEdit struct {
	Start *float64
	End   *float64
	Text  *string
	Notes *string
}

func (p *PendingEdit) dirty() bool {
	return p != nil && (p.Start != nil || p.End != nil || p.Text != nil || p.Notes != nil)
}

// Delta is one step's committed changes, ready to apply to the recipe.
type Delta struct {
	Step          int                   `json:"step"`
	Text          *string               `json:"text,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	PredictedTime *recipe.PredictedTime `json:"predicted_time,omitempty"`
}

// Session is a single reviewer's working state over one recipe. Edits
// accumulate as pending until committed into the recipe or discarded.
type Session struct {
	recipe  *recipe.Recipe
	cleaned *recipe.CleanedTranscript
	pending map[int]*PendingEdit
}

// NewSession starts an edit session over a recipe and the cleaned
// transcript its section ids point into.
func NewSession(r *recipe.Recipe, cleaned *recipe.CleanedTranscript) *Session {
	return &Session{
		recipe:  r,
		cleaned: cleaned,
		pending: make(map[int]*PendingEdit),
	}
}

func (s *Session) Recipe() *recipe.Recipe { return s.recipe }

func (s *Session) instruction(step int) *recipe.Instruction {
	for i := range s.recipe.Instructions {
		if s.recipe.Instructions[i].Step == step {
			return &s.recipe.Instructions[i]
		}
	}
	return nil
}

func (s *Session) edit(step int) *PendingEdit {
	if s.pending[step] == nil {
		s.pending[step] = &PendingEdit{}
	}
	return s.pending[step]
}

// Pending returns the step's uncommitted edit, or nil.
func (s *Session) Pending(step int) *PendingEdit {
	p := s.pending[step]
	if !p.dirty() {
		return nil
	}
	return p
}

// HasPending reports whether any step carries uncommitted edits.
func (s *Session) HasPending() bool {
	for _, p := range s.pending {
		if p.dirty() {
			return true
		}
	}
	return false
}

func (s *Session) SetText(step int, text string) {
	s.edit(step).Text = &text
}

func (s *Session) SetNotes(step int, notes string) {
	s.edit(step).Notes = &notes
}

// CommitDrag records a dragged time window for a step. Windows shorter
// than minDragDuration are rejected and leave the session unchanged.
func (s *Session) CommitDrag(step int, start, end float64) error {
	if s.instruction(step) == nil {
		return fmt.Errorf("no step %d", step)
	}
	if end-start < minDragDuration {
		return fmt.Errorf("step window %.1fs is shorter than %ds", end-start, minDragDuration)
	}
	p := s.edit(step)
	p.Start = &start
	p.End = &end
	return nil
}

// Boundary resolves the effective window for a step, pending edits
// included.
func (s *Session) Boundary(step int) Boundary {
	inst := s.instruction(step)
	var section *recipe.Section
	if inst != nil {
		section = s.cleaned.SectionByID(inst.SectionID)
	}
	return ResolveBoundary(inst, section, s.pending[step])
}

// Discard drops a step's uncommitted edits.
func (s *Session) Discard(step int) {
	delete(s.pending, step)
}

// DiscardAll drops every uncommitted edit.
func (s *Session) DiscardAll() {
	s.pending = make(map[int]*PendingEdit)
}

// Deltas lists every dirty step's changes in step order.
func (s *Session) Deltas() []Delta {
	var out []Delta
	for step, p := range s.pending {
		if !p.dirty() {
			continue
		}
		d := Delta{Step: step, Text: p.Text, Notes: p.Notes}
		if p.Start != nil && p.End != nil {
			d.PredictedTime = &recipe.PredictedTime{
				StartSeconds: int(math.Round(*p.Start)),
				EndSeconds:   int(math.Round(*p.End)),
			}
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Step < out[j].Step })
	return out
}

// Apply writes all pending edits into the recipe and clears them.
func (s *Session) Apply() []Delta {
	deltas := s.Deltas()
	for _, d := range deltas {
		inst := s.instruction(d.Step)
		if inst == nil {
			continue
		}
		if d.Text != nil {
			inst.Text = *d.Text
		}
		if d.Notes != nil {
			inst.Notes = *d.Notes
		}
		if d.PredictedTime != nil {
			inst.PredictedTime = d.PredictedTime
		}
	}
	s.DiscardAll()
	return deltas
}
