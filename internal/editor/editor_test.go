package editor

import (
	"testing"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

func fptr(v float64) *float64 { return &v }

func testRecipe() *recipe.Recipe {
	return &recipe.Recipe{
		Title: "Carbonara",
		Instructions: []recipe.Instruction{
			{Step: 1, Text: "Whisk eggs", SectionID: "sec-a", TimestampSeconds: fptr(10), EndTimeSeconds: fptr(20)},
			{Step: 2, Text: "Boil pasta", TimestampSeconds: fptr(40)},
			{Step: 3, Text: "Combine"},
		},
	}
}

func testCleaned() *recipe.CleanedTranscript {
	return &recipe.CleanedTranscript{
		Sections: []recipe.Section{
			{ID: "sec-a", StartTime: 5, EndTime: 15, Heading: "Eggs"},
		},
	}
}

func TestResolveBoundaryPrecedence(t *testing.T) {
	r := testRecipe()
	inst := &r.Instructions[0] // timestamps [10, 20], section [5, 15]
	section := &testCleaned().Sections[0]

	tests := []struct {
		name        string
		pending     *PendingEdit
		section     *recipe.Section
		wantStart   float64
		wantEnd     float64
		startSource Provenance
		endSource   Provenance
	}{
		{
			name:        "section beats step timestamps",
			section:     section,
			wantStart:   5, wantEnd: 15,
			startSource: SourceSection, endSource: SourceSection,
		},
		{
			name:        "pending end beats section, start still section",
			pending:     &PendingEdit{End: fptr(30)},
			section:     section,
			wantStart:   5, wantEnd: 30,
			startSource: SourceSection, endSource: SourceEdited,
		},
		{
			name:        "no section falls back to step",
			wantStart:   10, wantEnd: 20,
			startSource: SourceStep, endSource: SourceStep,
		},
		{
			name:        "pending both wins everywhere",
			pending:     &PendingEdit{Start: fptr(7), End: fptr(33)},
			section:     section,
			wantStart:   7, wantEnd: 33,
			startSource: SourceEdited, endSource: SourceEdited,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ResolveBoundary(inst, tt.section, tt.pending)
			if b.Start != tt.wantStart || b.End != tt.wantEnd {
				t.Errorf("resolved [%v, %v], want [%v, %v]", b.Start, b.End, tt.wantStart, tt.wantEnd)
			}
			if b.StartSource != tt.startSource || b.EndSource != tt.endSource {
				t.Errorf("sources %s/%s, want %s/%s", b.StartSource, b.EndSource, tt.startSource, tt.endSource)
			}
		})
	}
}

func TestResolveBoundaryUnset(t *testing.T) {
	b := ResolveBoundary(&recipe.Instruction{Step: 3}, nil, nil)
	if b.StartSource != SourceUnset || b.EndSource != SourceUnset {
		t.Errorf("sources %s/%s, want unset/unset", b.StartSource, b.EndSource)
	}
}

func TestSessionBoundary(t *testing.T) {
	s := NewSession(testRecipe(), testCleaned())

	// Step 1 has a section, which outranks its own timestamps.
	b := s.Boundary(1)
	if b.Start != 5 || b.End != 15 {
		t.Errorf("step 1 boundary [%v, %v], want [5, 15]", b.Start, b.End)
	}

	// A pending end edit overrides just the end.
	if err := s.CommitDrag(1, 5, 30); err != nil {
		t.Fatalf("CommitDrag: %v", err)
	}
	b = s.Boundary(1)
	if b.Start != 5 || b.End != 30 {
		t.Errorf("after drag, boundary [%v, %v], want [5, 30]", b.Start, b.End)
	}
	if b.StartSource != SourceEdited || b.EndSource != SourceEdited {
		t.Errorf("after drag, sources %s/%s", b.StartSource, b.EndSource)
	}
}

func TestCommitDragMinimumDuration(t *testing.T) {
	s := NewSession(testRecipe(), testCleaned())

	if err := s.CommitDrag(1, 10, 14); err == nil {
		t.Error("4 second window must be rejected")
	}
	if s.HasPending() {
		t.Error("rejected drag must not leave pending state")
	}
	if err := s.CommitDrag(1, 10, 15); err != nil {
		t.Errorf("5 second window must be accepted: %v", err)
	}
	if !s.HasPending() {
		t.Error("accepted drag must be pending")
	}
}

func TestCommitDragUnknownStep(t *testing.T) {
	s := NewSession(testRecipe(), testCleaned())
	if err := s.CommitDrag(99, 0, 100); err == nil {
		t.Error("unknown step must error")
	}
}

func TestSessionDeltasAndApply(t *testing.T) {
	r := testRecipe()
	s := NewSession(r, testCleaned())

	s.SetText(2, "Boil the pasta until al dente")
	s.SetNotes(2, "salt the water")
	if err := s.CommitDrag(1, 12, 26.6); err != nil {
		t.Fatal(err)
	}

	deltas := s.Deltas()
	if len(deltas) != 2 {
		t.Fatalf("got %d deltas, want 2", len(deltas))
	}
	if deltas[0].Step != 1 || deltas[1].Step != 2 {
		t.Errorf("deltas out of step order: %+v", deltas)
	}
	if pt := deltas[0].PredictedTime; pt == nil || pt.StartSeconds != 12 || pt.EndSeconds != 27 {
		t.Errorf("delta 1 predicted time = %+v, want {12 27}", deltas[0].PredictedTime)
	}
	if deltas[1].Text == nil || *deltas[1].Text != "Boil the pasta until al dente" {
		t.Errorf("delta 2 text = %v", deltas[1].Text)
	}

	s.Apply()
	if s.HasPending() {
		t.Error("apply must clear pending edits")
	}
	if r.Instructions[1].Text != "Boil the pasta until al dente" {
		t.Errorf("text not applied: %q", r.Instructions[1].Text)
	}
	if r.Instructions[1].Notes != "salt the water" {
		t.Errorf("notes not applied: %q", r.Instructions[1].Notes)
	}
	if pt := r.Instructions[0].PredictedTime; pt == nil || pt.StartSeconds != 12 || pt.EndSeconds != 27 {
		t.Errorf("predicted time not applied: %+v", pt)
	}
}

func TestSessionDiscard(t *testing.T) {
	s := NewSession(testRecipe(), testCleaned())
	s.SetText(1, "changed")
	s.SetText(2, "changed")

	s.Discard(1)
	if s.Pending(1) != nil {
		t.Error("step 1 edits should be gone")
	}
	if s.Pending(2) == nil {
		t.Error("step 2 edits should survive")
	}

	s.DiscardAll()
	if s.HasPending() {
		t.Error("DiscardAll should clear everything")
	}
}
