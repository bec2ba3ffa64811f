// Package tui is the interactive recipe editor: browse extracted
// recipes, review step timing on a timeline, and commit boundary edits.
package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vuhoanglam/recipe-flow/internal/editor"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
	"github.com/vuhoanglam/recipe-flow/internal/timeline"
)

// focus names the pane receiving key input.
type focus int

const (
	focusRecipes focus = iota
	focusSteps
	focusTimeline
)

// nudgeSeconds is how far one keypress moves a step boundary.
const nudgeSeconds = 1.0

type model struct {
	path    string
	result  *recipe.VideoRecipes
	cleaned *recipe.CleanedTranscript

	session  *editor.Session
	viewport *timeline.Viewport

	focus       focus
	recipeIdx   int
	stepIdx     int
	drag        *timeline.DragState
	input       textinput.Model
	editField   string // "text", "notes", or "" when not editing
	width       int
	height      int
	status      string
	quitConfirm bool
}

// New loads a recipe result file and returns the editor model.
func New(resultPath string) (tea.Model, error) {
	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}

	var result recipe.VideoRecipes
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse result: %w", err)
	}
	if len(result.Recipes) == 0 {
		return nil, fmt.Errorf("%s has no recipes", resultPath)
	}

	var cleaned *recipe.CleanedTranscript
	cleanedPath := strings.TrimSuffix(resultPath, ".json") + "_sections.json"
	if cleanedData, err := os.ReadFile(cleanedPath); err == nil {
		var c recipe.CleanedTranscript
		if err := json.Unmarshal(cleanedData, &c); err == nil {
			cleaned = &c
		}
	}
	if cleaned == nil {
		cleaned = &recipe.CleanedTranscript{}
	}

	input := textinput.New()
	input.CharLimit = 500

	m := &model{
		path:    resultPath,
		result:  &result,
		cleaned: cleaned,
		input:   input,
		width:   80,
		height:  24,
	}
	m.selectRecipe(0)
	return m, nil
}

func (m *model) selectRecipe(idx int) {
	m.recipeIdx = idx
	m.stepIdx = 0
	m.drag = nil
	r := &m.result.Recipes[idx]
	m.session = editor.NewSession(r, m.cleaned)

	total := videoDuration(r)
	m.viewport = timeline.NewViewport(total, m.trackWidth(), 2, 2)
}

func (m *model) currentRecipe() *recipe.Recipe {
	return &m.result.Recipes[m.recipeIdx]
}

func (m *model) currentStep() *recipe.Instruction {
	r := m.currentRecipe()
	if m.stepIdx < 0 || m.stepIdx >= len(r.Instructions) {
		return nil
	}
	return &r.Instructions[m.stepIdx]
}

func (m *model) trackWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// videoDuration derives the timeline span from the last step window.
func videoDuration(r *recipe.Recipe) float64 {
	end := 0.0
	for _, inst := range r.Instructions {
		if inst.PredictedTime != nil && float64(inst.PredictedTime.EndSeconds) > end {
			end = float64(inst.PredictedTime.EndSeconds)
		}
		if inst.EndTimeSeconds != nil && *inst.EndTimeSeconds > end {
			end = *inst.EndTimeSeconds
		}
	}
	if end == 0 {
		end = 600
	}
	return end
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.TrackWidth = m.trackWidth()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editField != "" {
		return m.handleEditKey(key)
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.session.HasPending() && !m.quitConfirm {
			m.quitConfirm = true
			m.status = "Unsaved edits. Press q again to quit anyway, or s to save."
			return m, nil
		}
		return m, tea.Quit

	case "s":
		m.quitConfirm = false
		return m, m.save()

	case "tab":
		m.quitConfirm = false
		m.focus = (m.focus + 1) % 3
		return m, nil

	case "esc":
		m.quitConfirm = false
		if m.drag != nil {
			m.drag = nil
			m.status = "Drag cancelled"
		}
		return m, nil
	}

	switch m.focus {
	case focusRecipes:
		return m.handleRecipeKey(key)
	case focusSteps:
		return m.handleStepKey(key)
	case focusTimeline:
		return m.handleTimelineKey(key)
	}
	return m, nil
}

func (m *model) handleRecipeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.recipeIdx > 0 {
			m.selectRecipe(m.recipeIdx - 1)
		}
	case "down", "j":
		if m.recipeIdx < len(m.result.Recipes)-1 {
			m.selectRecipe(m.recipeIdx + 1)
		}
	case "enter":
		m.focus = focusSteps
	}
	return m, nil
}

func (m *model) handleStepKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.currentRecipe()
	switch key.String() {
	case "up", "k":
		if m.stepIdx > 0 {
			m.stepIdx--
			m.scrollToStep()
		}
	case "down", "j":
		if m.stepIdx < len(r.Instructions)-1 {
			m.stepIdx++
			m.scrollToStep()
		}
	case "u":
		if inst := m.currentStep(); inst != nil {
			m.session.Discard(inst.Step)
			m.status = fmt.Sprintf("Discarded edits for step %d", inst.Step)
		}
	case "e":
		m.startEdit("text")
	case "n":
		m.startEdit("notes")
	case "enter":
		m.focus = focusTimeline
	}
	return m, nil
}

func (m *model) startEdit(field string) {
	inst := m.currentStep()
	if inst == nil {
		return
	}
	m.editField = field
	if field == "text" {
		m.input.SetValue(inst.Text)
	} else {
		m.input.SetValue(inst.Notes)
	}
	m.input.CursorEnd()
	m.input.Focus()
	m.status = fmt.Sprintf("Editing %s of step %d (enter to apply, esc to cancel)", field, inst.Step)
}

func (m *model) handleEditKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editField = ""
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil

	case "enter":
		if inst := m.currentStep(); inst != nil {
			if m.editField == "text" {
				m.session.SetText(inst.Step, m.input.Value())
			} else {
				m.session.SetNotes(inst.Step, m.input.Value())
			}
			m.status = fmt.Sprintf("Pending %s change for step %d", m.editField, inst.Step)
		}
		m.editField = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *model) handleTimelineKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	inst := m.currentStep()
	switch key.String() {
	case "+", "=":
		m.viewport.ZoomIn(m.focusTime())
	case "-":
		m.viewport.ZoomOut()
	case "h":
		m.viewport.Pan(-m.viewport.VisibleDuration() / 10)
	case "l":
		m.viewport.Pan(m.viewport.VisibleDuration() / 10)

	case "[":
		m.startDrag(timeline.EdgeStart)
	case "]":
		m.startDrag(timeline.EdgeEnd)

	case "left":
		m.nudgeDrag(-nudgeSeconds)
	case "right":
		m.nudgeDrag(nudgeSeconds)

	case "enter":
		m.commitDrag(inst)
	}
	return m, nil
}

func (m *model) focusTime() float64 {
	if inst := m.currentStep(); inst != nil {
		b := m.session.Boundary(inst.Step)
		return (b.Start + b.End) / 2
	}
	return m.viewport.VisibleStart() + m.viewport.VisibleDuration()/2
}

func (m *model) startDrag(edge timeline.Edge) {
	inst := m.currentStep()
	if inst == nil {
		return
	}
	b := m.session.Boundary(inst.Step)
	t := b.Start
	if edge == timeline.EdgeEnd {
		t = b.End
	}
	m.drag = &timeline.DragState{
		StepNumber:  inst.Step,
		Edge:        edge,
		InitialTime: t,
		CurrentTime: t,
	}
	m.status = fmt.Sprintf("Dragging %s of step %d (arrows to move, enter to commit, esc to cancel)", edge, inst.Step)
}

func (m *model) nudgeDrag(delta float64) {
	if m.drag == nil {
		return
	}
	m.drag.CurrentTime += delta
	if m.drag.CurrentTime < 0 {
		m.drag.CurrentTime = 0
	}
	if m.drag.CurrentTime > m.viewport.TotalDuration {
		m.drag.CurrentTime = m.viewport.TotalDuration
	}
	m.viewport.EnsureVisible(m.drag.CurrentTime)
}

func (m *model) commitDrag(inst *recipe.Instruction) {
	if m.drag == nil || inst == nil {
		return
	}
	b := m.session.Boundary(inst.Step)
	start, end := b.Start, b.End
	if m.drag.Edge == timeline.EdgeStart {
		start = m.drag.CurrentTime
	} else {
		end = m.drag.CurrentTime
	}

	if err := m.session.CommitDrag(inst.Step, start, end); err != nil {
		m.status = "Rejected: " + err.Error()
	} else {
		m.status = fmt.Sprintf("Step %d window set to [%.0fs, %.0fs]", inst.Step, start, end)
	}
	m.drag = nil
}

func (m *model) scrollToStep() {
	if inst := m.currentStep(); inst != nil {
		b := m.session.Boundary(inst.Step)
		m.viewport.EnsureVisible(b.Start)
	}
}

// save applies pending edits, rewrites the result file in place, and
// emits the per-step deltas to a sibling file for downstream consumers.
func (m *model) save() tea.Cmd {
	deltas := m.session.Apply()

	data, err := json.MarshalIndent(m.result, "", "  ")
	if err != nil {
		m.status = "Save failed: " + err.Error()
		return nil
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		m.status = "Save failed: " + err.Error()
		return nil
	}
	if len(deltas) > 0 {
		if err := writeDeltas(deltasPath(m.path), deltas); err != nil {
			m.status = "Saved recipe, but deltas failed: " + err.Error()
			return nil
		}
	}
	m.status = fmt.Sprintf("Saved %d change(s) to %s", len(deltas), m.path)
	return nil
}

// deltasPath derives the sibling delta file from the result path, so
// <id>_recipe.json pairs with <id>_recipe_deltas.json.
func deltasPath(resultPath string) string {
	return strings.TrimSuffix(resultPath, ".json") + "_deltas.json"
}

func writeDeltas(path string, deltas []editor.Delta) error {
	data, err := json.MarshalIndent(deltas, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
