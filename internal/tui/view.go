package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vuhoanglam/recipe-flow/internal/editor"
	"github.com/vuhoanglam/recipe-flow/internal/highlight"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	trackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	windowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	dragStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recipe Editor"))
	b.WriteString(dimStyle.Render("  " + m.result.VideoID))
	b.WriteString("\n\n")

	b.WriteString(m.renderRecipeList())
	b.WriteString("\n")
	b.WriteString(m.renderSteps())
	b.WriteString("\n")
	b.WriteString(m.renderTimeline())
	b.WriteString("\n")

	if m.editField != "" {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab: switch pane | e/n: edit text/notes | +/-: zoom | h/l: pan | [/]: drag edge | enter: commit | s: save | q: quit"))
	return b.String()
}

func (m *model) renderRecipeList() string {
	header := "Recipes"
	if m.focus == focusRecipes {
		header = focusStyle.Render(header)
	} else {
		header = dimStyle.Render(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, r := range m.result.Recipes {
		line := fmt.Sprintf("  %d. %s", i+1, r.Title)
		if i == m.recipeIdx {
			line = selectedStyle.Render("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) renderSteps() string {
	header := "Steps"
	if m.focus == focusSteps {
		header = focusStyle.Render(header)
	} else {
		header = dimStyle.Render(header)
	}

	r := m.currentRecipe()
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, inst := range r.Instructions {
		bnd := m.session.Boundary(inst.Step)
		marker := "  "
		if i == m.stepIdx {
			marker = selectedStyle.Render("> ")
		}

		text := highlight.Render(inst.Text, stepKeywords(&inst))
		line := fmt.Sprintf("%s%d. %s %s", marker, inst.Step, text, dimStyle.Render(boundaryLabel(bnd)))
		if m.session.Pending(inst.Step) != nil {
			line += pendingStyle.Render(" *")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func stepKeywords(inst *recipe.Instruction) highlight.Keywords {
	if inst.Keywords == nil {
		return highlight.Keywords{}
	}
	return highlight.Keywords{
		Ingredients: recipe.IngredientTerms(inst.Keywords.Ingredients),
		Techniques:  inst.Keywords.Techniques,
		Equipment:   inst.Keywords.Equipment,
	}
}

func boundaryLabel(b editor.Boundary) string {
	if b.StartSource == editor.SourceUnset && b.EndSource == editor.SourceUnset {
		return "[no timing]"
	}
	return fmt.Sprintf("[%.0fs-%.0fs %s/%s]", b.Start, b.End, b.StartSource, b.EndSource)
}

// renderTimeline draws the visible window as a character track with the
// selected step's span marked.
func (m *model) renderTimeline() string {
	header := fmt.Sprintf("Timeline  %.1fx  [%.0fs - %.0fs]", m.viewport.Zoom(), m.viewport.VisibleStart(), m.viewport.VisibleEnd())
	if m.focus == focusTimeline {
		header = focusStyle.Render(header)
	} else {
		header = dimStyle.Render(header)
	}

	width := m.viewport.TrackWidth
	track := make([]rune, width)
	for i := range track {
		track[i] = '-'
	}

	var spanStart, spanEnd int = -1, -1
	if inst := m.currentStep(); inst != nil {
		b := m.session.Boundary(inst.Step)
		spanStart = m.viewport.TimeToPixel(b.Start)
		spanEnd = m.viewport.TimeToPixel(b.End)
		for x := spanStart; x <= spanEnd && x < width; x++ {
			if x >= 0 {
				track[x] = '='
			}
		}
	}

	dragX := -1
	if m.drag != nil {
		dragX = m.viewport.TimeToPixel(m.drag.CurrentTime)
		if dragX >= 0 && dragX < width {
			track[dragX] = '|'
		}
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, r := range track {
		s := string(r)
		switch {
		case i == dragX:
			b.WriteString(dragStyle.Render(s))
		case r == '=':
			b.WriteString(windowStyle.Render(s))
		default:
			b.WriteString(trackStyle.Render(s))
		}
	}
	b.WriteString("\n")
	return b.String()
}
