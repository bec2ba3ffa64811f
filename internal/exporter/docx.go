package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx renders every recipe from the video into a printable
// <video_id>_recipes.docx.
func (e *implExporter) WriteDocx(ctx context.Context, result *recipe.VideoRecipes) (string, error) {
	if result == nil || result.VideoID == "" {
		return "", fmt.Errorf("result has no video id")
	}
	if len(result.Recipes) == 0 {
		return "", fmt.Errorf("no recipes to export")
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	for i, r := range result.Recipes {
		if i > 0 {
			doc.AddParagraph("")
		}
		writeRecipe(doc, &r)
	}

	if result.VideoURL != "" {
		doc.AddParagraph("")
		p := doc.AddParagraph("")
		p.AddText("Source: "+result.VideoURL).Font(fontName).Size(fontSize).Color("666666")
	}

	path := filepath.Join(e.outputDir, result.VideoID+"_recipes.docx")
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("save docx: %w", err)
	}

	e.logger.Info(ctx, "Wrote recipe document to %s", path)
	return path, nil
}

func writeRecipe(doc *docx.RootDoc, r *recipe.Recipe) {
	addStyledRun(doc.AddParagraph(""), r.Title, true, 16)

	if r.Description != "" {
		addStyledRun(doc.AddParagraph(""), r.Description, false, fontSize)
	}

	if meta := metaLine(r); meta != "" {
		addStyledRun(doc.AddParagraph(""), meta, false, fontSize)
	}

	if len(r.Ingredients) > 0 {
		addStyledRun(doc.AddParagraph(""), "Ingredients", true, 15)
		for _, ing := range r.Ingredients {
			addStyledRun(doc.AddParagraph(""), "• "+ingredientLine(ing), false, fontSize)
		}
	}

	if len(r.Instructions) > 0 {
		addStyledRun(doc.AddParagraph(""), "Instructions", true, 15)
		for _, inst := range r.Instructions {
			line := fmt.Sprintf("%d. %s", inst.Step, inst.Text)
			if pt := inst.PredictedTime; pt != nil {
				line += fmt.Sprintf(" [%s - %s]", formatClock(pt.StartSeconds), formatClock(pt.EndSeconds))
			}
			addStyledRun(doc.AddParagraph(""), line, false, fontSize)
			if inst.Notes != "" {
				addStyledRun(doc.AddParagraph(""), "   Note: "+inst.Notes, false, fontSize)
			}
		}
	}

	if len(r.Tips) > 0 {
		addStyledRun(doc.AddParagraph(""), "Tips", true, 15)
		for _, tip := range r.Tips {
			addStyledRun(doc.AddParagraph(""), "• "+tip, false, fontSize)
		}
	}
}

func metaLine(r *recipe.Recipe) string {
	var parts []string
	if r.PrepTimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("Prep: %d min", r.PrepTimeMinutes))
	}
	if r.CookTimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("Cook: %d min", r.CookTimeMinutes))
	}
	if r.Servings > 0 {
		parts = append(parts, fmt.Sprintf("Serves: %d", r.Servings))
	}
	if r.Difficulty != "" {
		parts = append(parts, "Difficulty: "+r.Difficulty)
	}
	return strings.Join(parts, " | ")
}

func ingredientLine(ing recipe.Ingredient) string {
	var parts []string
	if ing.Quantity != "" {
		parts = append(parts, ing.Quantity)
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Item)
	line := strings.Join(parts, " ")
	if ing.Notes != "" {
		line += " (" + ing.Notes + ")"
	}
	return line
}

func formatClock(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
