package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// WriteJSON saves the full extraction result as <video_id>_recipe.json.
func (e *implExporter) WriteJSON(ctx context.Context, result *recipe.VideoRecipes) (string, error) {
	if result == nil || result.VideoID == "" {
		return "", fmt.Errorf("result has no video id")
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	path := filepath.Join(e.outputDir, result.VideoID+"_recipe.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Info(ctx, "Wrote %d recipe(s) to %s", len(result.Recipes), path)
	return path, nil
}

// WriteSections saves the cleaned transcript alongside the recipe JSON
// so the editor can resolve section boundaries later.
func (e *implExporter) WriteSections(ctx context.Context, videoID string, cleaned *recipe.CleanedTranscript) (string, error) {
	if videoID == "" {
		return "", fmt.Errorf("no video id")
	}
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(cleaned, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sections: %w", err)
	}

	path := filepath.Join(e.outputDir, videoID+"_recipe_sections.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Debug(ctx, "Wrote %d section(s) to %s", len(cleaned.Sections), path)
	return path, nil
}
