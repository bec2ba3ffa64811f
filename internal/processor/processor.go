package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vuhoanglam/recipe-flow/internal/description"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
	"github.com/vuhoanglam/recipe-flow/internal/timing"
	"github.com/vuhoanglam/recipe-flow/internal/transcript"
)

// inputBundle is the on-disk input format: video metadata with an
// embedded caption track.
type inputBundle struct {
	recipe.VideoMetadata
	Transcript struct {
		Language string `json:"language"`
		Type     string `json:"type"`
		VTT      string `json:"vtt"`
	} `json:"transcript"`
}

// Process runs the full extraction pipeline for one input file.
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting recipe extraction: %s", inputPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Load metadata and raw captions
	meta, vtt, err := p.load(inputPath)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	// Step 2: Normalize captions into a timed transcript
	t, err := transcript.Normalize(vtt)
	if err != nil {
		return fmt.Errorf("normalize transcript: %w", err)
	}
	if meta.Duration == 0 {
		meta.Duration = t.Duration()
	}
	p.logger.Info(ctx, "Transcript: %d segments, %.0fs", len(t.Segments), t.Duration())

	// Step 3: Clean and section the transcript, with description
	// chapters as sectioning hints
	chapters := description.ParseChapters(meta.Description)
	cleaned, err := p.cleaner.Clean(ctx, t, chapters)
	if err != nil {
		return fmt.Errorf("clean transcript: %w", err)
	}
	p.logger.Info(ctx, "Cleaned transcript: %d section(s)", len(cleaned.Sections))

	// Step 4: Extract recipes
	result, err := p.extractor.Extract(ctx, *meta, cleaned)
	if err != nil {
		return fmt.Errorf("extract recipes: %w", err)
	}
	if !result.HasRecipe {
		p.logger.Info(ctx, "No recipe in %s, archiving", meta.ID)
		return p.moveToArchived(ctx, inputPath)
	}

	// Step 5: Locate keywords and derive step windows
	for i := range result.Recipes {
		timing.AttachReferences(t, &result.Recipes[i])
		timing.PredictStepTimes(result.Recipes[i].Instructions, int(meta.Duration))
	}

	// Step 6: Export
	jsonPath, err := p.exporter.WriteJSON(ctx, result)
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	if _, err := p.exporter.WriteSections(ctx, meta.ID, cleaned); err != nil {
		p.logger.Warn(ctx, "Failed to write sections: %v", err)
	}
	docxPath, err := p.exporter.WriteDocx(ctx, result)
	if err != nil {
		p.logger.Warn(ctx, "Failed to write docx: %v", err)
		docxPath = "(skipped)"
	}

	// Step 7: Move input to archived folder
	if err := p.moveToArchived(ctx, inputPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive input: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Extraction completed: %d recipe(s)", len(result.Recipes))
	p.logger.Info(ctx, "Output JSON: %s", jsonPath)
	p.logger.Info(ctx, "Output docx: %s", docxPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// load reads either a metadata bundle with embedded captions or a bare
// .vtt file with an optional sibling .json metadata file.
func (p *implProcessor) load(inputPath string) (*recipe.VideoMetadata, string, error) {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".json":
		return loadBundle(inputPath)
	case ".vtt":
		return loadVTT(inputPath)
	default:
		return nil, "", fmt.Errorf("unsupported input: %s", inputPath)
	}
}

func loadBundle(path string) (*recipe.VideoMetadata, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var bundle inputBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, "", fmt.Errorf("parse bundle: %w", err)
	}
	if bundle.ID == "" {
		return nil, "", fmt.Errorf("bundle has no video id")
	}
	if bundle.Transcript.VTT == "" {
		return nil, "", fmt.Errorf("bundle %s has no embedded transcript", bundle.ID)
	}
	return &bundle.VideoMetadata, bundle.Transcript.VTT, nil
}

func loadVTT(path string) (*recipe.VideoMetadata, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	meta := &recipe.VideoMetadata{ID: id}

	// A sibling <id>.json carries the metadata when present.
	metaPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	if metaData, err := os.ReadFile(metaPath); err == nil {
		var m recipe.VideoMetadata
		if err := json.Unmarshal(metaData, &m); err == nil && m.ID != "" {
			meta = &m
		}
	}
	return meta, string(data), nil
}

func (p *implProcessor) moveToArchived(ctx context.Context, inputPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(inputPath))
	if err := os.Rename(inputPath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	p.logger.Debug(ctx, "Archived %s", dest)
	return nil
}
