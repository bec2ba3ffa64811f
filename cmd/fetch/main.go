package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
	"github.com/vuhoanglam/recipe-flow/internal/youtube"
	"github.com/vuhoanglam/recipe-flow/pkg/executor"
)

// inputBundle mirrors the pipeline's input format: metadata plus the
// embedded caption track.
type inputBundle struct {
	recipe.VideoMetadata
	Transcript struct {
		Language string `json:"language"`
		Type     string `json:"type"`
		VTT      string `json:"vtt"`
	} `json:"transcript"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fetch <video-url> [<video-url>...]")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input dir: %v", err)
		os.Exit(1)
	}

	fetcher := youtube.New(cfg, executor.New(), log)

	failed := 0
	for _, url := range os.Args[1:] {
		if err := fetchOne(ctx, fetcher, cfg.Paths.Input, url); err != nil {
			log.Error(ctx, "Failed to fetch %s: %v", url, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func fetchOne(ctx context.Context, fetcher youtube.Fetcher, inputDir, url string) error {
	meta, err := fetcher.FetchMetadata(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch metadata: %w", err)
	}

	vtt, track, err := fetcher.FetchCaptions(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch captions: %w", err)
	}

	bundle := inputBundle{VideoMetadata: *meta}
	bundle.Transcript.Language = track.Lang
	bundle.Transcript.VTT = vtt
	if track.Auto {
		bundle.Transcript.Type = "auto"
	} else {
		bundle.Transcript.Type = "manual"
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}

	path := filepath.Join(inputDir, meta.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}

	fmt.Printf("Fetched %s -> %s\n", meta.ID, path)
	return nil
}
