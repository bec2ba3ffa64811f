package exporter

import (
	"context"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// Exporter writes extraction results to the output directory.
type Exporter interface {
	WriteJSON(ctx context.Context, result *recipe.VideoRecipes) (string, error)
	WriteSections(ctx context.Context, videoID string, cleaned *recipe.CleanedTranscript) (string, error)
	WriteDocx(ctx context.Context, result *recipe.VideoRecipes) (string, error)
}
