package extractor

import (
	"context"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// Extractor pulls structured recipes out of a cleaned transcript by
// driving the LLM through sequential continuation calls until the
// video is exhausted or a cap is reached.
type Extractor interface {
	Extract(ctx context.Context, meta recipe.VideoMetadata, cleaned *recipe.CleanedTranscript) (*recipe.VideoRecipes, error)
}
