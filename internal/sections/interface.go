package sections

import (
	"context"

	"github.com/vuhoanglam/recipe-flow/internal/description"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
	"github.com/vuhoanglam/recipe-flow/internal/transcript"
)

// Cleaner turns a raw timed transcript into a cleaned, sectioned one.
// Description chapters, when present, are passed along as sectioning
// hints.
type Cleaner interface {
	Clean(ctx context.Context, t *transcript.Transcript, chapters []description.Chapter) (*recipe.CleanedTranscript, error)
}
