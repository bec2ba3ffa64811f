package youtube

import (
	"context"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// CaptionTrack identifies the subtitle track chosen for a video.
type CaptionTrack struct {
	Lang   string
	Ext    string
	Auto   bool
	URL    string
}

// Fetcher pulls video metadata and caption tracks via yt-dlp.
type Fetcher interface {
	FetchMetadata(ctx context.Context, videoURL string) (*recipe.VideoMetadata, error)
	FetchCaptions(ctx context.Context, videoURL string) (string, *CaptionTrack, error)
}
