package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// Language priority mirrors what viewers most likely get served:
// manual English subtitles first, then the original-language auto
// track, then regional auto tracks.
var (
	manualLangPriority = []string{"en-US", "en-CA", "en", "en-GB", "en-AU"}
	autoLangPriority   = []string{"en-orig", "en-US", "en-CA", "en", "en-GB", "en-AU"}
	formatPriority     = []string{"vtt", "srt", "ttml"}
)

// dumpInfo is the slice of yt-dlp's --dump-single-json output we need.
type dumpInfo struct {
	ID                string                   `json:"id"`
	Fulltitle         string                   `json:"fulltitle"`
	Title             string                   `json:"title"`
	Description       string                   `json:"description"`
	Duration          float64                  `json:"duration"`
	UploadDate        string                   `json:"upload_date"`
	Channel           string                   `json:"channel"`
	WebpageURL        string                   `json:"webpage_url"`
	Subtitles         map[string][]captionInfo `json:"subtitles"`
	AutomaticCaptions map[string][]captionInfo `json:"automatic_captions"`
}

type captionInfo struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// FetchMetadata runs yt-dlp against the video and returns its metadata
// without downloading anything.
func (f *implFetcher) FetchMetadata(ctx context.Context, videoURL string) (*recipe.VideoMetadata, error) {
	info, err := f.dump(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	title := info.Fulltitle
	if title == "" {
		title = info.Title
	}
	return &recipe.VideoMetadata{
		ID:          info.ID,
		Title:       title,
		Description: info.Description,
		Duration:    info.Duration,
		UploadDate:  info.UploadDate,
		Channel:     info.Channel,
		WebpageURL:  info.WebpageURL,
	}, nil
}

// FetchCaptions picks the best caption track for the video and
// downloads it, returning the raw VTT content.
func (f *implFetcher) FetchCaptions(ctx context.Context, videoURL string) (string, *CaptionTrack, error) {
	info, err := f.dump(ctx, videoURL)
	if err != nil {
		return "", nil, err
	}

	track := selectTrack(info)
	if track == nil {
		return "", nil, fmt.Errorf("no English caption track for %s", info.ID)
	}

	if err := os.MkdirAll(f.tempDir, 0755); err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}

	subFlag := "--write-subs"
	if track.Auto {
		subFlag = "--write-auto-subs"
	}
	outTmpl := filepath.Join(f.tempDir, info.ID)

	f.logger.Info(ctx, "Downloading %s captions (%s, auto=%v) for %s", track.Lang, track.Ext, track.Auto, info.ID)
	_, err = f.executor.Execute(ctx, f.ytdlpPath,
		"--skip-download",
		subFlag,
		"--sub-langs", track.Lang,
		"--sub-format", track.Ext,
		"-o", outTmpl,
		videoURL,
	)
	if err != nil {
		return "", nil, fmt.Errorf("download captions: %w", err)
	}

	subPath := fmt.Sprintf("%s.%s.%s", outTmpl, track.Lang, track.Ext)
	data, err := os.ReadFile(subPath)
	if err != nil {
		return "", nil, fmt.Errorf("read caption file: %w", err)
	}
	defer os.Remove(subPath)

	return string(data), track, nil
}

func (f *implFetcher) dump(ctx context.Context, videoURL string) (*dumpInfo, error) {
	out, err := f.executor.Execute(ctx, f.ytdlpPath, "--dump-single-json", "--skip-download", videoURL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump: %w", err)
	}

	var info dumpInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("parse yt-dlp output: %w", err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("yt-dlp output has no video id")
	}
	return &info, nil
}

// selectTrack picks a caption track: manual subtitles beat automatic
// ones, then language priority, then format priority within a track.
func selectTrack(info *dumpInfo) *CaptionTrack {
	if t := pick(info.Subtitles, manualLangPriority, false); t != nil {
		return t
	}
	return pick(info.AutomaticCaptions, autoLangPriority, true)
}

func pick(tracks map[string][]captionInfo, langs []string, auto bool) *CaptionTrack {
	for _, lang := range langs {
		formats, ok := tracks[lang]
		if !ok || len(formats) == 0 {
			continue
		}
		for _, want := range formatPriority {
			for _, c := range formats {
				if c.Ext == want {
					return &CaptionTrack{Lang: lang, Ext: c.Ext, Auto: auto, URL: c.URL}
				}
			}
		}
		return &CaptionTrack{Lang: lang, Ext: formats[0].Ext, Auto: auto, URL: formats[0].URL}
	}
	return nil
}
