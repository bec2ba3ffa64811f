package processor

import (
	"os"
	"path/filepath"
	"testing"
)

const bundleJSON = `{
	"id": "abc12345678",
	"title": "Easy Carbonara",
	"description": "0:45 - Carbonara",
	"duration": 300,
	"transcript": {
		"language": "en",
		"type": "auto",
		"vtt": "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\nhello\n"
	}
}`

func TestLoadBundle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abc12345678.json")
	if err := os.WriteFile(path, []byte(bundleJSON), 0644); err != nil {
		t.Fatal(err)
	}

	meta, vtt, err := loadBundle(path)
	if err != nil {
		t.Fatalf("loadBundle: %v", err)
	}
	if meta.ID != "abc12345678" || meta.Title != "Easy Carbonara" {
		t.Errorf("meta = %+v", meta)
	}
	if meta.Duration != 300 {
		t.Errorf("duration = %v", meta.Duration)
	}
	if vtt == "" || vtt[:6] != "WEBVTT" {
		t.Errorf("vtt = %q", vtt)
	}
}

func TestLoadBundleMissingTranscript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.json")
	if err := os.WriteFile(path, []byte(`{"id":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadBundle(path); err == nil {
		t.Error("expected error for bundle without transcript")
	}
}

func TestLoadVTTWithSiblingMetadata(t *testing.T) {
	dir := t.TempDir()
	vttPath := filepath.Join(dir, "vid123.vtt")
	if err := os.WriteFile(vttPath, []byte("WEBVTT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	metaJSON := `{"id":"vid123","title":"Soup Night","duration":120}`
	if err := os.WriteFile(filepath.Join(dir, "vid123.json"), []byte(metaJSON), 0644); err != nil {
		t.Fatal(err)
	}

	meta, vtt, err := loadVTT(vttPath)
	if err != nil {
		t.Fatalf("loadVTT: %v", err)
	}
	if meta.Title != "Soup Night" {
		t.Errorf("sibling metadata not picked up: %+v", meta)
	}
	if vtt != "WEBVTT\n" {
		t.Errorf("vtt = %q", vtt)
	}
}

func TestLoadVTTWithoutMetadata(t *testing.T) {
	dir := t.TempDir()
	vttPath := filepath.Join(dir, "vid456.vtt")
	if err := os.WriteFile(vttPath, []byte("WEBVTT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	meta, _, err := loadVTT(vttPath)
	if err != nil {
		t.Fatalf("loadVTT: %v", err)
	}
	if meta.ID != "vid456" {
		t.Errorf("id should fall back to the filename, got %q", meta.ID)
	}
}
