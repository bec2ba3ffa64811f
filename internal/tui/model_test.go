package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/vuhoanglam/recipe-flow/internal/editor"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

func TestDeltasPath(t *testing.T) {
	got := deltasPath("/out/abc123_recipe.json")
	if got != "/out/abc123_recipe_deltas.json" {
		t.Errorf("deltasPath = %q", got)
	}
}

func TestSaveWritesRecipeAndDeltas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vid_recipe.json")

	result := &recipe.VideoRecipes{
		HasRecipe: true,
		VideoID:   "vid",
		Recipes: []recipe.Recipe{{
			Title: "Carbonara",
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Boil the pasta"},
				{Step: 2, Text: "Whisk the eggs"},
			},
		}},
	}

	m := &model{
		path:    path,
		result:  result,
		cleaned: &recipe.CleanedTranscript{},
	}
	m.session = editor.NewSession(&result.Recipes[0], m.cleaned)
	m.session.SetText(2, "Whisk the eggs well")
	if err := m.session.CommitDrag(1, 10, 40); err != nil {
		t.Fatalf("CommitDrag: %v", err)
	}

	m.save()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved recipe: %v", err)
	}
	var saved recipe.VideoRecipes
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("parse saved recipe: %v", err)
	}
	if saved.Recipes[0].Instructions[1].Text != "Whisk the eggs well" {
		t.Errorf("text edit not applied: %q", saved.Recipes[0].Instructions[1].Text)
	}
	if pt := saved.Recipes[0].Instructions[0].PredictedTime; pt == nil || pt.StartSeconds != 10 || pt.EndSeconds != 40 {
		t.Errorf("drag not applied: %+v", pt)
	}

	deltaData, err := os.ReadFile(filepath.Join(dir, "vid_recipe_deltas.json"))
	if err != nil {
		t.Fatalf("read deltas: %v", err)
	}
	var deltas []editor.Delta
	if err := json.Unmarshal(deltaData, &deltas); err != nil {
		t.Fatalf("parse deltas: %v", err)
	}
	if len(deltas) != 2 {
		t.Fatalf("got %d deltas, want 2", len(deltas))
	}
	if deltas[0].Step != 1 || deltas[0].PredictedTime == nil {
		t.Errorf("delta 0 = %+v", deltas[0])
	}
	if deltas[1].Step != 2 || deltas[1].Text == nil || *deltas[1].Text != "Whisk the eggs well" {
		t.Errorf("delta 1 = %+v", deltas[1])
	}
}

func TestSaveWithoutEditsWritesNoDeltaFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vid_recipe.json")

	result := &recipe.VideoRecipes{
		HasRecipe: true,
		VideoID:   "vid",
		Recipes: []recipe.Recipe{{
			Title:        "Carbonara",
			Instructions: []recipe.Instruction{{Step: 1, Text: "Boil"}},
		}},
	}
	m := &model{path: path, result: result, cleaned: &recipe.CleanedTranscript{}}
	m.session = editor.NewSession(&result.Recipes[0], m.cleaned)

	m.save()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("recipe file not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "vid_recipe_deltas.json")); !os.IsNotExist(err) {
		t.Errorf("delta file should not exist without edits, stat err = %v", err)
	}
}
