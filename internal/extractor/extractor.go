package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vuhoanglam/recipe-flow/internal/description"
	"github.com/vuhoanglam/recipe-flow/internal/llm"
	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

const extractSystemPrompt = `You are a recipe extraction engine for cooking videos. You turn cleaned video transcripts into structured recipe data. You always reply with a single JSON object and nothing else.`

const firstCallPromptFmt = `Extract every distinct recipe from this cooking video transcript.

Video title: %s
Video description:
%s

The transcript is split into sections. Each section has an id and a time range in seconds:
%s

Reply with JSON in this exact shape:
{
  "has_recipe": true,
  "has_more_recipes": false,
  "recipes": [
    {
      "title": "...",
      "description": "...",
      "prep_time_minutes": 0, "cook_time_minutes": 0, "total_time_minutes": 0,
      "servings": 0, "yield": "...", "difficulty": "...",
      "cuisine_type": [], "meal_type": [],
      "dietary_tags": [], "equipment": [], "tags": [], "tips": [],
      "ingredients": [{"item":"...","quantity":"...","unit":"...","notes":"..."}],
      "instructions": [
        {
          "step": 1,
          "text": "...",
          "section_id": "...",
          "timing_confidence": "high|medium|low|none",
          "timestamp_seconds": 0,
          "keywords": {"ingredients": [], "techniques": [], "equipment": []},
          "measurements": {"temperatures": [], "amounts": [], "times": []}
        }
      ]
    }
  ]
}

Rules:
- "has_recipe" is false only when the video teaches no recipe at all.
- "has_more_recipes" is true when the transcript contains further distinct recipes you did not include in this reply.
- "section_id" must be copied from the section list above, or omitted when no section fits.
- "timestamp_seconds" is the moment the step starts in the video. Include it ONLY when timing_confidence is "high" or "medium"; omit it otherwise.
- Instruction steps are numbered from 1 with no gaps.
- Keyword ingredients may be plain strings or objects with "item"/"quantity"/"unit"/"notes".`

const continuationPromptFmt = `You already extracted these recipes from the same video:
%s

Extract the NEXT unextracted recipes from the transcript. Do not repeat any recipe whose title is in the list above. Same video, same sections, same output shape as before.

If no further distinct recipe exists, reply: {"has_recipe": false, "has_more_recipes": false, "recipes": []}`

// callResult is the wire shape of one extraction call.
type callResult struct {
	HasRecipe      bool            `json:"has_recipe"`
	HasMoreRecipes bool            `json:"has_more_recipes"`
	Recipes        []recipe.Recipe `json:"recipes"`
}

// Extract drives the model until the video is exhausted or a cap is
// reached. Calls run strictly one at a time: each continuation prompt
// lists the titles gathered so far and asks for what is missing.
func (e *implExtractor) Extract(ctx context.Context, meta recipe.VideoMetadata, cleaned *recipe.CleanedTranscript) (*recipe.VideoRecipes, error) {
	if cleaned == nil || len(cleaned.Sections) == 0 {
		return nil, fmt.Errorf("no transcript sections to extract from")
	}

	estimate := description.EstimateRecipeCount(meta.Description)
	if estimate > 0 {
		e.logger.Info(ctx, "Description chapters suggest %d recipe(s)", estimate)
	}

	out := &recipe.VideoRecipes{
		VideoID:    meta.ID,
		VideoURL:   meta.WebpageURL,
		UploadDate: meta.UploadDate,
	}
	seenTitles := make(map[string]bool)
	firstPrompt := fmt.Sprintf(firstCallPromptFmt, meta.Title, meta.Description, formatSections(cleaned))

	capHit := false
	modelWantsMore := false
	for iter := 1; iter <= e.maxIterations; iter++ {
		prompt := firstPrompt
		if len(out.Recipes) > 0 {
			prompt = firstPrompt + "\n\n" + fmt.Sprintf(continuationPromptFmt, formatTitles(out.Recipes))
		}

		raw, err := e.client.Complete(ctx, llm.Request{
			System:      extractSystemPrompt,
			User:        prompt,
			Temperature: e.temperature,
			MaxTokens:   e.maxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("extraction call %d: %w", iter, err)
		}

		res, err := parseCall(raw, iter)
		if err != nil {
			return nil, err
		}
		modelWantsMore = res.HasMoreRecipes

		if !res.HasRecipe && len(out.Recipes) == 0 {
			out.HasRecipe = false
			return out, nil
		}

		// Append new recipes, dropping duplicate titles against the
		// running set.
		added := 0
		for i := range res.Recipes {
			r := &res.Recipes[i]
			key := strings.ToLower(strings.TrimSpace(r.Title))
			if seenTitles[key] {
				e.logger.Warn(ctx, "Call %d repeated recipe %q, dropping", iter, r.Title)
				continue
			}
			if len(out.Recipes) >= e.maxRecipes {
				// A new recipe was left on the floor, so more remain
				// whatever the model's flag said.
				capHit = true
				modelWantsMore = true
				break
			}
			seenTitles[key] = true
			sanitizeRecipe(r, cleaned)
			out.Recipes = append(out.Recipes, *r)
			added++
		}
		out.HasRecipe = len(out.Recipes) > 0

		e.logger.Info(ctx, "Call %d added %d recipe(s) (%d total)", iter, added, len(out.Recipes))

		if len(out.Recipes) >= e.maxRecipes {
			capHit = true
			break
		}
		if added == 0 {
			// Zero new recipes: the model is done or circling.
			break
		}
		if !res.HasMoreRecipes && (estimate == 0 || len(out.Recipes) >= estimate) {
			break
		}
		// Either the model says more remain, or the description's
		// chapter count says the model gave up early. Keep going.
	}

	out.HasMoreRecipes = capHit && modelWantsMore
	return out, nil
}

func parseCall(raw string, iter int) (*callResult, error) {
	obj := llm.ExtractJSONObject(raw)
	if obj == "" {
		return nil, &ValidationError{Iteration: iter, Reason: "no JSON object in reply", Raw: raw}
	}

	var res callResult
	if err := json.Unmarshal([]byte(obj), &res); err != nil {
		return nil, &ValidationError{Iteration: iter, Reason: err.Error(), Raw: raw}
	}
	if res.HasRecipe {
		if len(res.Recipes) == 0 {
			return nil, &ValidationError{Iteration: iter, Reason: "has_recipe is true but recipes is empty", Raw: raw}
		}
		for i, r := range res.Recipes {
			if strings.TrimSpace(r.Title) == "" {
				return nil, &ValidationError{Iteration: iter, Reason: fmt.Sprintf("recipe %d has no title", i), Raw: raw}
			}
			if len(r.Instructions) == 0 {
				return nil, &ValidationError{Iteration: iter, Reason: fmt.Sprintf("recipe %q has no instructions", r.Title), Raw: raw}
			}
		}
	}
	return &res, nil
}

// sanitizeRecipe enforces the timing contract on model output: steps
// renumbered from 1, timestamps dropped when confidence does not allow
// them, section ids checked against the cleaned transcript.
func sanitizeRecipe(r *recipe.Recipe, cleaned *recipe.CleanedTranscript) {
	for i := range r.Instructions {
		inst := &r.Instructions[i]
		inst.Step = i + 1

		if !inst.TimingConfidence.Valid() {
			inst.TimingConfidence = recipe.ConfidenceNone
		}
		if !inst.TimingConfidence.AllowsTimestamp() {
			inst.TimestampSeconds = nil
			inst.EndTimeSeconds = nil
		}
		if inst.SectionID != "" && cleaned.SectionByID(inst.SectionID) == nil {
			inst.SectionID = ""
		}
	}
}

func formatSections(c *recipe.CleanedTranscript) string {
	var b strings.Builder
	for _, s := range c.Sections {
		heading := s.Heading
		if heading == "" {
			heading = "(no heading)"
		}
		fmt.Fprintf(&b, "[id=%s | %.0f-%.0fs | %s]\n%s\n\n", s.ID, s.StartTime, s.EndTime, heading, s.Text)
	}
	return strings.TrimSpace(b.String())
}

func formatTitles(recipes []recipe.Recipe) string {
	var b strings.Builder
	for i, r := range recipes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
	}
	return strings.TrimSpace(b.String())
}
