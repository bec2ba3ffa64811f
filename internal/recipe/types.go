package recipe

// TimingConfidence is the categorical trust level the model attaches to an
// inferred step timestamp.
type TimingConfidence string

const (
	ConfidenceHigh   TimingConfidence = "high"
	ConfidenceMedium TimingConfidence = "medium"
	ConfidenceLow    TimingConfidence = "low"
	ConfidenceNone   TimingConfidence = "none"
)

// Valid reports whether the value is one of the four known tiers.
func (c TimingConfidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceNone:
		return true
	}
	return false
}

// AllowsTimestamp reports whether a timestamp should accompany this tier.
// The prompt instructs the model to emit timestamps only at high or medium
// confidence; this is checked at the ingestion boundary.
func (c TimingConfidence) AllowsTimestamp() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium
}

// Ingredient is a structured ingredient entry.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Keywords hold the per-step search terms, partitioned by type.
type Keywords struct {
	Ingredients []KeywordIngredient `json:"ingredients,omitempty"`
	Techniques  []string            `json:"techniques,omitempty"`
	Equipment   []string            `json:"equipment,omitempty"`
}

// Measurements collect the literal quantities mentioned in a step.
type Measurements struct {
	Temperatures []string `json:"temperatures,omitempty"`
	Amounts      []string `json:"amounts,omitempty"`
	Times        []string `json:"times,omitempty"`
}

// PredictedTime is the pipeline's derived step window, in whole seconds.
type PredictedTime struct {
	StartSeconds int `json:"start_seconds"`
	EndSeconds   int `json:"end_seconds"`
}

// VideoReference points a keyword at a transcript position.
type VideoReference struct {
	Keyword          string `json:"keyword"`
	TimestampSeconds int    `json:"timestamp_seconds"`
	Context          string `json:"context,omitempty"`
}

// Instruction is one recipe step. Step numbers are unique within a recipe.
type Instruction struct {
	Step             int              `json:"step"`
	Text             string           `json:"text"`
	Notes            string           `json:"notes,omitempty"`
	SectionID        string           `json:"section_id,omitempty"`
	TimingConfidence TimingConfidence `json:"timing_confidence"`
	TimestampSeconds *float64         `json:"timestamp_seconds,omitempty"`
	EndTimeSeconds   *float64         `json:"end_time_seconds,omitempty"`
	Keywords         *Keywords        `json:"keywords,omitempty"`
	Measurements     *Measurements    `json:"measurements,omitempty"`
	VideoReferences  []VideoReference `json:"video_references,omitempty"`
	PredictedTime    *PredictedTime   `json:"predicted_time,omitempty"`
}

// Recipe is one structured recipe extracted from a video.
type Recipe struct {
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	PrepTimeMinutes  int           `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes  int           `json:"cook_time_minutes,omitempty"`
	TotalTimeMinutes int           `json:"total_time_minutes,omitempty"`
	Servings         int           `json:"servings,omitempty"`
	Yield            string        `json:"yield,omitempty"`
	Difficulty       string        `json:"difficulty,omitempty"`
	CuisineType      []string      `json:"cuisine_type,omitempty"`
	MealType         []string      `json:"meal_type,omitempty"`
	DietaryTags      []string      `json:"dietary_tags,omitempty"`
	Ingredients      []Ingredient  `json:"ingredients"`
	Instructions     []Instruction `json:"instructions"`
	Equipment        []string      `json:"equipment,omitempty"`
	Tags             []string      `json:"tags,omitempty"`
	Tips             []string      `json:"tips,omitempty"`
}

// VideoRecipes is the aggregate result for one video.
type VideoRecipes struct {
	HasRecipe      bool     `json:"has_recipe"`
	HasMoreRecipes bool     `json:"has_more_recipes"`
	VideoID        string   `json:"video_id"`
	VideoURL       string   `json:"video_url,omitempty"`
	UploadDate     string   `json:"upload_date,omitempty"`
	Recipes        []Recipe `json:"recipes"`
}

// VideoMetadata is the slice of video info the extraction pipeline needs.
type VideoMetadata struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	UploadDate  string  `json:"upload_date"`
	Channel     string  `json:"channel,omitempty"`
	WebpageURL  string  `json:"webpage_url,omitempty"`
}
