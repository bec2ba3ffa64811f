package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// KeywordIngredient is the union of the two shapes the ingredient keyword
// field has carried over time: older recipes store a plain string, newer
// ones a structured Ingredient object. The shape is resolved once here, at
// the JSON boundary, so render code never re-checks it.
type KeywordIngredient struct {
	Structured *Ingredient
	Legacy     string
}

// Term returns the searchable ingredient name regardless of shape.
func (k KeywordIngredient) Term() string {
	if k.Structured != nil {
		return k.Structured.Item
	}
	return k.Legacy
}

func (k KeywordIngredient) MarshalJSON() ([]byte, error) {
	if k.Structured != nil {
		return json.Marshal(k.Structured)
	}
	return json.Marshal(k.Legacy)
}

func (k *KeywordIngredient) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		return json.Unmarshal(data, &k.Legacy)
	}
	var ing Ingredient
	if err := json.Unmarshal(data, &ing); err != nil {
		return fmt.Errorf("ingredient keyword is neither string nor object: %w", err)
	}
	k.Structured = &ing
	return nil
}

// IngredientTerms flattens the union slice into plain search terms,
// skipping empty entries.
func IngredientTerms(in []KeywordIngredient) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if term := strings.TrimSpace(k.Term()); term != "" {
			out = append(out, term)
		}
	}
	return out
}
