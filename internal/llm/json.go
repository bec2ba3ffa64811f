package llm

import "strings"

// ExtractJSONObject trims a model reply down to its first JSON object.
// Models occasionally wrap valid JSON in prose or code fences even when
// asked not to; everything before the first '{' and after the last '}'
// is dropped. Returns "" when no object is present.
func ExtractJSONObject(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
