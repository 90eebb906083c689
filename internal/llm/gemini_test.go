package llm

import "testing"

func TestGeminiFriendlyModelNames(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tc := range cases {
		if got := resolveModel(tc.in, geminiModels); got != tc.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint":  map[string]any{"type": "string"},
			"stars": map[string]any{"type": "integer"},
			"tone":  map[string]any{"type": "string", "enum": []any{"gentle", "excited"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"hint", "stars"},
	}

	s := geminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["hint"].Type != "STRING" {
		t.Errorf("hint type = %s, want STRING", s.Properties["hint"].Type)
	}
	if s.Properties["stars"].Type != "INTEGER" {
		t.Errorf("stars type = %s, want INTEGER", s.Properties["stars"].Type)
	}
	if got := len(s.Properties["tone"].Enum); got != 2 {
		t.Errorf("tone enum values = %d, want 2", got)
	}
	if s.Properties["steps"].Type != "ARRAY" || s.Properties["steps"].Items.Type != "STRING" {
		t.Errorf("steps = %s of %v", s.Properties["steps"].Type, s.Properties["steps"].Items)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %d, want 2", len(s.Required))
	}
}
