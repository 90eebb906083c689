package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func hintTestSchema() *Schema {
	return &Schema{
		Name:        "hint-check",
		Description: "One hint and an optional cheer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint":  map[string]any{"type": "string"},
				"cheer": map[string]any{"type": "string"},
				"tone":  map[string]any{"type": "string", "enum": []any{"gentle", "excited"}},
			},
			"required": []any{"hint"},
		},
	}
}

func TestCheckReply(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantBad bool
	}{
		{"conforming reply", `{"hint":"Look at the switch.","cheer":"Go go go!","tone":"excited"}`, false},
		{"optional fields omitted", `{"hint":"Look at the switch."}`, false},
		{"missing required hint", `{"cheer":"Go go go!"}`, true},
		{"wrong field type", `{"hint":42}`, true},
		{"enum violation", `{"hint":"x","tone":"shouty"}`, true},
		{"not JSON at all", `the bulb is sad`, true},
		{"empty reply", ``, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkReply(hintTestSchema(), json.RawMessage(tc.raw))
			if !tc.wantBad {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var bad *BadReplyError
			if !errors.As(err, &bad) {
				t.Fatalf("err = %T (%v), want *BadReplyError", err, err)
			}
		})
	}
}

func TestCheckReplyNilSchemaAcceptsAnything(t *testing.T) {
	if err := checkReply(nil, json.RawMessage(`zap zap zap`)); err != nil {
		t.Fatalf("nil schema should accept raw text, got %v", err)
	}
}

func TestCheckReplyNestedShapes(t *testing.T) {
	schema := &Schema{
		Name: "activity-draft",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stage": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"stars": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"stage", "stars"},
		},
	}

	good := json.RawMessage(`{"stage":{"name":"Wire it up"},"stars":[1,3,5]}`)
	if err := checkReply(schema, good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrongItems := json.RawMessage(`{"stage":{"name":"Wire it up"},"stars":["lots"]}`)
	if err := checkReply(schema, wrongItems); err == nil {
		t.Fatal("expected an error for non-integer star counts")
	}
}
