package mascot

import "github.com/tinkerlab/tinkeralpha/internal/llm"

// HintSchema defines the JSON schema for Sparky's hint responses.
var HintSchema = &llm.Schema{
	Name:        "sparky-hint",
	Description: "A short, friendly hint from Sparky the robot mascot",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One or two short sentences nudging the child toward the next step, without giving the answer away",
			},
			"cheer": map[string]any{
				"type":        "string",
				"description": "A 2-6 word encouragement to append, e.g. 'You've got this!'",
			},
		},
		"required":             []any{"hint", "cheer"},
		"additionalProperties": false,
	},
}
