package achievements

// catalogSchema is the JSON Schema a loaded catalog file must satisfy
// before it is unmarshaled. Keeping validation ahead of decoding gives
// content authors a precise error instead of a half-parsed catalog.
var catalogSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"name": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"description": map[string]any{
				"type": "string",
			},
			"icon": map[string]any{
				"type": "string",
			},
			"category": map[string]any{
				"type": "string",
			},
			"rarity": map[string]any{
				"type": "string",
				"enum": []any{"common", "rare", "epic", "legendary"},
			},
			"xpReward": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"requirements": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"stat": map[string]any{
							"type": "string",
							"enum": []any{
								"lessons_completed",
								"labs_completed",
								"blogs_read",
								"total_xp",
								"streak_days",
								"profile_completion",
								"level",
								"days_active",
							},
						},
						"threshold": map[string]any{
							"type":    "integer",
							"minimum": 1,
						},
					},
					"required":             []any{"stat", "threshold"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "name", "rarity", "requirements"},
		"additionalProperties": false,
	},
}
