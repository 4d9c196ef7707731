package baidu

// buildWordsSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map describing text-mode success payloads. Responses are validated against
// it before decoding so shape drift surfaces as a typed remote error instead
// of silently-zeroed fields.
func buildWordsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"log_id":           map[string]any{"type": "integer"},
			"words_result_num": map[string]any{"type": "integer"},
			"words_result": map[string]any{
				"type":  "array",
				"items": wordItemSchema(),
			},
		},
		"required": []string{"words_result"},
	}
}

// buildFormSchema describes table-mode success payloads. words_result is
// allowed alongside form_result because some table responses degrade to
// plain words.
func buildFormSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"log_id": map[string]any{"type": "integer"},
			"form_result": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"row": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
			"words_result": map[string]any{
				"type":  "array",
				"items": wordItemSchema(),
			},
		},
	}
}

func wordItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{"type": "string"},
			"location": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"top":    map[string]any{"type": "integer"},
					"left":   map[string]any{"type": "integer"},
					"width":  map[string]any{"type": "integer"},
					"height": map[string]any{"type": "integer"},
				},
			},
		},
		"required": []string{"words"},
	}
}
