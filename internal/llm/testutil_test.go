package llm

// gradeSchema mirrors the schema the llm backend sends.
func gradeSchema() *Schema {
	return &Schema{
		Name:        "grade-class",
		Description: "Predicted final grade class",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"grade_class": map[string]any{"type": "string", "enum": []any{"0", "1", "2", "3"}},
			},
			"required":             []any{"grade_class"},
			"additionalProperties": false,
		},
	}
}
