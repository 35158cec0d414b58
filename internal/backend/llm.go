package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/gradecast/internal/features"
	"github.com/abhisek/gradecast/internal/llm"
)

// DefaultClasses are the GradeClass values of the training data
// (0 = A through 4 = F).
var DefaultClasses = []string{"0", "1", "2", "3", "4"}

const gradeSystemPrompt = `You classify students into a final grade class from their study profile.
Grade classes are numbered from best to worst. Answer only with the JSON object requested.
Categorical fields are encoded as integers exactly as in the training data.`

// LLM classifies records by asking a hosted language model.
type LLM struct {
	provider llm.Provider
	classes  []string
	maxTok   int
}

var _ Backend = (*LLM)(nil)

// NewLLM wraps provider. classes defaults to DefaultClasses.
func NewLLM(provider llm.Provider, classes []string, maxTokens int) *LLM {
	if len(classes) == 0 {
		classes = DefaultClasses
	}
	if maxTokens <= 0 {
		maxTokens = 64
	}
	return &LLM{provider: provider, classes: slices.Clone(classes), maxTok: maxTokens}
}

func (b *LLM) schema() *llm.Schema {
	enum := make([]any, len(b.classes))
	for i, c := range b.classes {
		enum[i] = c
	}
	return &llm.Schema{
		Name:        "grade-class",
		Description: "Predicted final grade class",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"grade_class": map[string]any{"type": "string", "enum": enum},
			},
			"required":             []any{"grade_class"},
			"additionalProperties": false,
		},
	}
}

// Prompt renders rec as the user message sent to the model.
func (b *LLM) Prompt(rec features.Record) string {
	var sb strings.Builder
	sb.WriteString("Student profile:\n")
	for _, s := range features.Specs() {
		fmt.Fprintf(&sb, "- %s: %s\n", s.Name, formatValue(rec.Get(s.Field)))
	}
	fmt.Fprintf(&sb, "\nAnswer with one grade_class from: %s.", strings.Join(b.classes, ", "))
	return sb.String()
}

func (b *LLM) Predict(ctx context.Context, rec features.Record) (Label, error) {
	ctx = llm.WithPurpose(ctx, "grade-prediction")
	resp, err := b.provider.Generate(ctx, llm.Request{
		System:      gradeSystemPrompt,
		Messages:    llm.UserMessage(b.Prompt(rec)),
		Schema:      b.schema(),
		MaxTokens:   b.maxTok,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		GradeClass string `json:"grade_class"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode model answer: %w", err)
	}
	if !slices.Contains(b.classes, out.GradeClass) {
		return "", fmt.Errorf("model answered unknown class %q", out.GradeClass)
	}
	return Label(out.GradeClass), nil
}

func (b *LLM) Info() ModelInfo {
	return ModelInfo{
		Name:      b.provider.ModelID(),
		Algorithm: "Language model",
		Classes:   slices.Clone(b.classes),
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
