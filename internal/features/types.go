package features

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one model input. The numeric value of a Field is its
// position in the canonical order the model was trained on.
type Field int

const (
	StudyHours Field = iota
	Attendance
	Resources
	Extracurricular
	Motivation
	Internet
	Gender
	Age
	LearningStyle
	OnlineCourses
	Discussions
	AssignmentCompletion
	EduTech
	StressLevel
)

// NumFields is the width of a FeatureRecord.
const NumFields = 14

// Kind describes how a field's value is constrained.
type Kind int

const (
	KindContinuous Kind = iota // any number within [Min, Max]
	KindInteger                // whole number within [Min, Max]
	KindEnum                   // one of Choices
)

// Spec declares the name, label and domain of a field.
type Spec struct {
	Field   Field
	Name    string // column name used by the trained model
	Label   string // human-readable label used in messages and the form
	Flag    string // CLI flag name
	Kind    Kind
	Min     float64
	Max     float64
	Choices []int
}

// specs is indexed by Field and lists fields in canonical order.
// Reordering this table silently corrupts every prediction.
var specs = [NumFields]Spec{
	{Field: StudyHours, Name: "StudyHours", Label: "Study Hours", Flag: "study-hours", Kind: KindContinuous, Min: 0, Max: 24},
	{Field: Attendance, Name: "Attendance", Label: "Attendance", Flag: "attendance", Kind: KindContinuous, Min: 0, Max: 100},
	{Field: Resources, Name: "Resources", Label: "Resources", Flag: "resources", Kind: KindEnum, Choices: []int{0, 1, 2}},
	{Field: Extracurricular, Name: "Extracurricular", Label: "Extracurricular", Flag: "extracurricular", Kind: KindEnum, Choices: []int{0, 1}},
	{Field: Motivation, Name: "Motivation", Label: "Motivation", Flag: "motivation", Kind: KindEnum, Choices: []int{0, 1, 2}},
	{Field: Internet, Name: "Internet", Label: "Internet", Flag: "internet", Kind: KindEnum, Choices: []int{0, 1}},
	{Field: Gender, Name: "Gender", Label: "Gender", Flag: "gender", Kind: KindEnum, Choices: []int{0, 1}},
	{Field: Age, Name: "Age", Label: "Age", Flag: "age", Kind: KindInteger, Min: 18, Max: 30},
	{Field: LearningStyle, Name: "LearningStyle", Label: "Learning Style", Flag: "learning-style", Kind: KindEnum, Choices: []int{0, 1, 2, 3}},
	{Field: OnlineCourses, Name: "OnlineCourses", Label: "Online Courses", Flag: "online-courses", Kind: KindContinuous, Min: 0, Max: 20},
	{Field: Discussions, Name: "Discussions", Label: "Discussions", Flag: "discussions", Kind: KindEnum, Choices: []int{0, 1}},
	{Field: AssignmentCompletion, Name: "AssignmentCompletion", Label: "Assignment Completion", Flag: "assignment-completion", Kind: KindContinuous, Min: 0, Max: 100},
	{Field: EduTech, Name: "EduTech", Label: "EduTech", Flag: "edutech", Kind: KindEnum, Choices: []int{0, 1}},
	{Field: StressLevel, Name: "StressLevel", Label: "Stress Level", Flag: "stress-level", Kind: KindEnum, Choices: []int{0, 1, 2}},
}

// Specs returns a copy of the field table in canonical order.
func Specs() []Spec {
	out := make([]Spec, NumFields)
	copy(out, specs[:])
	return out
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < NumFields
}

// Spec returns the declaration for f. It panics on an unknown field.
func (f Field) Spec() Spec {
	return specs[f]
}

// String returns the model column name.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return specs[f].Name
}

// Label returns the human-readable name.
func (f Field) Label() string {
	if !f.Valid() {
		return f.String()
	}
	return specs[f].Label
}

// Lookup finds a field by column name, label or flag name (case-insensitive).
func Lookup(name string) (Field, bool) {
	for _, s := range specs {
		if strings.EqualFold(name, s.Name) || strings.EqualFold(name, s.Label) || strings.EqualFold(name, s.Flag) {
			return s.Field, true
		}
	}
	return 0, false
}

// Domain describes the allowed values, e.g. "0-24" or "0, 1, 2".
func (s Spec) Domain() string {
	if s.Kind == KindEnum {
		parts := make([]string, len(s.Choices))
		for i, c := range s.Choices {
			parts[i] = strconv.Itoa(c)
		}
		return strings.Join(parts, ", ")
	}
	return formatNumber(s.Min) + "-" + formatNumber(s.Max)
}

// Fields holds raw input values keyed by field. A field may be absent.
type Fields map[Field]float64

// Record is a FeatureRecord: every field's value in canonical order.
type Record struct {
	values [NumFields]float64
}

// Values returns the record as a positional slice in canonical order.
func (r Record) Values() []float64 {
	out := make([]float64, NumFields)
	copy(out, r.values[:])
	return out
}

// Get returns the value of f.
func (r Record) Get(f Field) float64 {
	return r.values[f]
}

// Columns returns the column names in canonical order.
func Columns() []string {
	out := make([]string, NumFields)
	for i, s := range specs {
		out[i] = s.Name
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
