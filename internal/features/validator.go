package features

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ValidationError describes one field whose value falls outside its domain.
type ValidationError struct {
	Field   Field
	Message string // Human-readable, shown to the user as-is
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the full batch of violations found in one input.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	return strings.Join(e.Messages(), " ")
}

// Messages returns every message in order.
func (e ValidationErrors) Messages() []string {
	out := make([]string, len(e))
	for i, v := range e {
		out[i] = v.Message
	}
	return out
}

// Has reports whether any violation concerns f.
func (e ValidationErrors) Has(f Field) bool {
	for _, v := range e {
		if v.Field == f {
			return true
		}
	}
	return false
}

// Validate checks every present field against its declared domain and
// returns all violations at once, or nil when the input is valid.
// Absent fields are left to Build.
func Validate(fs Fields) error {
	var errs ValidationErrors
	for _, s := range specs {
		v, ok := fs[s.Field]
		if !ok {
			continue
		}
		if err := check(s, v); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func check(s Spec, v float64) *ValidationError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: s.Field, Message: fmt.Sprintf("%s must be a number.", s.Label)}
	}

	switch s.Kind {
	case KindEnum:
		if v != math.Trunc(v) || !slices.Contains(s.Choices, int(v)) {
			return &ValidationError{Field: s.Field, Message: fmt.Sprintf("%s must be one of %s.", s.Label, s.Domain())}
		}
		return nil
	case KindInteger:
		if v < s.Min || v > s.Max {
			return rangeError(s)
		}
		if v != math.Trunc(v) {
			return &ValidationError{Field: s.Field, Message: fmt.Sprintf("%s must be a whole number.", s.Label)}
		}
		return nil
	default:
		if v < s.Min || v > s.Max {
			return rangeError(s)
		}
		return nil
	}
}

func rangeError(s Spec) *ValidationError {
	return &ValidationError{Field: s.Field, Message: fmt.Sprintf("%s must be %s.", s.Label, s.Domain())}
}
