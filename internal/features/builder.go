package features

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MissingFieldError is returned by Build when required fields are absent.
type MissingFieldError struct {
	Fields []Field
}

func (e *MissingFieldError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.String()
	}
	return fmt.Sprintf("missing feature fields: %s", strings.Join(names, ", "))
}

// Build assembles a Record in canonical order. It does not validate values.
func Build(fs Fields) (Record, error) {
	var rec Record
	var missing []Field
	for i, s := range specs {
		v, ok := fs[s.Field]
		if !ok {
			missing = append(missing, s.Field)
			continue
		}
		rec.values[i] = v
	}
	if len(missing) > 0 {
		return Record{}, &MissingFieldError{Fields: missing}
	}
	return rec, nil
}

// ParseFields converts text values keyed by column name, label or flag name
// into Fields. Blank values are treated as absent. Unknown keys are ignored.
// Values that are not numbers are reported together with the domain
// violations of the values that did parse, as one ValidationErrors batch
// in canonical order.
func ParseFields(raw map[string]string) (Fields, error) {
	fs := make(Fields, len(raw))
	var errs ValidationErrors
	for key, text := range raw {
		f, ok := Lookup(key)
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			errs = append(errs, &ValidationError{Field: f, Message: fmt.Sprintf("%s must be a number.", f.Label())})
			continue
		}
		fs[f] = v
	}
	if len(errs) == 0 {
		return fs, nil
	}
	var domain ValidationErrors
	if errors.As(Validate(fs), &domain) {
		errs = append(errs, domain...)
	}
	slices.SortFunc(errs, func(a, b *ValidationError) int { return int(a.Field) - int(b.Field) })
	return fs, errs
}
