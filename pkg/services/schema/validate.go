package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

// FieldError is a field-level validation message. Field is a dotted path,
// with the row index for repeatable sections, e.g. "actionItems[2].action".
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationError struct {
	Kind   Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("invalid %s report: %s", e.Kind, strings.Join(msgs, "; "))
}

// Validate checks an instance against its definition: required fields,
// malformed numbers and dates, negative money, ratings outside 1-5 and
// values outside a closed option set. Nested rows are checked row by row.
// It returns nil or a *ValidationError.
func Validate(inst Instance) error {
	def, ok := DefinitionFor(inst.Kind())
	if !ok {
		return fmt.Errorf("no definition for report type %q", inst.Kind())
	}

	raw, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("encode instance: %w", err)
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return fmt.Errorf("decode instance: %w", err)
	}

	var errs []FieldError
	for _, section := range def.Sections {
		if section.Derived {
			continue
		}
		value := any(root)
		if section.Key != "" {
			value = root[section.Key]
		}

		if !section.Repeatable {
			m, _ := value.(map[string]any)
			errs = append(errs, checkFields(section.Key, section.Fields, m)...)
			continue
		}

		rows, _ := value.([]any)
		for i, row := range rows {
			m, ok := row.(map[string]any)
			if !ok {
				continue
			}
			errs = append(errs, checkFields(fmt.Sprintf("%s[%d]", section.Key, i), section.Fields, m)...)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Kind: inst.Kind(), Fields: errs}
}

func checkFields(prefix string, fields []Field, m map[string]any) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		path := f.Key
		if prefix != "" {
			path = prefix + "." + f.Key
		}
		v := m[f.Key]
		if f.Type == FieldRating && v == float64(0) {
			v = nil
		}

		if isBlank(v) {
			if f.Required {
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s is required", f.Label)})
			}
			continue
		}

		switch f.Type {
		case FieldNumber:
			if s, ok := v.(string); ok && !domain.Amount(s).Valid() {
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be a number", f.Label)})
			}
		case FieldMoney:
			s, _ := v.(string)
			a := domain.Amount(s)
			switch {
			case !a.Valid():
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be a number", f.Label)})
			case a.Float() < 0:
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must not be negative", f.Label)})
			}
		case FieldRating:
			n, ok := v.(float64)
			if !ok || n != math.Trunc(n) || n < MinRating || n > MaxRating {
				errs = append(errs, FieldError{
					Field:   path,
					Message: fmt.Sprintf("%s must be a whole number from %d to %d", f.Label, MinRating, MaxRating),
				})
			}
		case FieldRows:
			rows, _ := v.([]any)
			for i, row := range rows {
				rm, ok := row.(map[string]any)
				if !ok {
					continue
				}
				errs = append(errs, checkFields(fmt.Sprintf("%s[%d]", path, i), f.Rows, rm)...)
			}
		case FieldDate:
			s, _ := v.(string)
			if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be a date (YYYY-MM-DD)", f.Label)})
			}
		case FieldEnum:
			s, _ := v.(string)
			if !slices.Contains(f.Options, s) {
				errs = append(errs, FieldError{
					Field:   path,
					Message: fmt.Sprintf("%s must be one of %s", f.Label, strings.Join(f.Options, ", ")),
				})
			}
		}
	}
	return errs
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
