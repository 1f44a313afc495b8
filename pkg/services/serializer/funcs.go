package serializer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

const (
	ruleWidth   = 60
	placeholder = "N/A"
)

func (s *Serializer) funcs(def schema.Definition) template.FuncMap {
	return template.FuncMap{
		"heading": func(key string) string {
			section, n, ok := def.Section(key)
			if !ok {
				return strings.ToUpper(key) + "\n" + strings.Repeat("-", ruleWidth)
			}
			return fmt.Sprintf("%d. %s\n%s", n, strings.ToUpper(section.Title), strings.Repeat("-", ruleWidth))
		},
		"banner": func(title string) string {
			return strings.ToUpper(title) + "\n" + strings.Repeat("=", ruleWidth)
		},
		"money": s.money,
		"amt": func(a domain.Amount) string {
			return s.money(a.Float())
		},
		"num": func(a domain.Amount) string {
			if a.IsBlank() {
				return placeholder
			}
			return s.printer.Sprint(a.Float())
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"rating": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"hours": func(v float64) string {
			return fmt.Sprintf("%.2f hrs", v)
		},
		"kv": func(label string, value any) string {
			return label + ": " + cell(value)
		},
		// fallback renders the declared default of the field at path when v is blank.
		"fallback": func(path string, v any) string {
			if out := text(v); out != "" {
				return out
			}
			if d := def.FieldDefault(path); d != "" {
				return d
			}
			return placeholder
		},
		"row": func(values ...any) string {
			cells := make([]string, 0, len(values))
			for _, v := range values {
				cells = append(cells, cell(v))
			}
			return strings.Join(cells, " | ")
		},
		"yesno": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
		"para": paragraph,
		"inc":  func(i int) int { return i + 1 },
	}
}

// money renders two decimals with thousands separators.
func (s *Serializer) money(v float64) string {
	formatted := s.printer.Sprintf("%.2f", v)
	if s.settings.Currency == "" {
		return formatted
	}
	return s.settings.Currency + " " + formatted
}

func cell(v any) string {
	if out := text(v); out != "" {
		return out
	}
	return placeholder
}

// text flattens v to a single line; blank values give "".
func text(v any) string {
	var out string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		out = t
	case domain.Amount:
		out = string(t)
	case schema.Priority:
		out = string(t)
	case fmt.Stringer:
		out = t.String()
	default:
		out = fmt.Sprint(t)
	}
	return strings.Join(strings.Fields(out), " ")
}

func paragraph(text, fallback string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}
