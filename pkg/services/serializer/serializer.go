// Package serializer turns a report instance into its persisted content:
// a fixed-order plain-text document or, for round-trip departments, a JSON
// snapshot. Output depends only on the instance, so identical input always
// produces identical bytes.
package serializer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/de-tools/dept-reports/pkg/services/schema"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Settings struct {
	// Currency is prefixed to every monetary value when set, e.g. "KES".
	Currency string
}

func DefaultSettings() Settings {
	return Settings{}
}

type Serializer struct {
	settings  Settings
	printer   *message.Printer
	templates map[schema.Kind]*template.Template
}

func New(settings Settings) (*Serializer, error) {
	s := &Serializer{
		settings:  settings,
		printer:   message.NewPrinter(language.English),
		templates: make(map[schema.Kind]*template.Template, len(textTemplates)),
	}

	for kind, src := range textTemplates {
		def, ok := schema.DefinitionFor(kind)
		if !ok {
			return nil, fmt.Errorf("no definition for report type %q", kind)
		}
		t, err := template.New(string(kind)).Funcs(s.funcs(def)).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}
		s.templates[kind] = t
	}
	return s, nil
}

// Mode reports how content of the given kind is encoded.
func (s *Serializer) Mode(kind schema.Kind) schema.Mode {
	if def, ok := schema.DefinitionFor(kind); ok {
		return def.Mode
	}
	return schema.ModeText
}

// Serialize renders inst. Missing optional and required values are rendered
// with placeholders; an error means the instance could not be encoded at all.
func (s *Serializer) Serialize(inst schema.Instance) (string, error) {
	switch r := inst.(type) {
	case *schema.ClientActivities:
		return marshalActivities(r)
	case *schema.Generic:
		return r.Content, nil
	case *schema.Finance:
		return s.render(r.Kind(), newFinanceView(r))
	case *schema.ICTMonthly:
		return s.render(r.Kind(), newICTMonthlyView(r))
	case *schema.ICTWeekly:
		return s.render(r.Kind(), newICTWeeklyView(r))
	case *schema.Marketing:
		return s.render(r.Kind(), newMarketingView(r))
	case *schema.ClientOfficer:
		return s.render(r.Kind(), newClientOfficerView(r))
	case *schema.InternalAudit:
		return s.render(r.Kind(), newInternalAuditView(r))
	case *schema.ClientEngagement:
		return s.render(r.Kind(), newClientEngagementView(r))
	default:
		return "", fmt.Errorf("unsupported report instance %T", inst)
	}
}

func (s *Serializer) render(kind schema.Kind, view any) (string, error) {
	t, ok := s.templates[kind]
	if !ok {
		return "", fmt.Errorf("no text template for report type %q", kind)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", kind, err)
	}
	return buf.String(), nil
}
