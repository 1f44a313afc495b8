package router

import (
	"fmt"
	"slices"
	"sync"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// Factory creates a fresh instance filled with defaults
type Factory func(d schema.Defaults) schema.Instance

// Template pairs a report kind with its schema and how to create or rebuild it
type Template struct {
	Kind       schema.Kind
	Definition schema.Definition
	New        Factory
}

// Registry manages report templates
type Registry interface {
	// Register adds a new template
	Register(t Template) error
	// Lookup returns the template registered for kind
	Lookup(kind schema.Kind) (Template, error)
	// Kinds returns the registered kinds in stable order
	Kinds() []schema.Kind
}

type registry struct {
	mu        sync.RWMutex
	templates map[schema.Kind]Template
}

// NewRegistry creates an empty template registry
func NewRegistry() Registry {
	return &registry{
		templates: make(map[schema.Kind]Template),
	}
}

// DefaultRegistry returns a registry holding every built-in report kind.
func DefaultRegistry() Registry {
	r := NewRegistry()
	for _, kind := range schema.Kinds() {
		def, _ := schema.DefinitionFor(kind)
		if err := r.Register(Template{Kind: kind, Definition: def, New: factoryFor(kind)}); err != nil {
			panic(err)
		}
	}
	return r
}

func factoryFor(kind schema.Kind) Factory {
	return func(d schema.Defaults) schema.Instance {
		inst, err := schema.New(kind, d)
		if err != nil {
			return schema.NewGeneric(d)
		}
		return inst
	}
}

func (r *registry) Register(t Template) error {
	if t.Kind == "" {
		return fmt.Errorf("report kind cannot be empty")
	}
	if t.New == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[t.Kind]; exists {
		return fmt.Errorf("report kind %q is already registered", t.Kind)
	}

	r.templates[t.Kind] = t
	return nil
}

func (r *registry) Lookup(kind schema.Kind) (Template, error) {
	r.mu.RLock()
	t, exists := r.templates[kind]
	r.mu.RUnlock()

	if !exists {
		return Template{}, fmt.Errorf("report kind %q is not registered", kind)
	}
	return t, nil
}

func (r *registry) Kinds() []schema.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]schema.Kind, 0, len(r.templates))
	for kind := range r.templates {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Router resolves templates from a registry
type Router struct {
	registry Registry
}

func New(registry Registry) (*Router, error) {
	if registry == nil {
		return nil, fmt.Errorf("template registry is nil")
	}
	return &Router{registry: registry}, nil
}

// Resolve picks the template for authoring a new report.
func (r *Router) Resolve(department, hint, title string) (Template, error) {
	return r.registry.Lookup(Route(department, hint, title))
}

// ForReport picks the template that produced an existing report. A stored
// report type wins; legacy records without one fall back to title inference.
func (r *Router) ForReport(department string, report domain.Report) (Template, error) {
	if report.ReportType != "" {
		if kind, err := schema.ParseKind(report.ReportType); err == nil {
			return r.registry.Lookup(kind)
		}
	}
	if department == "" {
		department = report.Department
	}
	return r.Resolve(department, "", report.Title)
}

func (r *Router) Templates() []Template {
	kinds := r.registry.Kinds()
	out := make([]Template, 0, len(kinds))
	for _, kind := range kinds {
		if t, err := r.registry.Lookup(kind); err == nil {
			out = append(out, t)
		}
	}
	return out
}
