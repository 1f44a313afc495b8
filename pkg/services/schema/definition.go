package schema

import "strings"

// FieldType is the authored type of a field.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldMoney  FieldType = "money"  // non-negative decimal
	FieldRating FieldType = "rating" // whole number 1-5, 0 when not rated
	FieldDate   FieldType = "date"
	FieldBool   FieldType = "bool"
	FieldEnum   FieldType = "enum"
	FieldList   FieldType = "list" // ordered free-text items
	FieldRows   FieldType = "rows" // ordered rows described by Field.Rows
)

const (
	MinRating = 1
	MaxRating = 5
)

type Field struct {
	Key      string // JSON key inside the section
	Label    string
	Type     FieldType
	Required bool
	Options  []string // closed set for FieldEnum
	Default  string   // rendered when the value is blank
	Rows     []Field  // columns of a FieldRows field
}

// Section is one numbered part of a report. A repeatable section holds an
// ordered list of rows; a repeatable section without fields holds free-text
// items. An empty Key addresses the top level of the instance.
type Section struct {
	Key        string
	Title      string
	Repeatable bool
	Derived    bool // recomputed, never authored
	Fields     []Field
}

// Definition declares the layout of one report variant.
type Definition struct {
	Kind     Kind
	Name     string
	Mode     Mode
	Sections []Section
}

// Section looks up a section by key.
func (d Definition) Section(key string) (Section, int, bool) {
	for i, s := range d.Sections {
		if s.Key == key {
			return s, i + 1, true
		}
	}
	return Section{}, 0, false
}

// FieldDefault returns the declared default of the field at path, written
// as "section.field" or "section.rows.field" for nested rows. Top-level
// fields use a leading dot, e.g. ".status". It returns "" when the field has
// no default or does not exist.
func (d Definition) FieldDefault(path string) string {
	key, rest, ok := strings.Cut(path, ".")
	if !ok {
		return ""
	}
	for _, s := range d.Sections {
		if s.Key != key {
			continue
		}
		if f, ok := lookupField(s.Fields, rest); ok {
			return f.Default
		}
	}
	return ""
}

func lookupField(fields []Field, path string) (Field, bool) {
	key, rest, nested := strings.Cut(path, ".")
	for _, f := range fields {
		if f.Key != key {
			continue
		}
		if !nested {
			return f, true
		}
		return lookupField(f.Rows, rest)
	}
	return Field{}, false
}

var definitions = map[Kind]Definition{
	KindFinance:          financeDefinition,
	KindICTMonthly:       ictMonthlyDefinition,
	KindICTWeekly:        ictWeeklyDefinition,
	KindMarketing:        marketingDefinition,
	KindClientOfficer:    clientOfficerDefinition,
	KindClientActivities: clientActivitiesDefinition,
	KindAudit:            internalAuditDefinition,
	KindClientEngagement: clientEngagementDefinition,
	KindGeneric:          genericDefinition,
}

// DefinitionFor returns the declaration for a kind.
func DefinitionFor(kind Kind) (Definition, bool) {
	d, ok := definitions[kind]
	return d, ok
}

// Definitions returns every declaration in Kinds() order.
func Definitions() []Definition {
	out := make([]Definition, 0, len(definitions))
	for _, k := range Kinds() {
		out = append(out, definitions[k])
	}
	return out
}
