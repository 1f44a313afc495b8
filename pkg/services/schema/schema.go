package schema

import (
	"fmt"
	"slices"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

// Kind identifies one department report variant.
type Kind string

const (
	KindFinance          Kind = "finance"
	KindICTMonthly       Kind = "ict-monthly"
	KindICTWeekly        Kind = "ict-weekly"
	KindMarketing        Kind = "marketing"
	KindClientOfficer    Kind = "weekly-client-officer"
	KindClientActivities Kind = "client-specific-activities"
	KindAudit            Kind = "audit"
	KindClientEngagement Kind = "client-engagement"
	KindGeneric          Kind = "generic"
)

// Kinds lists every variant in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindFinance,
		KindICTMonthly,
		KindICTWeekly,
		KindMarketing,
		KindClientOfficer,
		KindClientActivities,
		KindAudit,
		KindClientEngagement,
		KindGeneric,
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds(), k) {
		return "", fmt.Errorf("unknown report type %q", s)
	}
	return k, nil
}

// Mode is the content encoding a variant is persisted with.
type Mode string

const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Instance is a populated report form. The set of implementations is closed:
// *Finance, *ICTMonthly, *ICTWeekly, *Marketing, *ClientOfficer,
// *ClientActivities, *InternalAudit, *ClientEngagement and *Generic.
type Instance interface {
	Kind() Kind
	DefaultTitle() string
	Attachments() []domain.Attachment
	SetAttachments(attachments []domain.Attachment)
	instance()
}

// Defaults carries the department defaults used when a new instance is
// created. The acting user is passed in explicitly.
type Defaults struct {
	Department  string
	PreparedBy  string
	Position    string
	WeekEnding  string // YYYY-MM-DD, Sunday
	PeriodStart string // YYYY-MM-DD, WeekEnding - 6 days
	Month       string // "October 2025"
	Today       string // YYYY-MM-DD
}

// New creates an instance of the given kind filled with defaults.
func New(kind Kind, d Defaults) (Instance, error) {
	switch kind {
	case KindFinance:
		return NewFinance(d), nil
	case KindICTMonthly:
		return NewICTMonthly(d), nil
	case KindICTWeekly:
		return NewICTWeekly(d), nil
	case KindMarketing:
		return NewMarketing(d), nil
	case KindClientOfficer:
		return NewClientOfficer(d), nil
	case KindClientActivities:
		return NewClientActivities(d), nil
	case KindAudit:
		return NewInternalAudit(d), nil
	case KindClientEngagement:
		return NewClientEngagement(d), nil
	case KindGeneric:
		return NewGeneric(d), nil
	default:
		return nil, fmt.Errorf("unknown report type %q", kind)
	}
}

// AddRow appends a row and returns a new slice; rows is left untouched.
func AddRow[T any](rows []T, row T) []T {
	out := make([]T, 0, len(rows)+1)
	out = append(out, rows...)
	return append(out, row)
}

// RemoveRow returns a copy of rows without the row at index i.
// Sibling rows keep their content; only their position shifts.
func RemoveRow[T any](rows []T, i int) ([]T, error) {
	if i < 0 || i >= len(rows) {
		return rows, fmt.Errorf("row index %d out of range [0, %d)", i, len(rows))
	}
	return slices.Delete(slices.Clone(rows), i, i+1), nil
}
