package router

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/de-tools/dept-reports/pkg/services/serializer"
)

// ErrPartialReconstruction is returned alongside a usable instance when some
// of a persisted report could not be recovered.
var ErrPartialReconstruction = errors.New("report only partially reconstructed")

var (
	weekEndingTitle     = regexp.MustCompile(`(?i)week ending (\d{4}-\d{2}-\d{2})`)
	clientActivityTitle = regexp.MustCompile(`(?i)^client activity report - (.+) - (\d{4}-\d{2}-\d{2}) to (\d{4}-\d{2}-\d{2})$`)
)

// Reconstruct rebuilds an editable instance from a persisted report. It
// always returns an instance; a non-nil error wraps ErrPartialReconstruction
// and describes what was lost.
func (t Template) Reconstruct(report domain.Report, d schema.Defaults) (schema.Instance, error) {
	if t.Definition.Mode == schema.ModeJSON {
		return t.reconstructJSON(report, d)
	}

	inst := t.New(d)
	if g, ok := inst.(*schema.Generic); ok {
		g.Title = report.Title
		g.Content = report.Content
		g.SetAttachments(slices.Clone(report.Attachments))
		return g, nil
	}

	salvageTitle(inst, report.Title)
	inst.SetAttachments(slices.Clone(report.Attachments))
	if strings.TrimSpace(report.Content) != "" {
		return inst, fmt.Errorf("%w: %s sections cannot be recovered from text content", ErrPartialReconstruction, t.Kind)
	}
	return inst, nil
}

func (t Template) reconstructJSON(report domain.Report, d schema.Defaults) (schema.Instance, error) {
	parsed, err := serializer.ParseActivities(report.Content)
	if err == nil {
		if len(parsed.Files) == 0 && len(report.Attachments) > 0 {
			parsed.Files = slices.Clone(report.Attachments)
		}
		return parsed, nil
	}

	inst := t.New(d)
	salvageTitle(inst, report.Title)
	inst.SetAttachments(slices.Clone(report.Attachments))
	return inst, fmt.Errorf("%w: %v", ErrPartialReconstruction, err)
}

// salvageTitle recovers the reporting period, and for client activity
// reports the client name, from a title produced by DefaultTitle.
func salvageTitle(inst schema.Instance, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}

	switch r := inst.(type) {
	case *schema.ClientActivities:
		if m := clientActivityTitle.FindStringSubmatch(title); m != nil {
			r.ClientName = m[1]
			r.Period = domain.TimePeriod{Start: m[2], End: m[3]}
		}
	case *schema.ICTMonthly:
		if month := trailingSegment(title); month != "" {
			r.Details.Month = month
		}
	case *schema.InternalAudit:
		if month := trailingSegment(title); month != "" {
			r.Details.Month = month
		}
	case *schema.Finance:
		r.Details.WeekEnding = weekEnding(title, r.Details.WeekEnding)
	case *schema.ICTWeekly:
		r.Details.WeekEnding = weekEnding(title, r.Details.WeekEnding)
	case *schema.Marketing:
		r.Details.WeekEnding = weekEnding(title, r.Details.WeekEnding)
	case *schema.ClientOfficer:
		r.Details.WeekEnding = weekEnding(title, r.Details.WeekEnding)
	case *schema.ClientEngagement:
		r.Details.WeekEnding = weekEnding(title, r.Details.WeekEnding)
	}
}

func weekEnding(title, fallback string) string {
	if m := weekEndingTitle.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return fallback
}

func trailingSegment(title string) string {
	i := strings.LastIndex(title, " - ")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(title[i+3:])
}
