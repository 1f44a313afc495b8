// Package router selects the report template that applies to a department,
// an optional report-type hint and, when editing, the existing title.
package router

import (
	"slices"
	"strings"

	"github.com/de-tools/dept-reports/pkg/services/schema"
)

var (
	clientActivitiesPhrases = []string{"client-specific activities", "client activity report", "client-specific"}
	clientOfficerPhrases    = []string{"weekly client officer", "client officer report"}
)

// exactDepartments is consulted only after every substring rule has failed.
var exactDepartments = map[string]schema.Kind{
	"internal audit":       schema.KindAudit,
	"audit and engagement": schema.KindAudit,
	"finance":              schema.KindFinance,
	"finance department":   schema.KindFinance,
	"client engagement":    schema.KindClientEngagement,
}

// Route maps a department, hint and title to a report kind. Empty hint and
// title mean "not supplied". The result is deterministic and never empty.
func Route(department, hint, title string) schema.Kind {
	dept := normalize(department)
	hint = normalize(hint)
	title = normalize(title)

	switch {
	case strings.Contains(dept, "ict"):
		if hint == "monthly" || hint == string(schema.KindICTMonthly) || strings.Contains(title, "monthly") {
			return schema.KindICTMonthly
		}
		return schema.KindICTWeekly

	case strings.Contains(dept, "marketing"):
		if hint == string(schema.KindClientActivities) || slices.Contains(clientActivitiesPhrases, hint) ||
			containsAny(title, clientActivitiesPhrases) {
			return schema.KindClientActivities
		}
		if hint == string(schema.KindClientOfficer) || slices.Contains(clientOfficerPhrases, hint) ||
			containsAny(title, clientOfficerPhrases) {
			return schema.KindClientOfficer
		}
		return schema.KindMarketing

	case strings.Contains(dept, "client engagement"), strings.Contains(dept, "audit"):
		if hint == string(schema.KindAudit) || strings.Contains(title, "audit") {
			return schema.KindAudit
		}
		if hint == string(schema.KindClientEngagement) || strings.Contains(title, "client engagement") {
			return schema.KindClientEngagement
		}
		if strings.Contains(dept, "client engagement") {
			return schema.KindClientEngagement
		}
		return schema.KindAudit
	}

	if kind, ok := exactDepartments[dept]; ok {
		return kind
	}
	return schema.KindGeneric
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, phrases []string) bool {
	if s == "" {
		return false
	}
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
