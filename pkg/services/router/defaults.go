package router

import (
	"time"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/calc"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// DefaultsFor builds the defaults a new instance is created with. The acting
// user is the preparer; the department falls back to the user's own.
func DefaultsFor(user domain.User, department string, now time.Time) schema.Defaults {
	if department == "" {
		department = user.Department
	}
	weekEnding := calc.WeekEndingSunday(now)
	return schema.Defaults{
		Department:  department,
		PreparedBy:  user.Name,
		Position:    user.Position,
		WeekEnding:  weekEnding,
		PeriodStart: calc.WeekStart(weekEnding),
		Month:       calc.MonthLabel(now),
		Today:       now.Format(time.DateOnly),
	}
}
