package schema

// Priority is a closed set used by action items.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var priorityOptions = []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}

// ReportDetails is the header section shared by the periodic reports.
// Weekly reports fill WeekEnding, monthly reports fill Month.
type ReportDetails struct {
	Department    string `json:"department"`
	PreparedBy    string `json:"preparedBy"`
	Position      string `json:"position"`
	WeekEnding    string `json:"weekEnding,omitempty"`
	Month         string `json:"month,omitempty"`
	DateSubmitted string `json:"dateSubmitted"`
}

type Summary struct {
	Overview   string   `json:"overview"`
	Highlights []string `json:"highlights"`
}

type Outlook struct {
	Challenges []string `json:"challenges"`
	Plans      []string `json:"plans"`
}

type ActionItem struct {
	Action   string   `json:"action"`
	Owner    string   `json:"owner"`
	Deadline string   `json:"deadline"`
	Priority Priority `json:"priority"`
}

type ComplianceItem struct {
	Obligation string `json:"obligation"`
	DueDate    string `json:"dueDate"`
	Status     string `json:"status"`
	Remarks    string `json:"remarks"`
}

func weeklyDetails(d Defaults) ReportDetails {
	return ReportDetails{
		Department:    d.Department,
		PreparedBy:    d.PreparedBy,
		Position:      d.Position,
		WeekEnding:    d.WeekEnding,
		DateSubmitted: d.Today,
	}
}

func monthlyDetails(d Defaults) ReportDetails {
	return ReportDetails{
		Department:    d.Department,
		PreparedBy:    d.PreparedBy,
		Position:      d.Position,
		Month:         d.Month,
		DateSubmitted: d.Today,
	}
}

var (
	weeklyDetailsSection = Section{
		Key:   "details",
		Title: "Report Details",
		Fields: []Field{
			{Key: "department", Label: "Department", Type: FieldText},
			{Key: "preparedBy", Label: "Prepared By", Type: FieldText, Required: true},
			{Key: "position", Label: "Position", Type: FieldText},
			{Key: "weekEnding", Label: "Week Ending", Type: FieldDate, Required: true},
			{Key: "dateSubmitted", Label: "Date Submitted", Type: FieldDate},
		},
	}
	monthlyDetailsSection = Section{
		Key:   "details",
		Title: "Report Details",
		Fields: []Field{
			{Key: "department", Label: "Department", Type: FieldText},
			{Key: "preparedBy", Label: "Prepared By", Type: FieldText, Required: true},
			{Key: "position", Label: "Position", Type: FieldText},
			{Key: "month", Label: "Reporting Month", Type: FieldText, Required: true},
			{Key: "dateSubmitted", Label: "Date Submitted", Type: FieldDate},
		},
	}
	summarySection = Section{
		Key:   "executiveSummary",
		Title: "Executive Summary",
		Fields: []Field{
			{Key: "overview", Label: "Overview", Type: FieldText},
			{Key: "highlights", Label: "Key Highlights", Type: FieldList},
		},
	}
	actionItemsSection = Section{
		Key:        "actionItems",
		Title:      "Action Items",
		Repeatable: true,
		Fields: []Field{
			{Key: "action", Label: "Action", Type: FieldText, Required: true},
			{Key: "owner", Label: "Owner", Type: FieldText},
			{Key: "deadline", Label: "Deadline", Type: FieldDate},
			{Key: "priority", Label: "Priority", Type: FieldEnum, Options: priorityOptions, Default: string(PriorityMedium)},
		},
	}
	complianceSection = Section{
		Key:        "compliance",
		Title:      "Compliance & Statutory Obligations",
		Repeatable: true,
		Fields: []Field{
			{Key: "obligation", Label: "Obligation", Type: FieldText, Required: true},
			{Key: "dueDate", Label: "Due Date", Type: FieldDate},
			{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
			{Key: "remarks", Label: "Remarks", Type: FieldText},
		},
	}
)

func outlookSection(title, plansLabel string) Section {
	return Section{
		Key:   "outlook",
		Title: title,
		Fields: []Field{
			{Key: "challenges", Label: "Challenges", Type: FieldList},
			{Key: "plans", Label: plansLabel, Type: FieldList},
		},
	}
}
