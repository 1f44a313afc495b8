package schema

import (
	"fmt"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

// ICTMonthly is the monthly ICT department report.
type ICTMonthly struct {
	Details     ReportDetails       `json:"details"`
	Summary     Summary             `json:"executiveSummary"`
	Systems     []SystemStatus      `json:"systems"`
	Support     SupportStats        `json:"support"`
	KPIs        []KPI               `json:"kpis"`
	Projects    []Project           `json:"projects"`
	Security    Security            `json:"security"`
	Procurement []ProcurementItem   `json:"procurement"`
	Outlook     Outlook             `json:"outlook"`
	Files       []domain.Attachment `json:"attachments"`
}

type SystemStatus struct {
	System    string        `json:"system"`
	Uptime    domain.Amount `json:"uptime"` // percent
	Incidents domain.Amount `json:"incidents"`
	Status    string        `json:"status"`
	Remarks   string        `json:"remarks"`
}

type SupportStats struct {
	TicketsReceived   domain.Amount `json:"ticketsReceived"`
	TicketsResolved   domain.Amount `json:"ticketsResolved"`
	TicketsPending    domain.Amount `json:"ticketsPending"`
	AverageResolution string        `json:"averageResolution"` // free text, e.g. "2 Hours"
}

// KPI is one measured indicator. Performance and rating are derived.
type KPI struct {
	Name          string        `json:"name"`
	Unit          string        `json:"unit"`
	Target        domain.Amount `json:"target"`
	Actual        domain.Amount `json:"actual"`
	LowerIsBetter bool          `json:"lowerIsBetter"`
	Comment       string        `json:"comment"`
}

type Project struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Progress domain.Amount `json:"progress"` // percent
	Deadline string        `json:"deadline"`
	Remarks  string        `json:"remarks"`
}

type Security struct {
	Incidents        []SecurityIncident `json:"incidents"`
	BackupsCompleted bool               `json:"backupsCompleted"`
	LastBackupDate   string             `json:"lastBackupDate"`
}

type SecurityIncident struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	ActionTaken string `json:"actionTaken"`
}

type ProcurementItem struct {
	Item     string        `json:"item"`
	Quantity domain.Amount `json:"quantity"`
	Cost     domain.Amount `json:"cost"`
	Status   string        `json:"status"`
}

func NewICTMonthly(d Defaults) *ICTMonthly {
	return &ICTMonthly{
		Details:     monthlyDetails(d),
		Summary:     Summary{Highlights: []string{}},
		Systems:     []SystemStatus{},
		KPIs:        []KPI{},
		Projects:    []Project{},
		Security:    Security{Incidents: []SecurityIncident{}},
		Procurement: []ProcurementItem{},
		Outlook:     Outlook{Challenges: []string{}, Plans: []string{}},
		Files:       []domain.Attachment{},
	}
}

func (r *ICTMonthly) Kind() Kind { return KindICTMonthly }

func (r *ICTMonthly) DefaultTitle() string {
	return fmt.Sprintf("ICT Monthly Report - %s", r.Details.Month)
}

func (r *ICTMonthly) Attachments() []domain.Attachment       { return r.Files }
func (r *ICTMonthly) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *ICTMonthly) instance()                            {}

// ICTWeekly is the weekly ICT support log.
type ICTWeekly struct {
	Details     ReportDetails       `json:"details"`
	Summary     Summary             `json:"executiveSummary"`
	SupportLog  []SupportActivity   `json:"supportLog"`
	Maintenance []string            `json:"maintenance"`
	Challenges  []string            `json:"challenges"`
	Plans       []string            `json:"plans"`
	Files       []domain.Attachment `json:"attachments"`
}

type SupportActivity struct {
	Date        string `json:"date"`
	RequestedBy string `json:"requestedBy"`
	Department  string `json:"department"`
	Issue       string `json:"issue"`
	Resolution  string `json:"resolution"`
	TimeSpent   string `json:"timeSpent"` // free text, e.g. "15 Min"
	Status      string `json:"status"`
}

func NewICTWeekly(d Defaults) *ICTWeekly {
	return &ICTWeekly{
		Details:     weeklyDetails(d),
		Summary:     Summary{Highlights: []string{}},
		SupportLog:  []SupportActivity{},
		Maintenance: []string{},
		Challenges:  []string{},
		Plans:       []string{},
		Files:       []domain.Attachment{},
	}
}

func (r *ICTWeekly) Kind() Kind { return KindICTWeekly }

func (r *ICTWeekly) DefaultTitle() string {
	return fmt.Sprintf("ICT Weekly Report - Week Ending %s", r.Details.WeekEnding)
}

func (r *ICTWeekly) Attachments() []domain.Attachment       { return r.Files }
func (r *ICTWeekly) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *ICTWeekly) instance()                            {}

var ictMonthlyDefinition = Definition{
	Kind: KindICTMonthly,
	Name: "ICT Monthly Report",
	Mode: ModeText,
	Sections: []Section{
		monthlyDetailsSection,
		summarySection,
		{
			Key:        "systems",
			Title:      "Systems & Infrastructure",
			Repeatable: true,
			Fields: []Field{
				{Key: "system", Label: "System", Type: FieldText, Required: true},
				{Key: "uptime", Label: "Uptime %", Type: FieldNumber},
				{Key: "incidents", Label: "Incidents", Type: FieldNumber},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Operational"},
				{Key: "remarks", Label: "Remarks", Type: FieldText},
			},
		},
		{
			Key:   "support",
			Title: "Helpdesk & Support",
			Fields: []Field{
				{Key: "ticketsReceived", Label: "Tickets Received", Type: FieldNumber},
				{Key: "ticketsResolved", Label: "Tickets Resolved", Type: FieldNumber},
				{Key: "ticketsPending", Label: "Tickets Pending", Type: FieldNumber},
				{Key: "averageResolution", Label: "Average Resolution Time", Type: FieldText},
			},
		},
		{
			Key:        "kpis",
			Title:      "Key Performance Indicators",
			Repeatable: true,
			Fields: []Field{
				{Key: "name", Label: "KPI", Type: FieldText, Required: true},
				{Key: "unit", Label: "Unit", Type: FieldText},
				{Key: "target", Label: "Target", Type: FieldNumber, Required: true},
				{Key: "actual", Label: "Actual", Type: FieldNumber},
				{Key: "lowerIsBetter", Label: "Lower Is Better", Type: FieldBool},
				{Key: "comment", Label: "Comment", Type: FieldText},
			},
		},
		{
			Key:        "projects",
			Title:      "Projects",
			Repeatable: true,
			Fields: []Field{
				{Key: "name", Label: "Project", Type: FieldText, Required: true},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
				{Key: "progress", Label: "Progress %", Type: FieldNumber},
				{Key: "deadline", Label: "Deadline", Type: FieldDate},
				{Key: "remarks", Label: "Remarks", Type: FieldText},
			},
		},
		{
			Key:   "security",
			Title: "Security & Backups",
			Fields: []Field{
				{Key: "incidents", Label: "Security Incidents", Type: FieldRows, Rows: []Field{
					{Key: "date", Label: "Date", Type: FieldDate},
					{Key: "description", Label: "Description", Type: FieldText, Required: true},
					{Key: "severity", Label: "Severity", Type: FieldEnum, Options: riskOptions},
					{Key: "actionTaken", Label: "Action Taken", Type: FieldText},
				}},
				{Key: "backupsCompleted", Label: "Backups Completed", Type: FieldBool},
				{Key: "lastBackupDate", Label: "Last Backup", Type: FieldDate},
			},
		},
		{
			Key:        "procurement",
			Title:      "Procurement & Assets",
			Repeatable: true,
			Fields: []Field{
				{Key: "item", Label: "Item", Type: FieldText, Required: true},
				{Key: "quantity", Label: "Quantity", Type: FieldNumber},
				{Key: "cost", Label: "Cost", Type: FieldMoney},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
			},
		},
		outlookSection("Challenges & Next Month Plans", "Next Month Plans"),
	},
}

var ictWeeklyDefinition = Definition{
	Kind: KindICTWeekly,
	Name: "ICT Weekly Report",
	Mode: ModeText,
	Sections: []Section{
		weeklyDetailsSection,
		summarySection,
		{
			Key:        "supportLog",
			Title:      "Support Activities",
			Repeatable: true,
			Fields: []Field{
				{Key: "date", Label: "Date", Type: FieldDate, Required: true},
				{Key: "requestedBy", Label: "Requested By", Type: FieldText},
				{Key: "department", Label: "Department", Type: FieldText},
				{Key: "issue", Label: "Issue", Type: FieldText, Required: true},
				{Key: "resolution", Label: "Resolution", Type: FieldText},
				{Key: "timeSpent", Label: "Time Spent", Type: FieldText},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
			},
		},
		{Key: "maintenance", Title: "Maintenance Performed", Repeatable: true},
		{Key: "challenges", Title: "Challenges", Repeatable: true},
		{Key: "plans", Title: "Plans for Next Week", Repeatable: true},
	},
}
