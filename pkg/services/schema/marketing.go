package schema

import (
	"fmt"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

// Marketing is the general weekly marketing report.
type Marketing struct {
	Details   ReportDetails       `json:"details"`
	Summary   Summary             `json:"executiveSummary"`
	Campaigns []Campaign          `json:"campaigns"`
	Leads     LeadFunnel          `json:"leads"`
	Social    []SocialMetric      `json:"social"`
	Events    []Event             `json:"events"`
	Outlook   Outlook             `json:"outlook"`
	Files     []domain.Attachment `json:"attachments"`
}

type Campaign struct {
	Name    string        `json:"name"`
	Channel string        `json:"channel"`
	Status  string        `json:"status"`
	Budget  domain.Amount `json:"budget"`
	Spend   domain.Amount `json:"spend"`
	Leads   domain.Amount `json:"leads"`
}

type LeadFunnel struct {
	NewLeads  domain.Amount `json:"newLeads"`
	Qualified domain.Amount `json:"qualified"`
	Converted domain.Amount `json:"converted"`
}

type SocialMetric struct {
	Platform   string        `json:"platform"`
	Followers  domain.Amount `json:"followers"`
	Engagement domain.Amount `json:"engagement"` // percent
	Posts      domain.Amount `json:"posts"`
}

type Event struct {
	Date       string        `json:"date"`
	Name       string        `json:"name"`
	Location   string        `json:"location"`
	Attendance domain.Amount `json:"attendance"`
	Outcome    string        `json:"outcome"`
}

func NewMarketing(d Defaults) *Marketing {
	return &Marketing{
		Details:   weeklyDetails(d),
		Summary:   Summary{Highlights: []string{}},
		Campaigns: []Campaign{},
		Social:    []SocialMetric{},
		Events:    []Event{},
		Outlook:   Outlook{Challenges: []string{}, Plans: []string{}},
		Files:     []domain.Attachment{},
	}
}

func (r *Marketing) Kind() Kind { return KindMarketing }

func (r *Marketing) DefaultTitle() string {
	return fmt.Sprintf("Marketing Weekly Report - Week Ending %s", r.Details.WeekEnding)
}

func (r *Marketing) Attachments() []domain.Attachment       { return r.Files }
func (r *Marketing) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *Marketing) instance()                            {}

// ClientOfficer is the weekly report of a marketing client officer.
type ClientOfficer struct {
	Details     ReportDetails       `json:"details"`
	Summary     Summary             `json:"executiveSummary"`
	Portfolio   []ClientAccount     `json:"portfolio"`
	Meetings    []ClientMeeting     `json:"meetings"`
	Prospects   []Prospect          `json:"prospects"`
	Issues      []string            `json:"issues"`
	ActionItems []ActionItem        `json:"actionItems"`
	Files       []domain.Attachment `json:"attachments"`
}

type ClientAccount struct {
	ClientID   string        `json:"clientId"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Status     string        `json:"status"`
	Value      domain.Amount `json:"value"`
	NextAction string        `json:"nextAction"`
	Onboarded  string        `json:"onboarded"` // YYYY-MM-DD
}

type ClientMeeting struct {
	Date     string `json:"date"`
	Client   string `json:"client"`
	Purpose  string `json:"purpose"`
	Outcome  string `json:"outcome"`
	Duration string `json:"duration"`
}

type Prospect struct {
	Name           string        `json:"name"`
	Source         string        `json:"source"`
	Stage          string        `json:"stage"`
	EstimatedValue domain.Amount `json:"estimatedValue"`
	FollowUp       string        `json:"followUp"`
}

func NewClientOfficer(d Defaults) *ClientOfficer {
	return &ClientOfficer{
		Details:     weeklyDetails(d),
		Summary:     Summary{Highlights: []string{}},
		Portfolio:   []ClientAccount{},
		Meetings:    []ClientMeeting{},
		Prospects:   []Prospect{},
		Issues:      []string{},
		ActionItems: []ActionItem{},
		Files:       []domain.Attachment{},
	}
}

func (r *ClientOfficer) Kind() Kind { return KindClientOfficer }

func (r *ClientOfficer) DefaultTitle() string {
	return fmt.Sprintf("Weekly Client Officer Report - %s - Week Ending %s", r.Details.PreparedBy, r.Details.WeekEnding)
}

func (r *ClientOfficer) Attachments() []domain.Attachment       { return r.Files }
func (r *ClientOfficer) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *ClientOfficer) instance()                            {}

// ClientActivities is the per-client activity report. It is persisted as a
// JSON snapshot so it can be edited again without loss.
type ClientActivities struct {
	ClientID    string              `json:"clientId"`
	ClientName  string              `json:"clientName"`
	PreparedBy  string              `json:"preparedBy"`
	Position    string              `json:"position"`
	Period      domain.TimePeriod   `json:"period"`
	Activities  []ClientActivity    `json:"activities"`
	Feedback    string              `json:"feedback"`
	NextSteps   []string            `json:"nextSteps"`
	Files       []domain.Attachment `json:"attachments"`
	Summary     ActivitySummary     `json:"summary"`
}

type ClientActivity struct {
	Date        string `json:"date"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	StaffID     string `json:"staffId"`
	StaffName   string `json:"staffName"`
	Status      string `json:"status"`
	Rating      int    `json:"rating"` // 1-5, 0 when not rated
}

// ActivitySummary holds the derived totals materialized at save time.
type ActivitySummary struct {
	TotalActivities int     `json:"totalActivities"`
	Completed       int     `json:"completed"`
	TotalHours      float64 `json:"totalHours"`
	AverageRating   float64 `json:"averageRating"`
}

func NewClientActivities(d Defaults) *ClientActivities {
	return &ClientActivities{
		PreparedBy: d.PreparedBy,
		Position:   d.Position,
		Period:     domain.TimePeriod{Start: d.PeriodStart, End: d.WeekEnding},
		Activities: []ClientActivity{},
		NextSteps:  []string{},
		Files:      []domain.Attachment{},
	}
}

func (r *ClientActivities) Kind() Kind { return KindClientActivities }

func (r *ClientActivities) DefaultTitle() string {
	return fmt.Sprintf("Client Activity Report - %s - %s to %s", r.ClientName, r.Period.Start, r.Period.End)
}

func (r *ClientActivities) Attachments() []domain.Attachment       { return r.Files }
func (r *ClientActivities) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *ClientActivities) instance()                            {}

var marketingDefinition = Definition{
	Kind: KindMarketing,
	Name: "Marketing Weekly Report",
	Mode: ModeText,
	Sections: []Section{
		weeklyDetailsSection,
		summarySection,
		{
			Key:        "campaigns",
			Title:      "Campaigns",
			Repeatable: true,
			Fields: []Field{
				{Key: "name", Label: "Campaign", Type: FieldText, Required: true},
				{Key: "channel", Label: "Channel", Type: FieldText},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
				{Key: "budget", Label: "Budget", Type: FieldMoney},
				{Key: "spend", Label: "Spend", Type: FieldMoney},
				{Key: "leads", Label: "Leads", Type: FieldNumber},
			},
		},
		{
			Key:   "leads",
			Title: "Lead Funnel",
			Fields: []Field{
				{Key: "newLeads", Label: "New Leads", Type: FieldNumber},
				{Key: "qualified", Label: "Qualified", Type: FieldNumber},
				{Key: "converted", Label: "Converted", Type: FieldNumber},
			},
		},
		{
			Key:        "social",
			Title:      "Social Media",
			Repeatable: true,
			Fields: []Field{
				{Key: "platform", Label: "Platform", Type: FieldText, Required: true},
				{Key: "followers", Label: "Followers", Type: FieldNumber},
				{Key: "engagement", Label: "Engagement %", Type: FieldNumber},
				{Key: "posts", Label: "Posts", Type: FieldNumber},
			},
		},
		{
			Key:        "events",
			Title:      "Events & Activations",
			Repeatable: true,
			Fields: []Field{
				{Key: "date", Label: "Date", Type: FieldDate},
				{Key: "name", Label: "Event", Type: FieldText, Required: true},
				{Key: "location", Label: "Location", Type: FieldText},
				{Key: "attendance", Label: "Attendance", Type: FieldNumber},
				{Key: "outcome", Label: "Outcome", Type: FieldText},
			},
		},
		outlookSection("Challenges & Next Week Plans", "Next Week Plans"),
	},
}

var clientOfficerDefinition = Definition{
	Kind: KindClientOfficer,
	Name: "Weekly Client Officer Report",
	Mode: ModeText,
	Sections: []Section{
		weeklyDetailsSection,
		summarySection,
		{
			Key:        "portfolio",
			Title:      "Client Portfolio",
			Repeatable: true,
			Fields: []Field{
				{Key: "clientId", Label: "Client ID", Type: FieldText},
				{Key: "name", Label: "Name", Type: FieldText, Required: true},
				{Key: "type", Label: "Type", Type: FieldText},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Active"},
				{Key: "value", Label: "Value", Type: FieldMoney},
				{Key: "nextAction", Label: "Next Action", Type: FieldText},
				{Key: "onboarded", Label: "Onboarded", Type: FieldDate},
			},
		},
		{
			Key:        "meetings",
			Title:      "Client Meetings & Visits",
			Repeatable: true,
			Fields: []Field{
				{Key: "date", Label: "Date", Type: FieldDate, Required: true},
				{Key: "client", Label: "Client", Type: FieldText, Required: true},
				{Key: "purpose", Label: "Purpose", Type: FieldText},
				{Key: "outcome", Label: "Outcome", Type: FieldText},
				{Key: "duration", Label: "Duration", Type: FieldText},
			},
		},
		{
			Key:        "prospects",
			Title:      "Pipeline & Prospects",
			Repeatable: true,
			Fields: []Field{
				{Key: "name", Label: "Prospect", Type: FieldText, Required: true},
				{Key: "source", Label: "Source", Type: FieldText},
				{Key: "stage", Label: "Stage", Type: FieldText},
				{Key: "estimatedValue", Label: "Estimated Value", Type: FieldMoney},
				{Key: "followUp", Label: "Follow-up Date", Type: FieldDate},
			},
		},
		{Key: "issues", Title: "Issues & Escalations", Repeatable: true},
		actionItemsSection,
	},
}

var clientActivitiesDefinition = Definition{
	Kind: KindClientActivities,
	Name: "Client-Specific Activities Report",
	Mode: ModeJSON,
	Sections: []Section{
		{
			Key:   "",
			Title: "Client Details",
			Fields: []Field{
				{Key: "clientId", Label: "Client ID", Type: FieldText},
				{Key: "clientName", Label: "Client", Type: FieldText, Required: true},
				{Key: "preparedBy", Label: "Prepared By", Type: FieldText, Required: true},
				{Key: "position", Label: "Position", Type: FieldText},
			},
		},
		{
			Key:   "period",
			Title: "Reporting Period",
			Fields: []Field{
				{Key: "start", Label: "Start", Type: FieldDate, Required: true},
				{Key: "end", Label: "End", Type: FieldDate, Required: true},
			},
		},
		{
			Key:        "activities",
			Title:      "Activities",
			Repeatable: true,
			Fields: []Field{
				{Key: "date", Label: "Date", Type: FieldDate, Required: true},
				{Key: "activity", Label: "Activity", Type: FieldText, Required: true},
				{Key: "description", Label: "Description", Type: FieldText},
				{Key: "duration", Label: "Duration", Type: FieldText},
				{Key: "staffId", Label: "Staff ID", Type: FieldText},
				{Key: "staffName", Label: "Staff", Type: FieldText},
				{Key: "status", Label: "Status", Type: FieldText},
				{Key: "rating", Label: "Rating", Type: FieldRating},
			},
		},
		{
			Key:   "",
			Title: "Feedback",
			Fields: []Field{
				{Key: "feedback", Label: "Client Feedback", Type: FieldText},
			},
		},
		{Key: "nextSteps", Title: "Next Steps", Repeatable: true},
		{
			Key:     "summary",
			Title:   "Summary",
			Derived: true,
			Fields: []Field{
				{Key: "totalActivities", Label: "Total Activities", Type: FieldNumber},
				{Key: "completed", Label: "Completed", Type: FieldNumber},
				{Key: "totalHours", Label: "Total Hours", Type: FieldNumber},
				{Key: "averageRating", Label: "Average Rating", Type: FieldNumber},
			},
		},
	},
}
