package schema

import (
	"fmt"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

// ClientEngagement is the weekly client engagement report.
type ClientEngagement struct {
	Details      ReportDetails       `json:"details"`
	Interactions []ClientInteraction `json:"interactions"`
	Onboarding   []NewClient         `json:"onboarding"`
	Complaints   []Complaint         `json:"complaints"`
	Feedback     []ClientFeedback    `json:"feedback"`
	ActionItems  []ActionItem        `json:"actionItems"`
	Files        []domain.Attachment `json:"attachments"`
}

type ClientInteraction struct {
	Date    string `json:"date"`
	Client  string `json:"client"`
	Type    string `json:"type"` // call, visit, email...
	Summary string `json:"summary"`
	Outcome string `json:"outcome"`
	Rating  int    `json:"rating"` // 1-5, 0 when not rated
}

type NewClient struct {
	ClientID       string `json:"clientId"`
	Client         string `json:"client"`
	Date           string `json:"date"`
	Services       string `json:"services"`
	AccountManager string `json:"accountManager"`
}

type Complaint struct {
	Date       string `json:"date"`
	Client     string `json:"client"`
	Complaint  string `json:"complaint"`
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}

type ClientFeedback struct {
	Client  string `json:"client"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func NewClientEngagement(d Defaults) *ClientEngagement {
	return &ClientEngagement{
		Details:      weeklyDetails(d),
		Interactions: []ClientInteraction{},
		Onboarding:   []NewClient{},
		Complaints:   []Complaint{},
		Feedback:     []ClientFeedback{},
		ActionItems:  []ActionItem{},
		Files:        []domain.Attachment{},
	}
}

func (r *ClientEngagement) Kind() Kind { return KindClientEngagement }

func (r *ClientEngagement) DefaultTitle() string {
	return fmt.Sprintf("Client Engagement Report - Week Ending %s", r.Details.WeekEnding)
}

func (r *ClientEngagement) Attachments() []domain.Attachment       { return r.Files }
func (r *ClientEngagement) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *ClientEngagement) instance()                            {}

var clientEngagementDefinition = Definition{
	Kind: KindClientEngagement,
	Name: "Client Engagement Report",
	Mode: ModeText,
	Sections: []Section{
		weeklyDetailsSection,
		{
			Key:        "interactions",
			Title:      "Client Interactions",
			Repeatable: true,
			Fields: []Field{
				{Key: "date", Label: "Date", Type: FieldDate, Required: true},
				{Key: "client", Label: "Client", Type: FieldText, Required: true},
				{Key: "type", Label: "Type", Type: FieldText},
				{Key: "summary", Label: "Summary", Type: FieldText},
				{Key: "outcome", Label: "Outcome", Type: FieldText},
				{Key: "rating", Label: "Rating", Type: FieldRating},
			},
		},
		{
			Key:        "onboarding",
			Title:      "New Clients Onboarded",
			Repeatable: true,
			Fields: []Field{
				{Key: "clientId", Label: "Client ID", Type: FieldText},
				{Key: "client", Label: "Client", Type: FieldText, Required: true},
				{Key: "date", Label: "Date", Type: FieldDate, Required: true},
				{Key: "services", Label: "Services", Type: FieldText},
				{Key: "accountManager", Label: "Account Manager", Type: FieldText},
			},
		},
		{
			Key:        "complaints",
			Title:      "Complaints & Resolutions",
			Repeatable: true,
			Fields: []Field{
				{Key: "date", Label: "Date", Type: FieldDate},
				{Key: "client", Label: "Client", Type: FieldText, Required: true},
				{Key: "complaint", Label: "Complaint", Type: FieldText, Required: true},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Open"},
				{Key: "resolution", Label: "Resolution", Type: FieldText, Default: "Pending"},
			},
		},
		{
			Key:        "feedback",
			Title:      "Client Satisfaction",
			Repeatable: true,
			Fields: []Field{
				{Key: "client", Label: "Client", Type: FieldText, Required: true},
				{Key: "rating", Label: "Rating", Type: FieldRating},
				{Key: "comment", Label: "Comment", Type: FieldText},
			},
		},
		actionItemsSection,
	},
}
