package schema

import (
	"fmt"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

var riskOptions = []string{"High", "Medium", "Low"}

// InternalAudit is the monthly internal audit report.
type InternalAudit struct {
	Details     ReportDetails       `json:"details"`
	Summary     Summary             `json:"executiveSummary"`
	Engagements []AuditEngagement   `json:"engagements"`
	Findings    []AuditFinding      `json:"findings"`
	FollowUps   []FollowUp          `json:"followUps"`
	Compliance  []ComplianceItem    `json:"compliance"`
	Outlook     Outlook             `json:"outlook"`
	Files       []domain.Attachment `json:"attachments"`
}

type AuditEngagement struct {
	Area      string `json:"area"`
	Objective string `json:"objective"`
	Auditor   string `json:"auditor"`
	Status    string `json:"status"`
}

type AuditFinding struct {
	Ref                string `json:"ref"`
	Area               string `json:"area"`
	Observation        string `json:"observation"`
	Risk               string `json:"risk"`
	Recommendation     string `json:"recommendation"`
	ManagementResponse string `json:"managementResponse"`
	Owner              string `json:"owner"`
	DueDate            string `json:"dueDate"`
	Status             string `json:"status"`
}

type FollowUp struct {
	Ref     string `json:"ref"`
	Finding string `json:"finding"`
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

func NewInternalAudit(d Defaults) *InternalAudit {
	return &InternalAudit{
		Details:     monthlyDetails(d),
		Summary:     Summary{Highlights: []string{}},
		Engagements: []AuditEngagement{},
		Findings:    []AuditFinding{},
		FollowUps:   []FollowUp{},
		Compliance:  []ComplianceItem{},
		Outlook:     Outlook{Challenges: []string{}, Plans: []string{}},
		Files:       []domain.Attachment{},
	}
}

func (r *InternalAudit) Kind() Kind { return KindAudit }

func (r *InternalAudit) DefaultTitle() string {
	return fmt.Sprintf("Internal Audit Report - %s", r.Details.Month)
}

func (r *InternalAudit) Attachments() []domain.Attachment       { return r.Files }
func (r *InternalAudit) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *InternalAudit) instance()                            {}

var internalAuditDefinition = Definition{
	Kind: KindAudit,
	Name: "Internal Audit Report",
	Mode: ModeText,
	Sections: []Section{
		monthlyDetailsSection,
		summarySection,
		{
			Key:        "engagements",
			Title:      "Audit Engagements",
			Repeatable: true,
			Fields: []Field{
				{Key: "area", Label: "Area", Type: FieldText, Required: true},
				{Key: "objective", Label: "Objective", Type: FieldText},
				{Key: "auditor", Label: "Auditor", Type: FieldText},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Planned"},
			},
		},
		{
			Key:        "findings",
			Title:      "Key Findings",
			Repeatable: true,
			Fields: []Field{
				{Key: "ref", Label: "Ref", Type: FieldText},
				{Key: "area", Label: "Area", Type: FieldText},
				{Key: "observation", Label: "Observation", Type: FieldText, Required: true},
				{Key: "risk", Label: "Risk", Type: FieldEnum, Options: riskOptions, Default: "Medium"},
				{Key: "recommendation", Label: "Recommendation", Type: FieldText},
				{Key: "managementResponse", Label: "Management Response", Type: FieldText, Default: "Pending"},
				{Key: "owner", Label: "Owner", Type: FieldText},
				{Key: "dueDate", Label: "Due Date", Type: FieldDate},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Open"},
			},
		},
		{
			Key:        "followUps",
			Title:      "Follow-up on Prior Findings",
			Repeatable: true,
			Fields: []Field{
				{Key: "ref", Label: "Ref", Type: FieldText},
				{Key: "finding", Label: "Finding", Type: FieldText, Required: true},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Open"},
				{Key: "remarks", Label: "Remarks", Type: FieldText},
			},
		},
		complianceSection,
		outlookSection("Challenges & Next Period Plans", "Next Period Plans"),
	},
}
