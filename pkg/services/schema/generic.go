package schema

import "github.com/de-tools/dept-reports/pkg/models/domain"

// Generic is the fallback report: a title, free text and attachments.
type Generic struct {
	Title   string              `json:"title"`
	Content string              `json:"content"`
	Files   []domain.Attachment `json:"attachments"`
}

func NewGeneric(d Defaults) *Generic {
	return &Generic{Files: []domain.Attachment{}}
}

func (r *Generic) Kind() Kind { return KindGeneric }

func (r *Generic) DefaultTitle() string { return r.Title }

func (r *Generic) Attachments() []domain.Attachment       { return r.Files }
func (r *Generic) SetAttachments(a []domain.Attachment) { r.Files = a }
func (r *Generic) instance()                            {}

var genericDefinition = Definition{
	Kind: KindGeneric,
	Name: "General Report",
	Mode: ModeText,
	Sections: []Section{
		{
			Key:   "",
			Title: "Report",
			Fields: []Field{
				{Key: "title", Label: "Title", Type: FieldText, Required: true},
				{Key: "content", Label: "Content", Type: FieldText, Required: true},
			},
		},
	},
}
