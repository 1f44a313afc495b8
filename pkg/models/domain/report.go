package domain

import "time"

// Report is a persisted report record.
type Report struct {
	ID          string
	Title       string
	Content     string
	ReportType  string // empty for legacy records
	Department  string
	Attachments []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportDraft is the payload handed to the report store on submission.
type ReportDraft struct {
	Title       string
	Content     string
	ReportType  string
	Department  string
	Attachments []Attachment
}

// Attachment is a reference produced by the upload service. File bytes are
// never interpreted here.
type Attachment struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
}

// TimePeriod represents an inclusive date range for a report
type TimePeriod struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
}
