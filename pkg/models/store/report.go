package store

import "time"

// Report is a row of the reports table. Attachments hold the JSON encoded
// attachment list.
type Report struct {
	ID          string
	Title       string
	Content     string
	ReportType  string
	Department  string
	Attachments string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReportFilter struct {
	Department string
	ReportType string
	Limit      int
}
