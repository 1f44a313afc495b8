package authoring

import (
	"context"
	"fmt"
	"slices"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/router"
	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/rs/zerolog"
)

// Session owns one report instance. It is not safe for concurrent use.
type Session struct {
	svc            *Service
	template       router.Template
	department     string
	reportID       string
	title          string
	instance       schema.Instance
	reconstruction error
}

func (s *Session) Kind() schema.Kind { return s.template.Kind }

func (s *Session) Definition() schema.Definition { return s.template.Definition }

// ReportID is empty for a report that has not been stored yet.
func (s *Session) ReportID() string { return s.reportID }

// Instance returns the instance being edited, or nil once the session is
// closed. Callers edit it in place.
func (s *Session) Instance() schema.Instance { return s.instance }

// Reconstruction returns what was lost rebuilding a stored report, if anything.
func (s *Session) Reconstruction() error { return s.reconstruction }

// SetTitle overrides the generated title. An empty title restores it.
func (s *Session) SetTitle(title string) { s.title = title }

func (s *Session) Title() string {
	if s.title != "" {
		return s.title
	}
	if s.instance == nil {
		return ""
	}
	return s.instance.DefaultTitle()
}

// Attach uploads f and appends the returned reference to the instance.
func (s *Session) Attach(ctx context.Context, f File) (domain.Attachment, error) {
	if s.instance == nil {
		return domain.Attachment{}, ErrSessionClosed
	}

	att, err := s.svc.uploader.Upload(ctx, f)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("file", f.Name).Msg("upload failed")
		return domain.Attachment{}, &UploadError{Filename: f.Name, Err: err}
	}

	s.instance.SetAttachments(schema.AddRow(s.instance.Attachments(), att))
	return att, nil
}

func (s *Session) RemoveAttachment(i int) error {
	if s.instance == nil {
		return ErrSessionClosed
	}
	rows, err := schema.RemoveRow(s.instance.Attachments(), i)
	if err != nil {
		return fmt.Errorf("failed to remove attachment: %w", err)
	}
	s.instance.SetAttachments(rows)
	return nil
}

// Submit validates and serializes the instance, then creates or updates the
// stored report. On any failure the instance is kept so the caller can fix it
// and submit again; on success the session is closed.
func (s *Session) Submit(ctx context.Context) (domain.Report, error) {
	if s.instance == nil {
		return domain.Report{}, ErrSessionClosed
	}
	logger := zerolog.Ctx(ctx).With().Str("kind", string(s.template.Kind)).Logger()

	if err := schema.Validate(s.instance); err != nil {
		return domain.Report{}, err
	}

	content, err := s.svc.serializer.Serialize(s.instance)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to serialize report: %w", err)
	}

	draft := domain.ReportDraft{
		Title:       s.Title(),
		Content:     content,
		ReportType:  string(s.template.Kind),
		Department:  s.department,
		Attachments: slices.Clone(s.instance.Attachments()),
	}

	var report domain.Report
	if s.reportID != "" {
		report, err = s.svc.store.UpdateReport(ctx, s.reportID, draft)
	} else {
		report, err = s.svc.store.CreateReport(ctx, draft)
	}
	if err != nil {
		logger.Error().Err(err).Str("report_id", s.reportID).Msg("failed to save report")
		return domain.Report{}, err
	}

	logger.Info().Str("report_id", report.ID).Msg("report saved")
	s.reportID = report.ID
	s.instance = nil
	return report, nil
}

// Discard drops the instance without saving.
func (s *Session) Discard() {
	s.instance = nil
}
