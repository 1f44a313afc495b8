// Package authoring runs report editing sessions: it creates or rebuilds a
// report instance, collects attachments and submits the serialized result
// to a report store.
package authoring

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/router"
	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/rs/zerolog"
)

// Store persists submitted reports. Exactly one of CreateReport and
// UpdateReport is called per submission.
type Store interface {
	CreateReport(ctx context.Context, draft domain.ReportDraft) (domain.Report, error)
	UpdateReport(ctx context.Context, id string, draft domain.ReportDraft) (domain.Report, error)
	GetReport(ctx context.Context, id string) (domain.Report, error)
}

// File is a file selected for upload. Body is streamed to the uploader
// untouched.
type File struct {
	Name     string
	Mimetype string
	Size     int64
	Body     io.Reader
}

type Uploader interface {
	Upload(ctx context.Context, file File) (domain.Attachment, error)
}

type Serializer interface {
	Serialize(inst schema.Instance) (string, error)
}

// UploadError reports a failed upload. The session state is unchanged when
// it is returned.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

var ErrSessionClosed = errors.New("authoring session is closed")

type Service struct {
	router     *router.Router
	serializer Serializer
	store      Store
	uploader   Uploader
	now        func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used for week and month defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(r *router.Router, serializer Serializer, store Store, uploader Uploader, opts ...Option) (*Service, error) {
	switch {
	case r == nil:
		return nil, fmt.Errorf("router is nil")
	case serializer == nil:
		return nil, fmt.Errorf("serializer is nil")
	case store == nil:
		return nil, fmt.Errorf("report store is nil")
	case uploader == nil:
		return nil, fmt.Errorf("uploader is nil")
	}

	s := &Service{
		router:     r,
		serializer: serializer,
		store:      store,
		uploader:   uploader,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Begin starts a session for a new report.
func (s *Service) Begin(ctx context.Context, department, hint string, user domain.User) (*Session, error) {
	tmpl, err := s.router.Resolve(department, hint, "")
	if err != nil {
		return nil, err
	}
	defaults := router.DefaultsFor(user, department, s.now())

	zerolog.Ctx(ctx).Debug().
		Str("department", defaults.Department).
		Str("kind", string(tmpl.Kind)).
		Msg("starting new report")

	return &Session{
		svc:        s,
		template:   tmpl,
		department: defaults.Department,
		instance:   tmpl.New(defaults),
	}, nil
}

// Edit loads a stored report and starts a session that updates it. A report
// that can only be partially rebuilt still yields a session; the loss is
// available from Session.Reconstruction.
func (s *Service) Edit(ctx context.Context, id, department string, user domain.User) (*Session, error) {
	report, err := s.store.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}

	tmpl, err := s.router.ForReport(department, report)
	if err != nil {
		return nil, err
	}
	if department == "" {
		department = report.Department
	}
	defaults := router.DefaultsFor(user, department, s.now())

	logger := zerolog.Ctx(ctx).With().Str("report_id", id).Str("kind", string(tmpl.Kind)).Logger()

	inst, rerr := tmpl.Reconstruct(report, defaults)
	if rerr != nil {
		logger.Warn().Err(rerr).Msg("report reconstructed with defaults")
	}

	return &Session{
		svc:            s,
		template:       tmpl,
		department:     defaults.Department,
		reportID:       report.ID,
		instance:       inst,
		reconstruction: rerr,
	}, nil
}
