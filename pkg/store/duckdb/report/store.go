package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/dept-reports/pkg/adapters"
	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/models/store"
	"github.com/de-tools/dept-reports/pkg/store/duckdb"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("report not found")

// Store persists submitted reports in DuckDB. Identity is assigned here.
type Store interface {
	CreateReport(ctx context.Context, draft domain.ReportDraft) (domain.Report, error)
	UpdateReport(ctx context.Context, id string, draft domain.ReportDraft) (domain.Report, error)
	GetReport(ctx context.Context, id string) (domain.Report, error)
	ListReports(ctx context.Context, filter store.ReportFilter) ([]domain.Report, error)
}

type reportStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{
		db:  db,
		now: time.Now,
	}, nil
}

const selectReport = `
	SELECT id, title, content, report_type, department, attachments, created_at, updated_at
	FROM reports
`

func (s *reportStore) CreateReport(ctx context.Context, draft domain.ReportDraft) (domain.Report, error) {
	now := s.timestamp()
	row, err := adapters.MapReportDraftToStore(uuid.NewString(), draft, now, now)
	if err != nil {
		return domain.Report{}, err
	}

	_, err = duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO reports (id, title, content, report_type, department, attachments, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Title, row.Content, row.ReportType, row.Department, row.Attachments, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return domain.Report{}, fmt.Errorf("insert report: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("report_id", row.ID).Msg("report created")
	return adapters.MapReportStoreToDomain(row)
}

func (s *reportStore) UpdateReport(ctx context.Context, id string, draft domain.ReportDraft) (domain.Report, error) {
	var updated domain.Report
	err := duckdb.InTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.GetReport(ctx, id)
		if err != nil {
			return err
		}

		row, err := adapters.MapReportDraftToStore(id, draft, existing.CreatedAt, s.timestamp())
		if err != nil {
			return err
		}

		_, err = duckdb.Conn(ctx, s.db).ExecContext(ctx, `
			UPDATE reports
			SET title = ?, content = ?, report_type = ?, department = ?, attachments = ?, updated_at = ?
			WHERE id = ?`,
			row.Title, row.Content, row.ReportType, row.Department, row.Attachments, row.UpdatedAt, id,
		)
		if err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		updated, err = adapters.MapReportStoreToDomain(row)
		return err
	})
	if err != nil {
		return domain.Report{}, err
	}
	return updated, nil
}

func (s *reportStore) GetReport(ctx context.Context, id string) (domain.Report, error) {
	row := duckdb.Conn(ctx, s.db).QueryRowContext(ctx, selectReport+` WHERE id = ?`, id)

	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return domain.Report{}, fmt.Errorf("query report: %w", err)
	}
	return adapters.MapReportStoreToDomain(r)
}

func (s *reportStore) ListReports(ctx context.Context, filter store.ReportFilter) ([]domain.Report, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Department != "" {
		conditions = append(conditions, "lower(department) = lower(?)")
		args = append(args, filter.Department)
	}
	if filter.ReportType != "" {
		conditions = append(conditions, "report_type = ?")
		args = append(args, filter.ReportType)
	}

	query := selectReport
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		report, err := adapters.MapReportStoreToDomain(r)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

// timestamp is truncated to the column precision so returned values match
// what a later read yields.
func (s *reportStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (store.Report, error) {
	var r store.Report
	err := sc.Scan(&r.ID, &r.Title, &r.Content, &r.ReportType, &r.Department, &r.Attachments, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}
