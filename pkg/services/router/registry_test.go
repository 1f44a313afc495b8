package router

import (
	"errors"
	"testing"
	"time"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/de-tools/dept-reports/pkg/services/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() schema.Defaults {
	user := domain.User{ID: "u-1", Name: "Jane Doe", Position: "Officer", Department: "Marketing"}
	return DefaultsFor(user, "", time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC))
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := New(DefaultRegistry())
	require.NoError(t, err)
	return r
}

func TestDefaultsFor(t *testing.T) {
	d := testDefaults()

	assert.Equal(t, schema.Defaults{
		Department:  "Marketing",
		PreparedBy:  "Jane Doe",
		Position:    "Officer",
		WeekEnding:  "2025-10-12",
		PeriodStart: "2025-10-06",
		Month:       "October 2025",
		Today:       "2025-10-15",
	}, d)
}

func TestRegistry(t *testing.T) {
	t.Run("default registry holds every kind", func(t *testing.T) {
		reg := DefaultRegistry()
		assert.ElementsMatch(t, schema.Kinds(), reg.Kinds())
	})

	t.Run("rejects duplicates and empty input", func(t *testing.T) {
		reg := NewRegistry()
		tmpl := Template{Kind: schema.KindFinance, New: func(d schema.Defaults) schema.Instance { return schema.NewFinance(d) }}

		require.NoError(t, reg.Register(tmpl))
		assert.Error(t, reg.Register(tmpl))
		assert.Error(t, reg.Register(Template{Kind: schema.KindGeneric}))
		assert.Error(t, reg.Register(Template{New: tmpl.New}))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewRegistry().Lookup(schema.KindAudit)
		assert.EqualError(t, err, `report kind "audit" is not registered`)
	})

	t.Run("nil registry", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})
}

func TestRouter_Resolve(t *testing.T) {
	r := newTestRouter(t)

	tmpl, err := r.Resolve("Finance", "", "")
	require.NoError(t, err)
	assert.Equal(t, schema.KindFinance, tmpl.Kind)
	assert.Len(t, tmpl.Definition.Sections, 11)

	inst := tmpl.New(testDefaults())
	assert.IsType(t, &schema.Finance{}, inst)
}

func TestRouter_ForReport(t *testing.T) {
	r := newTestRouter(t)

	t.Run("stored type wins over title", func(t *testing.T) {
		tmpl, err := r.ForReport("ICT", domain.Report{Title: "ICT Monthly Report - March", ReportType: "ict-weekly"})
		require.NoError(t, err)
		assert.Equal(t, schema.KindICTWeekly, tmpl.Kind)
	})

	t.Run("legacy record uses title", func(t *testing.T) {
		tmpl, err := r.ForReport("ICT", domain.Report{Title: "ICT Monthly Report - March"})
		require.NoError(t, err)
		assert.Equal(t, schema.KindICTMonthly, tmpl.Kind)
	})

	t.Run("unknown stored type falls back", func(t *testing.T) {
		tmpl, err := r.ForReport("", domain.Report{Department: "Finance", ReportType: "legacy-thing"})
		require.NoError(t, err)
		assert.Equal(t, schema.KindFinance, tmpl.Kind)
	})
}

func TestReconstruct_ClientActivities(t *testing.T) {
	r := newTestRouter(t)
	tmpl, err := r.Resolve("Marketing", "client-specific-activities", "")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		s, err := serializer.New(serializer.DefaultSettings())
		require.NoError(t, err)

		orig := schema.NewClientActivities(testDefaults())
		orig.ClientName = "Acme"
		orig.Activities = []schema.ClientActivity{{Date: "2025-10-07", Activity: "Visit", Duration: "2 hours", Status: "Completed", Rating: 5}}
		content, err := s.Serialize(orig)
		require.NoError(t, err)

		inst, err := tmpl.Reconstruct(domain.Report{Title: orig.DefaultTitle(), Content: content}, testDefaults())
		require.NoError(t, err)
		assert.Equal(t, serializer.MaterializeActivities(orig), inst)
	})

	t.Run("unparseable content salvages the title", func(t *testing.T) {
		attachments := []domain.Attachment{{URL: "https://files/a.pdf", Filename: "a.pdf"}}
		report := domain.Report{
			Title:       "Client Activity Report - Acme Ltd - 2025-09-01 to 2025-09-07",
			Content:     "not json",
			Attachments: attachments,
		}

		inst, err := tmpl.Reconstruct(report, testDefaults())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPartialReconstruction))

		got, ok := inst.(*schema.ClientActivities)
		require.True(t, ok)
		assert.Equal(t, "Acme Ltd", got.ClientName)
		assert.Equal(t, domain.TimePeriod{Start: "2025-09-01", End: "2025-09-07"}, got.Period)
		assert.Equal(t, "Jane Doe", got.PreparedBy)
		assert.Equal(t, attachments, got.Attachments())
	})

	t.Run("unrecognized title keeps defaults", func(t *testing.T) {
		inst, err := tmpl.Reconstruct(domain.Report{Title: "something else", Content: "{"}, testDefaults())
		require.ErrorIs(t, err, ErrPartialReconstruction)

		got := inst.(*schema.ClientActivities)
		assert.Equal(t, "", got.ClientName)
		assert.Equal(t, domain.TimePeriod{Start: "2025-10-06", End: "2025-10-12"}, got.Period)
	})
}

func TestReconstruct_TextModes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("weekly period from title", func(t *testing.T) {
		tmpl, err := r.Resolve("Finance", "", "")
		require.NoError(t, err)

		inst, err := tmpl.Reconstruct(domain.Report{Title: "Finance Weekly Report - Week Ending 2025-09-28", Content: "FINANCE..."}, testDefaults())
		require.ErrorIs(t, err, ErrPartialReconstruction)
		assert.Equal(t, "2025-09-28", inst.(*schema.Finance).Details.WeekEnding)
	})

	t.Run("monthly period from title", func(t *testing.T) {
		tmpl, err := r.Resolve("ICT", "monthly", "")
		require.NoError(t, err)

		inst, err := tmpl.Reconstruct(domain.Report{Title: "ICT Monthly Report - March"}, testDefaults())
		require.NoError(t, err)
		assert.Equal(t, "March", inst.(*schema.ICTMonthly).Details.Month)
	})

	t.Run("generic copies verbatim", func(t *testing.T) {
		tmpl, err := r.Resolve("Legal", "", "")
		require.NoError(t, err)

		inst, err := tmpl.Reconstruct(domain.Report{Title: "Memo", Content: "  body\n"}, testDefaults())
		require.NoError(t, err)
		assert.Equal(t, &schema.Generic{Title: "Memo", Content: "  body\n", Files: nil}, inst)
	})
}
