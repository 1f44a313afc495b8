package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	paths := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		paths = append(paths, f.Field)
	}
	return paths
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		build    func() Instance
		expected []string
	}{
		{
			name:  "fresh finance report is valid",
			build: func() Instance { return NewFinance(testDefaults) },
		},
		{
			name: "missing preparer and week",
			build: func() Instance {
				r := NewICTWeekly(testDefaults)
				r.Details.PreparedBy = " "
				r.Details.WeekEnding = ""
				return r
			},
			expected: []string{"details.preparedBy", "details.weekEnding"},
		},
		{
			name: "malformed number and date in rows",
			build: func() Instance {
				r := NewFinance(testDefaults)
				r.Receivables = []Receivable{
					{Client: "Acme", Amount: "100", DueDate: "2025-10-30"},
					{Client: "Globex", Amount: "ten", DueDate: "30/10/2025"},
				}
				return r
			},
			expected: []string{"receivables[1].amount", "receivables[1].dueDate"},
		},
		{
			name: "enum outside options",
			build: func() Instance {
				r := NewInternalAudit(testDefaults)
				r.Findings = []AuditFinding{{Observation: "Cash not banked", Risk: "Critical"}}
				return r
			},
			expected: []string{"findings[0].risk"},
		},
		{
			name: "top level fields of a json report",
			build: func() Instance {
				r := NewClientActivities(testDefaults)
				r.Period.End = "soon"
				return r
			},
			expected: []string{"clientName", "period.end"},
		},
		{
			name: "derived summary is not checked",
			build: func() Instance {
				r := NewClientActivities(testDefaults)
				r.ClientName = "Acme"
				r.Summary.TotalHours = -1
				return r
			},
		},
		{
			name: "negative money",
			build: func() Instance {
				r := NewFinance(testDefaults)
				r.Revenue.ConsultFee = "1234567.891"
				r.Revenue.AcademyFee = "-500"
				r.Expenses.Salaries = "-0.01"
				r.Budget = []BudgetLine{{Category: "Travel", Budgeted: "1000", Actual: "750"}}
				return r
			},
			expected: []string{"revenue.academyFee", "expenses.salaries"},
		},
		{
			name: "cash movement rows",
			build: func() Instance {
				r := NewFinance(testDefaults)
				r.CashFlow.Movements = []CashMovement{
					{Date: "not-a-date", Description: "Deposit", Direction: "Sideways", Amount: "abc"},
					{Date: "2025-10-07", Direction: "Inflow", Amount: "-5"},
					{Date: "2025-10-08", Description: "Rent", Direction: "Outflow", Amount: "300"},
				}
				return r
			},
			expected: []string{
				"cashFlow.movements[0].date",
				"cashFlow.movements[0].direction",
				"cashFlow.movements[0].amount",
				"cashFlow.movements[1].description",
				"cashFlow.movements[1].amount",
			},
		},
		{
			name: "security incident rows",
			build: func() Instance {
				r := NewICTMonthly(testDefaults)
				r.Security.Incidents = []SecurityIncident{{Date: "2025-10-01", Severity: "Extreme"}}
				return r
			},
			expected: []string{"security.incidents[0].description", "security.incidents[0].severity"},
		},
		{
			name: "ratings outside one to five",
			build: func() Instance {
				r := NewClientEngagement(testDefaults)
				r.Interactions = []ClientInteraction{
					{Date: "2025-10-07", Client: "Acme", Rating: 0},
					{Date: "2025-10-07", Client: "Globex", Rating: -1},
					{Date: "2025-10-08", Client: "Initech", Rating: 5},
				}
				r.Feedback = []ClientFeedback{{Client: "Acme", Rating: 42}, {Client: "Globex", Rating: 1}}
				return r
			},
			expected: []string{"interactions[1].rating", "feedback[0].rating"},
		},
		{
			name: "activity rating",
			build: func() Instance {
				r := NewClientActivities(testDefaults)
				r.ClientName = "Acme"
				r.Activities = []ClientActivity{{Date: "2025-10-07", Activity: "Visit", Rating: 6}}
				return r
			},
			expected: []string{"activities[0].rating"},
		},
		{
			name:     "generic needs title and content",
			build:    func() Instance { return NewGeneric(testDefaults) },
			expected: []string{"title", "content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.build())
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expected, fieldPaths(t, err))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(NewGeneric(testDefaults))
	assert.EqualError(t, err, "invalid generic report: title: Title is required; content: Content is required")
}

func TestValidate_FieldMessages(t *testing.T) {
	r := NewFinance(testDefaults)
	r.Revenue.AcademyFee = "-500"

	var verr *ValidationError
	require.ErrorAs(t, Validate(r), &verr)
	assert.Equal(t, []FieldError{{Field: "revenue.academyFee", Message: "Academy Fees must not be negative"}}, verr.Fields)

	ce := NewClientEngagement(testDefaults)
	ce.Feedback = []ClientFeedback{{Client: "a", Rating: 42}}
	require.ErrorAs(t, Validate(ce), &verr)
	assert.Equal(t, []FieldError{{Field: "feedback[0].rating", Message: "Rating must be a whole number from 1 to 5"}}, verr.Fields)
}

func TestDefinition_FieldDefault(t *testing.T) {
	finance, ok := DefinitionFor(KindFinance)
	require.True(t, ok)
	assert.Equal(t, "Pending", finance.FieldDefault("receivables.status"))
	assert.Equal(t, "Medium", finance.FieldDefault("actionItems.priority"))
	assert.Equal(t, "", finance.FieldDefault("cashFlow.movements.direction"))
	assert.Equal(t, "", finance.FieldDefault("receivables.missing"))
	assert.Equal(t, "", finance.FieldDefault("nowhere"))

	audit, ok := DefinitionFor(KindAudit)
	require.True(t, ok)
	assert.Equal(t, "Pending", audit.FieldDefault("findings.managementResponse"))
}
