package calc

import (
	"testing"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/stretchr/testify/assert"
)

func TestSumRevenue_BlankFieldsCountAsZero(t *testing.T) {
	r := schema.Revenue{
		ConsultFee:     "100",
		AcademyFee:     "",
		InterestIncome: "50",
		OtherRevenue:   "0",
	}
	assert.Equal(t, 150.0, SumRevenue(r))
}

func TestSumRevenue_NonNumericCountsAsZero(t *testing.T) {
	r := schema.Revenue{ConsultFee: "1,000.50", AcademyFee: "abc", OtherRevenue: "NaN"}
	assert.Equal(t, 1000.5, SumRevenue(r))
}

func TestSumExpenses(t *testing.T) {
	e := schema.Expenses{
		Salaries:        "1200",
		RentUtilities:   "300.25",
		OfficeSupplies:  "",
		TravelTransport: "49.75",
		OtherExpenses:   "x",
	}
	assert.Equal(t, 1550.0, SumExpenses(e))
}

func TestCashFlow(t *testing.T) {
	t.Run("from totals", func(t *testing.T) {
		got := CashFlowFromTotals(1000, 500, 200)
		assert.Equal(t, CashFlowSummary{Opening: 1000, Inflows: 500, Outflows: 200, Closing: 1300}, got)
	})

	t.Run("movements are not part of the balance", func(t *testing.T) {
		got := CashFlow("1000", schema.Revenue{ConsultFee: "500"}, schema.Expenses{Salaries: "200"})
		assert.Equal(t, 1300.0, got.Closing)
	})

	t.Run("blank opening", func(t *testing.T) {
		got := CashFlow("", schema.Revenue{}, schema.Expenses{Salaries: "75"})
		assert.Equal(t, -75.0, got.Closing)
	})
}

func TestKPIRating(t *testing.T) {
	tests := []struct {
		name          string
		actual        domain.Amount
		target        domain.Amount
		lowerIsBetter bool
		expected      Rating
	}{
		{"above target", "96", "95", false, RatingGreen},
		{"within ten percent", "90", "95", false, RatingAmber},
		{"well below target", "80", "95", false, RatingRed},
		{"blank actual", "", "95", false, RatingNA},
		{"exactly on target", "95", "95", false, RatingGreen},
		{"lower is better, under target", "4", "5", true, RatingGreen},
		{"lower is better, within band", "5.5", "5", true, RatingAmber},
		{"lower is better, over band", "6", "5", true, RatingRed},
		{"lower is better, blank actual", " ", "5", true, RatingNA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KPIRating(tt.actual, tt.target, tt.lowerIsBetter))
		})
	}
}

func TestKPIPerformancePercent(t *testing.T) {
	assert.Equal(t, 101.1, KPIPerformancePercent("96", "95"))
	assert.Equal(t, 50.0, KPIPerformancePercent("1", "2"))
	assert.Equal(t, 0.0, KPIPerformancePercent("", "95"))
	assert.Equal(t, 0.0, KPIPerformancePercent("10", "0"))
	assert.Equal(t, 0.0, KPIPerformancePercent("10", ""))
}

func TestAverageRating(t *testing.T) {
	rating := func(r schema.ClientFeedback) float64 { return float64(r.Rating) }

	assert.Equal(t, 4.0, AverageRating([]schema.ClientFeedback{{Rating: 5}, {Rating: 3}, {Rating: 4}}, rating))
	assert.Equal(t, 3.7, AverageRating([]schema.ClientFeedback{{Rating: 5}, {Rating: 2}, {Rating: 4}}, rating))
	assert.Equal(t, 0.0, AverageRating([]schema.ClientFeedback{}, rating))
	assert.Equal(t, 0.0, AverageRating[schema.ClientFeedback](nil, rating))
}

func TestBudgetVariance(t *testing.T) {
	assert.Equal(t, -250.0, BudgetVariance("1000", "750"))
	assert.Equal(t, 100.0, BudgetVariance("", "100"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 0.0, Percent(5, 0))
}
