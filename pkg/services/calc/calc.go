// Package calc computes the derived fields of a report: totals, balances,
// KPI ratings, rating averages and time-unit conversions. Every function is
// pure and leaves its inputs untouched.
package calc

import (
	"math"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// Rating is a RAG classification of an actual value against a target.
type Rating string

const (
	RatingGreen Rating = "Green"
	RatingAmber Rating = "Amber"
	RatingRed   Rating = "Red"
	RatingNA    Rating = "N/A"
)

const (
	amberUpperBand = 1.1 // lower-is-better tolerance
	amberLowerBand = 0.9 // higher-is-better tolerance
)

type CashFlowSummary struct {
	Opening  float64
	Inflows  float64
	Outflows float64
	Closing  float64
}

// Sum adds amounts, treating blank or non-numeric input as zero.
func Sum(amounts ...domain.Amount) float64 {
	total := 0.0
	for _, a := range amounts {
		total += a.Float()
	}
	return total
}

func SumRevenue(r schema.Revenue) float64 {
	return Sum(r.ConsultFee, r.AcademyFee, r.InterestIncome, r.OtherRevenue)
}

func SumExpenses(e schema.Expenses) float64 {
	return Sum(e.Salaries, e.RentUtilities, e.OfficeSupplies, e.TravelTransport, e.OtherExpenses)
}

// CashFlow derives the period balance from the revenue and expense totals.
// Itemized cash movements do not enter the balance.
func CashFlow(opening domain.Amount, revenue schema.Revenue, expenses schema.Expenses) CashFlowSummary {
	return CashFlowFromTotals(opening.Float(), SumRevenue(revenue), SumExpenses(expenses))
}

func CashFlowFromTotals(opening, inflows, outflows float64) CashFlowSummary {
	return CashFlowSummary{
		Opening:  opening,
		Inflows:  inflows,
		Outflows: outflows,
		Closing:  opening + inflows - outflows,
	}
}

// BudgetVariance is the signed difference actual - budgeted.
func BudgetVariance(budgeted, actual domain.Amount) float64 {
	return actual.Float() - budgeted.Float()
}

// KPIPerformancePercent returns actual/target as a percentage rounded to one
// decimal. Blank actuals and zero targets yield 0.
func KPIPerformancePercent(actual, target domain.Amount) float64 {
	if actual.IsBlank() {
		return 0
	}
	t := target.Float()
	if t == 0 {
		return 0
	}
	return Round1(actual.Float() / t * 100)
}

func KPIRating(actual, target domain.Amount, lowerIsBetter bool) Rating {
	if actual.IsBlank() {
		return RatingNA
	}
	a, t := actual.Float(), target.Float()

	if lowerIsBetter {
		switch {
		case a <= t:
			return RatingGreen
		case a <= t*amberUpperBand:
			return RatingAmber
		default:
			return RatingRed
		}
	}

	switch {
	case a >= t:
		return RatingGreen
	case a >= t*amberLowerBand:
		return RatingAmber
	default:
		return RatingRed
	}
}

// AverageRating is the mean of rating(row) across rows, one decimal, 0 when
// rows is empty.
func AverageRating[T any](rows []T, rating func(T) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range rows {
		total += rating(r)
	}
	return Round1(total / float64(len(rows)))
}

// Percent returns part/whole*100 to one decimal, 0 for a zero whole.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round1(part / whole * 100)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
