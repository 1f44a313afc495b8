package serializer

import (
	"strings"

	"github.com/de-tools/dept-reports/pkg/services/calc"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// Views pair an instance with the derived values its template prints. They
// are rebuilt on every call and never stored.

type financeView struct {
	*schema.Finance
	Period           string
	RevenueTotal     float64
	ExpenseTotal     float64
	NetResult        float64
	Cash             calc.CashFlowSummary
	ReceivablesTotal float64
	PayablesTotal    float64
	Budget           []budgetRow
}

type budgetRow struct {
	schema.BudgetLine
	Variance float64
}

func newFinanceView(r *schema.Finance) financeView {
	v := financeView{
		Finance:      r,
		Period:       calc.PeriodLabel(r.Details.WeekEnding),
		RevenueTotal: calc.SumRevenue(r.Revenue),
		ExpenseTotal: calc.SumExpenses(r.Expenses),
		Cash:         calc.CashFlow(r.CashFlow.OpeningBalance, r.Revenue, r.Expenses),
		Budget:       make([]budgetRow, 0, len(r.Budget)),
	}
	v.NetResult = v.RevenueTotal - v.ExpenseTotal
	for _, rec := range r.Receivables {
		v.ReceivablesTotal += rec.Amount.Float()
	}
	for _, p := range r.Payables {
		v.PayablesTotal += p.Amount.Float()
	}
	for _, line := range r.Budget {
		v.Budget = append(v.Budget, budgetRow{BudgetLine: line, Variance: calc.BudgetVariance(line.Budgeted, line.Actual)})
	}
	return v
}

type kpiRow struct {
	schema.KPI
	Performance float64
	Rating      calc.Rating
}

func kpiRows(kpis []schema.KPI) []kpiRow {
	rows := make([]kpiRow, 0, len(kpis))
	for _, k := range kpis {
		rows = append(rows, kpiRow{
			KPI:         k,
			Performance: calc.KPIPerformancePercent(k.Actual, k.Target),
			Rating:      calc.KPIRating(k.Actual, k.Target, k.LowerIsBetter),
		})
	}
	return rows
}

type ictMonthlyView struct {
	*schema.ICTMonthly
	KPIRows          []kpiRow
	ResolutionRate   float64
	ResolutionHours  float64
	ProcurementTotal float64
}

func newICTMonthlyView(r *schema.ICTMonthly) ictMonthlyView {
	v := ictMonthlyView{
		ICTMonthly:      r,
		KPIRows:         kpiRows(r.KPIs),
		ResolutionRate:  calc.Percent(r.Support.TicketsResolved.Float(), r.Support.TicketsReceived.Float()),
		ResolutionHours: calc.DurationToHours(r.Support.AverageResolution),
	}
	for _, p := range r.Procurement {
		v.ProcurementTotal += p.Cost.Float()
	}
	return v
}

type ictWeeklyView struct {
	*schema.ICTWeekly
	Period     string
	TotalHours float64
	Resolved   int
	Open       int
}

func newICTWeeklyView(r *schema.ICTWeekly) ictWeeklyView {
	v := ictWeeklyView{
		ICTWeekly:  r,
		Period:     calc.PeriodLabel(r.Details.WeekEnding),
		TotalHours: calc.TotalHours(r.SupportLog, func(a schema.SupportActivity) string { return a.TimeSpent }),
	}
	for _, a := range r.SupportLog {
		if isClosed(a.Status) {
			v.Resolved++
		} else {
			v.Open++
		}
	}
	return v
}

type marketingView struct {
	*schema.Marketing
	Period         string
	TotalBudget    float64
	TotalSpend     float64
	CampaignLeads  float64
	ConversionRate float64
}

func newMarketingView(r *schema.Marketing) marketingView {
	v := marketingView{
		Marketing:      r,
		Period:         calc.PeriodLabel(r.Details.WeekEnding),
		ConversionRate: calc.Percent(r.Leads.Converted.Float(), r.Leads.NewLeads.Float()),
	}
	for _, c := range r.Campaigns {
		v.TotalBudget += c.Budget.Float()
		v.TotalSpend += c.Spend.Float()
		v.CampaignLeads += c.Leads.Float()
	}
	return v
}

type clientOfficerView struct {
	*schema.ClientOfficer
	Period         string
	PortfolioValue float64
	PipelineValue  float64
	NewClients     []schema.ClientAccount
	MeetingHours   float64
}

func newClientOfficerView(r *schema.ClientOfficer) clientOfficerView {
	v := clientOfficerView{
		ClientOfficer: r,
		Period:        calc.PeriodLabel(r.Details.WeekEnding),
		NewClients: calc.DateRangeFilter(r.Portfolio, func(c schema.ClientAccount) string { return c.Onboarded },
			calc.WeekStart(r.Details.WeekEnding), r.Details.WeekEnding),
		MeetingHours: calc.TotalHours(r.Meetings, func(m schema.ClientMeeting) string { return m.Duration }),
	}
	for _, c := range r.Portfolio {
		v.PortfolioValue += c.Value.Float()
	}
	for _, p := range r.Prospects {
		v.PipelineValue += p.EstimatedValue.Float()
	}
	return v
}

type internalAuditView struct {
	*schema.InternalAudit
	HighRisk   int
	MediumRisk int
	LowRisk    int
	OpenItems  int
}

func newInternalAuditView(r *schema.InternalAudit) internalAuditView {
	v := internalAuditView{InternalAudit: r}
	for _, f := range r.Findings {
		switch f.Risk {
		case "High":
			v.HighRisk++
		case "Medium":
			v.MediumRisk++
		case "Low":
			v.LowRisk++
		}
		if !isClosed(f.Status) {
			v.OpenItems++
		}
	}
	return v
}

type clientEngagementView struct {
	*schema.ClientEngagement
	Period             string
	InteractionRating  float64
	SatisfactionRating float64
	NewThisPeriod      int
	OpenComplaints     int
}

func newClientEngagementView(r *schema.ClientEngagement) clientEngagementView {
	v := clientEngagementView{
		ClientEngagement: r,
		Period:           calc.PeriodLabel(r.Details.WeekEnding),
		InteractionRating: calc.AverageRating(ratedInteractions(r.Interactions),
			func(i schema.ClientInteraction) float64 { return float64(i.Rating) }),
		SatisfactionRating: calc.AverageRating(r.Feedback,
			func(f schema.ClientFeedback) float64 { return float64(f.Rating) }),
		NewThisPeriod: len(calc.DateRangeFilter(r.Onboarding, func(c schema.NewClient) string { return c.Date },
			calc.WeekStart(r.Details.WeekEnding), r.Details.WeekEnding)),
	}
	for _, c := range r.Complaints {
		if !isClosed(c.Status) {
			v.OpenComplaints++
		}
	}
	return v
}

func ratedInteractions(rows []schema.ClientInteraction) []schema.ClientInteraction {
	out := make([]schema.ClientInteraction, 0, len(rows))
	for _, r := range rows {
		if r.Rating > 0 {
			out = append(out, r)
		}
	}
	return out
}

func isClosed(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "resolved", "closed", "completed", "done":
		return true
	default:
		return false
	}
}
