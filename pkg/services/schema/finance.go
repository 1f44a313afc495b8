package schema

import (
	"fmt"

	"github.com/de-tools/dept-reports/pkg/models/domain"
)

// Finance is the weekly finance department report.
type Finance struct {
	Details     ReportDetails       `json:"details"`
	Summary     Summary             `json:"executiveSummary"`
	Revenue     Revenue             `json:"revenue"`
	Expenses    Expenses            `json:"expenses"`
	CashFlow    CashPosition        `json:"cashFlow"`
	Receivables []Receivable        `json:"receivables"`
	Payables    []Payable           `json:"payables"`
	Budget      []BudgetLine        `json:"budget"`
	Compliance  []ComplianceItem    `json:"compliance"`
	Challenges  []string            `json:"challenges"`
	ActionItems []ActionItem        `json:"actionItems"`
	Files       []domain.Attachment `json:"attachments"`
}

type Revenue struct {
	ConsultFee     domain.Amount `json:"consultFee"`
	AcademyFee     domain.Amount `json:"academyFee"`
	InterestIncome domain.Amount `json:"interestIncome"`
	OtherRevenue   domain.Amount `json:"otherRevenue"`
	Notes          string        `json:"notes"`
}

type Expenses struct {
	Salaries        domain.Amount `json:"salaries"`
	RentUtilities   domain.Amount `json:"rentUtilities"`
	OfficeSupplies  domain.Amount `json:"officeSupplies"`
	TravelTransport domain.Amount `json:"travelTransport"`
	OtherExpenses   domain.Amount `json:"otherExpenses"`
	Notes           string        `json:"notes"`
}

// CashPosition holds the opening balance and the itemized movements. The
// movements are narrative; the balance is derived from revenue and expenses.
type CashPosition struct {
	OpeningBalance domain.Amount  `json:"openingBalance"`
	Movements      []CashMovement `json:"movements"`
}

var directionOptions = []string{"Inflow", "Outflow"}

type CashMovement struct {
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Direction   string        `json:"direction"` // Inflow or Outflow
	Amount      domain.Amount `json:"amount"`
}

type Receivable struct {
	Client    string        `json:"client"`
	InvoiceNo string        `json:"invoiceNo"`
	Amount    domain.Amount `json:"amount"`
	DueDate   string        `json:"dueDate"`
	Status    string        `json:"status"`
}

type Payable struct {
	Vendor      string        `json:"vendor"`
	Description string        `json:"description"`
	Amount      domain.Amount `json:"amount"`
	DueDate     string        `json:"dueDate"`
	Status      string        `json:"status"`
}

type BudgetLine struct {
	Category string        `json:"category"`
	Budgeted domain.Amount `json:"budgeted"`
	Actual   domain.Amount `json:"actual"`
}

func NewFinance(d Defaults) *Finance {
	return &Finance{
		Details:     weeklyDetails(d),
		Summary:     Summary{Highlights: []string{}},
		CashFlow:    CashPosition{Movements: []CashMovement{}},
		Receivables: []Receivable{},
		Payables:    []Payable{},
		Budget:      []BudgetLine{},
		Compliance:  []ComplianceItem{},
		Challenges:  []string{},
		ActionItems: []ActionItem{},
		Files:       []domain.Attachment{},
	}
}

func (f *Finance) Kind() Kind { return KindFinance }

func (f *Finance) DefaultTitle() string {
	return fmt.Sprintf("Finance Weekly Report - Week Ending %s", f.Details.WeekEnding)
}

func (f *Finance) Attachments() []domain.Attachment       { return f.Files }
func (f *Finance) SetAttachments(a []domain.Attachment) { f.Files = a }
func (f *Finance) instance()                            {}

var financeDefinition = Definition{
	Kind: KindFinance,
	Name: "Finance Weekly Report",
	Mode: ModeText,
	Sections: []Section{
		weeklyDetailsSection,
		summarySection,
		{
			Key:   "revenue",
			Title: "Revenue",
			Fields: []Field{
				{Key: "consultFee", Label: "Consultancy Fees", Type: FieldMoney},
				{Key: "academyFee", Label: "Academy Fees", Type: FieldMoney},
				{Key: "interestIncome", Label: "Interest Income", Type: FieldMoney},
				{Key: "otherRevenue", Label: "Other Revenue", Type: FieldMoney},
				{Key: "notes", Label: "Notes", Type: FieldText},
			},
		},
		{
			Key:   "expenses",
			Title: "Expenses",
			Fields: []Field{
				{Key: "salaries", Label: "Salaries & Wages", Type: FieldMoney},
				{Key: "rentUtilities", Label: "Rent & Utilities", Type: FieldMoney},
				{Key: "officeSupplies", Label: "Office Supplies", Type: FieldMoney},
				{Key: "travelTransport", Label: "Travel & Transport", Type: FieldMoney},
				{Key: "otherExpenses", Label: "Other Expenses", Type: FieldMoney},
				{Key: "notes", Label: "Notes", Type: FieldText},
			},
		},
		{
			Key:   "cashFlow",
			Title: "Cash Flow",
			Fields: []Field{
				{Key: "openingBalance", Label: "Opening Balance", Type: FieldMoney},
				{Key: "movements", Label: "Cash Movements", Type: FieldRows, Rows: []Field{
					{Key: "date", Label: "Date", Type: FieldDate},
					{Key: "description", Label: "Description", Type: FieldText, Required: true},
					{Key: "direction", Label: "Direction", Type: FieldEnum, Options: directionOptions},
					{Key: "amount", Label: "Amount", Type: FieldMoney, Required: true},
				}},
			},
		},
		{
			Key:        "receivables",
			Title:      "Accounts Receivable",
			Repeatable: true,
			Fields: []Field{
				{Key: "client", Label: "Client", Type: FieldText, Required: true},
				{Key: "invoiceNo", Label: "Invoice No", Type: FieldText},
				{Key: "amount", Label: "Amount", Type: FieldMoney, Required: true},
				{Key: "dueDate", Label: "Due Date", Type: FieldDate},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
			},
		},
		{
			Key:        "payables",
			Title:      "Accounts Payable",
			Repeatable: true,
			Fields: []Field{
				{Key: "vendor", Label: "Vendor", Type: FieldText, Required: true},
				{Key: "description", Label: "Description", Type: FieldText},
				{Key: "amount", Label: "Amount", Type: FieldMoney, Required: true},
				{Key: "dueDate", Label: "Due Date", Type: FieldDate},
				{Key: "status", Label: "Status", Type: FieldText, Default: "Pending"},
			},
		},
		{
			Key:        "budget",
			Title:      "Budget vs Actual",
			Repeatable: true,
			Fields: []Field{
				{Key: "category", Label: "Category", Type: FieldText, Required: true},
				{Key: "budgeted", Label: "Budgeted", Type: FieldMoney},
				{Key: "actual", Label: "Actual", Type: FieldMoney},
			},
		},
		complianceSection,
		{Key: "challenges", Title: "Challenges & Risks", Repeatable: true},
		actionItemsSection,
	},
}
