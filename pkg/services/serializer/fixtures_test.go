package serializer

import (
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// filledReport is an authored instance with every section filled and two
// rows in each repeatable section, plus the lines it must render in order.
type filledReport struct {
	inst  schema.Instance
	lines []string
}

var summary = schema.Summary{Overview: "Steady week", Highlights: []string{"Closed Q3 audit", "Hired analyst"}}

var actionItems = []schema.ActionItem{
	{Action: "Chase Globex", Owner: "Jane", Deadline: "2025-10-20", Priority: schema.PriorityHigh},
	{Action: "Renew lease"},
}

var actionLines = []string{
	"1 | Chase Globex | Jane | 2025-10-20 | High",
	"2 | Renew lease | N/A | N/A | Medium",
}

var compliance = []schema.ComplianceItem{
	{Obligation: "PAYE", DueDate: "2025-10-09", Status: "Filed"},
	{Obligation: "VAT", DueDate: "2025-10-20"},
}

var complianceLines = []string{
	"PAYE | 2025-10-09 | Filed | N/A",
	"VAT | 2025-10-20 | Pending | N/A",
}

var outlook = schema.Outlook{Challenges: []string{"Staff leave", "Budget cuts"}, Plans: []string{"Hire intern", "Close books"}}

var outlookLines = []string{"- Staff leave", "- Budget cuts", "- Hire intern", "- Close books"}

func filledReports() map[schema.Kind]filledReport {
	d := testDefaults()

	finance := schema.NewFinance(d)
	finance.Summary = summary
	finance.Revenue = schema.Revenue{ConsultFee: "1234567.891", AcademyFee: "2500", InterestIncome: "12.5"}
	finance.Expenses = schema.Expenses{Salaries: "800000", RentUtilities: "50,000"}
	finance.CashFlow = schema.CashPosition{
		OpeningBalance: "100000",
		Movements: []schema.CashMovement{
			{Date: "2025-10-07", Description: "Client deposit", Direction: "Inflow", Amount: "5000"},
			{Date: "2025-10-09", Description: "Rent", Direction: "Outflow", Amount: "50000"},
		},
	}
	finance.Receivables = []schema.Receivable{
		{Client: "Acme", InvoiceNo: "INV-001", Amount: "1500", DueDate: "2025-10-30", Status: "Paid"},
		{Client: "Globex", InvoiceNo: "INV-002", Amount: "250.5", DueDate: "2025-11-15"},
	}
	finance.Payables = []schema.Payable{
		{Vendor: "Kenya Power", Description: "Electricity", Amount: "12000", DueDate: "2025-10-20"},
		{Vendor: "Landlord", Description: "Rent", Amount: "50000", DueDate: "2025-10-31", Status: "Paid"},
	}
	finance.Budget = []schema.BudgetLine{
		{Category: "Travel", Budgeted: "200", Actual: "250"},
		{Category: "Training", Budgeted: "1000", Actual: "750"},
	}
	finance.Compliance = compliance
	finance.Challenges = []string{"Late payments", "FX volatility"}
	finance.ActionItems = actionItems

	ictMonthly := schema.NewICTMonthly(d)
	ictMonthly.Summary = summary
	ictMonthly.Systems = []schema.SystemStatus{
		{System: "ERP", Uptime: "99.5", Incidents: "1", Remarks: "Patched"},
		{System: "Email", Uptime: "100", Incidents: "0", Status: "Degraded"},
	}
	ictMonthly.Support = schema.SupportStats{TicketsReceived: "40", TicketsResolved: "30", TicketsPending: "10", AverageResolution: "2 Hours"}
	ictMonthly.KPIs = []schema.KPI{
		{Name: "Uptime", Unit: "%", Target: "99", Actual: "99.5"},
		{Name: "Response time", Unit: "hrs", Target: "4", Actual: "5", LowerIsBetter: true},
	}
	ictMonthly.Projects = []schema.Project{
		{Name: "ERP upgrade", Progress: "40", Deadline: "2025-12-01"},
		{Name: "Wi-Fi rollout", Status: "Done", Progress: "100", Deadline: "2025-10-01", Remarks: "On time"},
	}
	ictMonthly.Security = schema.Security{
		Incidents: []schema.SecurityIncident{
			{Date: "2025-10-02", Description: "Phishing email", Severity: "Low", ActionTaken: "Blocked sender"},
			{Date: "2025-10-05", Description: "Malware on laptop", Severity: "High"},
		},
		BackupsCompleted: true,
		LastBackupDate:   "2025-10-11",
	}
	ictMonthly.Procurement = []schema.ProcurementItem{
		{Item: "Laptops", Quantity: "5", Cost: "250000"},
		{Item: "Switch", Quantity: "1", Cost: "80000", Status: "Delivered"},
	}
	ictMonthly.Outlook = outlook

	ictWeekly := schema.NewICTWeekly(d)
	ictWeekly.Summary = summary
	ictWeekly.SupportLog = []schema.SupportActivity{
		{Date: "2025-10-07", RequestedBy: "Ann", Department: "Finance", Issue: "Printer jam", Resolution: "Cleared", TimeSpent: "15 Min"},
		{Date: "2025-10-08", RequestedBy: "Bob", Department: "HR", Issue: "VPN", Resolution: "Reset token", TimeSpent: "2 Hours", Status: "Resolved"},
	}
	ictWeekly.Maintenance = []string{"Server patching", "UPS test"}
	ictWeekly.Challenges = []string{"Old printers", "Slow link"}
	ictWeekly.Plans = []string{"Replace toner", "Upgrade link"}

	marketing := schema.NewMarketing(d)
	marketing.Summary = summary
	marketing.Campaigns = []schema.Campaign{
		{Name: "Q4 Launch", Channel: "Social", Budget: "50000", Spend: "12000.5", Leads: "30"},
		{Name: "Webinar", Channel: "Email", Status: "Active", Budget: "1000", Spend: "0", Leads: "12"},
	}
	marketing.Leads = schema.LeadFunnel{NewLeads: "42", Qualified: "20", Converted: "5"}
	marketing.Social = []schema.SocialMetric{
		{Platform: "LinkedIn", Followers: "1200", Engagement: "3.5", Posts: "4"},
		{Platform: "X", Followers: "800", Engagement: "1.2", Posts: "6"},
	}
	marketing.Events = []schema.Event{
		{Date: "2025-10-09", Name: "Expo", Location: "KICC", Attendance: "300", Outcome: "12 leads"},
		{Date: "2025-10-11", Name: "Breakfast", Attendance: "40"},
	}
	marketing.Outlook = outlook

	officer := schema.NewClientOfficer(d)
	officer.Summary = summary
	officer.Portfolio = []schema.ClientAccount{
		{ClientID: "c-1", Name: "Acme", Type: "Corporate", Value: "150000", NextAction: "Renewal", Onboarded: "2025-10-08"},
		{ClientID: "c-2", Name: "Globex", Type: "SME", Status: "Dormant", Value: "20000"},
	}
	officer.Meetings = []schema.ClientMeeting{
		{Date: "2025-10-07", Client: "Acme", Purpose: "Review", Outcome: "Signed", Duration: "1 hour"},
		{Date: "2025-10-09", Client: "Globex", Purpose: "Intro", Outcome: "Follow-up", Duration: "30 min"},
	}
	officer.Prospects = []schema.Prospect{
		{Name: "Initech", Source: "Referral", Stage: "Proposal", EstimatedValue: "75000", FollowUp: "2025-10-20"},
		{Name: "Umbrella", Source: "Event", Stage: "Lead"},
	}
	officer.Issues = []string{"Late invoice", "Contact changed"}
	officer.ActionItems = actionItems

	activities := schema.NewClientActivities(d)
	activities.ClientID = "c-1"
	activities.ClientName = "Acme Ltd"
	activities.Activities = []schema.ClientActivity{
		{Date: "2025-10-07", Activity: "First visit", Duration: "1 hour", StaffName: "Ann", Status: "Completed", Rating: 4},
		{Date: "2025-10-09", Activity: "Second visit", Duration: "30 min", StaffName: "Bob", Status: "completed", Rating: 5},
	}
	activities.Feedback = "Happy with turnaround"
	activities.NextSteps = []string{"Send proposal", "Book review"}

	audit := schema.NewInternalAudit(d)
	audit.Summary = summary
	audit.Engagements = []schema.AuditEngagement{
		{Area: "Payroll", Objective: "Controls", Auditor: "Ann"},
		{Area: "Procurement", Objective: "Compliance", Auditor: "Bob", Status: "Completed"},
	}
	audit.Findings = []schema.AuditFinding{
		{Ref: "F-1", Area: "Cash", Observation: "Cash not banked daily", Risk: "High", Recommendation: "Bank daily", Owner: "Ann", DueDate: "2025-11-01"},
		{Ref: "F-2", Area: "IT", Observation: "Shared passwords", Recommendation: "Enforce MFA", ManagementResponse: "Agreed", Owner: "Bob"},
	}
	audit.FollowUps = []schema.FollowUp{
		{Ref: "P-1", Finding: "Petty cash", Remarks: "Open still"},
		{Ref: "P-2", Finding: "Leave", Status: "Closed"},
	}
	audit.Compliance = compliance
	audit.Outlook = outlook

	engagement := schema.NewClientEngagement(d)
	engagement.Interactions = []schema.ClientInteraction{
		{Date: "2025-10-07", Client: "Acme", Type: "Call", Summary: "Renewal", Outcome: "Positive", Rating: 4},
		{Date: "2025-10-08", Client: "Globex", Type: "Visit", Summary: "Intro"},
	}
	engagement.Onboarding = []schema.NewClient{
		{ClientID: "c-9", Client: "Initech", Date: "2025-10-09", Services: "Audit", AccountManager: "Ann"},
		{ClientID: "c-10", Client: "Umbrella", Date: "2025-10-10", Services: "Tax"},
	}
	engagement.Complaints = []schema.Complaint{
		{Date: "2025-10-07", Client: "Acme", Complaint: "Late report"},
		{Date: "2025-10-08", Client: "Globex", Complaint: "Billing error", Status: "Resolved", Resolution: "Credit note"},
	}
	engagement.Feedback = []schema.ClientFeedback{
		{Client: "Acme", Rating: 5, Comment: "Great"},
		{Client: "Globex", Rating: 3},
	}
	engagement.ActionItems = actionItems

	generic := schema.NewGeneric(d)
	generic.Title = "Notes"
	generic.Content = "Line one\nLine two"

	return map[schema.Kind]filledReport{
		schema.KindFinance: {inst: finance, lines: concat(
			[]string{"- Closed Q3 audit", "- Hired analyst"},
			[]string{
				"Consultancy Fees: 1,234,567.89",
				"Academy Fees: 2,500.00",
				"Total Revenue: 1,237,080.39",
				"Rent & Utilities: 50,000.00",
				"Total Expenses: 850,000.00",
				"2025-10-07 | Client deposit | Inflow | 5,000.00",
				"2025-10-09 | Rent | Outflow | 50,000.00",
				"Acme | INV-001 | 1,500.00 | 2025-10-30 | Paid",
				"Globex | INV-002 | 250.50 | 2025-11-15 | Pending",
				"Kenya Power | Electricity | 12,000.00 | 2025-10-20 | Pending",
				"Landlord | Rent | 50,000.00 | 2025-10-31 | Paid",
				"Travel | 200.00 | 250.00 | 50.00",
				"Training | 1,000.00 | 750.00 | -250.00",
			},
			complianceLines,
			[]string{"- Late payments", "- FX volatility"},
			actionLines,
		)},
		schema.KindICTMonthly: {inst: ictMonthly, lines: concat(
			[]string{
				"ERP | 99.5 | 1 | Operational | Patched",
				"Email | 100 | 0 | Degraded | N/A",
				"Tickets Received: 40",
				"Uptime | 99 | 99.5 | 100.5% | Green",
				"Response time | 4 | 5 | 125.0% | Red",
				"ERP upgrade | Pending | 40 | 2025-12-01 | N/A",
				"Wi-Fi rollout | Done | 100 | 2025-10-01 | On time",
				"Backups Completed: Yes",
				"2025-10-02 | Phishing email | Low | Blocked sender",
				"2025-10-05 | Malware on laptop | High | N/A",
				"Laptops | 5 | 250,000.00 | Pending",
				"Switch | 1 | 80,000.00 | Delivered",
				"Total Procurement: 330,000.00",
			},
			outlookLines,
		)},
		schema.KindICTWeekly: {inst: ictWeekly, lines: []string{
			"2025-10-07 | Ann | Finance | Printer jam | Cleared | 15 Min | Pending",
			"2025-10-08 | Bob | HR | VPN | Reset token | 2 Hours | Resolved",
			"Total Time: 2.25 hrs",
			"- Server patching", "- UPS test",
			"- Old printers", "- Slow link",
			"- Replace toner", "- Upgrade link",
		}},
		schema.KindMarketing: {inst: marketing, lines: concat(
			[]string{
				"Q4 Launch | Social | Pending | 50,000.00 | 12,000.50 | 30",
				"Webinar | Email | Active | 1,000.00 | 0.00 | 12",
				"Total Budget: 51,000.00",
				"Total Spend: 12,000.50",
				"New Leads: 42",
				"LinkedIn | 1200 | 3.5 | 4",
				"X | 800 | 1.2 | 6",
				"2025-10-09 | Expo | KICC | 300 | 12 leads",
				"2025-10-11 | Breakfast | N/A | 40 | N/A",
			},
			outlookLines,
		)},
		schema.KindClientOfficer: {inst: officer, lines: concat(
			[]string{
				"Acme | Corporate | Active | 150,000.00 | Renewal",
				"Globex | SME | Dormant | 20,000.00 | N/A",
				"Portfolio Value: 170,000.00",
				"2025-10-07 | Acme | Review | Signed | 1 hour",
				"2025-10-09 | Globex | Intro | Follow-up | 30 min",
				"Time With Clients: 1.50 hrs",
				"Initech | Referral | Proposal | 75,000.00 | 2025-10-20",
				"Umbrella | Event | Lead | 0.00 | N/A",
				"- Late invoice", "- Contact changed",
			},
			actionLines,
		)},
		schema.KindClientActivities: {inst: activities, lines: []string{
			`"clientName": "Acme Ltd"`,
			`"activity": "First visit"`,
			`"activity": "Second visit"`,
			`"Send proposal"`,
			`"Book review"`,
			`"totalActivities": 2`,
			`"completed": 2`,
			`"totalHours": 1.5`,
			`"averageRating": 4.5`,
		}},
		schema.KindAudit: {inst: audit, lines: concat(
			[]string{
				"Payroll | Controls | Ann | Planned",
				"Procurement | Compliance | Bob | Completed",
				"Finding 1 (F-1)",
				"Risk: High",
				"Management Response: Pending",
				"Finding 2 (F-2)",
				"Risk: Medium",
				"Management Response: Agreed",
				"P-1 | Petty cash | Open | Open still",
				"P-2 | Leave | Closed | N/A",
			},
			complianceLines,
			outlookLines,
		)},
		schema.KindClientEngagement: {inst: engagement, lines: concat(
			[]string{
				"2025-10-07 | Acme | Call | Renewal | Positive | 4",
				"2025-10-08 | Globex | Visit | Intro | N/A | N/A",
				"Average Interaction Rating: 4.0",
				"Initech | 2025-10-09 | Audit | Ann",
				"Umbrella | 2025-10-10 | Tax | N/A",
				"2025-10-07 | Acme | Late report | Open | Pending",
				"2025-10-08 | Globex | Billing error | Resolved | Credit note",
				"Acme | 5 | Great",
				"Globex | 3 | N/A",
				"Average Satisfaction: 4.0",
			},
			actionLines,
		)},
		schema.KindGeneric: {inst: generic, lines: []string{"Line one", "Line two"}},
	}
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
