package serializer

import "github.com/de-tools/dept-reports/pkg/services/schema"

var textTemplates = map[schema.Kind]string{
	schema.KindFinance:          financeTemplate,
	schema.KindICTMonthly:       ictMonthlyTemplate,
	schema.KindICTWeekly:        ictWeeklyTemplate,
	schema.KindMarketing:        marketingTemplate,
	schema.KindClientOfficer:    clientOfficerTemplate,
	schema.KindAudit:            internalAuditTemplate,
	schema.KindClientEngagement: clientEngagementTemplate,
}

const detailsBlock = `{{define "details"}}{{heading "details"}}
{{kv "Department" .Details.Department}}
{{kv "Prepared By" .Details.PreparedBy}}
{{kv "Position" .Details.Position}}
{{- if .Details.Month}}
{{kv "Reporting Month" .Details.Month}}
{{- else}}
{{kv "Week Ending" .Details.WeekEnding}}
{{- end}}
{{kv "Date Submitted" .Details.DateSubmitted}}{{end}}`

const summaryBlock = `{{define "summary"}}{{heading "executiveSummary"}}
{{para .Summary.Overview "[No summary provided]"}}
Key Highlights:
{{- range .Summary.Highlights}}
- {{.}}
{{- else}}
[No highlights recorded]
{{- end}}{{end}}`

const actionItemsBlock = `{{define "actions"}}{{heading "actionItems"}}
{{- with .ActionItems}}
# | Action | Owner | Deadline | Priority
{{- range $i, $a := .}}
{{row (inc $i) $a.Action $a.Owner $a.Deadline (fallback "actionItems.priority" $a.Priority)}}
{{- end}}
{{- else}}
[No action items recorded]
{{- end}}{{end}}`

const complianceBlock = `{{define "compliance"}}{{heading "compliance"}}
{{- with .Compliance}}
Obligation | Due Date | Status | Remarks
{{- range .}}
{{row .Obligation .DueDate (fallback "compliance.status" .Status) .Remarks}}
{{- end}}
{{- else}}
[No compliance items recorded]
{{- end}}{{end}}`

const outlookBlock = `{{define "outlook"}}{{heading "outlook"}}
Challenges:
{{- range .Outlook.Challenges}}
- {{.}}
{{- else}}
[No challenges recorded]
{{- end}}
Plans:
{{- range .Outlook.Plans}}
- {{.}}
{{- else}}
[No plans recorded]
{{- end}}{{end}}`

const sharedBlocks = detailsBlock + summaryBlock + actionItemsBlock + complianceBlock + outlookBlock

const financeTemplate = sharedBlocks + `{{banner "Finance Department Weekly Report"}}
{{kv "Period" .Period}}

{{template "details" .}}

{{template "summary" .}}

{{heading "revenue"}}
{{kv "Consultancy Fees" (amt .Revenue.ConsultFee)}}
{{kv "Academy Fees" (amt .Revenue.AcademyFee)}}
{{kv "Interest Income" (amt .Revenue.InterestIncome)}}
{{kv "Other Revenue" (amt .Revenue.OtherRevenue)}}
{{kv "Total Revenue" (money .RevenueTotal)}}
{{kv "Notes" .Revenue.Notes}}

{{heading "expenses"}}
{{kv "Salaries & Wages" (amt .Expenses.Salaries)}}
{{kv "Rent & Utilities" (amt .Expenses.RentUtilities)}}
{{kv "Office Supplies" (amt .Expenses.OfficeSupplies)}}
{{kv "Travel & Transport" (amt .Expenses.TravelTransport)}}
{{kv "Other Expenses" (amt .Expenses.OtherExpenses)}}
{{kv "Total Expenses" (money .ExpenseTotal)}}
{{kv "Net Result" (money .NetResult)}}
{{kv "Notes" .Expenses.Notes}}

{{heading "cashFlow"}}
{{kv "Opening Balance" (money .Cash.Opening)}}
{{kv "Cash Inflows" (money .Cash.Inflows)}}
{{kv "Cash Outflows" (money .Cash.Outflows)}}
{{kv "Closing Balance" (money .Cash.Closing)}}
Cash Movements:
{{- with .CashFlow.Movements}}
Date | Description | Direction | Amount
{{- range .}}
{{row .Date .Description .Direction (amt .Amount)}}
{{- end}}
{{- else}}
[No cash movements recorded]
{{- end}}

{{heading "receivables"}}
{{- with .Receivables}}
Client | Invoice No | Amount | Due Date | Status
{{- range .}}
{{row .Client .InvoiceNo (amt .Amount) .DueDate (fallback "receivables.status" .Status)}}
{{- end}}
{{- else}}
[No receivables recorded]
{{- end}}
{{kv "Total Receivables" (money .ReceivablesTotal)}}

{{heading "payables"}}
{{- with .Payables}}
Vendor | Description | Amount | Due Date | Status
{{- range .}}
{{row .Vendor .Description (amt .Amount) .DueDate (fallback "payables.status" .Status)}}
{{- end}}
{{- else}}
[No payables recorded]
{{- end}}
{{kv "Total Payables" (money .PayablesTotal)}}

{{heading "budget"}}
{{- with .Budget}}
Category | Budgeted | Actual | Variance
{{- range .}}
{{row .Category (amt .Budgeted) (amt .Actual) (money .Variance)}}
{{- end}}
{{- else}}
[No budget lines recorded]
{{- end}}

{{template "compliance" .}}

{{heading "challenges"}}
{{- range .Challenges}}
- {{.}}
{{- else}}
[No challenges recorded]
{{- end}}

{{template "actions" .}}
`

const ictMonthlyTemplate = sharedBlocks + `{{banner "ICT Department Monthly Report"}}
{{kv "Month" .Details.Month}}

{{template "details" .}}

{{template "summary" .}}

{{heading "systems"}}
{{- with .Systems}}
System | Uptime % | Incidents | Status | Remarks
{{- range .}}
{{row .System .Uptime .Incidents (fallback "systems.status" .Status) .Remarks}}
{{- end}}
{{- else}}
[No systems recorded]
{{- end}}

{{heading "support"}}
{{kv "Tickets Received" (num .Support.TicketsReceived)}}
{{kv "Tickets Resolved" (num .Support.TicketsResolved)}}
{{kv "Tickets Pending" (num .Support.TicketsPending)}}
{{kv "Resolution Rate" (pct .ResolutionRate)}}
{{kv "Average Resolution Time" .Support.AverageResolution}} ({{hours .ResolutionHours}})

{{heading "kpis"}}
{{- with .KPIRows}}
KPI | Target | Actual | Performance | Rating
{{- range .}}
{{row .Name .Target .Actual (pct .Performance) .Rating}}
{{- end}}
{{- else}}
[No KPIs recorded]
{{- end}}

{{heading "projects"}}
{{- with .Projects}}
Project | Status | Progress % | Deadline | Remarks
{{- range .}}
{{row .Name (fallback "projects.status" .Status) .Progress .Deadline .Remarks}}
{{- end}}
{{- else}}
[No projects recorded]
{{- end}}

{{heading "security"}}
{{kv "Backups Completed" (yesno .Security.BackupsCompleted)}}
{{kv "Last Backup" .Security.LastBackupDate}}
Security Incidents:
{{- with .Security.Incidents}}
Date | Description | Severity | Action Taken
{{- range .}}
{{row .Date .Description .Severity .ActionTaken}}
{{- end}}
{{- else}}
[No security incidents recorded]
{{- end}}

{{heading "procurement"}}
{{- with .Procurement}}
Item | Quantity | Cost | Status
{{- range .}}
{{row .Item .Quantity (amt .Cost) (fallback "procurement.status" .Status)}}
{{- end}}
{{- else}}
[No procurement recorded]
{{- end}}
{{kv "Total Procurement" (money .ProcurementTotal)}}

{{template "outlook" .}}
`

const ictWeeklyTemplate = sharedBlocks + `{{banner "ICT Department Weekly Report"}}
{{kv "Period" .Period}}

{{template "details" .}}

{{template "summary" .}}

{{heading "supportLog"}}
{{- with .SupportLog}}
Date | Requested By | Department | Issue | Resolution | Time Spent | Status
{{- range .}}
{{row .Date .RequestedBy .Department .Issue .Resolution .TimeSpent (fallback "supportLog.status" .Status)}}
{{- end}}
{{- else}}
[No support activities recorded]
{{- end}}
{{kv "Total Time" (hours .TotalHours)}}
{{kv "Resolved" .Resolved}}
{{kv "Open" .Open}}

{{heading "maintenance"}}
{{- range .Maintenance}}
- {{.}}
{{- else}}
[No maintenance recorded]
{{- end}}

{{heading "challenges"}}
{{- range .Challenges}}
- {{.}}
{{- else}}
[No challenges recorded]
{{- end}}

{{heading "plans"}}
{{- range .Plans}}
- {{.}}
{{- else}}
[No plans recorded]
{{- end}}
`

const marketingTemplate = sharedBlocks + `{{banner "Marketing Department Weekly Report"}}
{{kv "Period" .Period}}

{{template "details" .}}

{{template "summary" .}}

{{heading "campaigns"}}
{{- with .Campaigns}}
Campaign | Channel | Status | Budget | Spend | Leads
{{- range .}}
{{row .Name .Channel (fallback "campaigns.status" .Status) (amt .Budget) (amt .Spend) .Leads}}
{{- end}}
{{- else}}
[No campaigns recorded]
{{- end}}
{{kv "Total Budget" (money .TotalBudget)}}
{{kv "Total Spend" (money .TotalSpend)}}

{{heading "leads"}}
{{kv "New Leads" (num .Leads.NewLeads)}}
{{kv "Qualified" (num .Leads.Qualified)}}
{{kv "Converted" (num .Leads.Converted)}}
{{kv "Conversion Rate" (pct .ConversionRate)}}

{{heading "social"}}
{{- with .Social}}
Platform | Followers | Engagement % | Posts
{{- range .}}
{{row .Platform .Followers .Engagement .Posts}}
{{- end}}
{{- else}}
[No social media metrics recorded]
{{- end}}

{{heading "events"}}
{{- with .Events}}
Date | Event | Location | Attendance | Outcome
{{- range .}}
{{row .Date .Name .Location .Attendance .Outcome}}
{{- end}}
{{- else}}
[No events recorded]
{{- end}}

{{template "outlook" .}}
`

const clientOfficerTemplate = sharedBlocks + `{{banner "Weekly Client Officer Report"}}
{{kv "Officer" .Details.PreparedBy}}
{{kv "Period" .Period}}

{{template "details" .}}

{{template "summary" .}}

{{heading "portfolio"}}
{{- with .Portfolio}}
Client | Type | Status | Value | Next Action
{{- range .}}
{{row .Name .Type (fallback "portfolio.status" .Status) (amt .Value) .NextAction}}
{{- end}}
{{- else}}
[No clients recorded]
{{- end}}
{{kv "Portfolio Value" (money .PortfolioValue)}}
{{kv "New Clients This Period" (len .NewClients)}}
{{- range .NewClients}}
- {{.Name}} (onboarded {{.Onboarded}})
{{- end}}

{{heading "meetings"}}
{{- with .Meetings}}
Date | Client | Purpose | Outcome | Duration
{{- range .}}
{{row .Date .Client .Purpose .Outcome .Duration}}
{{- end}}
{{- else}}
[No meetings recorded]
{{- end}}
{{kv "Time With Clients" (hours .MeetingHours)}}

{{heading "prospects"}}
{{- with .Prospects}}
Prospect | Source | Stage | Estimated Value | Follow-up
{{- range .}}
{{row .Name .Source .Stage (amt .EstimatedValue) .FollowUp}}
{{- end}}
{{- else}}
[No prospects recorded]
{{- end}}
{{kv "Pipeline Value" (money .PipelineValue)}}

{{heading "issues"}}
{{- range .Issues}}
- {{.}}
{{- else}}
[No issues recorded]
{{- end}}

{{template "actions" .}}
`

const internalAuditTemplate = sharedBlocks + `{{banner "Internal Audit Monthly Report"}}
{{kv "Month" .Details.Month}}

{{template "details" .}}

{{template "summary" .}}

{{heading "engagements"}}
{{- with .Engagements}}
Area | Objective | Auditor | Status
{{- range .}}
{{row .Area .Objective .Auditor (fallback "engagements.status" .Status)}}
{{- end}}
{{- else}}
[No audit engagements recorded]
{{- end}}

{{heading "findings"}}
{{- range $i, $f := .Findings}}
Finding {{inc $i}}{{if $f.Ref}} ({{$f.Ref}}){{end}}
  {{kv "Area" $f.Area}}
  {{kv "Observation" $f.Observation}}
  {{kv "Risk" (fallback "findings.risk" $f.Risk)}}
  {{kv "Recommendation" $f.Recommendation}}
  {{kv "Management Response" (fallback "findings.managementResponse" $f.ManagementResponse)}}
  {{kv "Owner" $f.Owner}}
  {{kv "Due Date" $f.DueDate}}
  {{kv "Status" (fallback "findings.status" $f.Status)}}
{{- else}}
[No findings recorded]
{{- end}}
{{kv "High Risk" .HighRisk}}
{{kv "Medium Risk" .MediumRisk}}
{{kv "Low Risk" .LowRisk}}
{{kv "Open Findings" .OpenItems}}

{{heading "followUps"}}
{{- with .FollowUps}}
Ref | Finding | Status | Remarks
{{- range .}}
{{row .Ref .Finding (fallback "followUps.status" .Status) .Remarks}}
{{- end}}
{{- else}}
[No follow-ups recorded]
{{- end}}

{{template "compliance" .}}

{{template "outlook" .}}
`

const clientEngagementTemplate = detailsBlock + actionItemsBlock + `{{banner "Client Engagement Weekly Report"}}
{{kv "Period" .Period}}

{{template "details" .}}

{{heading "interactions"}}
{{- with .Interactions}}
Date | Client | Type | Summary | Outcome | Rating
{{- range .}}
{{row .Date .Client .Type .Summary .Outcome (or .Rating "N/A")}}
{{- end}}
{{- else}}
[No client interactions recorded]
{{- end}}
{{kv "Average Interaction Rating" (rating .InteractionRating)}}

{{heading "onboarding"}}
{{- with .Onboarding}}
Client | Date | Services | Account Manager
{{- range .}}
{{row .Client .Date .Services .AccountManager}}
{{- end}}
{{- else}}
[No new clients recorded]
{{- end}}
{{kv "New Clients This Period" .NewThisPeriod}}

{{heading "complaints"}}
{{- with .Complaints}}
Date | Client | Complaint | Status | Resolution
{{- range .}}
{{row .Date .Client .Complaint (fallback "complaints.status" .Status) (fallback "complaints.resolution" .Resolution)}}
{{- end}}
{{- else}}
[No complaints recorded]
{{- end}}
{{kv "Open Complaints" .OpenComplaints}}

{{heading "feedback"}}
{{- with .Feedback}}
Client | Rating | Comment
{{- range .}}
{{row .Client (or .Rating "N/A") .Comment}}
{{- end}}
{{- else}}
[No feedback recorded]
{{- end}}
{{kv "Average Satisfaction" (rating .SatisfactionRating)}}

{{template "actions" .}}
`
