package commands

import (
	"github.com/de-tools/dept-reports/pkg/models/store"
	"github.com/de-tools/dept-reports/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ShowCmd struct {
	id         string
	department string
	reportType string
	limit      int
	provider   Provider
	reporter   func(cmd *cobra.Command) *export.Reporter
}

func NewShowCmd(provider Provider, reporter func(cmd *cobra.Command) *export.Reporter) *cobra.Command {
	sc := &ShowCmd{provider: provider, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a stored report, or list stored reports",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.id, "id", "", "Report id; lists reports when empty")
	cmd.Flags().StringVar(&sc.department, "department", "", "Only list reports of this department")
	cmd.Flags().StringVar(&sc.reportType, "type", "", "Only list reports of this type")
	cmd.Flags().IntVar(&sc.limit, "limit", 20, "Maximum number of reports to list")

	return cmd
}

func (sc *ShowCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := sc.provider()
	if err != nil {
		return err
	}
	s, err := a.Store()
	if err != nil {
		return err
	}

	if sc.id != "" {
		report, err := s.GetReport(cmd.Context(), sc.id)
		if err != nil {
			return err
		}
		return sc.reporter(cmd).Report(report)
	}

	reports, err := s.ListReports(cmd.Context(), store.ReportFilter{
		Department: sc.department,
		ReportType: sc.reportType,
		Limit:      sc.limit,
	})
	if err != nil {
		return err
	}
	return sc.reporter(cmd).Reports(reports)
}
