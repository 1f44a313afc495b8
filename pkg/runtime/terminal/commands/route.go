package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type RouteCmd struct {
	department string
	hint       string
	title      string
	provider   Provider
}

func NewRouteCmd(provider Provider) *cobra.Command {
	rc := &RouteCmd{provider: provider}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Show which report template applies to a department",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.department, "department", "", "Department name")
	cmd.Flags().StringVar(&rc.hint, "hint", "", "Report type hint (e.g. monthly, audit, client-engagement)")
	cmd.Flags().StringVar(&rc.title, "title", "", "Title of an existing report")

	_ = cmd.MarkFlagRequired("department")

	return cmd
}

func (rc *RouteCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := rc.provider()
	if err != nil {
		return err
	}

	tmpl, err := a.Router.Resolve(rc.department, rc.hint, rc.title)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tmpl.Kind, tmpl.Definition.Name)
	return nil
}
