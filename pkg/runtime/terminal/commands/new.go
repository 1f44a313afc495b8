package commands

import (
	"time"

	"github.com/de-tools/dept-reports/pkg/services/router"
	"github.com/spf13/cobra"
)

type NewCmd struct {
	department string
	hint       string
	user       userFlags
	provider   Provider
}

// NewNewCmd prints a blank form, filled with defaults, as JSON. The output
// is meant to be edited and passed back to render or submit.
func NewNewCmd(provider Provider) *cobra.Command {
	nc := &NewCmd{provider: provider}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print a new report form with defaults as JSON",
		RunE:  nc.run,
	}

	cmd.Flags().StringVar(&nc.department, "department", "", "Department name")
	cmd.Flags().StringVar(&nc.hint, "hint", "", "Report type hint")
	nc.user.register(cmd)

	_ = cmd.MarkFlagRequired("department")

	return cmd
}

func (nc *NewCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := nc.provider()
	if err != nil {
		return err
	}

	user, err := nc.user.resolve(cmd.Context(), a, nc.department)
	if err != nil {
		return err
	}

	tmpl, err := a.Router.Resolve(nc.department, nc.hint, "")
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), tmpl.New(router.DefaultsFor(user, nc.department, time.Now())))
}
