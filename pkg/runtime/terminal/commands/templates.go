package commands

import (
	"github.com/de-tools/dept-reports/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewTemplatesCmd(provider Provider, reporter func(cmd *cobra.Command) *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List report templates and their sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := provider()
			if err != nil {
				return err
			}
			return reporter(cmd).Templates(a.Router.Templates())
		},
	}
}
