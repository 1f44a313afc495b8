package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/dept-reports/pkg/services/directory"
	"github.com/spf13/cobra"
)

var directoryGroups = map[string]func(directory.Directory, context.Context) ([]domain.DirectoryEntry, error){
	"departments": directory.Directory.ListDepartments,
	"clients":     directory.Directory.ListClients,
	"staff":       directory.Directory.ListStaff,
	"users":       directory.Directory.ListUsers,
}

func NewDirectoryCmd(provider Provider, reporter func(cmd *cobra.Command) *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:       "directory [departments|clients|staff|users]",
		Short:     "List directory entries available to report fields",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"departments", "clients", "staff", "users"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, ok := directoryGroups[args[0]]
			if !ok {
				return fmt.Errorf("unknown directory group %q", args[0])
			}

			a, err := provider()
			if err != nil {
				return err
			}
			entries, err := list(a.Directory, cmd.Context())
			if err != nil {
				return err
			}
			return reporter(cmd).Directory(entries)
		},
	}
}
