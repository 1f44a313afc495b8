package commands

import (
	"context"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/runtime/app"
	"github.com/spf13/cobra"
)

type userFlags struct {
	id       string
	name     string
	position string
}

func (u *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&u.id, "user", "", "Acting user id from the directory")
	cmd.Flags().StringVar(&u.name, "name", "", "Acting user name when no directory is configured")
	cmd.Flags().StringVar(&u.position, "position", "", "Acting user position")
}

func (u *userFlags) resolve(ctx context.Context, a *app.App, department string) (domain.User, error) {
	return a.User(ctx, u.id, u.name, u.position, department)
}
