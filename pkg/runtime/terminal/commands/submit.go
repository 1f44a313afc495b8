package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/dept-reports/pkg/services/authoring"
	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type SubmitCmd struct {
	department string
	hint       string
	id         string
	title      string
	file       string
	attach     []string
	user       userFlags
	provider   Provider
	reporter   func(cmd *cobra.Command) *export.Reporter
}

func NewSubmitCmd(provider Provider, reporter func(cmd *cobra.Command) *export.Reporter) *cobra.Command {
	sc := &SubmitCmd{provider: provider, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate, render and store a report",
		Long: "Creates a new report, or updates the report given by --id. " +
			"Fields in the JSON form replace the ones of the stored report.",
		RunE: sc.run,
	}

	cmd.Flags().StringVar(&sc.department, "department", "", "Department name")
	cmd.Flags().StringVar(&sc.hint, "hint", "", "Report type hint")
	cmd.Flags().StringVar(&sc.id, "id", "", "Existing report id to update")
	cmd.Flags().StringVar(&sc.title, "title", "", "Override the generated title")
	cmd.Flags().StringVarP(&sc.file, "file", "f", "", "JSON form, - for stdin")
	cmd.Flags().StringSliceVar(&sc.attach, "attach", nil, "Files to attach")
	sc.user.register(cmd)

	return cmd
}

func (sc *SubmitCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := sc.provider()
	if err != nil {
		return err
	}
	if sc.id == "" && sc.department == "" {
		return errors.New("--department is required for a new report")
	}

	user, err := sc.user.resolve(ctx, a, sc.department)
	if err != nil {
		return err
	}

	svc, err := a.Authoring()
	if err != nil {
		return err
	}

	session, err := sc.open(ctx, svc, user)
	if err != nil {
		return err
	}

	if sc.file != "" {
		if err := readInstance(sc.file, cmd.InOrStdin(), session.Instance()); err != nil {
			return err
		}
	}
	if sc.title != "" {
		session.SetTitle(sc.title)
	}

	for _, path := range sc.attach {
		if err := attach(ctx, session, path); err != nil {
			return err
		}
	}

	report, err := session.Submit(ctx)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", f)
			}
		}
		return err
	}

	return sc.reporter(cmd).Report(report)
}

func (sc *SubmitCmd) open(ctx context.Context, svc *authoring.Service, user domain.User) (*authoring.Session, error) {
	if sc.id == "" {
		return svc.Begin(ctx, sc.department, sc.hint, user)
	}

	session, err := svc.Edit(ctx, sc.id, sc.department, user)
	if err != nil {
		return nil, err
	}
	if rerr := session.Reconstruction(); rerr != nil {
		zerolog.Ctx(ctx).Warn().Err(rerr).Msg("editing with defaults; previous content was not fully recovered")
	}
	return session, nil
}

func attach(ctx context.Context, session *authoring.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open attachment: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat attachment: %w", err)
	}

	_, err = session.Attach(ctx, authoring.File{Name: path, Size: info.Size(), Body: f})
	return err
}
