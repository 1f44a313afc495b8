package commands

import (
	"fmt"

	"github.com/de-tools/dept-reports/pkg/services/schema"
	"github.com/spf13/cobra"
)

type RenderCmd struct {
	kind     string
	file     string
	validate bool
	provider Provider
}

func NewRenderCmd(provider Provider) *cobra.Command {
	rc := &RenderCmd{provider: provider}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report form to its stored content without saving it",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.kind, "kind", "", fmt.Sprintf("Report type, one of %v", schema.Kinds()))
	cmd.Flags().StringVarP(&rc.file, "file", "f", "-", "JSON form to render, - for stdin")
	cmd.Flags().BoolVar(&rc.validate, "validate", true, "Validate the form before rendering")

	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := rc.provider()
	if err != nil {
		return err
	}

	kind, err := schema.ParseKind(rc.kind)
	if err != nil {
		return err
	}
	inst, err := schema.New(kind, schema.Defaults{})
	if err != nil {
		return err
	}
	if err := readInstance(rc.file, cmd.InOrStdin(), inst); err != nil {
		return err
	}

	if rc.validate {
		if err := schema.Validate(inst); err != nil {
			return err
		}
	}

	content, err := a.Serializer.Serialize(inst)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", inst.DefaultTitle(), content)
	return nil
}
