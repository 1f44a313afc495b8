package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/de-tools/dept-reports/pkg/runtime/app"
	"github.com/de-tools/dept-reports/pkg/runtime/terminal/commands"
	"github.com/de-tools/dept-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/dept-reports/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	output  io.Writer
	logger  zerolog.Logger
	config  string
	app     *app.App
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logger zerolog.Logger
	// App, when set, is used instead of one built from the config file.
	App *app.App
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		output: opts.Output,
		logger: opts.Logger,
		app:    opts.App,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the process arguments.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reports",
		Short:             "Department report authoring tool",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if cli.app == nil {
				return nil
			}
			return cli.app.Close()
		},
	}
	cmd.SetOut(cli.output)
	cmd.PersistentFlags().StringVar(&cli.config, "config", "", "Path to a settings file")

	cmd.AddCommand(commands.NewRouteCmd(cli.provide))
	cmd.AddCommand(commands.NewTemplatesCmd(cli.provide, reporter))
	cmd.AddCommand(commands.NewNewCmd(cli.provide))
	cmd.AddCommand(commands.NewRenderCmd(cli.provide))
	cmd.AddCommand(commands.NewSubmitCmd(cli.provide, reporter))
	cmd.AddCommand(commands.NewShowCmd(cli.provide, reporter))
	cmd.AddCommand(commands.NewDirectoryCmd(cli.provide, reporter))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	if cli.app == nil {
		settings, err := config.LoadSettings(cli.config)
		if err != nil {
			return err
		}
		a, err := app.New(*settings)
		if err != nil {
			return err
		}
		cli.app = a
	}

	logger := app.Logger(cli.app.Settings, cli.logger)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func (cli *CLI) provide() (*app.App, error) {
	if cli.app == nil {
		return nil, errors.New("application is not initialized")
	}
	return cli.app, nil
}

func reporter(cmd *cobra.Command) *export.Reporter {
	return export.NewReporter(cmd.OutOrStdout())
}
