package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/inepdata/surveysweep/cmd/surveysweep/cmd"
)

// Execute runs the surveysweep CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "surveysweep",
		Short:   "Quarterly Coalition Survey data cleaning",
		Version: a.version,
		Long: `Surveysweep runs the quarterly Coalition Survey data-quality pipeline
for the Illinois Nutrition Education Programs.

It loads the PEARS Coalitions registry and Coalition Survey responses,
flags coalitions missing a survey and surveys citing unknown coalitions,
writes the corrections workbooks, and emails each responsible staff
member their corrections.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.surveysweep.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for LOG_LEVEL=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for LOG_LEVEL=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("input-dir", "i", "", "directory holding the PEARS export workbooks")
	flags.StringP("output-dir", "d", "", "directory for the corrections workbooks")
	flags.Bool("dry-run", false, "build workbooks and notification bodies without sending mail")

	rootCmd.SetVersionTemplate("surveysweep {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. Only flags the user
// actually set override the config-file and environment values; the
// logger is then rebuilt with the final settings.
func (a *App) setupCommand(c *cobra.Command, _ []string) error {
	if c.Flags().Changed("verbose") {
		a.config.Verbose = mustGetBool(c, "verbose")
	}
	if c.Flags().Changed("quiet") {
		a.config.Quiet = mustGetBool(c, "quiet")
	}
	if c.Flags().Changed("no-color") {
		a.config.NoColor = mustGetBool(c, "no-color")
	}
	if c.Flags().Changed("dry-run") {
		a.config.DryRun = mustGetBool(c, "dry-run")
	}
	if c.Flags().Changed("input-dir") {
		a.config.InputDir = mustGetString(c, "input-dir")
	}
	if c.Flags().Changed("output-dir") {
		a.config.OutputDir = mustGetString(c, "output-dir")
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewRunCommand(a))
	rootCmd.AddCommand(cmd.NewVersionCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetBool(c *cobra.Command, name string) bool {
	val, err := c.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetString(c *cobra.Command, name string) string {
	val, err := c.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
