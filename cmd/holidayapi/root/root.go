package root

import (
	"os"

	"github.com/flarebyte/holidayapi-cli/cmd/holidayapi/key"
	"github.com/flarebyte/holidayapi-cli/cmd/holidayapi/query"
	"github.com/flarebyte/holidayapi-cli/cmd/holidayapi/version"
	"github.com/flarebyte/holidayapi-cli/internal/app"
	"github.com/flarebyte/holidayapi-cli/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for holidayapi.
func NewRootCmd(env *app.Env) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "holidayapi",
		Short: "CLI for holidayapi.com: holidays, countries, languages and business days",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log requests and responses to stderr (API key redacted)")
	cmd.SetOut(env.Out)
	cmd.SetErr(env.Err)

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(key.NewCmd(env))
	cmd.AddCommand(query.NewHolidaysCmd(env))
	cmd.AddCommand(query.NewCountriesCmd(env))
	cmd.AddCommand(query.NewLanguagesCmd(env))
	cmd.AddCommand(query.NewWorkdayCmd(env))
	cmd.AddCommand(query.NewWorkdaysCmd(env))

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	cmd := NewRootCmd(app.NewEnv(settings, os.Stdout, os.Stderr))
	cmd.SetArgs(args)
	return cmd.Execute()
}
