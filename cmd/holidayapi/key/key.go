package key

import (
	"github.com/flarebyte/holidayapi-cli/internal/app"
	"github.com/spf13/cobra"
)

// NewCmd implements `holidayapi key [NEW_KEY]`.
func NewCmd(env *app.Env) *cobra.Command {
	return &cobra.Command{
		Use:           "key [NEW_KEY]",
		Short:         "Show the stored API key, or validate and store a new one",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return env.ShowKey()
			}
			return env.SetKey(args[0])
		},
	}
}
