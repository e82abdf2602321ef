package query

import (
	"github.com/flarebyte/holidayapi-cli/internal/app"
	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/spf13/cobra"
)

// NewLanguagesCmd implements `holidayapi languages`.
func NewLanguagesCmd(env *app.Env) *cobra.Command {
	var (
		common                   commonFlags
		language, search, format string
	)
	cmd := &cobra.Command{
		Use:           "languages",
		Short:         "List supported languages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := holidayapi.LanguagesQuery{
				Language: changedString(cmd, "language", language),
				Search:   changedString(cmd, "search", search),
				Format:   format,
				Pretty:   common.pretty,
			}
			return env.Query(cmd.Context(), common.override(cmd), func(key string) holidayapi.Request {
				return holidayapi.Languages(key, q)
			}, common.jq)
		},
	}
	common.bind(cmd)
	bindFormat(cmd, &format)
	cmd.Flags().StringVarP(&language, "language", "l", "", "Return a single language (ISO 639-1)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search languages by code or name")
	return cmd
}
