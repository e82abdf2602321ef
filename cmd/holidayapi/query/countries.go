package query

import (
	"github.com/flarebyte/holidayapi-cli/internal/app"
	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/spf13/cobra"
)

// NewCountriesCmd implements `holidayapi countries`.
func NewCountriesCmd(env *app.Env) *cobra.Command {
	var (
		common                  commonFlags
		country, search, format string
		public                  bool
	)
	cmd := &cobra.Command{
		Use:           "countries",
		Short:         "List supported countries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := holidayapi.CountriesQuery{
				Country: changedString(cmd, "country", country),
				Search:  changedString(cmd, "search", search),
				Public:  public,
				Format:  format,
				Pretty:  common.pretty,
			}
			return env.Query(cmd.Context(), common.override(cmd), func(key string) holidayapi.Request {
				return holidayapi.Countries(key, q)
			}, common.jq)
		},
	}
	common.bind(cmd)
	bindFormat(cmd, &format)
	f := cmd.Flags()
	f.StringVarP(&country, "country", "c", "", "Return a single country (ISO 3166-1 or 3166-2)")
	f.StringVarP(&search, "search", "s", "", "Search countries by code or name")
	f.BoolVar(&public, "public", false, "Only countries with public holidays")
	return cmd
}
