package query

import (
	"github.com/flarebyte/holidayapi-cli/internal/app"
	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/spf13/cobra"
)

// NewHolidaysCmd implements `holidayapi holidays <COUNTRY> <YEAR>`.
func NewHolidaysCmd(env *app.Env) *cobra.Command {
	var (
		common                                   commonFlags
		month, day                               int
		public, subdivisions, previous, upcoming bool
		search, language, format                 string
	)
	cmd := &cobra.Command{
		Use:           "holidays <COUNTRY> <YEAR>",
		Short:         "List the holidays of a country for a year",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseIntArg("YEAR", args[1])
			if err != nil {
				return err
			}
			q := holidayapi.HolidaysQuery{
				Month:        changedInt(cmd, "month", month),
				Day:          changedInt(cmd, "day", day),
				Public:       public,
				Subdivisions: subdivisions,
				Search:       changedString(cmd, "search", search),
				Language:     changedString(cmd, "language", language),
				Previous:     previous,
				Upcoming:     upcoming,
				Format:       format,
				Pretty:       common.pretty,
			}
			country := args[0]
			return env.Query(cmd.Context(), common.override(cmd), func(key string) holidayapi.Request {
				return holidayapi.Holidays(key, country, year, q)
			}, common.jq)
		},
	}
	common.bind(cmd)
	bindFormat(cmd, &format)
	f := cmd.Flags()
	f.IntVarP(&month, "month", "m", 0, "Month (1-12)")
	f.IntVarP(&day, "day", "d", 0, "Day of the month (1-31)")
	f.BoolVar(&public, "public", false, "Only public holidays")
	f.BoolVar(&subdivisions, "subdivisions", false, "Include subdivision holidays")
	f.StringVarP(&search, "search", "s", "", "Search holidays by name")
	f.StringVarP(&language, "language", "l", "", "Translate holiday names (ISO 639-1)")
	f.BoolVar(&previous, "previous", false, "Return the holidays before the given date")
	f.BoolVar(&upcoming, "upcoming", false, "Return the holidays after the given date")
	return cmd
}
