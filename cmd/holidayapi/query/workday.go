package query

import (
	"github.com/flarebyte/holidayapi-cli/internal/app"
	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/spf13/cobra"
)

// NewWorkdayCmd implements `holidayapi workday <COUNTRY> <START> <DAYS>`.
func NewWorkdayCmd(env *app.Env) *cobra.Command {
	var (
		common commonFlags
		format string
	)
	cmd := &cobra.Command{
		Use:           "workday <COUNTRY> <START> <DAYS>",
		Short:         "Find the business day DAYS working days from START",
		Long:          "Find the business day DAYS working days from START (YYYY-MM-DD).\nUse -- before a negative DAYS value, e.g. `workday US 2024-12-24 -- -3`.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseIntArg("DAYS", args[2])
			if err != nil {
				return err
			}
			q := holidayapi.WorkdayQuery{Format: format, Pretty: common.pretty}
			country, start := args[0], args[1]
			return env.Query(cmd.Context(), common.override(cmd), func(key string) holidayapi.Request {
				return holidayapi.Workday(key, country, start, days, q)
			}, common.jq)
		},
	}
	common.bind(cmd)
	bindFormat(cmd, &format)
	return cmd
}

// NewWorkdaysCmd implements `holidayapi workdays <COUNTRY> <START> <END>`.
// There is no --format: the endpoint does not accept one yet.
func NewWorkdaysCmd(env *app.Env) *cobra.Command {
	var common commonFlags
	cmd := &cobra.Command{
		Use:           "workdays <COUNTRY> <START> <END>",
		Short:         "Count the business days between START and END",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := holidayapi.WorkdaysQuery{Pretty: common.pretty}
			country, start, end := args[0], args[1], args[2]
			return env.Query(cmd.Context(), common.override(cmd), func(key string) holidayapi.Request {
				return holidayapi.Workdays(key, country, start, end, q)
			}, common.jq)
		},
	}
	common.bind(cmd)
	return cmd
}
