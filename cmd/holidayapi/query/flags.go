// Package query holds the commands that call the API. They share one flow:
// resolve key, build request, send, print.
package query

import (
	"fmt"
	"strconv"

	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/spf13/cobra"
)

// commonFlags are accepted by every API command.
type commonFlags struct {
	key    string
	jq     string
	pretty bool
}

func (c *commonFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.key, "key", "k", "", "API key to use instead of the stored one")
	cmd.Flags().StringVar(&c.jq, "jq", "", "Filter a JSON response with a jq expression")
	cmd.Flags().BoolVarP(&c.pretty, "pretty", "p", false, "Ask the API for pretty printed output")
}

// override returns the -k/--key value when the flag was given, even if empty.
func (c *commonFlags) override(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("key") {
		return nil
	}
	k := c.key
	return &k
}

func bindFormat(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", holidayapi.DefaultFormat, "Response format: csv, json, php, tsv, xml or yaml")
}

func changedString(cmd *cobra.Command, name, v string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func changedInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func parseIntArg(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", name, v)
	}
	return n, nil
}
