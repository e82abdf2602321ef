package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/flarebyte/holidayapi-cli/internal/buildinfo"
	"github.com/flarebyte/holidayapi-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagShort bool
	flagJSON  bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagShort || !flagJSON {
			_, err := fmt.Fprintf(os.Stdout, "holidayapi %s\n", buildinfo.Summary())
			return err
		}

		out := map[string]any{
			"version":    buildinfo.Resolved(),
			"commit":     buildinfo.Commit,
			"date":       buildinfo.Date,
			"built_by":   buildinfo.BuiltBy,
			"user_agent": buildinfo.UserAgent(),
			"api":        config.DefaultBaseURL,
			"go":         runtime.Version(),
			"go_os":      runtime.GOOS,
			"go_arch":    runtime.GOARCH,
		}
		return encodeJSON(os.Stdout, out)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
