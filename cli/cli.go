package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/holidayapi-cli/cli.Version=0.3.0' -X 'github.com/flarebyte/holidayapi-cli/cli.Date=2026-10-19'"
var (
	Version string
	Date    string
)
