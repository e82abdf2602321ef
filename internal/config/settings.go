package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "HOLIDAYAPI"

	// DefaultBaseURL is the public v1 endpoint root.
	DefaultBaseURL = "https://holidayapi.com/v1/"
)

// Settings are the runtime knobs read from the environment.
type Settings struct {
	BaseURL   string
	ConfigDir string
	Timeout   time.Duration
	LogLevel  string
}

// LoadSettings reads HOLIDAYAPI_* environment variables.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("config_dir", "")
	v.SetDefault("timeout", "0s")
	v.SetDefault("log_level", "warn")

	s := Settings{
		BaseURL:   strings.TrimSpace(v.GetString("base_url")),
		ConfigDir: strings.TrimSpace(v.GetString("config_dir")),
		LogLevel:  strings.TrimSpace(v.GetString("log_level")),
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("timeout")))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid %s_TIMEOUT: %v", envPrefix, err)
	}
	if timeout < 0 {
		return Settings{}, fmt.Errorf("invalid %s_TIMEOUT: must not be negative", envPrefix)
	}
	s.Timeout = timeout

	u, err := url.Parse(s.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Settings{}, fmt.Errorf("invalid %s_BASE_URL %q: expected an absolute http(s) URL", envPrefix, s.BaseURL)
	}

	if s.ConfigDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Settings{}, err
		}
		s.ConfigDir = dir
	}
	return s, nil
}
