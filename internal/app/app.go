// Package app runs one CLI invocation: resolve the key, build the request,
// call the API and print the answer.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/flarebyte/holidayapi-cli/internal/apikey"
	"github.com/flarebyte/holidayapi-cli/internal/buildinfo"
	"github.com/flarebyte/holidayapi-cli/internal/config"
	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/flarebyte/holidayapi-cli/internal/logging"
	"github.com/flarebyte/holidayapi-cli/internal/output"
	"github.com/rs/zerolog"
)

// Env is created once per process and passed to every command.
type Env struct {
	Settings config.Settings
	Store    *config.Store
	Out      io.Writer
	Err      io.Writer
	Log      zerolog.Logger

	client *holidayapi.Client
}

// NewEnv wires the store and logger from settings.
func NewEnv(s config.Settings, out, errOut io.Writer) *Env {
	return &Env{
		Settings: s,
		Store:    config.NewStore(s.ConfigDir),
		Out:      out,
		Err:      errOut,
		Log:      logging.New(errOut, logging.ParseLevel(s.LogLevel)),
	}
}

// SetVerbose switches diagnostics to debug level.
func (e *Env) SetVerbose(v bool) {
	if v {
		e.Log = e.Log.Level(zerolog.DebugLevel)
	}
}

// Client returns the API client, creating it on first use.
func (e *Env) Client() *holidayapi.Client {
	if e.client == nil {
		e.client = holidayapi.New(e.Settings.BaseURL,
			holidayapi.WithTimeout(e.Settings.Timeout),
			holidayapi.WithUserAgent(buildinfo.UserAgent()),
			holidayapi.WithLogger(e.Log),
		)
	}
	return e.client
}

// BuildFunc produces the request for one command from the resolved key.
type BuildFunc func(key string) holidayapi.Request

// Query resolves the key, builds the request, sends it and prints the body.
// Remote failures are printed and do not change the exit code.
func (e *Env) Query(ctx context.Context, override *string, build BuildFunc, filter string) error {
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	key, err := apikey.Resolve(cfg.APIKey, override)
	if errors.Is(err, apikey.ErrMissingKey) {
		return fail(err.Error())
	}
	if err != nil {
		return err
	}

	req := build(key)
	body, reqErr := e.Client().GetRaw(ctx, req)
	if reqErr != nil {
		e.Log.Debug().Err(reqErr).Str("endpoint", string(req.Endpoint)).Msg("request failed")
	}
	if err := output.Emit(e.Out, body, reqErr, filter); err != nil {
		return fail(err.Error())
	}
	return nil
}

// ShowKey prints the stored key, or how to provide one.
func (e *Env) ShowKey() error {
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == nil {
		_, err = fmt.Fprintln(e.Out, apikey.ErrMissingKey.Error())
		return err
	}
	_, err = fmt.Fprintf(e.Out, "Current key: %s\n", *cfg.APIKey)
	return err
}

// SetKey validates and stores key. An invalid key leaves the file untouched.
func (e *Env) SetKey(key string) error {
	if err := apikey.ValidateFormat(key); err != nil {
		return fail(fmt.Sprintf("%s is not a valid key: %v", key, err))
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	cfg.APIKey = &key
	if err := e.Store.Save(cfg); err != nil {
		return fail(err.Error())
	}
	e.Log.Debug().Str("path", e.Store.Path()).Msg("api key stored")
	_, err = fmt.Fprintf(e.Out, "Api key set to: %s\n", key)
	return err
}

func (e *Env) loadConfig() (config.StoredConfig, error) {
	cfg, err := e.Store.Load()
	if err != nil {
		return config.StoredConfig{}, fail(err.Error())
	}
	return cfg, nil
}
