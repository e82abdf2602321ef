package holidayapi

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// RemoteError is returned when the API answers with a non-2xx status. Body
// holds the response payload, which is already human readable.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("holidayapi: unexpected status %d", e.StatusCode)
	}
	return e.Body
}

// Client sends one request per call; it never retries.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

type Option func(*Client)

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.http.SetHeader("User-Agent", ua) }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
		c.http.SetLogger(restyLogger{l: l})
	}
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().SetBaseURL(baseURL),
		log:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetRaw sends req and returns the body as text. Non-2xx answers return the
// body together with a *RemoteError.
func (c *Client) GetRaw(ctx context.Context, req Request) (string, error) {
	query := req.Query()
	redacted := req.Query()
	redacted.Set("key", "REDACTED")
	c.log.Debug().
		Str("endpoint", string(req.Endpoint)).
		Str("query", redacted.Encode()).
		Msg("sending request")

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(string(req.Endpoint))
	if err != nil {
		return "", fmt.Errorf("request %s failed: %w", req.Endpoint, err)
	}

	body := resp.String()
	c.log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Int("bytes", len(body)).
		Msg("received response")

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return body, &RemoteError{StatusCode: resp.StatusCode(), Body: body}
	}
	return body, nil
}

// restyLogger routes resty's internal warnings into zerolog.
type restyLogger struct {
	l zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }
