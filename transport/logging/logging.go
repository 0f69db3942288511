// Package logging provides an http.RoundTripper that logs outgoing HTTP
// requests and their outcomes via Go's structured logging (log/slog). It
// allows configurable logging of request and response fields, supports
// skipping certain requests, and can plug into custom loggers.
//
// The transport logs both the outgoing request and the completed exchange,
// including attributes such as method, URL, host, status code, duration,
// and error. Users can define which fields to log, the log levels, and
// conditions to skip logging for specific requests.
//
// Example usage:
//
//	package main
//
//	import (
//		"log/slog"
//		"net/http"
//
//		"github.com/wind-zhou5210/rag-lite/transport/logging"
//	)
//
//	func main() {
//		client := &http.Client{
//			Transport: logging.New(
//				logging.WithRequestOutLevel(slog.LevelDebug),
//				logging.WithSkipFunc(func(r *http.Request) bool {
//					return r.URL.Path == "/healthz"
//				}),
//			),
//		}
//		_ = client
//	}
package logging

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Logger defines the minimal logging interface required by this transport.
// It matches log/slog.Logger's LogAttrs method, but allows plugging in custom loggers.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// Field represents a request/response attribute that can be logged.
type Field string

const (
	// FieldMethod logs the HTTP request method (GET, POST, etc).
	FieldMethod Field = "method"
	// FieldURL logs the full request URL.
	FieldURL Field = "url"
	// FieldHost logs the target host.
	FieldHost Field = "host"
	// FieldStatus logs the HTTP response status code.
	FieldStatus Field = "status"
	// FieldDuration logs the time the exchange took.
	FieldDuration Field = "duration"
	// FieldError logs the transport error, if any.
	FieldError Field = "error"
)

// config defines configuration for the logging transport.
type config struct {
	// Logger to use for structured logging. Defaults to slog.Default().
	Logger Logger
	// LevelRequestOut defines the log level for outgoing requests.
	LevelRequestOut slog.Level
	// LevelResponseIn defines the log level for completed exchanges.
	LevelResponseIn slog.Level
	// FieldsOut is the list of request attributes logged before the exchange.
	FieldsOut []Field
	// FieldsIn is the list of attributes logged after the exchange completes.
	FieldsIn []Field
	// SkipFunc is an optional function to skip logging for certain requests.
	SkipFunc func(r *http.Request) bool
	// Base is the next http.RoundTripper in the chain.
	Base http.RoundTripper
}

// Option represents a functional option for configuring the logging transport.
type Option func(*config)

// WithLogger sets a custom Logger implementation.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.Logger = l
	}
}

// WithRequestOutLevel sets the log level for outgoing requests.
func WithRequestOutLevel(level slog.Level) Option {
	return func(c *config) {
		c.LevelRequestOut = level
	}
}

// WithResponseInLevel sets the log level for completed exchanges.
func WithResponseInLevel(level slog.Level) Option {
	return func(c *config) {
		c.LevelResponseIn = level
	}
}

// WithFieldsOut specifies which fields to log before the exchange.
func WithFieldsOut(fields ...Field) Option {
	return func(c *config) {
		c.FieldsOut = fields
	}
}

// WithFieldsIn specifies which fields to log after the exchange completes.
func WithFieldsIn(fields ...Field) Option {
	return func(c *config) {
		c.FieldsIn = fields
	}
}

// WithSkipFunc sets a custom function to decide whether a request should be skipped.
func WithSkipFunc(fn func(r *http.Request) bool) Option {
	return func(c *config) {
		c.SkipFunc = fn
	}
}

// WithBase sets the next http.RoundTripper in the chain.
// Defaults to http.DefaultTransport.
func WithBase(rt http.RoundTripper) Option {
	return func(c *config) {
		c.Base = rt
	}
}

// Transport is an http.RoundTripper that logs outgoing requests and their
// outcomes around a base transport.
type Transport struct {
	cfg *config
}

// New creates a logging Transport with the given options.
func New(opts ...Option) *Transport {
	c := &config{
		Logger:          slog.Default(),
		LevelRequestOut: slog.LevelInfo,
		LevelResponseIn: slog.LevelInfo,
		FieldsOut: []Field{
			FieldMethod, FieldURL, FieldHost,
		},
		FieldsIn: []Field{
			FieldMethod, FieldURL, FieldStatus, FieldDuration, FieldError,
		},
		Base: http.DefaultTransport,
	}

	for _, opt := range opts {
		opt(c)
	}

	return &Transport{cfg: c}
}

// RoundTrip logs the outgoing request, delegates to the base transport, and
// logs the completed exchange. Transport errors are logged at error level
// and returned unchanged.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	c := t.cfg

	if c.SkipFunc != nil && c.SkipFunc(req) {
		return c.Base.RoundTrip(req)
	}

	start := time.Now()

	c.Logger.LogAttrs(req.Context(), c.LevelRequestOut, "outgoing request",
		buildAttrs(c.FieldsOut, req, nil, nil, start)...,
	)

	resp, err := c.Base.RoundTrip(req)

	level := c.LevelResponseIn
	if err != nil {
		level = slog.LevelError
	}

	c.Logger.LogAttrs(req.Context(), level, "request completed",
		buildAttrs(c.FieldsIn, req, resp, err, start)...,
	)

	return resp, err
}

func buildAttrs(fields []Field, req *http.Request, resp *http.Response, err error, start time.Time) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields))

	for _, f := range fields {
		switch f {
		case FieldMethod:
			attrs = append(attrs, slog.String("method", req.Method))
		case FieldURL:
			attrs = append(attrs, slog.String("url", req.URL.String()))
		case FieldHost:
			attrs = append(attrs, slog.String("host", req.URL.Host))
		case FieldStatus:
			if resp != nil {
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			}
		case FieldDuration:
			attrs = append(attrs, slog.Duration("duration", time.Since(start)))
		case FieldError:
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
		}
	}

	return attrs
}
