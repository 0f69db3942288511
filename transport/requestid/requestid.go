// Package requestid provides an http.RoundTripper that assigns a unique
// identifier (UUID) to every outgoing HTTP request.
//
// Each request gets a UUID that is:
//  1. Stored in the request context under a configurable key.
//  2. Sent to the server under a configurable header key (default "X-Request-ID").
//
// This is useful for correlating client-side log records with server-side
// request logs. LogExtractor plugs the identifier into a ctxlog handler so
// it shows up on every record logged with the request's context.
//
// Example usage:
//
//	package main
//
//	import (
//		"net/http"
//
//		"github.com/wind-zhou5210/rag-lite/apiclient"
//		"github.com/wind-zhou5210/rag-lite/transport/requestid"
//	)
//
//	func main() {
//		client := apiclient.New(apiclient.WithHTTPClient(&http.Client{
//			Transport: requestid.New(),
//		}))
//		_ = client
//	}
package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wind-zhou5210/rag-lite/ctxlog"
)

type requestIDKey string

const (
	defaultRequestIDKey requestIDKey = "requestID"
)

// config holds configuration options for the Transport.
type config struct {
	contextKey any
	headerKey  string
	base       http.RoundTripper
}

// Option represents a functional option for configuring the Transport.
type Option func(*config)

// WithContextKey sets a custom context key under which the generated
// identifier is stored.
func WithContextKey(key any) Option {
	return func(c *config) {
		c.contextKey = key
	}
}

// WithHeaderKey sets a custom header key for the outgoing identifier.
func WithHeaderKey(key string) Option {
	return func(c *config) {
		c.headerKey = key
	}
}

// WithBase sets the next http.RoundTripper in the chain.
// Defaults to http.DefaultTransport.
func WithBase(rt http.RoundTripper) Option {
	return func(c *config) {
		c.base = rt
	}
}

// Transport is an http.RoundTripper that tags each outgoing request with a
// fresh UUID before delegating to the base transport.
type Transport struct {
	contextKey any
	headerKey  string
	base       http.RoundTripper
}

// New creates a request-ID Transport with optional configuration.
func New(opts ...Option) *Transport {
	c := &config{
		contextKey: defaultRequestIDKey,
		headerKey:  "X-Request-ID",
		base:       http.DefaultTransport,
	}

	for _, opt := range opts {
		opt(c)
	}

	return &Transport{
		contextKey: c.contextKey,
		headerKey:  c.headerKey,
		base:       c.base,
	}
}

// RoundTrip generates a UUID, stores it in the request context, sets the
// header on a clone of the request, and delegates to the base transport.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.New().String()

	clone := req.Clone(context.WithValue(req.Context(), t.contextKey, id))
	clone.Header.Set(t.headerKey, id)

	return t.base.RoundTrip(clone)
}

// FromContext retrieves the identifier stored in the context under the
// default key. If no identifier is stored or it is not a valid UUID, it
// returns nil.
func FromContext(ctx context.Context) *uuid.UUID {
	return fromContext(ctx, defaultRequestIDKey)
}

// FromContextWithKey retrieves the identifier stored in the context under
// the given key. If no identifier is stored or it is not a valid UUID, it
// returns nil.
func FromContextWithKey(ctx context.Context, key any) *uuid.UUID {
	return fromContext(ctx, key)
}

func fromContext(ctx context.Context, key any) *uuid.UUID {
	if ctx == nil {
		return nil
	}

	v := ctx.Value(key)
	if v == nil {
		return nil
	}

	s, ok := v.(string)
	if !ok {
		return nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}

	return &id
}

// LogExtractor returns a ctxlog.AttrExtractor that adds the request
// identifier stored under the default key to every log record carrying the
// request's context.
func LogExtractor() ctxlog.AttrExtractor {
	return func(ctx context.Context) []slog.Attr {
		if id := FromContext(ctx); id != nil {
			return []slog.Attr{slog.String("requestID", id.String())}
		}
		return nil
	}
}
