// Package apiclient provides a thin JSON wrapper around net/http for
// calling the rag-lite API. It applies a JSON content-type by default,
// serializes structured request bodies, decodes JSON responses, and
// normalizes every failure (transport error, decode error, error status)
// into a single error value that is logged before being returned.
//
// A caller-supplied Headers map fully replaces the default header set
// rather than merging with it; this mirrors the behavior the UI depends on.
//
// Example usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"net/http"
//
//		"github.com/wind-zhou5210/rag-lite/apiclient"
//		"github.com/wind-zhou5210/rag-lite/transport/logging"
//		"github.com/wind-zhou5210/rag-lite/transport/requestid"
//	)
//
//	func main() {
//		client := apiclient.New(
//			apiclient.WithBaseURL("https://rag.example.com"),
//			apiclient.WithHTTPClient(&http.Client{
//				Transport: requestid.New(requestid.WithBase(logging.New())),
//			}),
//		)
//
//		body, err := client.Do(context.Background(), "/api/knowledgebases", apiclient.Options{
//			Method: http.MethodPost,
//			Body:   map[string]string{"name": "papers"},
//		})
//		if err != nil {
//			fmt.Println("request failed:", err)
//			return
//		}
//		fmt.Println(string(body))
//	}
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wind-zhou5210/rag-lite/utility"
)

// fallbackErrorMessage is used when an error response carries neither an
// "error" nor a "message" field.
const fallbackErrorMessage = "Request failed"

// Logger defines the minimal logging interface required by the client.
// It matches log/slog.Logger's LogAttrs method, but allows plugging in custom loggers.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// config holds configuration options for a Client.
type config struct {
	httpClient *http.Client
	logger     Logger
	baseURL    string
}

// Option defines a functional option used to configure a Client.
type Option func(*config)

// WithHTTPClient sets the underlying *http.Client, allowing custom
// transports (see the transport packages) or timeouts. Defaults to
// http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom Logger implementation. Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithBaseURL sets a base URL prepended to relative request paths.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// Options carries per-request parameters.
type Options struct {
	// Method is the HTTP method. Defaults to GET.
	Method string

	// Headers, when non-nil, fully replaces the default header set
	// ({"Content-Type": "application/json"}). There is no deep merge.
	Headers map[string]string

	// Body is the request payload. string and []byte values are sent as-is;
	// any other non-nil value is JSON-encoded first.
	Body any
}

// Client issues JSON requests against the rag-lite API.
type Client struct {
	httpClient *http.Client
	logger     Logger
	baseURL    string
}

// New creates a Client with optional configuration.
func New(opts ...Option) *Client {
	c := &config{
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return &Client{
		httpClient: c.httpClient,
		logger:     c.logger,
		baseURL:    c.baseURL,
	}
}

// Do issues the request described by opts against url (resolved against the
// configured base URL when relative) and returns the JSON-decoded response
// body. A response with an error status fails with a message taken from the
// body's "error" field, else its "message" field, else "Request failed".
// Failures are logged and returned; there is no retry.
func (c *Client) Do(ctx context.Context, url string, opts Options) (json.RawMessage, error) {
	method := resolveMethod(opts)
	target := c.resolveURL(url)

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, c.fail(ctx, method, target, fmt.Errorf("encode request body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, c.fail(ctx, method, target, err)
	}

	headers := opts.Headers
	if headers == nil {
		headers = map[string]string{"Content-Type": "application/json"}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(ctx, method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(ctx, method, target, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(ctx, method, target, errors.New(errorMessage(data)))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, c.fail(ctx, method, target, fmt.Errorf("decode response body: %w", err))
	}

	return raw, nil
}

// DoAs issues the request via c.Do and decodes the response body into T.
//
// Example:
//
//	kb, err := apiclient.DoAs[Knowledgebase](ctx, client, "/api/knowledgebases/42", apiclient.Options{})
func DoAs[T any](ctx context.Context, c *Client, url string, opts Options) (*T, error) {
	raw, err := c.Do(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	v, err := utility.UnmarshalJSONAs[T](raw)
	if err != nil {
		return nil, c.fail(ctx, resolveMethod(opts), c.resolveURL(url), fmt.Errorf("decode response body: %w", err))
	}

	return v, nil
}

// Envelope is the unified response shape of the rag-lite API:
// {"code": ..., "message": ..., "data": ...}.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DoEnvelope issues the request via Do and decodes the unified response
// envelope.
func (c *Client) DoEnvelope(ctx context.Context, url string, opts Options) (*Envelope, error) {
	return DoAs[Envelope](ctx, c, url, opts)
}

// fail logs a request failure before handing the error back to the caller.
func (c *Client) fail(ctx context.Context, method, url string, err error) error {
	c.logger.LogAttrs(ctx, slog.LevelError, "api request failed",
		slog.String("method", method),
		slog.String("url", url),
		slog.String("error", err.Error()),
	)
	return err
}

// resolveMethod applies the default GET method.
func resolveMethod(opts Options) string {
	if opts.Method == "" {
		return http.MethodGet
	}
	return opts.Method
}

// resolveURL joins a relative path with the configured base URL.
func (c *Client) resolveURL(url string) string {
	if c.baseURL != "" && !strings.Contains(url, "://") {
		return c.baseURL + url
	}
	return url
}

// encodeBody prepares the request body reader. string and []byte pass
// through unmodified; other values are JSON-encoded.
func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

// errorMessage extracts the failure text from an error response body,
// preferring "error" over "message" over the generic fallback.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fallbackErrorMessage
	}

	switch {
	case body.Error != "":
		return body.Error
	case body.Message != "":
		return body.Message
	default:
		return fallbackErrorMessage
	}
}
