package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client issues JSON requests against the backend. The zero timeout of the
// embedded http.Client is replaced with a sane default; everything beyond
// that (retries, proxies) is left to the transport.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, primarily for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends one mutating request. Relative URLs are resolved against the
// base URL; token, when non-empty, becomes the Authorization bearer
// header. A non-2xx response decodes into a *RemoteError; a body that fits
// neither envelope wraps ErrUnexpectedShape.
func (c *Client) Do(ctx context.Context, method, url string, payload any, token string) (*Ok, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request payload")
		}
		body = bytes.NewReader(raw)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = c.baseURL + "/" + strings.TrimLeft(url, "/")
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), url, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", req.Method).Str("url", url).Msg("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeFailure(resp.StatusCode, raw)
	}

	var ok Ok
	if err := json.Unmarshal(raw, &ok); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "decoding success envelope: %v", err)
	}
	return &ok, nil
}

func decodeFailure(statusCode int, raw []byte) error {
	var env errEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Error == nil {
		return errors.Wrapf(ErrUnexpectedShape, "status %d without failure envelope", statusCode)
	}
	return &RemoteError{StatusCode: statusCode, Messages: env.Error}
}
