package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production API host
const DefaultBaseURL = "https://api.infinum.academy"

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"
)

// Client issues one HTTP request per API operation
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
// It applies to a copy of the HTTP client, so a shared client is never changed.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the API host the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes a single API call
type request struct {
	op          string
	method      string
	path        string
	token       string
	body        []byte
	contentType string
}

func jsonRequest(op, method, path, token string, payload any) (request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("%s: failed to encode request: %w", op, err)
	}
	return request{
		op:          op,
		method:      method,
		path:        path,
		token:       token,
		body:        body,
		contentType: contentTypeJSON,
	}, nil
}

// send performs r and decodes the envelope's data into T
func send[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T

	data, err := c.roundTrip(ctx, r)
	if err != nil {
		return zero, err
	}

	v, err := DecodeEnvelope[T](data)
	if err != nil {
		c.logger.Warn().Err(err).Str("op", r.op).Msg("Failed to decode response")
		return zero, &DecodeError{Op: r.op, Err: err}
	}
	return v, nil
}

// roundTrip returns the body of a 2xx response
func (c *Client) roundTrip(ctx context.Context, r request) ([]byte, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, &NetworkError{Op: r.op, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(headerRequestID, requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set(headerAuthorization, r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("op", r.op).
			Str("request_id", requestID).
			Msg("Request failed")
		return nil, &NetworkError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("op", r.op).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("Request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		c.logger.Warn().
			Str("op", r.op).
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Msg("Unexpected response status")
		return nil, &HTTPStatusError{Op: r.op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: r.op, Err: err}
	}
	return data, nil
}

// DecodeEnvelope extracts the "data" member of an API payload into T
func DecodeEnvelope[T any](payload []byte) (T, error) {
	var zero T

	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return zero, err
	}
	if len(raw.Data) == 0 || bytes.Equal(raw.Data, []byte("null")) {
		return zero, ErrMissingData
	}

	var v T
	if err := json.Unmarshal(raw.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
