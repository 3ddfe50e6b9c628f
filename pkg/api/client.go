// Package api is the HTTP client for the portfolio backend.
//
// Read endpoints answer with a {"data": ...} envelope which the client
// unwraps. Admin endpoints answer with a bare body which is handed back
// unchanged as json.RawMessage.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://faftech-be.vercel.app/api/v1"

// Client talks to the portfolio backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(c *Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) (opt Option) {
	opt = func(c *Client) {
		c.httpClient = hc
	}
	return opt
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) (opt Option) {
	opt = func(c *Client) {
		c.logger = logger
	}
	return opt
}

// NewClient creates a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (client *Client) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client = &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = client.logger.Named("api")
	return client
}

// BaseURL returns the backend root the client was created with.
func (c *Client) BaseURL() (baseURL string) {
	baseURL = c.baseURL
	return baseURL
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// getData issues an unauthenticated GET and decodes the envelope's data into out.
func (c *Client) getData(ctx context.Context, op, endpoint string, out interface{}) (err error) {
	var body []byte
	body, err = c.do(ctx, op, http.MethodGet, endpoint, "", nil, false)
	if err != nil {
		return err
	}

	var env envelope
	err = json.Unmarshal(body, &env)
	if err != nil {
		err = &Error{Kind: KindDecode, Op: op, Err: errors.Wrap(err, "failed to parse response envelope")}
		return err
	}

	// A missing or null data field leaves out at its zero value.
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return err
	}

	err = json.Unmarshal(env.Data, out)
	if err != nil {
		err = &Error{Kind: KindDecode, Op: op, Err: errors.Wrap(err, "failed to parse response data")}
		return err
	}

	return err
}

// mutate issues an authenticated request and returns the raw response body.
func (c *Client) mutate(ctx context.Context, op, method, endpoint, token string, payload interface{}) (raw json.RawMessage, err error) {
	var reqBody []byte
	if payload != nil {
		reqBody, err = json.Marshal(payload)
		if err != nil {
			err = &Error{Kind: KindDecode, Op: op, Err: errors.Wrap(err, "failed to marshal request")}
			return raw, err
		}
	}

	var body []byte
	body, err = c.do(ctx, op, method, endpoint, token, reqBody, true)
	if err != nil {
		return raw, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return raw, err
	}

	if !json.Valid(trimmed) {
		err = &Error{Kind: KindDecode, Op: op, Err: errors.New("response body is not valid JSON")}
		return raw, err
	}

	raw = json.RawMessage(trimmed)
	return raw, err
}

func (c *Client) do(ctx context.Context, op, method, endpoint, token string, reqBody []byte, auth bool) (respBody []byte, err error) {
	var reader io.Reader
	if reqBody != nil {
		reader = bytes.NewReader(reqBody)
	}

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		err = &Error{Kind: KindNetwork, Op: op, Err: errors.Wrap(err, "failed to create HTTP request")}
		return respBody, err
	}

	req.Header.Set("Content-Type", "application/json")
	if auth {
		// An empty token is sent as-is; the backend answers 401.
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()

	var resp *http.Response
	resp, err = c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		err = &Error{Kind: KindNetwork, Op: op, Err: errors.Wrap(err, "HTTP request failed")}
		return respBody, err
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = &Error{Kind: KindNetwork, Op: op, Err: errors.Wrap(err, "failed to read response body")}
		return respBody, err
	}

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = statusError(op, resp.StatusCode)
		return respBody, err
	}

	return respBody, err
}
