// Package http provides the HTTP dispatcher used for all authenticated
// Magento API traffic.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/magerest/magento-go/internal/auth"
	"github.com/magerest/magento-go/internal/constants"
	"github.com/magerest/magento-go/pkg/magento"
)

// Request represents an API request. URL is the full request URL; the
// dispatcher does not know about scopes or endpoint routing.
type Request struct {
	Method  string
	URL     string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response. Non-2xx responses are returned to
// the caller rather than converted to errors; only authentication failures
// and transport problems surface as errors.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// ErrorSummary extracts the Magento error message from the body.
func (r *Response) ErrorSummary() string {
	return magento.ParseError(r.Body)
}

// Client dispatches authenticated requests with transport-level retry for
// transient upstream failures and a single transparent re-authentication
// on 401.
type Client struct {
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       magento.Logger
	userAgent    string
	debug        bool
}

// Option configures the dispatcher.
type Option func(*Client)

// WithLogger sets the logger for request/response events.
func WithLogger(logger magento.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug includes request and response bodies in the debug logs.
// Requests are always logged at debug severity; the logger's level
// decides whether they surface.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig tunes the transport retry count and backoff window.
// Non-positive values keep the defaults.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if retryMax > 0 {
			c.httpClient.RetryMax = retryMax
		}
		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}
		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, keeping the retry
// policy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a dispatcher. All requests carry the bearer token
// obtained from the token manager.
func NewClient(tokenManager auth.TokenManager, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = constants.TransportRetryMax
	rc.RetryWaitMin = constants.TransportRetryWaitMin
	rc.RetryWaitMax = constants.TransportRetryWaitMax
	rc.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	rc.CheckRetry = checkRetry
	rc.Logger = nil

	c := &Client{
		httpClient:   rc,
		tokenManager: tokenManager,
		logger:       magento.NopLogger{},
		userAgent:    constants.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkRetry retries connection failures for any method, and 502/503/504
// for POST and PUT only. Magento write endpoints are idempotent per SKU or
// entity id, so replaying a gateway-failed write is safe.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		method := resp.Request.Method
		return method == http.MethodPost || method == http.MethodPut, nil
	}
	return false, nil
}

// Do executes a request. A 401 response triggers exactly one token refresh
// and a replay of the identical request; a second 401 surfaces as an
// AuthenticationError. Any other non-2xx response is logged and returned
// to the caller for inspection.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %s", magento.ErrInvalidMethod, req.Method)
	}

	var body []byte
	if req.Method == http.MethodPost || req.Method == http.MethodPut {
		if req.Body == nil {
			return nil, magento.ErrEmptyPayload
		}
		var err error
		body, err = encodeBody(req.Body)
		if err != nil {
			return nil, err
		}
		if emptyPayload(body) {
			return nil, magento.ErrEmptyPayload
		}
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, req, body, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug("token rejected, re-authenticating", map[string]interface{}{
			"url": req.URL,
		})
		token, err = c.tokenManager.RefreshToken(ctx)
		if err != nil {
			return nil, err
		}
		resp, err = c.send(ctx, req, body, token)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, &magento.AuthenticationError{
				Message:    resp.ErrorSummary(),
				StatusCode: resp.StatusCode,
				Response:   string(resp.Body),
			}
		}
	}

	if !resp.OK() {
		c.logger.Error("request failed", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL,
			"status":  resp.StatusCode,
			"message": resp.ErrorSummary(),
		})
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, req *Request, body []byte, token string) (*Response, error) {
	requestURL := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if u, err := url.Parse(requestURL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		requestURL += sep + req.Query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	requestFields := map[string]interface{}{
		"method": req.Method,
		"url":    requestURL,
	}
	if c.debug && body != nil {
		requestFields["body"] = string(body)
	}
	c.logger.Debug("request", requestFields)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	responseFields := map[string]interface{}{
		"status": httpResp.StatusCode,
		"bytes":  len(respBody),
	}
	if c.debug {
		responseFields["body"] = string(respBody)
	}
	c.logger.Debug("response", responseFields)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func encodeBody(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		return data, nil
	}
}

// emptyPayload reports whether the encoded body carries no data. The API
// rejects empty writes, so they fail before any network traffic.
func emptyPayload(body []byte) bool {
	switch string(bytes.TrimSpace(body)) {
	case "", "{}", "[]", `""`, "null":
		return true
	}
	return false
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: url, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, URL: url, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, URL: url, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, URL: url})
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	c.httpClient.HTTPClient.CloseIdleConnections()
}
