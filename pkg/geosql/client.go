// Package geosql is the HTTP client for the geo-SQL query service.
package geosql

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/geoquery-cli/internal/model"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second
)

// Client talks to the query service.
type Client interface {
	Query(ctx context.Context, question string) (*model.QueryResponse, error)
	Schema(ctx context.Context) (*model.SchemaResponse, error)
	Health(ctx context.Context) (*model.HealthResponse, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default service base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit throttles outbound queries to rps requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a query service client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type queryRequest struct {
	Question string `json:"question"`
}

func (c *httpClient) Query(ctx context.Context, question string) (*model.QueryResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "geosql: rate limit wait")
		}
	}

	body, err := json.Marshal(queryRequest{Question: question})
	if err != nil {
		return nil, eris.Wrap(err, "geosql: marshal query request")
	}

	var result model.QueryResponse
	if err := c.do(ctx, http.MethodPost, "/query", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) Schema(ctx context.Context) (*model.SchemaResponse, error) {
	var result model.SchemaResponse
	if err := c.do(ctx, http.MethodGet, "/schema", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) Health(ctx context.Context) (*model.HealthResponse, error) {
	var result model.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return eris.Wrapf(err, "geosql: create %s %s request", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrapf(err, "geosql: send %s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrapf(err, "geosql: read %s %s response", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrapf(err, "geosql: unmarshal %s %s response", method, path)
	}
	return nil
}

// apiError builds the failure for a non-2xx response, preferring the
// structured message field from the body.
func apiError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{Status: status, Message: payload.Message}
}
