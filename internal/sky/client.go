package sky

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexivanou/skytrip-api/internal/config"
	"go.uber.org/zap"
)

// APIError represents a non-2xx or status:false reply from the Sky-Scrapper API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sky api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("sky api: %s", e.Message)
}

// Client is an HTTP client for the Sky-Scrapper API.
// It attaches the RapidAPI credentials to every request and maps transport
// and upstream failures to *APIError.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option is a functional option for configuring the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Sky-Scrapper API client from configuration
func New(cfg config.SkyConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		host:       cfg.Host,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the common wrapper of every Sky-Scrapper payload
type envelope struct {
	Status    bool   `json:"status"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// get performs a GET request and decodes the JSON response into result.
// Context cancellation is propagated to the transport and returned unwrapped
// so callers can drop superseded requests silently.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	start := time.Now()

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return context.Canceled
		}
		c.logger.Debug("sky request failed",
			zap.String("path", path),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := c.parseError(resp)
		c.logger.Debug("sky request returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("sky request completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return nil
}

// parseError extracts an APIError from an error response body
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var env envelope
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

// checkStatus converts a status:false envelope into an APIError
func checkStatus(env envelope) error {
	if env.Status {
		return nil
	}
	msg := env.Message
	if msg == "" {
		msg = "request rejected by upstream"
	}
	return &APIError{Message: msg}
}
