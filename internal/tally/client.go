package tally

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// APIError is the uniform shape for transport failures: network errors,
// timeouts and non-2xx responses all surface as one of these.
type APIError struct {
	Message string
	Code    string
	Details string // raw response body, when one was received
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client posts XML requests to the Tally HTTP gateway. It never retries;
// each call is a single round trip. The URL and timeout may be updated
// after construction.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	http    *http.Client
	log     *logrus.Entry
}

// NewClient creates a client for the configured gateway.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		log:     logrus.WithField("component", "client"),
	}
}

// Post sends body as an XML document and returns the raw XML reply.
// Any failure is returned as an *APIError.
func (c *Client) Post(ctx context.Context, body string) (string, error) {
	c.mu.RLock()
	url := c.baseURL
	hc := c.http
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return "", &APIError{Message: err.Error(), Code: "HTTP_ERROR"}
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Accept", "application/xml")

	c.log.WithField("bytes", len(body)).Debug("posting request")

	resp, err := hc.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("request failed")
		return "", &APIError{Message: err.Error(), Code: "HTTP_ERROR"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Message: err.Error(), Code: "HTTP_ERROR"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithField("status", resp.Status).Warn("gateway returned error status")
		return "", &APIError{
			Message: fmt.Sprintf("tally returned status %s", resp.Status),
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Details: string(raw),
		}
	}

	c.log.WithField("bytes", len(raw)).Debug("response received")
	return string(raw), nil
}

// UpdateConfig replaces the gateway URL and/or timeout. Zero values leave
// the current setting in place. In-flight requests keep the old settings.
func (c *Client) UpdateConfig(url string, timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if url != "" {
		c.baseURL = url
	}
	if timeout > 0 {
		c.http = &http.Client{Timeout: timeout}
	}
}
