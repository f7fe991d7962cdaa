// Package relay posts lead submissions to the external form relay, which forwards
// them by email to the operator address.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"frotaweb/pkg/leadform"
	"frotaweb/pkg/logger"
)

const (
	DefaultBaseURL   = "https://formsubmit.co/ajax"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "frotaweb-relay/1.0"
)

// Config is the relay client configuration
type Config struct {
	BaseURL   string        `json:"base_url" yaml:"base_url"`
	Email     string        `json:"email" yaml:"email"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"user_agent" yaml:"user_agent"`
}

// ProbeStatus is the outcome of the last reachability probe.
type ProbeStatus struct {
	Reachable  bool          `json:"reachable"`
	StatusCode int           `json:"status_code,omitempty"`
	Latency    time.Duration `json:"latency"`
	CheckedAt  time.Time     `json:"checked_at"`
	Error      string        `json:"error,omitempty"`
}

// Client sends payloads to the relay. One Send is one POST: the client never retries.
type Client struct {
	http     *resty.Client
	endpoint string
	probeURL string

	mu        sync.RWMutex
	lastProbe *ProbeStatus
}

// NewClient creates a relay client
func NewClient(config *Config) (*Client, error) {
	if config.Email == "" {
		return nil, ErrEmailEmpty
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	base, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base url %q", ErrInvalidConfig, config.BaseURL)
	}

	httpClient := resty.New().
		SetTimeout(config.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", config.UserAgent)

	return &Client{
		http:     httpClient,
		endpoint: base.String() + "/" + url.PathEscape(config.Email),
		probeURL: base.Scheme + "://" + base.Host + "/",
	}, nil
}

// Endpoint returns the URL submissions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ajaxResponse is the JSON answer of the relay's ajax endpoint. success is sent
// either as a string or as a boolean.
type ajaxResponse struct {
	Success json.RawMessage `json:"success"`
	Message string          `json:"message"`
}

// Send posts the payload as multipart/form-data.
func (c *Client) Send(ctx context.Context, p *leadform.Payload) error {
	body, contentType, err := p.Encode()
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendRequest, err)
	}

	log.Debug("Relay responded",
		zap.Int("status", resp.StatusCode()),
		zap.Int("fields", p.Len()),
		zap.Duration("latency", time.Since(start)))

	if !resp.IsSuccess() {
		return &HTTPError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       truncate(resp.String(), 512),
		}
	}

	var answer ajaxResponse
	if json.Unmarshal(resp.Body(), &answer) == nil && isFalse(answer.Success) {
		return &RejectedError{Message: answer.Message}
	}
	return nil
}

// Probe checks that the relay host answers at all. Any status below 500 counts as
// reachable. The result is kept for LastProbe.
func (c *Client) Probe(ctx context.Context) ProbeStatus {
	start := time.Now()
	status := ProbeStatus{CheckedAt: start}

	resp, err := c.http.R().SetContext(ctx).Head(c.probeURL)
	status.Latency = time.Since(start)
	switch {
	case err != nil:
		status.Error = fmt.Errorf("%w: %w", ErrUnreachable, err).Error()
	case resp.StatusCode() >= 500:
		status.StatusCode = resp.StatusCode()
		status.Error = fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode()).Error()
	default:
		status.StatusCode = resp.StatusCode()
		status.Reachable = true
	}

	c.mu.Lock()
	c.lastProbe = &status
	c.mu.Unlock()
	return status
}

// LastProbe returns the most recent probe result, or nil before the first probe.
func (c *Client) LastProbe() *ProbeStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastProbe == nil {
		return nil
	}
	s := *c.lastProbe
	return &s
}

func isFalse(raw json.RawMessage) bool {
	v := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return strings.EqualFold(v, "false")
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
