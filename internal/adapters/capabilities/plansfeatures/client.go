package plansfeatures

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"purrlog/internal/platform/httpclient"
)

var (
	ErrPlansNotConfigured = errors.New("plans-features client not configured")
	ErrPlansUnauthorized  = errors.New("plans-features unauthorized")
	ErrPlansUpstream      = errors.New("plans-features upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
	Transport    http.RoundTripper
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrPlansNotConfigured
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   timeout,
		Transport: cfg.Transport,
		Header:    map[string]string{h: strings.TrimSpace(cfg.APIKey)},
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// CapabilitiesResponse: {"capabilities": {"assistant:chat": true}}
type CapabilitiesResponse struct {
	Capabilities map[string]bool `json:"capabilities"`
}

func (c *Client) GetCapabilities(ctx context.Context, userID string) (CapabilitiesResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CapabilitiesResponse{}, errors.New("userID required")
	}

	var out CapabilitiesResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/v1/capabilities?user_id="+url.QueryEscape(userID), nil, nil, &out)
	switch httpclient.StatusOf(err) {
	case 0:
		if err != nil {
			return CapabilitiesResponse{}, fmt.Errorf("%w: %v", ErrPlansUpstream, err)
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return CapabilitiesResponse{}, ErrPlansUnauthorized
	default:
		return CapabilitiesResponse{}, fmt.Errorf("%w: %v", ErrPlansUpstream, err)
	}
	if out.Capabilities == nil {
		out.Capabilities = map[string]bool{}
	}
	return out, nil
}
