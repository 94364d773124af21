// internal/adapters/sanity/client.go
package sanity

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

	"golang.org/x/time/rate"

	"luxe_estate/internal/adapters/observability"
	"luxe_estate/internal/domain"
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the derived https://{project}.api.sanity.io host.
	BaseURL string
}

type Client struct {
	endpoint string
	hc       *http.Client
	token    string
	rl       *rate.Limiter
}

type Option func(*Client)

// WithRateLimit throttles outgoing queries. The site does not use it; the
// mirror does, since it walks whole datasets.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.rl = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("project id is required")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("dataset is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	base := cfg.BaseURL
	if base == "" {
		// Authenticated reads must bypass the CDN.
		host := "api"
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn"
		}
		base = fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, host)
	}
	c := &Client{
		endpoint: fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimRight(base, "/"),
			strings.TrimPrefix(cfg.APIVersion, "v"), url.PathEscape(cfg.Dataset)),
		hc:    &http.Client{Timeout: 20 * time.Second},
		token: cfg.Token,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// APIError is a non-2xx answer that is neither a missing parameter nor an outage.
type APIError struct {
	Status      int
	Type        string
	Description string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("sanity: %d %s: %s", e.Status, e.Type, e.Description)
	}
	return fmt.Sprintf("sanity: %d: %s", e.Status, e.Description)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// Fetch runs q with params and decodes the "result" member into out. A null
// result leaves out at its zero value.
func (c *Client) Fetch(ctx context.Context, q domain.Query, params domain.Params, out any) error {
	u, err := c.queryURL(q, params)
	if err != nil {
		return err
	}
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "luxe-estate/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("sanity", q.Name, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrUnavailable, q.Name, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("sanity", q.Name, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
		var qr queryResponse
		if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
			return fmt.Errorf("decode %s response: %w", q.Name, err)
		}
		if len(qr.Result) == 0 || string(qr.Result) == "null" {
			return nil
		}
		if err := json.Unmarshal(qr.Result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", q.Name, err)
		}
		return nil

	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s: remote %d", domain.ErrUnavailable, q.Name, resp.StatusCode)

	default:
		return decodeError(resp)
	}
}

func (c *Client) queryURL(q domain.Query, params domain.Params) (string, error) {
	v := url.Values{}
	v.Set("query", q.Text)
	v.Set("perspective", "published")
	for k, val := range params {
		b, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("encode param %s: %w", k, err)
		}
		v.Set("$"+k, string(b))
	}
	return c.endpoint + "?" + v.Encode(), nil
}

func decodeError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var er errorResponse
	if err := json.Unmarshal(b, &er); err != nil || (er.Error.Description == "" && er.Message == "") {
		return &APIError{Status: resp.StatusCode, Description: strings.TrimSpace(string(b))}
	}
	desc := er.Error.Description
	if desc == "" {
		desc = er.Message
	}
	if resp.StatusCode == http.StatusBadRequest && strings.Contains(desc, "not provided") {
		return fmt.Errorf("%w: %s", domain.ErrMissingParam, desc)
	}
	return &APIError{Status: resp.StatusCode, Type: er.Error.Type, Description: desc}
}

// IsAPIError reports whether err carries a backend rejection.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
