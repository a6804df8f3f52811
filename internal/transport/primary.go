package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 20 << 20

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// statsHeaders is the static header set the stats service expects from a
// browser session. Requests without it are rejected or stalled upstream.
var statsHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.9",
	"Origin":             "https://www.nba.com",
	"Referer":            "https://www.nba.com/",
	"User-Agent":         userAgent,
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Primary is the plain-HTTP fetch tier.
type Primary struct {
	httpClient   httpDoer
	timeout      time.Duration
	maxBodyBytes int64
}

// PrimaryConfig controls the primary tier. Zero values fall back to defaults.
type PrimaryConfig struct {
	HTTPClient   *http.Client
	Timeout      time.Duration
	MaxBodyBytes int64
}

// NewPrimary constructs the primary fetch tier.
func NewPrimary(cfg PrimaryConfig) *Primary {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: timeout}
	}
	return &Primary{httpClient: doer, timeout: timeout, maxBodyBytes: maxBody}
}

// Fetch issues one GET with the static header set and returns the body. The
// per-request timeout acts as an abort signal; there is no retry here. Bodies
// above the byte ceiling are rejected before parsing, and the body must be
// well-formed JSON.
func (p *Primary) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range statsHeaders {
		req.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &StatusError{URL: url, Status: resp.StatusCode}
	}

	body, err := readCapped(resp.Body, p.maxBodyBytes)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}
	return body, nil
}

func readCapped(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
