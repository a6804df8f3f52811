// Package stats is a typed, read-only client for the NBA statistics web
// service. One method exists per upstream endpoint; every method validates
// its identifiers, fills documented default parameters, fetches over the
// configured transport tiers, normalizes the response envelope, and runs
// lenient schema validation before returning flat camelCased rows.
package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aself101/nba-api/internal/norm"
	"github.com/aself101/nba-api/internal/schema"
	"github.com/aself101/nba-api/internal/transport"
	"github.com/aself101/nba-api/reference"
)

// Row is a single flat record keyed by camelCased field name.
type Row = map[string]any

const (
	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultLiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
)

// Recorder observes endpoint calls. The concrete implementation lives with
// the caller; a nil Recorder disables observation.
type Recorder interface {
	RecordEndpointCall(endpoint string, duration time.Duration, err error)
	RecordShapeDrift(endpoint string)
}

// Config controls client construction. Zero values fall back to defaults.
type Config struct {
	StatsBaseURL string
	LiveBaseURL  string
	Timeout      time.Duration
	MaxBodyBytes int64
	HTTPClient   *http.Client

	// SecondaryFetch enables the headless-browser fallback tier for
	// endpoints that block the primary transport. The fallback is strictly
	// sequential: path A first, path B only after A fails.
	SecondaryFetch bool

	Logger    *slog.Logger
	Recorder  Recorder
	Reference *reference.Source
}

// Client is the endpoint facade. It holds no mutable state across calls, so
// concurrent use from multiple goroutines is safe without locking.
type Client struct {
	statsBaseURL string
	liveBaseURL  string
	fetcher      transport.Fetcher
	logger       *slog.Logger
	recorder     Recorder
	ref          *reference.Source
}

// New constructs a client.
func New(cfg Config) *Client {
	statsBase := cfg.StatsBaseURL
	if statsBase == "" {
		statsBase = defaultStatsBaseURL
	}
	liveBase := cfg.LiveBaseURL
	if liveBase == "" {
		liveBase = defaultLiveBaseURL
	}

	primary := transport.NewPrimary(transport.PrimaryConfig{
		HTTPClient:   cfg.HTTPClient,
		Timeout:      cfg.Timeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	var fetcher transport.Fetcher = primary
	if cfg.SecondaryFetch {
		browser := transport.NewBrowser(0, cfg.MaxBodyBytes, cfg.Logger)
		fetcher = transport.NewTiered(primary, browser, cfg.Logger)
	}

	ref := cfg.Reference
	if ref == nil {
		ref = reference.DefaultSource()
	}

	return &Client{
		statsBaseURL: statsBase,
		liveBaseURL:  liveBase,
		fetcher:      fetcher,
		logger:       cfg.Logger,
		recorder:     cfg.Recorder,
		ref:          ref,
	}
}

// Reference exposes the injected lookup source.
func (c *Client) Reference() *reference.Source {
	return c.ref
}

// ResolvePlayer finds a player in the reference table by name pattern. Zero
// matches is a NotFoundError; multiple matches return the first.
func (c *Client) ResolvePlayer(pattern string) (reference.Player, error) {
	matches, err := c.ref.FindPlayers(pattern)
	if err != nil {
		return reference.Player{}, &InputError{Param: "pattern", Value: pattern, Reason: err.Error()}
	}
	if len(matches) == 0 {
		return reference.Player{}, &NotFoundError{Resource: "player", ID: pattern}
	}
	return matches[0], nil
}

// ResolveTeam finds a team in the reference table by tricode.
func (c *Client) ResolveTeam(abbr string) (reference.Team, error) {
	team, ok := c.ref.TeamByAbbreviation(abbr)
	if !ok {
		return reference.Team{}, &NotFoundError{Resource: "team", ID: abbr}
	}
	return team, nil
}

// Table fetches any standard-envelope endpoint and returns one named table
// without schema validation. It honors the dispatcher contract: an endpoint
// answering with a non-standard envelope yields no rows rather than an
// error.
func (c *Client) Table(ctx context.Context, endpoint, table string, opts Params) ([]Row, error) {
	tables, err := c.fetchTables(ctx, endpoint, params{}.merge(opts))
	if err != nil {
		return nil, err
	}
	return tables[table], nil
}

// fetchTables runs the standard-envelope path: fetch, dispatch, camelCase.
func (c *Client) fetchTables(ctx context.Context, endpoint string, p params) (map[string][]norm.Row, error) {
	body, err := c.fetch(ctx, endpoint, c.statsBaseURL+"/"+endpoint+"?"+p.encode())
	if err != nil {
		return nil, err
	}
	tables, err := norm.NormalizeResponse(body)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	return tables, nil
}

// fetchLive runs the raw-passthrough path for the non-standard live feeds.
func (c *Client) fetchLive(ctx context.Context, endpoint, path string) (map[string]any, error) {
	body, err := c.fetch(ctx, endpoint, c.liveBaseURL+path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, endpoint, url string) ([]byte, error) {
	start := time.Now()
	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		err = &NetworkError{Endpoint: endpoint, Err: err}
	}
	if c.recorder != nil {
		c.recorder.RecordEndpointCall(endpoint, time.Since(start), err)
	}
	return body, err
}

// tableRows fetches one endpoint table and applies lenient validation.
func (c *Client) tableRows(ctx context.Context, endpoint, table string, p params, shape schema.Shape) ([]Row, error) {
	tables, err := c.fetchTables(ctx, endpoint, p)
	if err != nil {
		return nil, err
	}
	return c.validated(endpoint, shape, tables[table]), nil
}

// singleRow fetches a singular-record table. Zero rows is an explicit
// not-found condition naming the requested identifier, never an empty row.
func (c *Client) singleRow(ctx context.Context, endpoint, table string, p params, shape schema.Shape, resource, id string) (Row, error) {
	rows, err := c.tableRows(ctx, endpoint, table, p, shape)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Resource: resource, ID: id}
	}
	return rows[0], nil
}

func (c *Client) validated(endpoint string, shape schema.Shape, rows []norm.Row) []Row {
	validated, drifted := schema.ValidateOrPassthrough(c.logger, shape, rows)
	if drifted && c.recorder != nil {
		c.recorder.RecordShapeDrift(endpoint)
	}
	return validated
}
