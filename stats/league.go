package stats

import (
	"context"

	"github.com/aself101/nba-api/internal/schema"
)

// LeagueLeaders returns the leader board for one stat category, in upstream
// rank order.
func (c *Client) LeagueLeaders(ctx context.Context, season, statCategory string, opts Params) ([]Row, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	if statCategory == "" {
		statCategory = "PTS"
	}
	p := params{
		"LeagueID":     LeagueID00,
		"Season":       season,
		"SeasonType":   "Regular Season",
		"StatCategory": statCategory,
		"PerMode":      "PerGame",
		"Scope":        "S",
	}.merge(opts)
	return c.tableRows(ctx, "leagueleaders", "LeagueLeaders", p, schema.LeaderRow)
}

// LeagueGameLog returns every game line for one season.
func (c *Client) LeagueGameLog(ctx context.Context, season string, opts Params) ([]Row, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"LeagueID":     LeagueID00,
		"Season":       season,
		"SeasonType":   "Regular Season",
		"PlayerOrTeam": "T",
		"Sorter":       "DATE",
		"Direction":    "ASC",
		"Counter":      "0",
	}.merge(opts)
	return c.tableRows(ctx, "leaguegamelog", "LeagueGameLog", p, schema.GameLogRow)
}

// LeagueDashPlayerStats returns the league-wide player stat dashboard.
func (c *Client) LeagueDashPlayerStats(ctx context.Context, season string, opts Params) ([]Row, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := leagueDashDefaults(season).merge(opts)
	return c.tableRows(ctx, "leaguedashplayerstats", "LeagueDashPlayerStats", p, schema.DashStatRow)
}

// LeagueDashTeamStats returns the league-wide team stat dashboard.
func (c *Client) LeagueDashTeamStats(ctx context.Context, season string, opts Params) ([]Row, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := leagueDashDefaults(season).merge(opts)
	return c.tableRows(ctx, "leaguedashteamstats", "LeagueDashTeamStats", p, schema.DashStatRow)
}

// LeagueStandings returns the standings table for one season.
func (c *Client) LeagueStandings(ctx context.Context, season string, opts Params) ([]Row, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"LeagueID":   LeagueID00,
		"Season":     season,
		"SeasonType": "Regular Season",
	}.merge(opts)
	return c.tableRows(ctx, "leaguestandingsv3", "Standings", p, schema.StandingRow)
}

// DraftHistory lists draft picks, optionally filtered by season or team via
// opts.
func (c *Client) DraftHistory(ctx context.Context, opts Params) ([]Row, error) {
	p := params{"LeagueID": LeagueID00}.merge(opts)
	return c.tableRows(ctx, "drafthistory", "DraftHistory", p, schema.DraftHistoryRow)
}

// The dashboard endpoints share a wide set of required filter parameters;
// upstream rejects requests missing any of them even when blank.
func leagueDashDefaults(season string) params {
	return params{
		"LeagueID":       LeagueID00,
		"Season":         season,
		"SeasonType":     "Regular Season",
		"PerMode":        "PerGame",
		"MeasureType":    "Base",
		"Month":          "0",
		"OpponentTeamID": "0",
		"PaceAdjust":     "N",
		"Period":         "0",
		"PlusMinus":      "N",
		"Rank":           "N",
		"LastNGames":     "0",
		"Outcome":        "",
		"Location":       "",
		"DateFrom":       "",
		"DateTo":         "",
		"VsConference":   "",
		"VsDivision":     "",
		"GameSegment":    "",
		"SeasonSegment":  "",
	}
}
