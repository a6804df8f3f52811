package stats

import (
	"context"

	"github.com/aself101/nba-api/internal/schema"
)

// TeamInfo returns the franchise record for one team and season.
func (c *Client) TeamInfo(ctx context.Context, teamID int, season string, opts Params) (Row, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"TeamID":     itoa(teamID),
		"Season":     season,
		"SeasonType": "Regular Season",
		"LeagueID":   LeagueID00,
	}.merge(opts)
	return c.singleRow(ctx, "teaminfocommon", "TeamInfoCommon", p,
		schema.TeamInfoRow, "team", itoa(teamID))
}

// TeamRoster returns the player roster for one team and season.
func (c *Client) TeamRoster(ctx context.Context, teamID int, season string, opts Params) ([]Row, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"TeamID":   itoa(teamID),
		"Season":   season,
		"LeagueID": LeagueID00,
	}.merge(opts)
	return c.tableRows(ctx, "commonteamroster", "CommonTeamRoster", p, schema.RosterRow)
}

// TeamGameLog returns a team's game log for one season.
func (c *Client) TeamGameLog(ctx context.Context, teamID int, season string, opts Params) ([]Row, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"TeamID":     itoa(teamID),
		"Season":     season,
		"SeasonType": "Regular Season",
		"LeagueID":   LeagueID00,
	}.merge(opts)
	return c.tableRows(ctx, "teamgamelog", "TeamGameLog", p, schema.GameLogRow)
}

// TeamYearByYearStats returns one row per franchise season.
func (c *Client) TeamYearByYearStats(ctx context.Context, teamID int, opts Params) ([]Row, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}
	p := params{
		"TeamID":     itoa(teamID),
		"PerMode":    "Totals",
		"SeasonType": "Regular Season",
		"LeagueID":   LeagueID00,
	}.merge(opts)
	return c.tableRows(ctx, "teamyearbyyearstats", "TeamStats", p, schema.TeamYearRow)
}

// FranchiseHistory lists every franchise era, active and defunct.
func (c *Client) FranchiseHistory(ctx context.Context, opts Params) ([]Row, error) {
	p := params{"LeagueID": LeagueID00}.merge(opts)
	return c.tableRows(ctx, "franchisehistory", "FranchiseHistory", p, schema.FranchiseRow)
}
