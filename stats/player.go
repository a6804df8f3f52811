package stats

import (
	"context"

	"github.com/aself101/nba-api/internal/schema"
)

// CommonAllPlayers lists every player for a season. With currentOnly set,
// historical players are filtered out upstream.
func (c *Client) CommonAllPlayers(ctx context.Context, season string, currentOnly bool, opts Params) ([]Row, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	onlyCurrent := "0"
	if currentOnly {
		onlyCurrent = "1"
	}
	p := params{
		"LeagueID":            LeagueID00,
		"Season":              season,
		"IsOnlyCurrentSeason": onlyCurrent,
	}.merge(opts)
	return c.tableRows(ctx, "commonallplayers", "CommonAllPlayers", p, schema.PlayerListRow)
}

// PlayerInfo returns the bio record for one player. A well-formed but
// unknown identifier is a NotFoundError, not an empty row.
func (c *Client) PlayerInfo(ctx context.Context, playerID int, opts Params) (Row, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	p := params{
		"PlayerID": itoa(playerID),
		"LeagueID": LeagueID00,
	}.merge(opts)
	return c.singleRow(ctx, "commonplayerinfo", "CommonPlayerInfo", p,
		schema.PlayerInfoRow, "player", itoa(playerID))
}

// PlayerCareerStats returns per-season regular-season totals for a player.
func (c *Client) PlayerCareerStats(ctx context.Context, playerID int, opts Params) ([]Row, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	p := params{
		"PlayerID": itoa(playerID),
		"PerMode":  "Totals",
		"LeagueID": LeagueID00,
	}.merge(opts)
	return c.tableRows(ctx, "playercareerstats", "SeasonTotalsRegularSeason", p, schema.CareerStatRow)
}

// PlayerGameLog returns a player's game log for one season in upstream
// (chronological) order.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string, opts Params) ([]Row, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"PlayerID":   itoa(playerID),
		"Season":     season,
		"SeasonType": "Regular Season",
		"LeagueID":   LeagueID00,
	}.merge(opts)
	return c.tableRows(ctx, "playergamelog", "PlayerGameLog", p, schema.GameLogRow)
}

// PlayerAwards lists a player's awards and honors.
func (c *Client) PlayerAwards(ctx context.Context, playerID int, opts Params) ([]Row, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	p := params{"PlayerID": itoa(playerID)}.merge(opts)
	return c.tableRows(ctx, "playerawards", "PlayerAwards", p, schema.AwardRow)
}
