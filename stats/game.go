package stats

import (
	"context"

	"github.com/aself101/nba-api/internal/norm"
	"github.com/aself101/nba-api/internal/schema"
)

// ScoreboardV2 bundles the two tables the scoreboard endpoint answers with.
type ScoreboardV2 struct {
	GameHeaders []Row
	LineScores  []Row
}

// Scoreboard returns the slate for one date from the tabular scoreboard
// endpoint.
func (c *Client) Scoreboard(ctx context.Context, date string, opts Params) (*ScoreboardV2, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	p := params{
		"GameDate":  date,
		"LeagueID":  LeagueID00,
		"DayOffset": "0",
	}.merge(opts)

	tables, err := c.fetchTables(ctx, "scoreboardv2", p)
	if err != nil {
		return nil, err
	}
	return &ScoreboardV2{
		GameHeaders: c.validated("scoreboardv2", schema.GameHeaderRow, tables["GameHeader"]),
		LineScores:  c.validated("scoreboardv2", schema.LineScoreRow, tables["LineScore"]),
	}, nil
}

// GameSummary returns the header record for one game. It also backs the
// box score endpoints, whose primary responses omit the game's date and
// human-readable code.
func (c *Client) GameSummary(ctx context.Context, gameID string, opts Params) (Row, error) {
	if err := validateGameID(gameID); err != nil {
		return nil, err
	}
	p := params{"GameID": gameID}.merge(opts)
	return c.singleRow(ctx, "boxscoresummaryv2", "GameSummary", p,
		schema.GameSummaryRow, "game", gameID)
}

// PlayByPlay returns the event stream for one game in upstream order.
func (c *Client) PlayByPlay(ctx context.Context, gameID string, opts Params) ([]Row, error) {
	if err := validateGameID(gameID); err != nil {
		return nil, err
	}
	p := params{
		"GameID":      gameID,
		"StartPeriod": "1",
		"EndPeriod":   "10",
	}.merge(opts)
	return c.tableRows(ctx, "playbyplayv2", "PlayByPlay", p, schema.PlayByPlayRow)
}

// ShotChart returns shot-level detail for a player. TeamID zero means all
// teams the player appeared for.
func (c *Client) ShotChart(ctx context.Context, playerID, teamID int, season string, opts Params) ([]Row, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	if teamID < 0 {
		return nil, &InputError{Param: "teamId", Value: teamID, Reason: "must not be negative"}
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	p := params{
		"PlayerID":       itoa(playerID),
		"TeamID":         itoa(teamID),
		"Season":         season,
		"SeasonType":     "Regular Season",
		"LeagueID":       LeagueID00,
		"ContextMeasure": "FGA",
		"PlayerPosition": "",
		"DateFrom":       "",
		"DateTo":         "",
		"GameID":         "",
		"Outcome":        "",
		"Location":       "",
		"Month":          "0",
		"OpponentTeamID": "0",
		"Period":         "0",
		"LastNGames":     "0",
		"RookieYear":     "",
		"SeasonSegment":  "",
		"VsConference":   "",
		"VsDivision":     "",
	}.merge(opts)
	return c.tableRows(ctx, "shotchartdetail", "Shot_Chart_Detail", p, schema.ShotChartRow)
}

// LiveScoreboard is the flattened view of the live scoreboard feed.
type LiveScoreboard struct {
	GameDate string
	Games    []Row
}

// ScoreboardLive returns today's slate from the live feed, which uses a
// non-standard envelope and bypasses the tabular dispatcher entirely.
func (c *Client) ScoreboardLive(ctx context.Context) (*LiveScoreboard, error) {
	raw, err := c.fetchLive(ctx, "scoreboardlive", "/scoreboard/todaysScoreboard_00.json")
	if err != nil {
		return nil, err
	}
	rows := norm.ScoreboardRows(raw)
	return &LiveScoreboard{
		GameDate: norm.ScoreboardGameDate(raw),
		Games:    c.validated("scoreboardlive", schema.ScoreboardGameRow, rows),
	}, nil
}
