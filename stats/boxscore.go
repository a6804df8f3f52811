package stats

import (
	"context"

	"github.com/aself101/nba-api/internal/norm"
	"github.com/aself101/nba-api/internal/schema"
)

// BoxScore is the flattened per-game stat sheet: one row per player and one
// per team, home side first.
type BoxScore struct {
	GameID      string
	GameDate    string
	GameCode    string
	PlayerStats []Row
	TeamStats   []Row
}

// BoxScoreTraditional returns the traditional box score from the live feed.
// The feed's envelope is non-standard, so the response bypasses the tabular
// dispatcher and goes through the box score adapter instead. The feed also
// omits the game's date and code, so both are resolved through a secondary
// GameSummary call first.
func (c *Client) BoxScoreTraditional(ctx context.Context, gameID string) (*BoxScore, error) {
	if err := validateGameID(gameID); err != nil {
		return nil, err
	}

	summary, err := c.GameSummary(ctx, gameID, nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.fetchLive(ctx, "boxscoretraditionalv3", "/boxscore/boxscore_"+gameID+".json")
	if err != nil {
		return nil, err
	}

	players := norm.BoxScorePlayerRows(raw, norm.ContainerBoxScoreTraditional)
	teams := norm.BoxScoreTeamRows(raw, norm.ContainerBoxScoreTraditional)
	return &BoxScore{
		GameID:      gameID,
		GameDate:    stringField(summary, "gameDateEst"),
		GameCode:    stringField(summary, "gamecode"),
		PlayerStats: c.validated("boxscoretraditionalv3", schema.BoxScorePlayerRow, players),
		TeamStats:   c.validated("boxscoretraditionalv3", schema.BoxScoreTeamRow, teams),
	}, nil
}

// BoxScoreAdvanced returns the advanced box score. The v3 advanced endpoint
// consistently answers with a server error, so this routes to the legacy v2
// endpoint, which speaks the standard tabular envelope. Its rows are aligned
// to the shared box score vocabulary so callers see the same identity fields
// as BoxScoreTraditional. The game's date and code still come from a
// secondary GameSummary call; v2 omits them too.
func (c *Client) BoxScoreAdvanced(ctx context.Context, gameID string) (*BoxScore, error) {
	if err := validateGameID(gameID); err != nil {
		return nil, err
	}

	summary, err := c.GameSummary(ctx, gameID, nil)
	if err != nil {
		return nil, err
	}

	p := params{
		"GameID":      gameID,
		"StartPeriod": "1",
		"EndPeriod":   "10",
		"StartRange":  "0",
		"EndRange":    "28800",
		"RangeType":   "0",
	}
	tables, err := c.fetchTables(ctx, "boxscoreadvancedv2", p)
	if err != nil {
		return nil, err
	}
	players := norm.AlignBoxScoreRows(tables["PlayerStats"])
	teams := norm.AlignBoxScoreRows(tables["TeamStats"])
	return &BoxScore{
		GameID:      gameID,
		GameDate:    stringField(summary, "gameDateEst"),
		GameCode:    stringField(summary, "gamecode"),
		PlayerStats: c.validated("boxscoreadvancedv2", schema.BoxScoreAdvancedPlayerRow, players),
		TeamStats:   c.validated("boxscoreadvancedv2", schema.BoxScoreAdvancedTeamRow, teams),
	}, nil
}

func stringField(row Row, key string) string {
	if s, ok := row[key].(string); ok {
		return s
	}
	return ""
}
