package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aself101/nba-api/internal/timeutil"
	"github.com/aself101/nba-api/stats"
)

// dispatch runs one task against the facade and returns the report's tables,
// keyed by section name. Single-table reports use the "rows" section.
func dispatch(ctx context.Context, client *stats.Client, t task) (map[string][]stats.Row, error) {
	season := t.season
	if season == "" {
		season = timeutil.CurrentSeason(time.Now())
	}
	spec := t.spec

	switch spec.Kind {
	case "commonAllPlayers":
		return rowsSection(client.CommonAllPlayers(ctx, season, false, spec.Params))
	case "playerInfo":
		return singleSection(client.PlayerInfo(ctx, spec.PlayerID, spec.Params))
	case "playerCareerStats":
		return rowsSection(client.PlayerCareerStats(ctx, spec.PlayerID, spec.Params))
	case "playerGameLog":
		return rowsSection(client.PlayerGameLog(ctx, spec.PlayerID, season, spec.Params))
	case "playerAwards":
		return rowsSection(client.PlayerAwards(ctx, spec.PlayerID, spec.Params))
	case "teamInfo":
		return singleSection(client.TeamInfo(ctx, spec.TeamID, season, spec.Params))
	case "teamRoster":
		return rowsSection(client.TeamRoster(ctx, spec.TeamID, season, spec.Params))
	case "teamGameLog":
		return rowsSection(client.TeamGameLog(ctx, spec.TeamID, season, spec.Params))
	case "teamYearByYear":
		return rowsSection(client.TeamYearByYearStats(ctx, spec.TeamID, spec.Params))
	case "franchiseHistory":
		return rowsSection(client.FranchiseHistory(ctx, spec.Params))
	case "leagueLeaders":
		return rowsSection(client.LeagueLeaders(ctx, season, spec.StatCategory, spec.Params))
	case "leagueGameLog":
		return rowsSection(client.LeagueGameLog(ctx, season, spec.Params))
	case "leagueDashPlayerStats":
		return rowsSection(client.LeagueDashPlayerStats(ctx, season, spec.Params))
	case "leagueDashTeamStats":
		return rowsSection(client.LeagueDashTeamStats(ctx, season, spec.Params))
	case "leagueStandings":
		return rowsSection(client.LeagueStandings(ctx, season, spec.Params))
	case "draftHistory":
		return rowsSection(client.DraftHistory(ctx, spec.Params))
	case "scoreboard":
		board, err := client.Scoreboard(ctx, spec.Date, spec.Params)
		if err != nil {
			return nil, err
		}
		return map[string][]stats.Row{
			"gameHeaders": board.GameHeaders,
			"lineScores":  board.LineScores,
		}, nil
	case "gameSummary":
		return singleSection(client.GameSummary(ctx, spec.GameID, spec.Params))
	case "playByPlay":
		return rowsSection(client.PlayByPlay(ctx, spec.GameID, spec.Params))
	case "shotChart":
		return rowsSection(client.ShotChart(ctx, spec.PlayerID, spec.TeamID, season, spec.Params))
	case "boxScoreTraditional":
		return boxScoreSections(client.BoxScoreTraditional(ctx, spec.GameID))
	case "boxScoreAdvanced":
		return boxScoreSections(client.BoxScoreAdvanced(ctx, spec.GameID))
	case "scoreboardLive":
		board, err := client.ScoreboardLive(ctx)
		if err != nil {
			return nil, err
		}
		return map[string][]stats.Row{"games": board.Games}, nil
	case "table":
		if spec.Endpoint == "" || spec.Table == "" {
			return nil, fmt.Errorf("table reports need endpoint and table")
		}
		return rowsSection(client.Table(ctx, spec.Endpoint, spec.Table, spec.Params))
	default:
		return nil, fmt.Errorf("unknown report kind %q", spec.Kind)
	}
}

func rowsSection(rows []stats.Row, err error) (map[string][]stats.Row, error) {
	if err != nil {
		return nil, err
	}
	return map[string][]stats.Row{"rows": rows}, nil
}

func singleSection(row stats.Row, err error) (map[string][]stats.Row, error) {
	if err != nil {
		return nil, err
	}
	return map[string][]stats.Row{"rows": {row}}, nil
}

func boxScoreSections(box *stats.BoxScore, err error) (map[string][]stats.Row, error) {
	if err != nil {
		return nil, err
	}
	meta := stats.Row{
		"gameId":   box.GameID,
		"gameDate": box.GameDate,
		"gameCode": box.GameCode,
	}
	return map[string][]stats.Row{
		"game":        {meta},
		"playerStats": box.PlayerStats,
		"teamStats":   box.TeamStats,
	}, nil
}
