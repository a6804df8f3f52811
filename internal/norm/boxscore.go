package norm

// Box score containers published by the live-data feed. Unlike the standard
// envelope these arrive pre-camelCased with their own spelling per variant,
// so each variant gets a rename table instead of the case converter.
const (
	ContainerBoxScoreTraditional = "boxScoreTraditional"
	ContainerBoxScoreAdvanced    = "boxScoreAdvanced"
)

// renames per container, mapping the live-data spelling onto the field names
// the legacy tabular endpoints produce after case conversion. Only fields
// observed to differ are listed; everything else passes through as-is.
var boxScoreRenames = map[string]map[string]string{
	ContainerBoxScoreTraditional: {
		"fieldGoalsMade":          "fgm",
		"fieldGoalsAttempted":     "fga",
		"fieldGoalsPercentage":    "fgPct",
		"threePointersMade":       "fg3m",
		"threePointersAttempted":  "fg3a",
		"threePointersPercentage": "fg3Pct",
		"freeThrowsMade":          "ftm",
		"freeThrowsAttempted":     "fta",
		"freeThrowsPercentage":    "ftPct",
		"reboundsOffensive":       "oreb",
		"reboundsDefensive":       "dreb",
		"reboundsTotal":           "reb",
		"turnovers":               "to",
		"foulsPersonal":           "pf",
		"plusMinusPoints":         "plusMinus",
	},
	ContainerBoxScoreAdvanced: {
		"estimatedOffensiveRating":     "eOffRating",
		"estimatedDefensiveRating":     "eDefRating",
		"estimatedNetRating":           "eNetRating",
		"reboundPercentage":            "rebPct",
		"offensiveReboundPercentage":   "orebPct",
		"defensiveReboundPercentage":   "drebPct",
		"trueShootingPercentage":       "tsPct",
		"effectiveFieldGoalPercentage": "efgPct",
		"usagePercentage":              "usgPct",
	},
}

var boxScoreSides = []string{"homeTeam", "awayTeam"}

// The legacy tabular box score endpoints spell identity fields their own way
// after case conversion. This maps those spellings onto the vocabulary the
// live-feed adapters emit, so rows from either path stay interchangeable.
var tabularBoxScoreRenames = map[string]string{
	"playerId":         "personId",
	"playerName":       "name",
	"startPosition":    "position",
	"teamAbbreviation": "teamTricode",
}

// AlignBoxScoreRows rewrites legacy tabular box score rows into the shared
// box score vocabulary. Stat columns pass through untouched; only identity
// spellings change.
func AlignBoxScoreRows(rows []Row) []Row {
	aligned := make([]Row, len(rows))
	for i, row := range rows {
		out := make(Row, len(row))
		for k, v := range row {
			if renamed, ok := tabularBoxScoreRenames[k]; ok {
				k = renamed
			}
			out[k] = v
		}
		aligned[i] = out
	}
	return aligned
}

// BoxScorePlayerRows flattens the per-player records of a live box score into
// rows shaped like the tabular endpoints produce. Home players come first,
// then away, each in upstream order. Player identity fields and the embedded
// statistics block merge into one flat row tagged with game and team context.
// A missing container yields no rows.
func BoxScorePlayerRows(raw map[string]any, container string) []Row {
	game := asMap(raw[container])
	renames := boxScoreRenames[container]

	var rows []Row
	for _, side := range boxScoreSides {
		team := asMap(game[side])
		for _, p := range asSlice(team["players"]) {
			player := asMap(p)
			row := Row{
				"gameId":      game["gameId"],
				"teamId":      team["teamId"],
				"teamTricode": team["teamTricode"],
			}
			for k, v := range player {
				if k == "statistics" {
					continue
				}
				mergeInto(row, map[string]any{k: v}, renames)
			}
			mergeInto(row, asMap(player["statistics"]), renames)
			rows = append(rows, row)
		}
	}
	return rows
}

// BoxScoreTeamRows flattens the two team-level records of a live box score,
// home first. Team identity fields and the team statistics block merge into
// one flat row per side.
func BoxScoreTeamRows(raw map[string]any, container string) []Row {
	game := asMap(raw[container])
	renames := boxScoreRenames[container]

	var rows []Row
	for _, side := range boxScoreSides {
		team := asMap(game[side])
		if len(team) == 0 {
			continue
		}
		row := Row{
			"gameId":      game["gameId"],
			"teamId":      team["teamId"],
			"teamName":    team["teamName"],
			"teamCity":    team["teamCity"],
			"teamTricode": team["teamTricode"],
		}
		mergeInto(row, asMap(team["statistics"]), renames)
		rows = append(rows, row)
	}
	return rows
}
