package norm

// ContainerScoreboard is the top-level key of the live scoreboard feed.
const ContainerScoreboard = "scoreboard"

// team summary fields surfaced per side on a scoreboard row.
var scoreboardTeamFields = []string{"teamId", "teamName", "teamCity", "teamTricode", "score", "wins", "losses"}

// ScoreboardRows flattens the live scoreboard container into one row per
// game. Scalar game fields copy straight through; each side's team summary is
// folded in under home/away-prefixed keys so the row stays flat. Games keep
// upstream order. A missing container yields no rows.
func ScoreboardRows(raw map[string]any) []Row {
	board := asMap(raw[ContainerScoreboard])

	var rows []Row
	for _, g := range asSlice(board["games"]) {
		game := asMap(g)
		row := Row{"gameDate": board["gameDate"]}
		for k, v := range game {
			switch k {
			case "homeTeam", "awayTeam", "gameLeaders", "pbOdds":
				continue
			}
			row[k] = v
		}
		flattenSide(row, asMap(game["homeTeam"]), "home")
		flattenSide(row, asMap(game["awayTeam"]), "away")
		rows = append(rows, row)
	}
	return rows
}

// ScoreboardGameDate reports the feed's game date, empty when absent.
func ScoreboardGameDate(raw map[string]any) string {
	return asString(asMap(raw[ContainerScoreboard])["gameDate"])
}

func flattenSide(row Row, team map[string]any, prefix string) {
	for _, field := range scoreboardTeamFields {
		v, ok := team[field]
		if !ok {
			continue
		}
		row[prefix+upperFirst(field)] = v
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
