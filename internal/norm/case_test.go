package norm

import "testing"

func TestToCamelCaseConvertsSnakeTokens(t *testing.T) {
	cases := map[string]string{
		"PLAYER_ID":         "playerId",
		"PLAYER_NAME":       "playerName",
		"TEAM_ABBREVIATION": "teamAbbreviation",
		"FG3_PCT":           "fg3Pct",
		"AST":               "ast",
		"PTS":               "pts",
		"A_B":               "aB",
		"":                  "",
	}

	for input, expected := range cases {
		if got := ToCamelCase(input); got != expected {
			t.Fatalf("ToCamelCase(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestToCamelCaseIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := ToCamelCase("GAME_DATE_EST"); got != "gameDateEst" {
			t.Fatalf("unexpected conversion %q", got)
		}
	}
}

func TestToCamelCaseKeepsUnderscoreBeforeNonLetter(t *testing.T) {
	if got := ToCamelCase("RANK_2"); got != "rank_2" {
		t.Fatalf("expected underscore before digit to survive, got %q", got)
	}
}

func TestNormalizeKeysPreservesValues(t *testing.T) {
	row := Row{"PLAYER_ID": 2544, "PLAYER_NAME": "LeBron James", "NICKNAME": nil}

	got := NormalizeKeys(row)

	if len(got) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(got))
	}
	if got["playerId"] != 2544 || got["playerName"] != "LeBron James" {
		t.Fatalf("unexpected row %v", got)
	}
	if v, ok := got["nickname"]; !ok || v != nil {
		t.Fatalf("nil value should carry over, got %v present=%v", v, ok)
	}
}
