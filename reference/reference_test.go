package reference

import "testing"

func fixtureSource() *Source {
	return NewSource(
		[]Player{
			{ID: 1, Name: "Alpha Beta"},
			{ID: 2, Name: "Gamma Delta"},
			{ID: 3, Name: "Alphonse Gamma"},
		},
		[]Team{
			{ID: 10, Abbreviation: "AAA", City: "Anytown", Name: "Aces"},
			{ID: 20, Abbreviation: "BBB", City: "Busytown", Name: "Bees"},
		},
	)
}

func TestPlayerByID(t *testing.T) {
	s := fixtureSource()

	p, ok := s.PlayerByID(2)
	if !ok || p.Name != "Gamma Delta" {
		t.Fatalf("unexpected lookup result %v %v", p, ok)
	}
	if _, ok := s.PlayerByID(99); ok {
		t.Fatal("unknown id must miss")
	}
}

func TestFindPlayersIsCaseInsensitiveRegex(t *testing.T) {
	s := fixtureSource()

	matches, err := s.FindPlayers("alph")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %v", matches)
	}

	matches, err = s.FindPlayers("^Gamma")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != 2 {
		t.Fatalf("anchored pattern mismatch: %v", matches)
	}

	if _, err := s.FindPlayers("("); err == nil {
		t.Fatal("invalid pattern must error")
	}
}

func TestTeamLookups(t *testing.T) {
	s := fixtureSource()

	if team, ok := s.TeamByAbbreviation("bbb"); !ok || team.ID != 20 {
		t.Fatalf("abbreviation lookup failed: %v %v", team, ok)
	}
	if team, ok := s.TeamByID(10); !ok || team.FullName() != "Anytown Aces" {
		t.Fatalf("id lookup failed: %v %v", team, ok)
	}
}

func TestDefaultSourceIsPopulated(t *testing.T) {
	s := DefaultSource()

	if len(s.Teams()) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(s.Teams()))
	}
	if team, ok := s.TeamByAbbreviation("LAL"); !ok || team.Name != "Lakers" {
		t.Fatalf("expected the Lakers, got %v", team)
	}
	matches, err := s.FindPlayers("curry")
	if err != nil || len(matches) == 0 {
		t.Fatalf("expected a Curry match, got %v err=%v", matches, err)
	}
}
