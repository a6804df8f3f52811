// Package reference carries static lookup tables for known player and team
// identifiers. A Source is constructed once, is immutable afterwards, and is
// passed to whatever needs lookups; it never influences response
// normalization. Tests substitute small fixture sources.
package reference

import (
	"regexp"
	"strings"
)

// Player is one entry of the static player table.
type Player struct {
	ID          int
	Name        string
	FirstSeason int
	LastSeason  int
}

// Team is one entry of the static team table.
type Team struct {
	ID           int
	Abbreviation string
	City         string
	Name         string
}

// FullName returns the team's display name.
func (t Team) FullName() string {
	return t.City + " " + t.Name
}

// Source is an immutable lookup table over players and teams.
type Source struct {
	players []Player
	teams   []Team

	playersByID map[int]Player
	teamsByID   map[int]Team
	teamsByAbbr map[string]Team
}

// NewSource builds a Source from explicit tables. The slices are copied.
func NewSource(players []Player, teams []Team) *Source {
	s := &Source{
		players:     append([]Player(nil), players...),
		teams:       append([]Team(nil), teams...),
		playersByID: make(map[int]Player, len(players)),
		teamsByID:   make(map[int]Team, len(teams)),
		teamsByAbbr: make(map[string]Team, len(teams)),
	}
	for _, p := range s.players {
		s.playersByID[p.ID] = p
	}
	for _, t := range s.teams {
		s.teamsByID[t.ID] = t
		s.teamsByAbbr[strings.ToUpper(t.Abbreviation)] = t
	}
	return s
}

// DefaultSource builds a Source over the packaged tables.
func DefaultSource() *Source {
	return NewSource(knownPlayers, knownTeams)
}

// PlayerByID looks a player up by their upstream identifier.
func (s *Source) PlayerByID(id int) (Player, bool) {
	p, ok := s.playersByID[id]
	return p, ok
}

// FindPlayers returns every player whose name matches the pattern,
// case-insensitively. The pattern is a regular expression; a plain substring
// works as-is.
func (s *Source) FindPlayers(pattern string) ([]Player, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	var matches []Player
	for _, p := range s.players {
		if re.MatchString(p.Name) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// TeamByID looks a team up by its upstream identifier.
func (s *Source) TeamByID(id int) (Team, bool) {
	t, ok := s.teamsByID[id]
	return t, ok
}

// TeamByAbbreviation looks a team up by its tricode, case-insensitively.
func (s *Source) TeamByAbbreviation(abbr string) (Team, bool) {
	t, ok := s.teamsByAbbr[strings.ToUpper(abbr)]
	return t, ok
}

// Teams returns a copy of the team table.
func (s *Source) Teams() []Team {
	return append([]Team(nil), s.teams...)
}

// Players returns a copy of the player table.
func (s *Source) Players() []Player {
	return append([]Player(nil), s.players...)
}
