package stats

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/aself101/nba-api/internal/timeutil"
)

// Params carries optional filter overrides applied atop an endpoint's
// documented defaults.
type Params map[string]string

// LeagueID00 is the league identifier most endpoints default to.
const LeagueID00 = "00"

var gameIDPattern = regexp.MustCompile(`^\d{10}$`)

type params map[string]string

func (p params) merge(overrides Params) params {
	for k, v := range overrides {
		p[k] = v
	}
	return p
}

func (p params) encode() string {
	q := url.Values{}
	for k, v := range p {
		q.Set(k, v)
	}
	return q.Encode()
}

func validatePlayerID(id int) error {
	if id <= 0 {
		return &InputError{Param: "playerId", Value: id, Reason: "must be a positive integer"}
	}
	return nil
}

func validateTeamID(id int) error {
	if id <= 0 {
		return &InputError{Param: "teamId", Value: id, Reason: "must be a positive integer"}
	}
	return nil
}

func validateGameID(id string) error {
	if !gameIDPattern.MatchString(id) {
		return &InputError{Param: "gameId", Value: id, Reason: "must be exactly 10 digits"}
	}
	return nil
}

func validateDate(date string) error {
	if _, err := timeutil.ParseDate(date); err != nil {
		return &InputError{Param: "date", Value: date, Reason: "must match YYYY-MM-DD"}
	}
	return nil
}

func validateSeason(season string) error {
	if _, err := timeutil.ParseSeason(season); err != nil {
		return &InputError{Param: "season", Value: season, Reason: "must match YYYY-YY with a consistent suffix"}
	}
	return nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
