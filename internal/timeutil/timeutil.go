package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Season formats a start year as the YYYY-YY season string the stats service
// expects, e.g. 2023 -> "2023-24".
func Season(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// ParseSeason validates a YYYY-YY season string and returns its start year.
// The two-digit suffix must equal (startYear+1) mod 100, so "2024-25" is
// accepted and "2024-26" is not.
func ParseSeason(value string) (int, error) {
	m := seasonPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("season %q does not match YYYY-YY", value)
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	suffix, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, err
	}
	if suffix != (start+1)%100 {
		return 0, fmt.Errorf("season %q has inconsistent suffix, expected %q", value, Season(start))
	}
	return start, nil
}

// SeasonRange expands an inclusive from..to season range into individual
// season strings in chronological order.
func SeasonRange(from, to string) ([]string, error) {
	start, err := ParseSeason(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseSeason(to)
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("season range %s..%s runs backwards", from, to)
	}
	seasons := make([]string, 0, end-start+1)
	for year := start; year <= end; year++ {
		seasons = append(seasons, Season(year))
	}
	return seasons, nil
}

// CurrentSeason derives the season in progress at the given time. The NBA
// season rolls over in October.
func CurrentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() < time.October {
		year--
	}
	return Season(year)
}
