package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(parsed) != "2024-01-15" {
		t.Fatalf("round trip failed: %s", FormatDate(parsed))
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"01/15/2024", "2024-1-5", "20240115", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestSeasonFormatting(t *testing.T) {
	cases := map[int]string{
		2023: "2023-24",
		1999: "1999-00",
		2009: "2009-10",
	}
	for year, expected := range cases {
		if got := Season(year); got != expected {
			t.Fatalf("Season(%d) = %q, expected %q", year, got, expected)
		}
	}
}

func TestParseSeasonSuffixConsistency(t *testing.T) {
	if _, err := ParseSeason("2024-25"); err != nil {
		t.Fatalf("valid season rejected: %v", err)
	}
	if _, err := ParseSeason("2024-26"); err == nil {
		t.Fatal("inconsistent suffix must be rejected")
	}
	if _, err := ParseSeason("1999-00"); err != nil {
		t.Fatalf("century rollover season rejected: %v", err)
	}
	for _, bad := range []string{"2024", "24-25", "2024-025", "2024/25", ""} {
		if _, err := ParseSeason(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestSeasonRangeExpansion(t *testing.T) {
	seasons, err := SeasonRange("2020-21", "2023-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"2020-21", "2021-22", "2022-23", "2023-24"}
	if len(seasons) != len(expected) {
		t.Fatalf("unexpected expansion %v", seasons)
	}
	for i := range expected {
		if seasons[i] != expected[i] {
			t.Fatalf("unexpected expansion %v", seasons)
		}
	}

	if _, err := SeasonRange("2023-24", "2020-21"); err == nil {
		t.Fatal("backwards range must be rejected")
	}
}

func TestCurrentSeasonRollsOverInOctober(t *testing.T) {
	june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	november := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)

	if got := CurrentSeason(june); got != "2023-24" {
		t.Fatalf("expected 2023-24 in June, got %s", got)
	}
	if got := CurrentSeason(november); got != "2024-25" {
		t.Fatalf("expected 2024-25 in November, got %s", got)
	}
}
