package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aself101/nba-api/stats"
)

func TestNewReportWriterRejectsUnknownFormat(t *testing.T) {
	_, err := NewReportWriter(t.TempDir(), "xml")
	require.Error(t, err)
}

func TestWriteReportJSON(t *testing.T) {
	dir := t.TempDir()
	w, err := NewReportWriter(dir, "json")
	require.NoError(t, err)

	sections := map[string][]stats.Row{
		"rows": {{"playerId": float64(2544), "pts": 25.7}},
	}
	files, err := w.WriteReport("playerGameLog_p2544", sections)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "playerGameLog_p2544.json"), files[0])

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	var decoded map[string][]stats.Row
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 25.7, decoded["rows"][0]["pts"])
}

func TestWriteReportCSVDeterministicColumns(t *testing.T) {
	dir := t.TempDir()
	w, err := NewReportWriter(dir, "csv")
	require.NoError(t, err)

	// Second row carries a key the first lacks; the header is the sorted
	// union and missing cells render empty.
	sections := map[string][]stats.Row{
		"rows": {
			{"pts": float64(30), "name": "A"},
			{"pts": float64(12), "name": "B", "reb": float64(9)},
		},
	}
	files, err := w.WriteReport("leaders", sections)
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "name,pts,reb\nA,30,\nB,12,9\n", string(data))
}

func TestWriteReportCSVOneFilePerSection(t *testing.T) {
	dir := t.TempDir()
	w, err := NewReportWriter(dir, "csv")
	require.NoError(t, err)

	sections := map[string][]stats.Row{
		"gameHeaders": {{"gameId": "0022300555"}},
		"lineScores":  {{"teamId": float64(1610612738)}},
	}
	files, err := w.WriteReport("scoreboard_2024-01-15", sections)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "scoreboard_2024-01-15_gameHeaders.csv"),
		filepath.Join(dir, "scoreboard_2024-01-15_lineScores.csv"),
	}, files)
}

func TestWriteFileSkipsUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewReportWriter(dir, "json")
	require.NoError(t, err)

	sections := map[string][]stats.Row{"rows": {{"a": "b"}}}
	files, err := w.WriteReport("report", sections)
	require.NoError(t, err)

	before, err := os.Stat(files[0])
	require.NoError(t, err)

	_, err = w.WriteReport("report", sections)
	require.NoError(t, err)

	after, err := os.Stat(files[0])
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "12", cellString(float64(12)))
	assert.Equal(t, "0.457", cellString(0.457))
	assert.Equal(t, "true", cellString(true))
	assert.Equal(t, "LAL", cellString("LAL"))
}
