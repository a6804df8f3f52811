package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aself101/nba-api/internal/timeutil"
	"github.com/aself101/nba-api/stats"
)

// JobFile is the YAML batch description. Top-level settings override the
// environment configuration; report entries describe one endpoint call each,
// fanned out per season when a list or range is given.
type JobFile struct {
	Output   string       `yaml:"output"`
	Format   string       `yaml:"format"`
	DelayMin string       `yaml:"delayMin"`
	DelayMax string       `yaml:"delayMax"`
	Reports  []ReportSpec `yaml:"reports"`
}

// ReportSpec names one report. Kind selects the endpoint; the identifier
// fields apply where the endpoint needs them.
type ReportSpec struct {
	Kind         string       `yaml:"kind"`
	PlayerID     int          `yaml:"playerId"`
	TeamID       int          `yaml:"teamId"`
	GameID       string       `yaml:"gameId"`
	Date         string       `yaml:"date"`
	StatCategory string       `yaml:"statCategory"`
	Seasons      []string     `yaml:"seasons"`
	SeasonRange  *SeasonRange `yaml:"seasonRange"`
	Endpoint     string       `yaml:"endpoint"`
	Table        string       `yaml:"table"`
	Params       stats.Params `yaml:"params"`
}

// SeasonRange is an inclusive from..to span of seasons.
type SeasonRange struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// task is one concrete endpoint call after season fan-out.
type task struct {
	spec   ReportSpec
	season string
}

// LoadJobFile reads and parses a YAML job file.
func LoadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job JobFile
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if len(job.Reports) == 0 {
		return nil, fmt.Errorf("job file %s names no reports", path)
	}
	return &job, nil
}

// delays resolves the job file's pacing overrides against the fallbacks.
func (j *JobFile) delays(fallbackMin, fallbackMax time.Duration) (time.Duration, time.Duration, error) {
	min, max := fallbackMin, fallbackMax
	if j.DelayMin != "" {
		d, err := time.ParseDuration(j.DelayMin)
		if err != nil {
			return 0, 0, fmt.Errorf("delayMin: %w", err)
		}
		min = d
	}
	if j.DelayMax != "" {
		d, err := time.ParseDuration(j.DelayMax)
		if err != nil {
			return 0, 0, fmt.Errorf("delayMax: %w", err)
		}
		max = d
	}
	if max < min {
		max = min
	}
	return min, max, nil
}

// expand fans each report out into tasks, one per requested season. Reports
// without a season dimension become a single task.
func (j *JobFile) expand() ([]task, error) {
	var tasks []task
	for i, spec := range j.Reports {
		if spec.Kind == "" {
			return nil, fmt.Errorf("report %d has no kind", i)
		}
		seasons := spec.Seasons
		if spec.SeasonRange != nil {
			expanded, err := timeutil.SeasonRange(spec.SeasonRange.From, spec.SeasonRange.To)
			if err != nil {
				return nil, fmt.Errorf("report %d (%s): %w", i, spec.Kind, err)
			}
			seasons = append(seasons, expanded...)
		}
		if len(seasons) == 0 {
			tasks = append(tasks, task{spec: spec})
			continue
		}
		for _, season := range seasons {
			tasks = append(tasks, task{spec: spec, season: season})
		}
	}
	return tasks, nil
}

// name builds the report's file stem from its kind and identifiers.
func (t task) name() string {
	parts := []string{t.spec.Kind}
	if t.spec.PlayerID > 0 {
		parts = append(parts, fmt.Sprintf("p%d", t.spec.PlayerID))
	}
	if t.spec.TeamID > 0 {
		parts = append(parts, fmt.Sprintf("t%d", t.spec.TeamID))
	}
	if t.spec.GameID != "" {
		parts = append(parts, t.spec.GameID)
	}
	if t.spec.Date != "" {
		parts = append(parts, t.spec.Date)
	}
	if t.season != "" {
		parts = append(parts, strings.ReplaceAll(t.season, "-", ""))
	}
	if t.spec.Kind == "table" && t.spec.Endpoint != "" {
		parts = append(parts, t.spec.Endpoint)
	}
	return strings.Join(parts, "_")
}
