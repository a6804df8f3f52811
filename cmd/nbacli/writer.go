package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aself101/nba-api/stats"
)

// ReportWriter persists report tables under a base directory. Writes go
// through a temp file and rename so a crashed run never leaves a partial
// report behind; rewriting identical content is skipped.
type ReportWriter struct {
	dir    string
	format string
}

// NewReportWriter constructs a writer rooted at dir, creating it if needed.
// Format is "json" or "csv".
func NewReportWriter(dir, format string) (*ReportWriter, error) {
	switch format {
	case "json", "csv":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ReportWriter{dir: dir, format: format}, nil
}

// WriteReport persists one report and returns the files written. JSON keeps
// all sections in a single document; CSV writes one file per section.
func (w *ReportWriter) WriteReport(name string, sections map[string][]stats.Row) ([]string, error) {
	if w.format == "json" {
		path := filepath.Join(w.dir, name+".json")
		data, err := json.MarshalIndent(sections, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := w.writeFile(path, data); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var written []string
	for _, section := range sectionNames(sections) {
		stem := name
		if section != "rows" {
			stem = name + "_" + section
		}
		path := filepath.Join(w.dir, stem+".csv")
		data, err := encodeCSV(sections[section])
		if err != nil {
			return nil, err
		}
		if err := w.writeFile(path, data); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func (w *ReportWriter) writeFile(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func sectionNames(sections map[string][]stats.Row) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// encodeCSV renders rows with a deterministic header: the union of all row
// keys in sorted order. Missing and nil values render empty.
func encodeCSV(rows []stats.Row) ([]byte, error) {
	columns := unionColumns(rows)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(columns); err != nil {
		return nil, err
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = cellString(row[col])
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unionColumns(rows []stats.Row) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, row := range rows {
		for key := range row {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			columns = append(columns, key)
		}
	}
	sort.Strings(columns)
	return columns
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" the default formatting would add.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(val)
	}
}
