package schema

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aself101/nba-api/internal/logging"
	"github.com/aself101/nba-api/internal/norm"
)

// maxDriftCauses caps how many failure reasons a single drift warning carries
// so one drifted response cannot flood the log.
const maxDriftCauses = 3

// ValidationError reports the first offending row under strict validation.
type ValidationError struct {
	Shape    string
	RowIndex int
	Causes   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("shape %s: row %d invalid: %s", e.Shape, e.RowIndex, strings.Join(e.Causes, "; "))
}

// Validate checks every row against the shape and fails on the first row that
// does not conform.
func Validate(shape Shape, rows []norm.Row) error {
	for i, row := range rows {
		if causes := checkRow(shape, row); len(causes) > 0 {
			return &ValidationError{Shape: shape.Name, RowIndex: i, Causes: causes}
		}
	}
	return nil
}

// ValidateOrPassthrough is the lenient production policy: on any failure in
// any row it abandons validation for the whole batch, logs one warning with a
// truncated cause sample, and hands back the original rows unchanged. The
// returned flag reports whether the batch drifted from the declared shape.
func ValidateOrPassthrough(logger *slog.Logger, shape Shape, rows []norm.Row) ([]norm.Row, bool) {
	var causes []string
	for i, row := range rows {
		for _, c := range checkRow(shape, row) {
			if len(causes) < maxDriftCauses {
				causes = append(causes, fmt.Sprintf("row %d: %s", i, c))
			}
		}
		if len(causes) >= maxDriftCauses {
			break
		}
	}

	if len(causes) == 0 {
		return rows, false
	}

	logging.Warn(logger, "response shape drifted, returning rows unvalidated",
		logging.FieldShape, shape.Name,
		logging.FieldCount, len(rows),
		"causes", strings.Join(causes, "; "))
	return rows, true
}

func checkRow(shape Shape, row norm.Row) []string {
	var causes []string
	for name, field := range shape.Fields {
		value, present := row[name]
		if !present {
			if !field.Optional {
				causes = append(causes, fmt.Sprintf("missing field %q", name))
			}
			continue
		}
		if value == nil {
			if !field.Nullable {
				causes = append(causes, fmt.Sprintf("field %q is null", name))
			}
			continue
		}
		if !kindMatches(field.Kind, value) {
			causes = append(causes, fmt.Sprintf("field %q: expected %s, got %T", name, field.Kind, value))
		}
	}
	return causes
}

func kindMatches(kind Kind, value any) bool {
	switch kind {
	case String:
		_, ok := value.(string)
		return ok
	case Number:
		switch value.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case Bool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
