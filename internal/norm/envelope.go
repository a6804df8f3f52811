package norm

import (
	"bytes"
	"encoding/json"
)

type standardEnvelope struct {
	ResultSets json.RawMessage `json:"resultSets"`
	ResultSet  json.RawMessage `json:"resultSet"`
}

// NormalizeResponse flattens a standard stats envelope into camelCased rows
// keyed by result-set name. The singular `resultSet` spelling is accepted as
// either one object or a list. A body carrying neither key, or whose
// `resultSets` value is not a well-formed sequence, yields an empty map, not
// an error: that is the signal for callers to take the raw passthrough path
// for endpoints known to use a non-standard envelope.
func NormalizeResponse(body []byte) (map[string][]Row, error) {
	var env standardEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	sets, ok := decodePlural(env.ResultSets)
	if !ok && len(env.ResultSet) > 0 {
		single, err := decodeSingular(env.ResultSet)
		if err != nil {
			return nil, err
		}
		sets = single
	}

	tables := make(map[string][]Row, len(sets))
	for _, rs := range sets {
		rows := rs.Rows()
		for i, row := range rows {
			rows[i] = NormalizeKeys(row)
		}
		tables[rs.Name] = rows
	}
	return tables, nil
}

// decodePlural decodes the resultSets key. The standard path is keyed on the
// value being a sequence, so anything else reports false and the caller
// degrades to the empty-map signal instead of failing the call.
func decodePlural(raw json.RawMessage) ([]ResultSet, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var sets []ResultSet
	if err := json.Unmarshal(trimmed, &sets); err != nil {
		return nil, false
	}
	return sets, true
}

func decodeSingular(raw json.RawMessage) ([]ResultSet, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sets []ResultSet
		if err := json.Unmarshal(trimmed, &sets); err != nil {
			return nil, err
		}
		return sets, nil
	}
	var rs ResultSet
	if err := json.Unmarshal(trimmed, &rs); err != nil {
		return nil, err
	}
	return []ResultSet{rs}, nil
}
