package norm

import "testing"

func TestNormalizeResponsePluralResultSets(t *testing.T) {
	body := []byte(`{"resultSets":[{"name":"X","headers":["A_B"],"rowSet":[[1]]}]}`)

	tables, err := NormalizeResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := tables["X"]
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0]["aB"] != float64(1) {
		t.Fatalf("expected camelCased key aB=1, got %v", rows[0])
	}
}

func TestNormalizeResponseSingularObject(t *testing.T) {
	body := []byte(`{"resultSet":{"name":"LeagueLeaders","headers":["RANK"],"rowSet":[[1],[2]]}}`)

	tables, err := NormalizeResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables["LeagueLeaders"]) != 2 {
		t.Fatalf("unexpected tables %v", tables)
	}
}

func TestNormalizeResponseSingularList(t *testing.T) {
	body := []byte(`{"resultSet":[{"name":"A","headers":["X"],"rowSet":[[1]]},{"name":"B","headers":["Y"],"rowSet":[]}]}`)

	tables, err := NormalizeResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected both result sets, got %v", tables)
	}
	if len(tables["B"]) != 0 {
		t.Fatalf("empty rowSet should yield zero rows, got %v", tables["B"])
	}
}

func TestNormalizeResponseNonStandardEnvelopeReturnsEmpty(t *testing.T) {
	body := []byte(`{"scoreboard":{"games":[]}}`)

	tables, err := NormalizeResponse(body)
	if err != nil {
		t.Fatalf("non-standard envelope must not error: %v", err)
	}
	if len(tables) != 0 {
		t.Fatalf("expected empty mapping, got %v", tables)
	}
}

func TestNormalizeResponseResultSetsNotASequence(t *testing.T) {
	cases := map[string][]byte{
		"object":          []byte(`{"resultSets":{"name":"X","headers":["A"],"rowSet":[[1]]}}`),
		"string":          []byte(`{"resultSets":"nope"}`),
		"number":          []byte(`{"resultSets":7}`),
		"malformed entry": []byte(`{"resultSets":[{"name":"X","headers":{"bad":true},"rowSet":[[1]]}]}`),
	}

	for label, body := range cases {
		tables, err := NormalizeResponse(body)
		if err != nil {
			t.Fatalf("%s: expected empty-map degradation, got error %v", label, err)
		}
		if len(tables) != 0 {
			t.Fatalf("%s: expected empty mapping, got %v", label, tables)
		}
	}
}
