package norm

// ResultSet is one tabular block of the standard stats envelope: a list of
// header names and positional value rows.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// TableRows associates each row's values with the header at the same index.
// Row order is preserved exactly as received; upstream order carries meaning
// (leader rank, game-log chronology). An empty header name skips that column.
// A row shorter than the header list simply omits the trailing keys rather
// than padding them with nils.
func TableRows(headers []string, rowSet [][]any) []Row {
	rows := make([]Row, 0, len(rowSet))
	for _, values := range rowSet {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i >= len(values) {
				break
			}
			row[header] = values[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// Rows flattens the result set through TableRows.
func (rs ResultSet) Rows() []Row {
	return TableRows(rs.Headers, rs.RowSet)
}
