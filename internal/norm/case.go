package norm

import "strings"

// Row is a single flat record keyed by field name.
type Row = map[string]any

// ToCamelCase rewrites an upper-snake-case header token into camelCase:
// "PLAYER_ID" becomes "playerId". The token is lowercased first, then every
// underscore followed by a letter is dropped and that letter uppercased, so a
// solitary token like "AST" collapses to "ast". Any string is accepted; the
// transform never inspects values and is lossy for mixed-case input on purpose
// (upstream headers are strictly upper-snake).
func ToCamelCase(token string) string {
	lower := strings.ToLower(token)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c == '_' && i+1 < len(lower) && isLowerLetter(lower[i+1]) {
			i++
			b.WriteByte(lower[i] - 'a' + 'A')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLowerLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// NormalizeKeys returns a copy of row with every key rewritten through
// ToCamelCase. Values, including nils, carry over untouched.
func NormalizeKeys(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[ToCamelCase(k)] = v
	}
	return out
}
