package query

import "strings"

// Sort maps the client-facing `ordering` parameter onto an
// allow-listed ORDER BY clause. A leading '-' selects descending
// order. Unrecognized values fall back to the default.
type Sort struct {
	// Allowed maps ordering parameter names to SQL columns
	Allowed map[string]string
	// Default is the ordering parameter applied when the client
	// sends nothing or an unrecognized value (may carry '-').
	Default string
	// TieBreaker is appended to keep result order stable across
	// pages; usually the primary key column.
	TieBreaker string
}

// OrderBy resolves the raw ordering parameter to a SQL ORDER BY
// body (without the ORDER BY keyword).
func (s Sort) OrderBy(raw string) string {
	param := strings.TrimSpace(raw)
	if param == "" {
		param = s.Default
	}

	desc := strings.HasPrefix(param, "-")
	name := strings.TrimPrefix(param, "-")

	column, ok := s.Allowed[name]
	if !ok {
		desc = strings.HasPrefix(s.Default, "-")
		column = s.Allowed[strings.TrimPrefix(s.Default, "-")]
	}

	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	clause := column + " " + direction
	if s.TieBreaker != "" {
		clause += ", " + s.TieBreaker
	}
	return clause
}
