package query

import (
	"fmt"
	"strings"
)

// Conditions accumulates WHERE clauses with positional
// placeholders. Expressions use $%d for each bound value and
// the builder assigns sequential argument indexes.
type Conditions struct {
	clauses []string
	args    []interface{}
}

// Add appends a condition. expr must contain one $%d verb per value.
//
//	cond.Add("b.pages >= $%d", minPages)
func (c *Conditions) Add(expr string, values ...interface{}) {
	idx := make([]interface{}, len(values))
	for i, v := range values {
		c.args = append(c.args, v)
		idx[i] = len(c.args)
	}
	c.clauses = append(c.clauses, fmt.Sprintf(expr, idx...))
}

// ILike appends a case-insensitive substring match on a column
func (c *Conditions) ILike(column, value string) {
	c.Add(column+" ILIKE $%d", "%"+value+"%")
}

// Search appends an OR group matching the same term across
// several columns, case-insensitively.
func (c *Conditions) Search(columns []string, term string) {
	c.args = append(c.args, "%"+term+"%")
	n := len(c.args)

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	c.clauses = append(c.clauses, "("+strings.Join(parts, " OR ")+")")
}

// Where joins all clauses with AND. Returns "TRUE" when empty so
// the caller can always interpolate it after WHERE.
func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return "TRUE"
	}
	return strings.Join(c.clauses, " AND ")
}

// Args returns the bound values in placeholder order
func (c *Conditions) Args() []interface{} {
	return c.args
}

// NextIndex returns the placeholder index the next bound value
// would get. Used for appending LIMIT/OFFSET placeholders.
func (c *Conditions) NextIndex() int {
	return len(c.args) + 1
}
