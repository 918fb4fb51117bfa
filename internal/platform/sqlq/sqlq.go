// Package sqlq accumulates AND-ed WHERE conditions with PostgreSQL
// positional arguments and renders the data, count and aggregate statements
// that share them.
package sqlq

import (
	"fmt"
	"strings"
)

// Query builds SELECT statements over one source. The data statement may
// read from a joined source while counts and aggregates read from a narrower
// one, as long as the conditions only reference columns both expose.
type Query struct {
	from      string
	countFrom string
	cols      string
	where     []string
	args      []interface{}
	orderBy   string
}

// New creates a Query selecting cols from the given FROM clause.
func New(from, cols string) *Query {
	return &Query{from: from, countFrom: from, cols: cols}
}

// CountFrom sets the FROM clause used by CountSQL and AggregateSQL.
func (q *Query) CountFrom(from string) *Query {
	q.countFrom = from
	return q
}

// Idx returns the next available parameter index.
func (q *Query) Idx() int { return len(q.args) + 1 }

// Add appends a raw condition. Placeholders must already be numbered from Idx().
func (q *Query) Add(clause string, args ...interface{}) {
	q.where = append(q.where, clause)
	q.args = append(q.args, args...)
}

func (q *Query) compare(column, op string, value interface{}) {
	q.Add(fmt.Sprintf("%s %s $%d", column, op, q.Idx()), value)
}

// Eq adds column = value.
func (q *Query) Eq(column string, value interface{}) { q.compare(column, "=", value) }

// Gte adds column >= value.
func (q *Query) Gte(column string, value interface{}) { q.compare(column, ">=", value) }

// Lte adds column <= value.
func (q *Query) Lte(column string, value interface{}) { q.compare(column, "<=", value) }

// Any adds column = ANY($n); values must be a slice pgx can encode as an array.
func (q *Query) Any(column string, values interface{}) {
	q.Add(fmt.Sprintf("%s = ANY($%d)", column, q.Idx()), values)
}

// Contains adds a case-insensitive substring match. LIKE metacharacters in
// substr match literally.
func (q *Query) Contains(column, substr string) {
	q.Add(fmt.Sprintf("%s ILIKE $%d", column, q.Idx()), "%"+EscapeLike(substr)+"%")
}

// OrderBy sets the ORDER BY clause (without the "ORDER BY" keyword).
func (q *Query) OrderBy(orderBy string) {
	q.orderBy = orderBy
}

// Args returns the condition arguments shared by every statement.
func (q *Query) Args() []interface{} {
	return q.args
}

// Where renders the WHERE clause, or "" when there are no conditions.
func (q *Query) Where() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// CountSQL returns the row count statement.
func (q *Query) CountSQL() string {
	return "SELECT COUNT(*) FROM " + q.countFrom + q.Where()
}

// AggregateSQL returns a statement selecting the given aggregate expressions.
func (q *Query) AggregateSQL(exprs string) string {
	return "SELECT " + exprs + " FROM " + q.countFrom + q.Where()
}

// DataSQL returns the row statement with ORDER BY and LIMIT/OFFSET placeholders.
func (q *Query) DataSQL() string {
	sql := "SELECT " + q.cols + " FROM " + q.from + q.Where()
	if q.orderBy != "" {
		sql += " ORDER BY " + q.orderBy
	}
	sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", q.Idx(), q.Idx()+1)
	return sql
}

// DataArgs returns the arguments for DataSQL (condition args + limit + offset).
func (q *Query) DataArgs(limit, offset int) []interface{} {
	result := make([]interface{}, len(q.args)+2)
	copy(result, q.args)
	result[len(q.args)] = limit
	result[len(q.args)+1] = offset
	return result
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE metacharacters using the default backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
