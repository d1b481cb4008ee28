package schema

import "github.com/uptrace/bun"

// Name is the logical table name.
func (r *Resolved) Name() Table { return r.table }

// Has reports whether field maps to a physical column.
func (r *Resolved) Has(fields ...string) bool {
	for _, f := range fields {
		if _, ok := r.columns[f]; !ok {
			return false
		}
	}
	return true
}

// Column returns the physical column for field.
func (r *Resolved) Column(field string) (string, bool) {
	col, ok := r.columns[field]
	return col, ok
}

// From is the table reference for a FROM or JOIN clause.
func (r *Resolved) From() (string, []any) {
	if r.alias == "" {
		return "?", []any{bun.Ident(string(r.table))}
	}
	return "? AS ?", []any{bun.Ident(string(r.table)), bun.Ident(r.alias)}
}

// Ident is the quoted, alias-qualified identifier for field. Callers must
// check Has first; an unmapped field yields a NULL literal.
func (r *Resolved) Ident(field string) any {
	col, ok := r.columns[field]
	if !ok {
		return bun.Safe("NULL")
	}
	if r.alias == "" {
		return bun.Ident(col)
	}
	return bun.Ident(r.alias + "." + col)
}

// Select projects each field under its logical name. Missing fields are
// projected as NULL so the result shape never depends on the schema.
func (r *Resolved) Select(q *bun.SelectQuery, fields ...string) *bun.SelectQuery {
	for _, f := range fields {
		q = r.SelectAs(q, f, f)
	}
	return q
}

// SelectAs projects field under the output name as.
func (r *Resolved) SelectAs(q *bun.SelectQuery, field, as string) *bun.SelectQuery {
	return q.ColumnExpr("? AS ?", r.Ident(field), bun.Ident(as))
}
