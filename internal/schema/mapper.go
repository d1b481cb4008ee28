package schema

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/uptrace/bun"
)

// ResolveColumn returns the first candidate present in tableColumns.
func ResolveColumn(tableColumns ColumnSet, candidates []string) (string, bool) {
	for _, c := range candidates {
		if _, ok := tableColumns[c]; ok {
			return c, true
		}
	}
	return "", false
}

// NewMapper creates a Mapper reading table metadata from db.
func NewMapper(db bun.IDB, catalog Catalog) *Mapper {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Mapper{
		db:      db,
		catalog: catalog,
		cache:   xsync.NewMap[Table, ColumnSet](),
	}
}

// Columns returns the physical columns of table. A table that does not exist
// has no columns. The first successful lookup per table is cached; two
// goroutines racing on the same table both store the same set.
func (m *Mapper) Columns(ctx context.Context, table Table) (ColumnSet, error) {
	if cols, ok := m.cache.Load(table); ok {
		return cols, nil
	}

	var names []string
	err := m.db.NewRaw("SELECT name FROM pragma_table_info(?)", string(table)).Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("schema.Columns(%s): %w", table, err)
	}

	cols := make(ColumnSet, len(names))
	for _, n := range names {
		cols[n] = struct{}{}
	}
	m.cache.Store(table, cols)
	log.Debug("Cached table columns", "table", table, "columns", len(cols))
	return cols, nil
}

// Resolve maps one logical field of table to its physical column.
func (m *Mapper) Resolve(ctx context.Context, table Table, field string) (string, bool, error) {
	cols, err := m.Columns(ctx, table)
	if err != nil {
		return "", false, err
	}
	col, ok := ResolveColumn(cols, m.catalog.Candidates(table, field))
	return col, ok, nil
}

// Table resolves every catalogued field of table at once. alias, when not
// empty, qualifies the columns returned by Ident.
func (m *Mapper) Table(ctx context.Context, table Table, alias string) (*Resolved, error) {
	cols, err := m.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	r := &Resolved{table: table, alias: alias, columns: make(map[string]string)}
	for field, cands := range m.catalog[table] {
		if col, ok := ResolveColumn(cols, cands); ok {
			r.columns[field] = col
		} else {
			log.Debug("Schema field missing", "table", table, "field", field)
		}
	}
	return r, nil
}
