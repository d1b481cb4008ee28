package schema

import (
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/uptrace/bun"
)

// Table is the logical name of a table the service reads from.
type Table string

const (
	Events        Table = "events"
	Seasons       Table = "seasons"
	Divisions     Table = "divisions"
	Components    Table = "score_components"
	Registrations Table = "registrations"
	Points        Table = "team_component_points"
	Teams         Table = "teams"
	TeamAliases   Table = "team_aliases"
	Players       Table = "players"
	Rosters       Table = "rosters"
)

// Catalog maps each logical field of a table to the physical column names it
// may appear under, most preferred first.
type Catalog map[Table]map[string][]string

// ColumnSet is the set of physical column names a table currently has.
type ColumnSet map[string]struct{}

// Mapper resolves logical fields to physical columns for one database.
// Column sets are fetched once per table and kept for the life of the Mapper.
type Mapper struct {
	db      bun.IDB
	catalog Catalog
	cache   *xsync.Map[Table, ColumnSet]
}

// Resolved is a table whose logical fields have been mapped to columns,
// optionally under a query alias.
type Resolved struct {
	table   Table
	alias   string
	columns map[string]string
}
