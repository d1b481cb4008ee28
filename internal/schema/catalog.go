package schema

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultCatalog returns the column candidates known from every schema
// revision the campaign database has shipped with.
func DefaultCatalog() Catalog {
	return Catalog{
		Events: {
			"event_id":     {"event_id", "id"},
			"name_zh":      {"name_zh"},
			"name_en":      {"name_en"},
			"name":         {"name", "event_name"},
			"level":        {"level"},
			"frequency":    {"frequency"},
			"official_url": {"official_url", "url"},
			"description":  {"description"},
		},
		Seasons: {
			"season_id":  {"season_id", "id"},
			"event_id":   {"event_id"},
			"name":       {"name", "season_name"},
			"year":       {"year", "season_year"},
			"start_date": {"start_date", "starts_on"},
			"end_date":   {"end_date", "ends_on"},
			"status":     {"status", "season_status"},
			"notes":      {"notes", "note"},
		},
		Divisions: {
			"division_key":    {"division_key", "division_id", "key"},
			"season_id":       {"season_id"},
			"name":            {"name", "division_name"},
			"leaderboard_key": {"leaderboard_key", "lb_key"},
			"sort_order":      {"sort_order", "sort", "position"},
			"notes":           {"notes", "note"},
		},
		Components: {
			"component_id":    {"component_id", "round_key", "id"},
			"leaderboard_key": {"leaderboard_key", "lb_key"},
			"name":            {"name", "component_name"},
			"component_type":  {"component_type", "type"},
			"start_date":      {"start_date", "starts_on"},
			"end_date":        {"end_date", "ends_on"},
			"sort_order":      {"sort_order", "sort", "position"},
			"notes":           {"notes", "note"},
		},
		Registrations: {
			"registration_id": {"registration_id", "id"},
			"season_id":       {"season_id"},
			"team_id":         {"team_id"},
			"division":        {"division", "division_key"},
			"status":          {"status", "registration_status"},
		},
		Points: {
			"registration_id": {"registration_id"},
			"component_id":    {"component_id", "round_key"},
			"points":          {"points", "score"},
		},
		Teams: {
			"team_id":              {"team_id", "id"},
			"name":                 {"canonical_name", "name", "team_name"},
			"club_id":              {"club_id"},
			"first_seen_season_id": {"first_seen_season_id"},
			"note":                 {"note", "notes"},
		},
		TeamAliases: {
			"team_id":    {"team_id"},
			"alias_name": {"alias_name", "alias"},
			"from_date":  {"from_date"},
			"to_date":    {"to_date"},
			"note":       {"note", "notes"},
			"created_at": {"created_at"},
		},
		Players: {
			"player_id":    {"player_id", "id"},
			"nickname":     {"nickname", "nick"},
			"display_name": {"display_name"},
			"real_name":    {"real_name", "name"},
			"birth_year":   {"birth_year"},
			"is_active":    {"is_active", "active"},
			"notes":        {"notes", "note"},
			"club_name":    {"club_name", "club"},
			"joined_at":    {"joined_at"},
		},
		Rosters: {
			"season_id": {"season_id"},
			"team_id":   {"team_id"},
			"player_id": {"player_id"},
		},
	}
}

// Candidates returns the column candidates for a logical field.
func (c Catalog) Candidates(table Table, field string) []string {
	return c[table][field]
}

// Merge returns a new catalog in which the candidates from overrides are
// tried before the receiver's own.
func (c Catalog) Merge(overrides Catalog) Catalog {
	out := make(Catalog, len(c))
	for table, fields := range c {
		out[table] = make(map[string][]string, len(fields))
		for field, cands := range fields {
			out[table][field] = append([]string(nil), cands...)
		}
	}
	for table, fields := range overrides {
		if out[table] == nil {
			out[table] = make(map[string][]string, len(fields))
		}
		for field, cands := range fields {
			merged := append([]string(nil), cands...)
			for _, existing := range out[table][field] {
				if !slices.Contains(merged, existing) {
					merged = append(merged, existing)
				}
			}
			out[table][field] = merged
		}
	}
	return out
}

// LoadCatalog returns the default catalog extended with the aliases in the
// YAML file at path. An empty path yields the default catalog.
//
//	seasons:
//	  name: [title]
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema.LoadCatalog: %w", err)
	}
	var overrides Catalog
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("schema.LoadCatalog: parse %s: %w", path, err)
	}
	return DefaultCatalog().Merge(overrides), nil
}
