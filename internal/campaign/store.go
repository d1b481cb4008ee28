package campaign

import (
	"context"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/uptrace/bun"
)

var (
	eventFields     = []string{"event_id", "name", "name_zh", "name_en", "level", "frequency", "official_url", "description"}
	seasonFields    = []string{"season_id", "event_id", "name", "year", "start_date", "end_date", "status", "notes"}
	divisionFields  = []string{"division_key", "season_id", "name", "leaderboard_key", "sort_order", "notes"}
	componentFields = []string{"component_id", "leaderboard_key", "name", "component_type", "start_date", "end_date", "sort_order", "notes"}
)

const cancelledStatus = "cancelled"

// New creates a new campaign Store.
func New(db bun.IDB, mapper *schema.Mapper) Store {
	return &store{
		db:     db,
		mapper: mapper,
	}
}

// ListEvents returns every event ordered by id.
func (s *store) ListEvents(ctx context.Context) ([]Event, error) {
	t, err := s.mapper.Table(ctx, schema.Events, "")
	if err != nil {
		return nil, queryError("list events", err)
	}
	if !t.Has("event_id") {
		log.Debug("Events table has no id column")
		return nil, nil
	}

	from, args := t.From()
	q := t.Select(s.db.NewSelect().TableExpr(from, args...), eventFields...).
		OrderExpr("? ASC", t.Ident("event_id"))

	var events []Event
	if err := q.Scan(ctx, &events); err != nil {
		return nil, queryError("list events", err)
	}
	for i := range events {
		events[i].Name = eventDisplayName(events[i])
	}
	return events, nil
}

func eventDisplayName(e Event) *string {
	for _, n := range []*string{e.NameZh, e.NameEn, e.Name} {
		if n != nil && *n != "" {
			return n
		}
	}
	id := e.EventID
	return &id
}

// ListSeasons returns the seasons of an event, newest first.
func (s *store) ListSeasons(ctx context.Context, eventID string) ([]Season, error) {
	t, err := s.mapper.Table(ctx, schema.Seasons, "")
	if err != nil {
		return nil, queryError("list seasons", err)
	}
	if !t.Has("season_id", "event_id") {
		log.Debug("Seasons table cannot be scoped by event")
		return nil, nil
	}

	from, args := t.From()
	q := t.Select(s.db.NewSelect().TableExpr(from, args...), seasonFields...).
		Where("? = ?", t.Ident("event_id"), eventID)
	if t.Has("year") {
		q = q.OrderExpr("? DESC", t.Ident("year"))
	}
	q = q.OrderExpr("? DESC", t.Ident("season_id"))

	var seasons []Season
	if err := q.Scan(ctx, &seasons); err != nil {
		return nil, queryError("list seasons", err)
	}
	return seasons, nil
}

// ListDivisions returns the divisions of a season in display order.
func (s *store) ListDivisions(ctx context.Context, seasonID string) ([]Division, error) {
	t, err := s.mapper.Table(ctx, schema.Divisions, "")
	if err != nil {
		return nil, queryError("list divisions", err)
	}
	if !t.Has("division_key", "season_id", "leaderboard_key") {
		log.Debug("Divisions table is missing a key column")
		return nil, nil
	}

	from, args := t.From()
	q := t.Select(s.db.NewSelect().TableExpr(from, args...), divisionFields...).
		Where("? = ?", t.Ident("season_id"), seasonID)
	if t.Has("sort_order") {
		q = q.OrderExpr("? ASC", t.Ident("sort_order"))
	}
	q = q.OrderExpr("? ASC", t.Ident("division_key"))

	var divisions []Division
	if err := q.Scan(ctx, &divisions); err != nil {
		return nil, queryError("list divisions", err)
	}
	return divisions, nil
}

// ListComponents returns the rounds and round groups of a leaderboard scope
// in display order.
func (s *store) ListComponents(ctx context.Context, leaderboardKey string, includeSubKeys bool) ([]Component, error) {
	t, err := s.mapper.Table(ctx, schema.Components, "")
	if err != nil {
		return nil, queryError("list components", err)
	}
	if !t.Has("component_id", "leaderboard_key") {
		log.Debug("Components table is missing a key column")
		return nil, nil
	}

	from, args := t.From()
	q := t.Select(s.db.NewSelect().TableExpr(from, args...), componentFields...).
		WhereGroup(" AND ", leaderboardKeyFilter(t, leaderboardKey, includeSubKeys))
	if t.Has("sort_order") {
		q = q.OrderExpr("? ASC", t.Ident("sort_order"))
	}
	q = q.OrderExpr("? ASC", t.Ident("component_id"))

	var components []Component
	if err := q.Scan(ctx, &components); err != nil {
		return nil, queryError("list components", err)
	}
	for i := range components {
		components[i].RoundKey = components[i].ComponentID
		components[i].Type = components[i].ComponentType
	}
	return components, nil
}

// ListParticipants returns the distinct teams with a live registration in
// scope. Teams without a team record are still returned, unnamed.
func (s *store) ListParticipants(ctx context.Context, scope RegistrationScope) ([]Participant, error) {
	reg, err := s.mapper.Table(ctx, schema.Registrations, "r")
	if err != nil {
		return nil, queryError("list participants", err)
	}
	team, err := s.mapper.Table(ctx, schema.Teams, "t")
	if err != nil {
		return nil, queryError("list participants", err)
	}
	if !reg.Has("team_id", "season_id") {
		log.Debug("Registrations table cannot be scoped by season")
		return nil, nil
	}

	from, args := reg.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		ColumnExpr("? AS team_id", reg.Ident("team_id"))
	if team.Has("team_id") {
		tf, targs := team.From()
		q = q.Join("LEFT JOIN "+tf+" ON ? = ?", append(targs, team.Ident("team_id"), reg.Ident("team_id"))...).
			ColumnExpr("MAX(?) AS team_name", team.Ident("name"))
	} else {
		q = q.ColumnExpr("NULL AS team_name")
	}
	q = scopeRegistrations(q, reg, scope).
		GroupExpr("?", reg.Ident("team_id")).
		OrderExpr("? ASC", reg.Ident("team_id"))

	var participants []Participant
	if err := q.Scan(ctx, &participants); err != nil {
		return nil, queryError("list participants", err)
	}
	return participants, nil
}

// SumPoints sums, per team, the points of in-scope registrations that match
// criterion. Teams without matching rows are absent from the result.
func (s *store) SumPoints(ctx context.Context, scope RegistrationScope, criterion Criterion) ([]TeamPoints, error) {
	pts, err := s.mapper.Table(ctx, schema.Points, "p")
	if err != nil {
		return nil, queryError("sum points", err)
	}
	reg, err := s.mapper.Table(ctx, schema.Registrations, "r")
	if err != nil {
		return nil, queryError("sum points", err)
	}
	if !pts.Has("registration_id", "component_id", "points") || !reg.Has("registration_id", "team_id", "season_id") {
		log.Debug("Points cannot be joined to registrations; every team scores zero")
		return nil, nil
	}

	from, args := pts.From()
	rf, rargs := reg.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		Join("JOIN "+rf+" ON ? = ?", append(rargs, reg.Ident("registration_id"), pts.Ident("registration_id"))...).
		ColumnExpr("? AS team_id", reg.Ident("team_id")).
		ColumnExpr("CAST(COALESCE(SUM(?), 0) AS REAL) AS points", pts.Ident("points"))

	switch criterion.Kind {
	case MatchComponent:
		q = q.Where("? = ?", pts.Ident("component_id"), criterion.ComponentID)
	case MatchLeaderboard:
		comp, err := s.mapper.Table(ctx, schema.Components, "c")
		if err != nil {
			return nil, queryError("sum points", err)
		}
		if !comp.Has("component_id", "leaderboard_key") {
			log.Debug("Components cannot be scoped by leaderboard; every team scores zero")
			return nil, nil
		}
		cf, cargs := comp.From()
		q = q.Join("JOIN "+cf+" ON ? = ?", append(cargs, comp.Ident("component_id"), pts.Ident("component_id"))...).
			WhereGroup(" AND ", leaderboardKeyFilter(comp, criterion.LeaderboardKey, criterion.IncludeSubKeys))
	}

	q = scopeRegistrations(q, reg, scope).GroupExpr("?", reg.Ident("team_id"))

	var totals []TeamPoints
	if err := q.Scan(ctx, &totals); err != nil {
		return nil, queryError("sum points", err)
	}
	return totals, nil
}

// CountRegisteredTeams counts the distinct teams with a live registration in
// the season, across all divisions.
func (s *store) CountRegisteredTeams(ctx context.Context, seasonID string) (int, error) {
	reg, err := s.mapper.Table(ctx, schema.Registrations, "")
	if err != nil {
		return 0, queryError("count registered teams", err)
	}
	if !reg.Has("team_id", "season_id") {
		return 0, ErrSchemaFieldMissing
	}
	from, args := reg.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		ColumnExpr("COUNT(DISTINCT ?)", reg.Ident("team_id")).
		Where("? = ?", reg.Ident("season_id"), seasonID)
	q = liveRegistrations(q, reg)
	return s.count(ctx, q, "count registered teams")
}

// CountRosterPlayers counts the distinct players rostered in the season.
func (s *store) CountRosterPlayers(ctx context.Context, seasonID string) (int, error) {
	ros, err := s.mapper.Table(ctx, schema.Rosters, "")
	if err != nil {
		return 0, queryError("count roster players", err)
	}
	if !ros.Has("player_id", "season_id") {
		return 0, ErrSchemaFieldMissing
	}
	from, args := ros.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		ColumnExpr("COUNT(DISTINCT ?)", ros.Ident("player_id")).
		Where("? = ?", ros.Ident("season_id"), seasonID)
	return s.count(ctx, q, "count roster players")
}

// CountScoredComponents counts the components of a leaderboard scope that
// have at least one points row.
func (s *store) CountScoredComponents(ctx context.Context, leaderboardKey string) (int, error) {
	pts, err := s.mapper.Table(ctx, schema.Points, "p")
	if err != nil {
		return 0, queryError("count scored components", err)
	}
	comp, err := s.mapper.Table(ctx, schema.Components, "c")
	if err != nil {
		return 0, queryError("count scored components", err)
	}
	if !pts.Has("component_id") || !comp.Has("component_id", "leaderboard_key") {
		return 0, ErrSchemaFieldMissing
	}
	from, args := pts.From()
	cf, cargs := comp.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		Join("JOIN "+cf+" ON ? = ?", append(cargs, comp.Ident("component_id"), pts.Ident("component_id"))...).
		ColumnExpr("COUNT(DISTINCT ?)", pts.Ident("component_id")).
		Where("? = ?", comp.Ident("leaderboard_key"), leaderboardKey)
	return s.count(ctx, q, "count scored components")
}

func (s *store) count(ctx context.Context, q *bun.SelectQuery, op string) (int, error) {
	var n int
	if err := q.Scan(ctx, &n); err != nil {
		return 0, queryError(op, err)
	}
	return n, nil
}

// scopeRegistrations restricts q to live registrations of the season whose
// division is unset or equal to the scope's division.
func scopeRegistrations(q *bun.SelectQuery, reg *schema.Resolved, scope RegistrationScope) *bun.SelectQuery {
	q = q.Where("? = ?", reg.Ident("season_id"), scope.SeasonID)
	if reg.Has("division") {
		div := reg.Ident("division")
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("? IS NULL", div).
				WhereOr("? = ''", div).
				WhereOr("? = ?", div, scope.DivisionKey)
		})
	}
	return liveRegistrations(q, reg)
}

func liveRegistrations(q *bun.SelectQuery, reg *schema.Resolved) *bun.SelectQuery {
	if !reg.Has("status") {
		return q
	}
	status := reg.Ident("status")
	return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? IS NULL", status).
			WhereOr("LOWER(?) <> ?", status, cancelledStatus)
	})
}

func leaderboardKeyFilter(t *schema.Resolved, key string, includeSubKeys bool) func(*bun.SelectQuery) *bun.SelectQuery {
	col := t.Ident("leaderboard_key")
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("? = ?", col, key)
		if includeSubKeys {
			prefix := key + SubKeySeparator
			q = q.WhereOr("substr(?, 1, ?) = ?", col, utf8.RuneCountInString(prefix), prefix)
		}
		return q
	}
}
