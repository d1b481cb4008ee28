// Package team reads the team page: the team record, its aliases, rosters,
// registrations and points.
package team

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/uptrace/bun"
)

// New creates a new team Store.
func New(db bun.IDB, mapper *schema.Mapper) Store {
	return &store{
		db:     db,
		mapper: mapper,
	}
}

// GetBundle returns the team and everything recorded about it. It returns
// ErrTeamNotFound for an unknown id.
func (s *store) GetBundle(ctx context.Context, teamID string) (*Bundle, error) {
	t, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	b := &Bundle{Team: *t}
	if b.Aliases, err = s.listAliases(ctx, teamID); err != nil {
		return nil, err
	}
	if b.Roster, err = s.listRoster(ctx, teamID); err != nil {
		return nil, err
	}
	if b.Registrations, err = s.listRegistrations(ctx, teamID); err != nil {
		return nil, err
	}
	if b.Points, err = s.listPoints(ctx, teamID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *store) getTeam(ctx context.Context, teamID string) (*Team, error) {
	t, err := s.mapper.Table(ctx, schema.Teams, "")
	if err != nil {
		return nil, fmt.Errorf("team.getTeam: %w", err)
	}
	if !t.Has("team_id") {
		return nil, ErrTeamNotFound
	}
	from, args := t.From()
	q := s.db.NewSelect().TableExpr(from, args...)
	q = t.Select(q, "team_id", "club_id", "first_seen_season_id", "note")
	q = t.SelectAs(q, "name", "canonical_name").
		Where("? = ?", t.Ident("team_id"), teamID).
		Limit(1)

	var team Team
	if err := q.Scan(ctx, &team); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("team.getTeam: %w", err)
	}
	return &team, nil
}

func (s *store) listAliases(ctx context.Context, teamID string) ([]Alias, error) {
	aliases := []Alias{}
	a, err := s.mapper.Table(ctx, schema.TeamAliases, "")
	if err != nil {
		return nil, fmt.Errorf("team.listAliases: %w", err)
	}
	if !a.Has("team_id", "alias_name") {
		log.Debug("Team aliases unavailable under current schema")
		return aliases, nil
	}
	from, args := a.From()
	q := a.Select(s.db.NewSelect().TableExpr(from, args...), "alias_name", "from_date", "to_date", "note").
		Where("? = ?", a.Ident("team_id"), teamID)
	if a.Has("created_at") {
		q = q.OrderExpr("? ASC", a.Ident("created_at"))
	}
	if err := q.Scan(ctx, &aliases); err != nil {
		return nil, fmt.Errorf("team.listAliases: %w", err)
	}
	return aliases, nil
}

func (s *store) listRoster(ctx context.Context, teamID string) ([]RosterEntry, error) {
	roster := []RosterEntry{}
	r, err := s.mapper.Table(ctx, schema.Rosters, "r")
	if err != nil {
		return nil, fmt.Errorf("team.listRoster: %w", err)
	}
	p, err := s.mapper.Table(ctx, schema.Players, "p")
	if err != nil {
		return nil, fmt.Errorf("team.listRoster: %w", err)
	}
	if !r.Has("season_id", "team_id", "player_id") || !p.Has("player_id") {
		log.Debug("Team roster unavailable under current schema")
		return roster, nil
	}

	from, args := r.From()
	pf, pargs := p.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		Join("JOIN "+pf+" ON ? = ?", append(pargs, p.Ident("player_id"), r.Ident("player_id"))...)
	q = r.Select(q, "season_id", "player_id")
	q = p.Select(q, "nickname", "real_name", "birth_year", "club_name").
		Where("? = ?", r.Ident("team_id"), teamID).
		OrderExpr("? DESC", r.Ident("season_id"))
	if p.Has("nickname") {
		q = q.OrderExpr("? ASC", p.Ident("nickname"))
	}
	q = q.OrderExpr("? ASC", r.Ident("player_id"))

	if err := q.Scan(ctx, &roster); err != nil {
		return nil, fmt.Errorf("team.listRoster: %w", err)
	}
	return roster, nil
}

func (s *store) listRegistrations(ctx context.Context, teamID string) ([]Registration, error) {
	registrations := []Registration{}
	r, err := s.mapper.Table(ctx, schema.Registrations, "r")
	if err != nil {
		return nil, fmt.Errorf("team.listRegistrations: %w", err)
	}
	se, err := s.mapper.Table(ctx, schema.Seasons, "s")
	if err != nil {
		return nil, fmt.Errorf("team.listRegistrations: %w", err)
	}
	if !r.Has("registration_id", "season_id", "team_id") || !se.Has("season_id") {
		log.Debug("Team registrations unavailable under current schema")
		return registrations, nil
	}

	from, args := r.From()
	sf, sargs := se.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		Join("JOIN "+sf+" ON ? = ?", append(sargs, se.Ident("season_id"), r.Ident("season_id"))...)
	q = r.Select(q, "registration_id", "season_id", "division")
	q = r.SelectAs(q, "status", "registration_status")
	q = se.SelectAs(q, "name", "season_name")
	q = se.Select(q, "year", "status").
		Where("? = ?", r.Ident("team_id"), teamID)
	if se.Has("year") {
		q = q.OrderExpr("? DESC", se.Ident("year"))
	}
	q = q.OrderExpr("? DESC", r.Ident("season_id"))

	if err := q.Scan(ctx, &registrations); err != nil {
		return nil, fmt.Errorf("team.listRegistrations: %w", err)
	}
	return registrations, nil
}

func (s *store) listPoints(ctx context.Context, teamID string) ([]ComponentPoints, error) {
	points := []ComponentPoints{}
	r, err := s.mapper.Table(ctx, schema.Registrations, "rg")
	if err != nil {
		return nil, fmt.Errorf("team.listPoints: %w", err)
	}
	p, err := s.mapper.Table(ctx, schema.Points, "tcp")
	if err != nil {
		return nil, fmt.Errorf("team.listPoints: %w", err)
	}
	c, err := s.mapper.Table(ctx, schema.Components, "sc")
	if err != nil {
		return nil, fmt.Errorf("team.listPoints: %w", err)
	}
	if !r.Has("registration_id", "season_id", "team_id") || !p.Has("registration_id", "component_id", "points") {
		log.Debug("Team points unavailable under current schema")
		return points, nil
	}

	from, args := r.From()
	pf, pargs := p.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		Join("JOIN "+pf+" ON ? = ?", append(pargs, p.Ident("registration_id"), r.Ident("registration_id"))...).
		ColumnExpr("? AS season_id", r.Ident("season_id")).
		ColumnExpr("? AS component_id", p.Ident("component_id")).
		ColumnExpr("CAST(COALESCE(SUM(?), 0) AS REAL) AS points", p.Ident("points"))
	if c.Has("component_id") {
		cf, cargs := c.From()
		q = q.Join("LEFT JOIN "+cf+" ON ? = ?", append(cargs, c.Ident("component_id"), p.Ident("component_id"))...).
			ColumnExpr("MAX(?) AS component_name", c.Ident("name")).
			ColumnExpr("MAX(?) AS component_type", c.Ident("component_type"))
	} else {
		q = q.ColumnExpr("NULL AS component_name").ColumnExpr("NULL AS component_type")
	}
	q = q.Where("? = ?", r.Ident("team_id"), teamID).
		GroupExpr("?, ?", r.Ident("season_id"), p.Ident("component_id")).
		OrderExpr("? DESC", r.Ident("season_id")).
		OrderExpr("points DESC").
		OrderExpr("? ASC", p.Ident("component_id"))

	if err := q.Scan(ctx, &points); err != nil {
		return nil, fmt.Errorf("team.listPoints: %w", err)
	}
	return points, nil
}
