// Package player reads the player page: the player record, the teams they
// were rostered with and the seasons they played.
package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/uptrace/bun"
)

var playerFields = []string{"player_id", "nickname", "display_name", "real_name", "birth_year", "is_active", "notes", "club_name", "joined_at"}

// searchFields are matched against a free-text query.
var searchFields = []string{"nickname", "real_name", "display_name"}

// New creates a new player Store.
func New(db bun.IDB, mapper *schema.Mapper) Store {
	return &store{
		db:     db,
		mapper: mapper,
	}
}

// GetBundle finds the player and lists their rosters and seasons.
func (s *store) GetBundle(ctx context.Context, lookup Lookup) (*Bundle, error) {
	if lookup.PlayerID == "" && lookup.Query == "" {
		return nil, ErrLookupRequired
	}
	p, err := s.findPlayer(ctx, lookup)
	if err != nil {
		return nil, err
	}
	b := &Bundle{Player: *p}
	if b.Rosters, err = s.listRosters(ctx, p.PlayerID); err != nil {
		return nil, err
	}
	if b.Seasons, err = s.listSeasons(ctx, p.PlayerID); err != nil {
		return nil, err
	}
	return b, nil
}

// findPlayer matches by id when one is given. Otherwise an exact id match
// on the query wins, then any player whose names contain it, by nickname.
func (s *store) findPlayer(ctx context.Context, lookup Lookup) (*Player, error) {
	t, err := s.mapper.Table(ctx, schema.Players, "")
	if err != nil {
		return nil, fmt.Errorf("player.findPlayer: %w", err)
	}
	if !t.Has("player_id") {
		return nil, ErrPlayerNotFound
	}

	from, args := t.From()
	q := t.Select(s.db.NewSelect().TableExpr(from, args...), playerFields...)
	if lookup.PlayerID != "" {
		q = q.Where("? = ?", t.Ident("player_id"), lookup.PlayerID)
	} else {
		pattern := "%" + lookup.Query + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("? = ?", t.Ident("player_id"), lookup.Query)
			for _, f := range searchFields {
				if t.Has(f) {
					q = q.WhereOr("? LIKE ?", t.Ident(f), pattern)
				}
			}
			return q
		}).OrderExpr("(? = ?) DESC", t.Ident("player_id"), lookup.Query)
		if t.Has("nickname") {
			q = q.OrderExpr("? ASC", t.Ident("nickname"))
		}
		q = q.OrderExpr("? ASC", t.Ident("player_id"))
	}
	q = q.Limit(1)

	var p Player
	if err := q.Scan(ctx, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("player.findPlayer: %w", err)
	}
	log.Debug("Found player", "player_id", p.PlayerID, "by_query", lookup.PlayerID == "")
	return &p, nil
}

func (s *store) listRosters(ctx context.Context, playerID string) ([]Roster, error) {
	rosters := []Roster{}
	r, err := s.mapper.Table(ctx, schema.Rosters, "r")
	if err != nil {
		return nil, fmt.Errorf("player.listRosters: %w", err)
	}
	t, err := s.mapper.Table(ctx, schema.Teams, "t")
	if err != nil {
		return nil, fmt.Errorf("player.listRosters: %w", err)
	}
	if !r.Has("season_id", "team_id", "player_id") || !t.Has("team_id") {
		log.Debug("Player rosters unavailable under current schema")
		return rosters, nil
	}

	from, args := r.From()
	tf, targs := t.From()
	q := s.db.NewSelect().TableExpr(from, args...).
		Join("JOIN "+tf+" ON ? = ?", append(targs, t.Ident("team_id"), r.Ident("team_id"))...)
	q = r.Select(q, "season_id", "team_id")
	q = t.SelectAs(q, "name", "team_name").
		Where("? = ?", r.Ident("player_id"), playerID).
		OrderExpr("? DESC", r.Ident("season_id")).
		OrderExpr("? ASC", r.Ident("team_id"))

	if err := q.Scan(ctx, &rosters); err != nil {
		return nil, fmt.Errorf("player.listRosters: %w", err)
	}
	return rosters, nil
}

func (s *store) listSeasons(ctx context.Context, playerID string) ([]Season, error) {
	seasons := []Season{}
	r, err := s.mapper.Table(ctx, schema.Rosters, "r")
	if err != nil {
		return nil, fmt.Errorf("player.listSeasons: %w", err)
	}
	se, err := s.mapper.Table(ctx, schema.Seasons, "s")
	if err != nil {
		return nil, fmt.Errorf("player.listSeasons: %w", err)
	}
	if !r.Has("season_id", "player_id") || !se.Has("season_id") {
		log.Debug("Player seasons unavailable under current schema")
		return seasons, nil
	}

	from, args := r.From()
	sf, sargs := se.From()
	q := s.db.NewSelect().Distinct().TableExpr(from, args...).
		Join("JOIN "+sf+" ON ? = ?", append(sargs, se.Ident("season_id"), r.Ident("season_id"))...)
	q = r.Select(q, "season_id")
	q = se.Select(q, "event_id")
	q = se.SelectAs(q, "name", "season_name")
	q = se.Select(q, "year", "status").
		Where("? = ?", r.Ident("player_id"), playerID)
	if se.Has("year") {
		q = q.OrderExpr("? DESC", se.Ident("year"))
	}
	q = q.OrderExpr("? DESC", r.Ident("season_id"))

	if err := q.Scan(ctx, &seasons); err != nil {
		return nil, fmt.Errorf("player.listSeasons: %w", err)
	}
	return seasons, nil
}
