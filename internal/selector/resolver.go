// Package selector turns a partial event/season/division/round request into
// a complete selection.
package selector

import (
	"context"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
)

// Resolver walks the hierarchy top-down. Each level's candidates are scoped
// by the id chosen one level up.
type Resolver struct {
	store          campaign.Store
	defaultEventID string
}

func NewResolver(store campaign.Store, defaultEventID string) *Resolver {
	return &Resolver{store: store, defaultEventID: defaultEventID}
}

// Resolve fills in every level it can. A requested id that is not among the
// candidates is replaced by the level's default. An empty level stops the
// walk and leaves every level below it empty.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Selection, error) {
	sel := &Selection{
		Events:    []campaign.Event{},
		Seasons:   []campaign.Season{},
		Divisions: []campaign.Division{},
		Rounds:    []campaign.Component{},
	}

	events, err := r.store.ListEvents(ctx)
	if err != nil {
		return nil, &ResolveError{Level: LevelEvent, Err: err}
	}
	sel.Events = orEmpty(events)
	sel.Context.EventID = pick(req.EventID, LevelEvent, slices.ContainsFunc(events, func(e campaign.Event) bool {
		return e.EventID == req.EventID
	}), func() string { return DefaultEvent(events, r.defaultEventID) })
	if sel.Context.EventID == "" {
		return sel, nil
	}
	sel.Depth = LevelEvent

	seasons, err := r.store.ListSeasons(ctx, sel.Context.EventID)
	if err != nil {
		return nil, &ResolveError{Level: LevelSeason, Err: err}
	}
	sel.Seasons = orEmpty(seasons)
	sel.Context.SeasonID = pick(req.SeasonID, LevelSeason, slices.ContainsFunc(seasons, func(s campaign.Season) bool {
		return s.SeasonID == req.SeasonID
	}), func() string { return DefaultSeason(seasons) })
	if sel.Context.SeasonID == "" {
		return sel, nil
	}
	sel.Depth = LevelSeason

	divisions, err := r.store.ListDivisions(ctx, sel.Context.SeasonID)
	if err != nil {
		return nil, &ResolveError{Level: LevelDivision, Err: err}
	}
	sel.Divisions = orEmpty(divisions)
	sel.Context.DivisionKey = pick(req.DivisionKey, LevelDivision, slices.ContainsFunc(divisions, func(d campaign.Division) bool {
		return d.DivisionKey == req.DivisionKey
	}), func() string { return DefaultDivision(divisions) })
	if sel.Context.DivisionKey == "" {
		return sel, nil
	}
	sel.Depth = LevelDivision
	idx := slices.IndexFunc(divisions, func(d campaign.Division) bool { return d.DivisionKey == sel.Context.DivisionKey })
	division := divisions[idx]
	sel.Division = &division
	sel.Context.LeaderboardKey = division.LeaderboardKey

	rounds, err := r.store.ListComponents(ctx, division.LeaderboardKey, false)
	if err != nil {
		return nil, &ResolveError{Level: LevelRound, Err: err}
	}
	sel.Rounds = orEmpty(rounds)
	sel.Context.RoundKey = pick(req.RoundKey, LevelRound, slices.ContainsFunc(rounds, func(c campaign.Component) bool {
		return c.ComponentID == req.RoundKey
	}), func() string { return DefaultRound(rounds) })
	if sel.Context.RoundKey != "" {
		sel.Depth = LevelRound
	}
	return sel, nil
}

func pick(requested string, level Level, found bool, fallback func() string) string {
	if requested != "" && found {
		return requested
	}
	id := fallback()
	if requested != "" {
		log.Debug("Requested id not found, using default", "level", level, "requested", requested, "default", id)
	}
	return id
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
