// Package bundle assembles the campaign page payload: the resolved
// selection, the candidates at every level, summary counts and the ranked
// table.
package bundle

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/leaderboard"
	"github.com/mauv0809/blast-campaigns/internal/metrics"
	"github.com/mauv0809/blast-campaigns/internal/selector"
)

const StageLeaderboard = "leaderboard"

// NewAssembler creates an Assembler whose overview counters run on a pool of
// workers goroutines. Call Close to release the pool.
func NewAssembler(store campaign.Store, defaultEventID string, workers int, m metrics.Metrics) *Assembler {
	if workers < 1 {
		workers = 1
	}
	return &Assembler{
		store:      store,
		resolver:   selector.NewResolver(store, defaultEventID),
		aggregator: leaderboard.NewAggregator(store),
		pool:       pond.NewPool(workers),
		metrics:    m,
	}
}

// Close waits for running counters and stops the worker pool.
func (a *Assembler) Close() {
	a.pool.StopAndWait()
}

// Get resolves q and assembles its bundle. Storage failures while resolving
// or ranking are returned as *StorageError; overview counters that fail are
// left nil instead.
func (a *Assembler) Get(ctx context.Context, q Query) (*Bundle, error) {
	sel, err := a.resolver.Resolve(ctx, selector.Request{
		EventID:     q.EventID,
		SeasonID:    q.SeasonID,
		DivisionKey: q.DivisionKey,
		RoundKey:    q.RoundKey,
	})
	if err != nil {
		stage := "selector"
		var re *selector.ResolveError
		if errors.As(err, &re) {
			stage = re.Level.String()
		}
		return nil, &StorageError{Stage: stage, Err: err}
	}

	table := []leaderboard.Row{}
	if sel.Division != nil {
		table, err = a.aggregator.Compute(ctx, leaderboard.Scope{
			SeasonID:       sel.Context.SeasonID,
			DivisionKey:    sel.Context.DivisionKey,
			LeaderboardKey: sel.Context.LeaderboardKey,
			RoundKey:       sel.Context.RoundKey,
			View:           q.View,
		})
		if err != nil {
			return nil, &StorageError{Stage: StageLeaderboard, Err: err}
		}
	}

	b := &Bundle{
		Context: sel.Context,
		Selectors: Selectors{
			Events:    sel.Events,
			Seasons:   sel.Seasons,
			Divisions: sel.Divisions,
			Rounds:    sel.Rounds,
		},
		Overview: Overview{
			TeamsTotal:     intPtr(len(table)),
			SeasonsTotal:   intPtr(len(sel.Seasons)),
			DivisionsTotal: intPtr(len(sel.Divisions)),
			RoundsTotal:    intPtr(len(sel.Rounds)),
		},
		Table: table,
	}
	a.countOverview(ctx, sel.Context, &b.Overview)
	return b, nil
}

type counter struct {
	field string
	dst   **int
	run   func(ctx context.Context) (int, error)
}

// countOverview fills the best-effort counters concurrently. Each counter
// writes only its own field.
func (a *Assembler) countOverview(ctx context.Context, sc selector.Context, o *Overview) {
	var counters []counter
	if sc.SeasonID != "" {
		counters = append(counters,
			counter{"registered_teams", &o.RegisteredTeams, func(ctx context.Context) (int, error) {
				return a.store.CountRegisteredTeams(ctx, sc.SeasonID)
			}},
			counter{"roster_players", &o.RosterPlayers, func(ctx context.Context) (int, error) {
				return a.store.CountRosterPlayers(ctx, sc.SeasonID)
			}},
		)
	}
	if sc.LeaderboardKey != "" {
		counters = append(counters,
			counter{"scored_components", &o.ScoredComponents, func(ctx context.Context) (int, error) {
				return a.store.CountScoredComponents(ctx, sc.LeaderboardKey)
			}},
		)
	}
	if len(counters) == 0 {
		return
	}

	group := a.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	for _, c := range counters {
		group.Submit(func() {
			n, err := c.run(groupCtx)
			if err != nil {
				if errors.Is(err, campaign.ErrSchemaFieldMissing) {
					log.Debug("Overview field unavailable under current schema", "field", c.field)
				} else {
					log.Warn("Overview counter failed", "field", c.field, "error", err)
				}
				a.metrics.IncOverviewDegraded(c.field)
				return
			}
			*c.dst = intPtr(n)
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		log.Warn("Overview counters did not finish", "error", err)
	}
}

func intPtr(n int) *int { return &n }
