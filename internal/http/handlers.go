package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/bundle"
	"github.com/mauv0809/blast-campaigns/internal/leaderboard"
	"github.com/mauv0809/blast-campaigns/internal/player"
	"github.com/mauv0809/blast-campaigns/internal/team"
)

const (
	endpointCampaigns = "campaigns_bundle"
	endpointTeam      = "team_bundle"
	endpointPlayer    = "player_bundle"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		respond(w, r, http.StatusOK, healthResponse{OK: true, TS: time.Now().UTC().Format(time.RFC3339Nano)})
	}
}

func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusNotFound, errorResponse{Error: "Not Found", Path: r.URL.Path})
	}
}

func (s *Server) CampaignsBundleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.Metrics.IncBundleRequests(endpointCampaigns)
		defer func() { s.Metrics.ObserveBundleDuration(endpointCampaigns, time.Since(start).Seconds()) }()

		q := bundle.Query{
			EventID:     queryParam(r, "event_id"),
			SeasonID:    queryParam(r, "season_id"),
			DivisionKey: queryParam(r, "division_key"),
			RoundKey:    queryParam(r, "round_key"),
			View:        leaderboard.ParseView(queryParam(r, "view")),
		}
		b, err := s.Bundles.Get(r.Context(), q)
		if err != nil {
			s.respondInternalError(w, r, endpointCampaigns, err)
			return
		}
		log.Debug("Assembled campaigns bundle", "context", b.Context, "rows", len(b.Table))
		respond(w, r, http.StatusOK, campaignsResponse{OK: true, Bundle: *b})
	}
}

func (s *Server) TeamBundleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.Metrics.IncBundleRequests(endpointTeam)
		defer func() { s.Metrics.ObserveBundleDuration(endpointTeam, time.Since(start).Seconds()) }()

		teamID := queryParam(r, "team_id")
		if teamID == "" {
			respond(w, r, http.StatusBadRequest, errorResponse{Error: "team_id is required"})
			return
		}
		b, err := s.Teams.GetBundle(r.Context(), teamID)
		if errors.Is(err, team.ErrTeamNotFound) {
			respond(w, r, http.StatusNotFound, errorResponse{Error: "Team not found", Message: teamID})
			return
		}
		if err != nil {
			s.respondInternalError(w, r, endpointTeam, err)
			return
		}
		respond(w, r, http.StatusOK, teamResponse{OK: true, Bundle: *b})
	}
}

func (s *Server) PlayerBundleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.Metrics.IncBundleRequests(endpointPlayer)
		defer func() { s.Metrics.ObserveBundleDuration(endpointPlayer, time.Since(start).Seconds()) }()

		lookup := player.Lookup{PlayerID: queryParam(r, "player_id"), Query: queryParam(r, "q")}
		b, err := s.Players.GetBundle(r.Context(), lookup)
		switch {
		case errors.Is(err, player.ErrLookupRequired):
			respond(w, r, http.StatusBadRequest, errorResponse{Error: "player_id or q is required"})
		case errors.Is(err, player.ErrPlayerNotFound):
			respond(w, r, http.StatusNotFound, errorResponse{Error: "Player not found"})
		case err != nil:
			s.respondInternalError(w, r, endpointPlayer, err)
		default:
			respond(w, r, http.StatusOK, playerResponse{OK: true, Bundle: *b})
		}
	}
}

// respondInternalError reports a storage failure. For bundle errors the
// failing stage is included so the caller can tell which query broke.
func (s *Server) respondInternalError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	stage := endpoint
	var se *bundle.StorageError
	if errors.As(err, &se) {
		stage = se.Stage
	}
	s.Metrics.IncStorageErrors(stage)
	log.Error("Request failed", "endpoint", endpoint, "stage", stage, "error", err, "request_id", requestIDFromContext(r.Context()))
	respond(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal Error", Message: err.Error(), Stage: stage})
}
