package http

import (
	"net/http"

	"github.com/mauv0809/blast-campaigns/internal/config"
	"github.com/mauv0809/blast-campaigns/internal/metrics"
	"github.com/mauv0809/blast-campaigns/internal/notifier"
	"github.com/mauv0809/blast-campaigns/internal/player"
	"github.com/mauv0809/blast-campaigns/internal/team"
)

func NewServer(bundles BundleGetter, teams team.Store, players player.Store, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Bundles:        bundles,
		Teams:          teams,
		Players:        players,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	public := []Middleware{requestIDMiddleware, corsMiddleware, paramsMiddleware, getOnlyMiddleware}

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/api/public/health", Chain(s.HealthCheckHandler(), public...))
	s.Router.Handle("/api/public/campaigns_bundle", Chain(s.CampaignsBundleHandler(), public...))
	s.Router.Handle("/api/public/team_bundle", Chain(s.TeamBundleHandler(), public...))
	s.Router.Handle("/api/public/player_bundle", Chain(s.PlayerBundleHandler(), public...))
	s.Router.Handle("/", Chain(s.NotFoundHandler(), public...))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), requestIDMiddleware, paramsMiddleware, s.slackVerifyMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
