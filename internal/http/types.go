package http

import (
	"context"
	"net/http"

	"github.com/mauv0809/blast-campaigns/internal/bundle"
	"github.com/mauv0809/blast-campaigns/internal/config"
	"github.com/mauv0809/blast-campaigns/internal/metrics"
	"github.com/mauv0809/blast-campaigns/internal/notifier"
	"github.com/mauv0809/blast-campaigns/internal/player"
	"github.com/mauv0809/blast-campaigns/internal/team"
)

// BundleGetter assembles campaign bundles.
type BundleGetter interface {
	Get(ctx context.Context, q bundle.Query) (*bundle.Bundle, error)
}

type Server struct {
	Bundles        BundleGetter
	Teams          team.Store
	Players        player.Store
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

type healthResponse struct {
	OK bool   `json:"ok"`
	TS string `json:"ts"`
}

type campaignsResponse struct {
	OK bool `json:"ok"`
	bundle.Bundle
}

type teamResponse struct {
	OK bool `json:"ok"`
	team.Bundle
}

type playerResponse struct {
	OK bool `json:"ok"`
	player.Bundle
}

type errorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Stage   string `json:"stage,omitempty"`
	Path    string `json:"path,omitempty"`
}
