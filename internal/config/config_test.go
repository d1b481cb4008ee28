package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "campaigns.db")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_EVENT_ID", "")
	t.Setenv("OVERVIEW_WORKERS", "")

	cfg := Load()

	assert.Equal(t, "campaigns.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hpl", cfg.DefaultEventID)
	assert.Equal(t, 4, cfg.OverviewWorkers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_NAME", "campaigns.db")
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_EVENT_ID", "bjl")
	t.Setenv("OVERVIEW_WORKERS", "2")
	t.Setenv("SLACK_SIGNING_SECRET", "shh")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "bjl", cfg.DefaultEventID)
	assert.Equal(t, 2, cfg.OverviewWorkers)
	assert.Equal(t, "shh", cfg.Slack.SigningSecret)
}

func TestLoad_InvalidWorkersFallsBack(t *testing.T) {
	t.Setenv("DB_NAME", "campaigns.db")
	t.Setenv("OVERVIEW_WORKERS", "lots")

	cfg := Load()

	assert.Equal(t, 4, cfg.OverviewWorkers)
}
