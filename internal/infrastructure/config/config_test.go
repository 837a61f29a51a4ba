package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "StudyLoop", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/data.json", cfg.Storage.DataFile)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Auth.Enabled)
	assert.False(t, cfg.Analysis.AnalysisEnabled())
	assert.Equal(t, 21, cfg.Analysis.PushHour)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "99999")

	_, err := Load()
	assert.Error(t, err)
}

func TestAuthRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestAnalysisEnabledByEndpoint(t *testing.T) {
	t.Setenv("ANALYSIS_ENDPOINT", "https://analysis.example.com/ingest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Analysis.AnalysisEnabled())
	assert.Equal(t, "https://analysis.example.com/ingest", cfg.Analysis.Endpoint)
}
