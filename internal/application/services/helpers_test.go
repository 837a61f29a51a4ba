package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studyloop/core/internal/adapters/repository"
	"github.com/studyloop/core/internal/infrastructure/config"
	"github.com/studyloop/core/internal/infrastructure/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(config.LoggerConfig{Level: "error", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	return l
}

func testRepo(t *testing.T) *repository.EntryRepository {
	t.Helper()
	repo, err := repository.NewEntryRepository(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return repo
}
