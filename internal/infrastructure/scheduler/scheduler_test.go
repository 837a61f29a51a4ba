package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyloop/core/internal/infrastructure/config"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

type stubAnalysis struct {
	enabled bool
	pushes  int
}

func (s *stubAnalysis) Enabled() bool { return s.enabled }

func (s *stubAnalysis) Push(ctx context.Context) (*ports.PushResult, error) {
	s.pushes++
	return &ports.PushResult{BatchID: "test", EntryCount: 0}, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(config.LoggerConfig{Level: "error", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	return l
}

func TestStartWithoutEndpointSchedulesNothing(t *testing.T) {
	analysis := &stubAnalysis{enabled: false}
	s := New(analysis, 21, testLogger(t))

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Equal(t, 0, len(s.scheduler.Jobs()))
}

func TestStartSchedulesDailyPush(t *testing.T) {
	analysis := &stubAnalysis{enabled: true}
	s := New(analysis, 21, testLogger(t))

	require.NoError(t, s.Start())
	defer s.Stop()

	require.Len(t, s.scheduler.Jobs(), 1)
}

func TestPushAnalysisInvokesService(t *testing.T) {
	analysis := &stubAnalysis{enabled: true}
	s := New(analysis, 21, testLogger(t))

	s.pushAnalysis()
	assert.Equal(t, 1, analysis.pushes)
}
