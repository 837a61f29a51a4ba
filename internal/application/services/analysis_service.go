package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/studyloop/core/internal/domain/entities"
	"github.com/studyloop/core/internal/infrastructure/config"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// AnalysisService pushes full dataset snapshots to an external
// analysis endpoint. With no endpoint configured every push is
// rejected with entities.ErrAnalysisNotEnabled.
type AnalysisService struct {
	entryRepo ports.EntryRepository
	cfg       config.AnalysisConfig
	client    *http.Client
	logger    *logger.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(entryRepo ports.EntryRepository, cfg config.AnalysisConfig, logger *logger.Logger) *AnalysisService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AnalysisService{
		entryRepo: entryRepo,
		cfg:       cfg,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Enabled reports whether an endpoint is configured.
func (s *AnalysisService) Enabled() bool {
	return s.cfg.AnalysisEnabled()
}

// Push snapshots the dataset and POSTs it to the analysis endpoint.
func (s *AnalysisService) Push(ctx context.Context) (*ports.PushResult, error) {
	if !s.Enabled() {
		return nil, entities.ErrAnalysisNotEnabled
	}

	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot entries: %w", err)
	}
	if entries == nil {
		entries = []*entities.Entry{}
	}

	snapshot := ports.AnalysisSnapshot{
		BatchID:     uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		EntryCount:  len(entries),
		Entries:     entries,
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.LogAnalysisPush(snapshot.BatchID, s.cfg.Endpoint, snapshot.EntryCount, err)
		return nil, fmt.Errorf("analysis push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("analysis endpoint returned status %d", resp.StatusCode)
		s.logger.LogAnalysisPush(snapshot.BatchID, s.cfg.Endpoint, snapshot.EntryCount, err)
		return nil, err
	}

	s.logger.LogAnalysisPush(snapshot.BatchID, s.cfg.Endpoint, snapshot.EntryCount, nil)
	return &ports.PushResult{
		BatchID:    snapshot.BatchID,
		EntryCount: snapshot.EntryCount,
		Endpoint:   s.cfg.Endpoint,
	}, nil
}
