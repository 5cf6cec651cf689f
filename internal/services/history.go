package services

import (
	"context"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

var _ ports.CycleObserver = (*HistoryRecorder)(nil)

// HistoryRecorder stores every parsed record when history is enabled
type HistoryRecorder struct {
	config func() config.PollerConfig
	repo   ports.SnapshotWriter
}

// NewHistoryRecorder creates a recorder. cfg is consulted on every cycle so
// settings changes take effect without a restart.
func NewHistoryRecorder(repo ports.SnapshotWriter, cfg func() config.PollerConfig) *HistoryRecorder {
	return &HistoryRecorder{
		config: cfg,
		repo:   repo,
	}
}

// Observe implements ports.CycleObserver
func (h *HistoryRecorder) Observe(ctx context.Context, res domain.CycleResult) {
	cfg := h.config()
	if !cfg.HistoryEnabled || res.Record == nil {
		return
	}

	if err := h.repo.Save(ctx, domain.NewUsageSnapshot(res.Record, res.At)); err != nil {
		logging.Logger.Error("Failed to save usage snapshot", "cycle_id", res.ID, "error", err)
		return
	}

	// 0 means unbounded
	if cfg.HistoryLimit > 0 {
		if err := h.repo.Prune(ctx, cfg.HistoryLimit); err != nil {
			logging.Logger.Warn("Failed to prune usage history", "limit", cfg.HistoryLimit, "error", err)
		}
	}
}

// HistoryService reads stored snapshots
type HistoryService struct {
	reader ports.SnapshotReader
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(reader ports.SnapshotReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// Recent returns up to limit snapshots, newest first
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.UsageSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.reader.List(ctx, limit)
}
