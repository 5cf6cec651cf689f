package services

import (
	"context"
	"errors"
	"time"

	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

var (
	_ ports.CycleObserver = (*StatusRecorder)(nil)
	_ ports.StatusSink    = (*StatusRecorder)(nil)
)

// StatusRecorder persists every rendered status so that other processes
// (the tmux status line, `usagebar status`) can show it. It doubles as the
// daemon's status sink so that disabling usagebar blanks the status line.
type StatusRecorder struct {
	now   func() time.Time
	store ports.StatusStore
}

// NewStatusRecorder creates a recorder writing to store
func NewStatusRecorder(store ports.StatusStore) *StatusRecorder {
	return &StatusRecorder{now: time.Now, store: store}
}

// Fetching implements ports.StatusSink. The previous status stays on disk.
func (r *StatusRecorder) Fetching() {}

// Update implements ports.StatusSink. Rendered views are written by Observe,
// which carries the cycle time.
func (r *StatusRecorder) Update(domain.StatusView) {}

// Hide implements ports.StatusSink by recording an empty status
func (r *StatusRecorder) Hide() {
	if err := r.store.Write(domain.NewStatusSnapshot(domain.StatusView{}, r.now())); err != nil {
		logging.Logger.Error("Failed to clear status file", "error", err)
	}
}

// Observe implements ports.CycleObserver
func (r *StatusRecorder) Observe(_ context.Context, res domain.CycleResult) {
	if err := r.store.Write(domain.NewStatusSnapshot(res.View, res.At)); err != nil {
		logging.Logger.Error("Failed to write status file", "cycle_id", res.ID, "error", err)
	}
}

// StatusReader serves the last persisted status
type StatusReader struct {
	maxAge time.Duration
	now    func() time.Time
	store  ports.StatusStore
}

// NewStatusReader creates a reader. Snapshots older than maxAge are reported
// as stale; 0 disables the check.
func NewStatusReader(store ports.StatusStore, maxAge time.Duration) *StatusReader {
	return &StatusReader{
		maxAge: maxAge,
		now:    time.Now,
		store:  store,
	}
}

// Current returns the last status, or a placeholder view when nothing was
// recorded yet or the daemon stopped updating it
func (r *StatusReader) Current() (domain.StatusView, error) {
	snap, err := r.store.Read()
	if errors.Is(err, domain.ErrStatusNotFound) {
		return PresentFetching(), nil
	}
	if err != nil {
		return domain.StatusView{}, err
	}

	if snap.Text == "" {
		// Hidden on purpose; never stale
		return domain.StatusView{}, nil
	}

	view := domain.StatusView{
		Color:   parseColor(snap.Color),
		Text:    snap.Text,
		Tooltip: snap.Tooltip,
	}
	if r.maxAge > 0 && snap.IsStale(r.now(), r.maxAge) {
		logging.Logger.Debug("Status file is stale", "updated_at", snap.UpdatedAt)
		view.Color = domain.ColorWarning
		view.Text = "(stale) " + view.Text
	}
	return view, nil
}

func parseColor(s string) domain.ColorHint {
	switch s {
	case domain.ColorWarning.String():
		return domain.ColorWarning
	case domain.ColorError.String():
		return domain.ColorError
	}
	return domain.ColorNeutral
}
