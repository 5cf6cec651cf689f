package ports

import (
	"context"

	"usagebar/internal/domain"
)

// CycleObserver is notified after every completed poll cycle.
// Observers run on the poller goroutine and must not block for long.
type CycleObserver interface {
	Observe(ctx context.Context, result domain.CycleResult)
}
