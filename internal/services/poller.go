package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

// Manual refreshes allowed: one per second with a small burst for key repeat
const (
	refreshBurst = 2
	refreshEvery = time.Second
)

type runOutcome struct {
	err    error
	output string
}

// Poller runs the usage command on a timer and pushes the rendered status
// to a sink. States go idle -> polling -> disposed; disposed is terminal.
type Poller struct {
	limiter   *rate.Limiter
	now       func() time.Time
	observers []ports.CycleObserver
	parser    ports.UsageParser
	runner    ports.CommandRunner
	sink      ports.StatusSink

	mu      sync.Mutex
	cancel  context.CancelFunc
	cfg     config.PollerConfig
	done    chan struct{}
	last    *domain.CycleResult
	reset   chan time.Duration
	state   domain.PollerState
	stopped chan struct{}
}

// NewPoller creates an idle poller
func NewPoller(
	runner ports.CommandRunner,
	parser ports.UsageParser,
	sink ports.StatusSink,
	cfg config.PollerConfig,
	observers ...ports.CycleObserver,
) *Poller {
	return &Poller{
		cfg:       cfg,
		limiter:   rate.NewLimiter(rate.Every(refreshEvery), refreshBurst),
		now:       time.Now,
		observers: observers,
		parser:    parser,
		reset:     make(chan time.Duration, 1),
		runner:    runner,
		sink:      sink,
		state:     domain.PollerIdle,
		stopped:   make(chan struct{}),
	}
}

// State returns the lifecycle state
func (p *Poller) State() domain.PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Config returns the active configuration
func (p *Poller) Config() config.PollerConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// Last returns the most recently completed cycle, or nil before the first one
func (p *Poller) Last() *domain.CycleResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil
	}
	res := *p.last
	return &res
}

// Start runs one cycle immediately and then one per interval until ctx is
// done or Dispose is called. It does not block.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case domain.PollerDisposed:
		return domain.ErrPollerDisposed
	case domain.PollerPolling:
		return domain.ErrPollerStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.state = domain.PollerPolling

	if !p.cfg.Enabled {
		p.sink.Hide()
	}

	interval := intervalOf(p.cfg)
	logging.Logger.Info("Poller started", "interval", interval, "command", p.cfg.Command)

	go p.loop(loopCtx, interval)
	return nil
}

func intervalOf(cfg config.PollerConfig) time.Duration {
	if d := cfg.Interval(); d > 0 {
		return d
	}
	return config.DefaultInterval
}

func (p *Poller) loop(ctx context.Context, interval time.Duration) {
	defer close(p.done)

	p.runCycle(ctx, "start")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case d := <-p.reset:
			ticker.Reset(d)
			logging.Logger.Debug("Poller re-armed", "interval", d)
			p.runCycle(ctx, "reconfigure")
		case <-ticker.C:
			p.runCycle(ctx, "timer")
		}
	}
}

// Refresh runs one cycle on the caller's goroutine without touching the timer
func (p *Poller) Refresh(ctx context.Context) error {
	if p.State() == domain.PollerDisposed {
		return domain.ErrPollerDisposed
	}
	if !p.limiter.Allow() {
		return domain.ErrRefreshThrottle
	}
	p.runCycle(ctx, "refresh")
	return nil
}

// Reconfigure swaps the configuration and re-arms the timer at the new interval
func (p *Poller) Reconfigure(cfg config.PollerConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == domain.PollerDisposed {
		return domain.ErrPollerDisposed
	}

	p.cfg = cfg
	if !cfg.Enabled {
		p.sink.Hide()
	}

	if p.state == domain.PollerPolling {
		// Only the latest interval matters
		select {
		case <-p.reset:
		default:
		}
		p.reset <- intervalOf(cfg)
	}

	logging.Logger.Info("Poller reconfigured",
		"enabled", cfg.Enabled,
		"interval", intervalOf(cfg),
		"command", cfg.Command)
	return nil
}

// Dispose stops the timer and hides the element. It is safe to call more
// than once. Results of a command still running are discarded.
func (p *Poller) Dispose() {
	p.mu.Lock()
	if p.state == domain.PollerDisposed {
		p.mu.Unlock()
		return
	}
	wasPolling := p.state == domain.PollerPolling
	p.state = domain.PollerDisposed
	close(p.stopped)
	cancel, done := p.cancel, p.done
	p.sink.Hide()
	p.mu.Unlock()

	if wasPolling {
		cancel()
		<-done
	}
	logging.Logger.Info("Poller disposed")
}

// runCycle performs fetching -> run -> parse -> present -> update
func (p *Poller) runCycle(ctx context.Context, trigger string) {
	cfg := p.Config()
	if !cfg.Enabled {
		return
	}

	if !p.beginCycle() {
		return
	}

	id := uuid.NewString()
	start := p.now()

	// The command is not killed when the poller stops; its result is dropped
	outcome := make(chan runOutcome, 1)
	go func() {
		out, err := p.runner.Run(context.WithoutCancel(ctx), cfg.Command, cfg.Timeout)
		outcome <- runOutcome{err: err, output: out}
	}()

	var o runOutcome
	select {
	case <-ctx.Done():
		logging.Logger.Debug("Poll cycle abandoned", "cycle_id", id, "trigger", trigger)
		return
	case <-p.stopped:
		logging.Logger.Debug("Poll cycle abandoned", "cycle_id", id, "trigger", trigger)
		return
	case o = <-outcome:
	}

	res := domain.CycleResult{At: p.now(), ID: id}
	if o.err != nil {
		res.Err = o.err
		res.View = PresentError(o.err)
	} else {
		res.Record = p.parser.Parse(o.output)
		if res.Record == nil {
			res.Err = domain.ErrUnparsedOutput
			res.View = PresentUnparsed()
		} else {
			res.View = Present(res.Record, cfg.Display)
		}
	}

	if !p.completeCycle(res) {
		logging.Logger.Debug("Poll cycle discarded after dispose", "cycle_id", id)
		return
	}

	logging.Logger.Debug("Poll cycle finished",
		"cycle_id", id,
		"trigger", trigger,
		"duration", res.At.Sub(start),
		"color", res.View.Color.String(),
		"error", res.Err)

	for _, obs := range p.observers {
		obs.Observe(ctx, res)
	}
}

func (p *Poller) beginCycle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == domain.PollerDisposed {
		return false
	}
	p.sink.Fetching()
	return true
}

// completeCycle publishes res unless the poller was disposed meanwhile.
// Updates are applied in completion order, so the last finished cycle wins.
func (p *Poller) completeCycle(res domain.CycleResult) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == domain.PollerDisposed || !p.cfg.Enabled {
		return false
	}
	p.last = &res
	p.sink.Update(res.View)
	return true
}
