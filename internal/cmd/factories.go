package cmd

import (
	"context"
	"os"
	"sync"

	adapterclaude "usagebar/internal/adapters/claude"
	adaptereditor "usagebar/internal/adapters/editor"
	adapternotify "usagebar/internal/adapters/notify"
	adapterprocess "usagebar/internal/adapters/process"
	adapterstatusfile "usagebar/internal/adapters/statusfile"
	adapterstorage "usagebar/internal/adapters/storage"
	adaptertmux "usagebar/internal/adapters/tmux"
	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
	"usagebar/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Config       config.PollerConfig
	SettingsPath string

	// Adapters
	Editor      ports.EditorOpener
	HistoryRepo ports.SnapshotRepository
	LiveRunner  *adapterprocess.PTYRunner
	Notifier    *adapternotify.Notifier
	Parser      *adapterclaude.UsageParser
	Runner      *adapterprocess.ShellRunner
	StatusStore *adapterstatusfile.Store
	TmuxClient  *adaptertmux.Client

	// Services
	HistoryService *services.HistoryService
}

// PollerOptions selects the observers attached to a poller
type PollerOptions struct {
	// RecordStatus writes every rendered status to the status file
	RecordStatus bool
}

// NewContainer creates a new Container with all dependencies wired.
// Nothing is opened yet: the history database is created on first use.
func NewContainer(settingsPath string, settings *config.Settings) *Container {
	historyRepo := newLazyRepository(config.GetDBPath())

	return &Container{
		Config:         config.Resolve(settings),
		Editor:         adaptereditor.NewOpener(),
		HistoryRepo:    historyRepo,
		HistoryService: services.NewHistoryService(historyRepo),
		LiveRunner:     adapterprocess.NewPTYRunner(),
		Notifier:       adapternotify.NewNotifier(),
		Parser:         adapterclaude.NewUsageParser(),
		Runner:         adapterprocess.NewShellRunner(),
		SettingsPath:   settingsPath,
		StatusStore:    adapterstatusfile.NewStore(config.GetStatusFilePath()),
		TmuxClient:     adaptertmux.NewClient(),
	}
}

// NewPoller creates an idle poller writing to sink, with history and
// burn-rate alert observers attached
func (c *Container) NewPoller(sink ports.StatusSink, opts PollerOptions) *services.Poller {
	var poller *services.Poller
	// Observers read the live configuration so a reload applies to them too
	current := func() config.PollerConfig { return poller.Config() }

	observers := []ports.CycleObserver{
		services.NewHistoryRecorder(c.HistoryRepo, current),
		services.NewBurnRateAlerter(c.Notifier, current),
	}
	if opts.RecordStatus {
		observers = append(observers, services.NewStatusRecorder(c.StatusStore))
	}

	poller = services.NewPoller(c.Runner, c.Parser, sink, c.Config, observers...)
	return poller
}

// NewConfigWatcher watches the settings file and reconfigures target on change
func (c *Container) NewConfigWatcher(target services.Reconfigurer) (*services.ConfigWatcher, error) {
	return services.NewConfigWatcher(c.SettingsPath, target)
}

// HasHistory reports whether a history database exists
func (c *Container) HasHistory() bool {
	_, err := os.Stat(config.GetDBPath())
	return err == nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.HistoryRepo != nil {
		return c.HistoryRepo.Close()
	}
	return nil
}

// lazyRepository opens the SQLite history on first use, so that running with
// history disabled never creates the database. A failed open is retried on
// the next call.
type lazyRepository struct {
	dbPath string
	mu     sync.Mutex
	repo   *adapterstorage.SQLiteRepository
}

var _ ports.SnapshotRepository = (*lazyRepository)(nil)

func newLazyRepository(dbPath string) *lazyRepository {
	return &lazyRepository{dbPath: dbPath}
}

func (l *lazyRepository) open() (*adapterstorage.SQLiteRepository, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.repo != nil {
		return l.repo, nil
	}

	logging.Logger.Info("Opening history database", "path", l.dbPath)
	repo, err := adapterstorage.NewSQLiteRepository(l.dbPath)
	if err != nil {
		return nil, err
	}
	l.repo = repo
	return repo, nil
}

func (l *lazyRepository) Save(ctx context.Context, snapshot domain.UsageSnapshot) error {
	repo, err := l.open()
	if err != nil {
		return err
	}
	return repo.Save(ctx, snapshot)
}

func (l *lazyRepository) Prune(ctx context.Context, keep int) error {
	repo, err := l.open()
	if err != nil {
		return err
	}
	return repo.Prune(ctx, keep)
}

func (l *lazyRepository) List(ctx context.Context, limit int) ([]domain.UsageSnapshot, error) {
	repo, err := l.open()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, limit)
}

// Close closes the database if it was opened
func (l *lazyRepository) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.repo == nil {
		return nil
	}
	return l.repo.Close()
}
