package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	portsmocks "usagebar/internal/ports/mocks"
)

func fixedConfig(mutate func(*config.PollerConfig)) func() config.PollerConfig {
	cfg := config.DefaultPollerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return func() config.PollerConfig { return cfg }
}

func cycleFor(rec *domain.UsageRecord) domain.CycleResult {
	return domain.CycleResult{
		At:     time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
		ID:     "cycle-1",
		Record: rec,
		View:   Present(rec, config.DefaultDisplayConfig()),
	}
}

func TestHistoryRecorder_DisabledStoresNothing(t *testing.T) {
	repo := portsmocks.NewMockSnapshotRepository(t)

	recorder := NewHistoryRecorder(repo, fixedConfig(nil))
	recorder.Observe(context.Background(), cycleFor(proRecord))
}

func TestHistoryRecorder_SavesAndPrunes(t *testing.T) {
	repo := portsmocks.NewMockSnapshotRepository(t)
	res := cycleFor(blocksRecord())

	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.UsageSnapshot) bool {
		return s.Plan == domain.PlanMax && s.TokenCount == 52252 && s.CapturedAt.Equal(res.At)
	})).Return(nil).Once()
	repo.EXPECT().Prune(mock.Anything, 50).Return(nil).Once()

	recorder := NewHistoryRecorder(repo, fixedConfig(func(c *config.PollerConfig) {
		c.HistoryEnabled = true
		c.HistoryLimit = 50
	}))
	recorder.Observe(context.Background(), res)
}

func TestHistoryRecorder_SkipsFailedCycles(t *testing.T) {
	repo := portsmocks.NewMockSnapshotRepository(t)

	recorder := NewHistoryRecorder(repo, fixedConfig(func(c *config.PollerConfig) { c.HistoryEnabled = true }))
	recorder.Observe(context.Background(), domain.CycleResult{Err: domain.ErrUnparsedOutput, View: PresentUnparsed()})
}

func TestHistoryRecorder_SaveErrorSkipsPrune(t *testing.T) {
	repo := portsmocks.NewMockSnapshotRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	recorder := NewHistoryRecorder(repo, fixedConfig(func(c *config.PollerConfig) { c.HistoryEnabled = true }))
	recorder.Observe(context.Background(), cycleFor(proRecord))
}

func TestHistoryRecorder_ZeroLimitNeverPrunes(t *testing.T) {
	repo := portsmocks.NewMockSnapshotRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	recorder := NewHistoryRecorder(repo, fixedConfig(func(c *config.PollerConfig) {
		c.HistoryEnabled = true
		c.HistoryLimit = 0
	}))
	recorder.Observe(context.Background(), cycleFor(proRecord))
}

func TestHistoryService_DefaultLimit(t *testing.T) {
	repo := portsmocks.NewMockSnapshotRepository(t)
	want := []domain.UsageSnapshot{{ID: 2}, {ID: 1}}
	repo.EXPECT().List(mock.Anything, 20).Return(want, nil).Once()

	got, err := NewHistoryService(repo).Recent(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func burnRecord(rate float64) *domain.UsageRecord {
	return &domain.UsageRecord{Plan: domain.PlanPro, ModelName: "sonnet-4", BurnRatePerMinute: domain.Float(rate)}
}

func TestBurnRateAlerter_NotifiesOnEscalation(t *testing.T) {
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify("Claude usage rising", "Burning 35,000 tokens/min").Return(nil).Once()
	notifier.EXPECT().Notify("Claude usage critical", "Burning 60,000 tokens/min").Return(nil).Once()

	alerter := NewBurnRateAlerter(notifier, fixedConfig(func(c *config.PollerConfig) { c.NotifyBurnRate = true }))
	ctx := context.Background()

	alerter.Observe(ctx, cycleFor(burnRecord(1000)))
	alerter.Observe(ctx, cycleFor(burnRecord(35_000)))
	// Staying at warning does not repeat the alert
	alerter.Observe(ctx, cycleFor(burnRecord(36_000)))
	alerter.Observe(ctx, cycleFor(burnRecord(60_000)))
}

func TestBurnRateAlerter_ReArmsAfterCalmingDown(t *testing.T) {
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify("Claude usage rising", mock.Anything).Return(nil).Twice()

	alerter := NewBurnRateAlerter(notifier, fixedConfig(func(c *config.PollerConfig) { c.NotifyBurnRate = true }))
	ctx := context.Background()

	alerter.Observe(ctx, cycleFor(burnRecord(35_000)))
	alerter.Observe(ctx, cycleFor(burnRecord(100)))
	alerter.Observe(ctx, cycleFor(burnRecord(35_000)))
}

func TestBurnRateAlerter_DisabledOrErrors(t *testing.T) {
	notifier := portsmocks.NewMockNotifier(t)
	ctx := context.Background()

	NewBurnRateAlerter(notifier, fixedConfig(nil)).Observe(ctx, cycleFor(burnRecord(60_000)))

	enabled := NewBurnRateAlerter(notifier, fixedConfig(func(c *config.PollerConfig) { c.NotifyBurnRate = true }))
	enabled.Observe(ctx, domain.CycleResult{Err: errors.New("boom"), View: PresentError(errors.New("boom"))})
	enabled.Observe(ctx, cycleFor(&domain.UsageRecord{Plan: domain.PlanNotInstalled}))
}

func TestBurnRateAlerter_UsageBudgetMessage(t *testing.T) {
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify("Claude usage critical", "95.0% of the $100.00 budget used").Return(nil).Once()

	alerter := NewBurnRateAlerter(notifier, fixedConfig(func(c *config.PollerConfig) { c.NotifyBurnRate = true }))
	alerter.Observe(context.Background(), cycleFor(&domain.UsageRecord{
		Plan:  domain.PlanUsageBased,
		Usage: &domain.UsageRatio{Current: 95, Limit: 100, Percentage: 95},
	}))
}

func TestStatusRecorder_WritesSnapshot(t *testing.T) {
	store := portsmocks.NewMockStatusStore(t)
	res := cycleFor(blocksRecord())
	store.EXPECT().Write(domain.StatusSnapshot{
		Color:     "neutral",
		Text:      res.View.Text,
		Tooltip:   res.View.Tooltip,
		UpdatedAt: res.At,
	}).Return(nil).Once()

	NewStatusRecorder(store).Observe(context.Background(), res)
}

func TestStatusRecorder_HideBlanksStatus(t *testing.T) {
	store := portsmocks.NewMockStatusStore(t)
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	store.EXPECT().Write(domain.StatusSnapshot{Color: "neutral", UpdatedAt: at}).Return(nil).Once()

	recorder := NewStatusRecorder(store)
	recorder.now = func() time.Time { return at }

	recorder.Fetching()
	recorder.Update(domain.StatusView{Text: "ignored"})
	recorder.Hide()
}

func TestStatusReader_Current(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

	t.Run("nothing recorded", func(t *testing.T) {
		store := portsmocks.NewMockStatusStore(t)
		store.EXPECT().Read().Return(nil, domain.ErrStatusNotFound)

		view, err := NewStatusReader(store, time.Minute).Current()

		require.NoError(t, err)
		assert.Equal(t, PresentFetching(), view)
	})

	t.Run("fresh", func(t *testing.T) {
		store := portsmocks.NewMockStatusStore(t)
		store.EXPECT().Read().Return(&domain.StatusSnapshot{Color: "error", Text: "✖ Not installed", UpdatedAt: now.Add(-10 * time.Second)}, nil)
		reader := NewStatusReader(store, time.Minute)
		reader.now = func() time.Time { return now }

		view, err := reader.Current()

		require.NoError(t, err)
		assert.Equal(t, domain.ColorError, view.Color)
		assert.Equal(t, "✖ Not installed", view.Text)
	})

	t.Run("stale", func(t *testing.T) {
		store := portsmocks.NewMockStatusStore(t)
		store.EXPECT().Read().Return(&domain.StatusSnapshot{Color: "neutral", Text: "★ Pro", UpdatedAt: now.Add(-time.Hour)}, nil)
		reader := NewStatusReader(store, time.Minute)
		reader.now = func() time.Time { return now }

		view, err := reader.Current()

		require.NoError(t, err)
		assert.Equal(t, domain.ColorWarning, view.Color)
		assert.Equal(t, "(stale) ★ Pro", view.Text)
	})

	t.Run("hidden is never stale", func(t *testing.T) {
		store := portsmocks.NewMockStatusStore(t)
		store.EXPECT().Read().Return(&domain.StatusSnapshot{Color: "neutral", UpdatedAt: now.Add(-time.Hour)}, nil)
		reader := NewStatusReader(store, time.Minute)
		reader.now = func() time.Time { return now }

		view, err := reader.Current()

		require.NoError(t, err)
		assert.Equal(t, domain.StatusView{}, view)
	})

	t.Run("read error", func(t *testing.T) {
		store := portsmocks.NewMockStatusStore(t)
		store.EXPECT().Read().Return(nil, errors.New("corrupt"))

		_, err := NewStatusReader(store, 0).Current()

		assert.EqualError(t, err, "corrupt")
	})
}
