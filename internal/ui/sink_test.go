package ui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usagebar/internal/config"
	"usagebar/internal/domain"
)

func TestProgramSink_States(t *testing.T) {
	sink := NewProgramSink()

	sink.Fetching()
	assert.Equal(t, SinkState{Fetching: true}, sink.State())

	view := domain.StatusView{Color: domain.ColorWarning, Text: "★ Pro"}
	sink.Update(view)
	assert.Equal(t, SinkState{HasView: true, View: view}, sink.State())

	sink.Fetching()
	st := sink.State()
	assert.True(t, st.Fetching)
	assert.Equal(t, view, st.View, "the previous view stays visible while fetching")

	sink.Hide()
	assert.True(t, sink.State().Hidden)
	assert.False(t, sink.State().Fetching)
}

func TestProgramSink_NotifiesSubscribers(t *testing.T) {
	sink := NewProgramSink()
	got := make(chan tea.Msg, 4)

	unsubscribe := sink.Subscribe(func(msg tea.Msg) { got <- msg })
	sink.Update(domain.StatusView{Text: "x"})

	select {
	case msg := <-got:
		assert.Equal(t, statusChangedMsg{}, msg)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not notified")
	}

	unsubscribe()
	sink.Hide()

	select {
	case <-got:
		t.Fatal("unsubscribed program was notified")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSettingsValues_RoundTrip(t *testing.T) {
	cfg := config.DefaultPollerConfig()
	values := newSettingsValues(cfg)

	assert.Equal(t, "5", values.Interval)
	assert.Equal(t, "10", values.Timeout)
	assert.Equal(t, "150", values.JPYRate)
	assert.Equal(t, "USD", values.Currency)

	values.Interval = "30"
	values.Currency = "JPY"
	values.NotifyBurnRate = true

	debug := true
	settings := &config.Settings{Debug: &debug}
	require.NoError(t, values.applyTo(settings))

	resolved := config.Resolve(settings)
	assert.Equal(t, 30*time.Second, resolved.Interval())
	assert.Equal(t, config.CurrencyJPY, resolved.Display.Currency)
	assert.True(t, resolved.NotifyBurnRate)
	require.NotNil(t, settings.Debug, "keys the form does not edit are kept")
	assert.True(t, *settings.Debug)
}

func TestSettingsValues_Invalid(t *testing.T) {
	values := newSettingsValues(config.DefaultPollerConfig())

	values.Interval = "0"
	assert.ErrorContains(t, values.applyTo(&config.Settings{}), "interval")

	values.Interval = "5"
	values.JPYRate = "abc"
	assert.ErrorContains(t, values.applyTo(&config.Settings{}), "JPY rate")
}

func TestSettingsForm_PrefillsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	interval := 12
	require.NoError(t, config.SaveSettingsTo(path, &config.Settings{IntervalSeconds: &interval, Command: "claude cost"}))

	form := NewSettingsForm(path)

	assert.Equal(t, "12", form.values.Interval)
	assert.Equal(t, "claude cost", form.values.Command)
}
