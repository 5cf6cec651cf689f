package ui

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/services"
	"usagebar/internal/theme"
)

type uiState int

const (
	stateStatus uiState = iota
	stateHelp
	stateSettings
)

var errLiveViewUnavailable = errors.New("the live view is not available in this session")

// UsageController is the part of the poller the UI drives
type UsageController interface {
	Config() config.PollerConfig
	Last() *domain.CycleResult
	Refresh(ctx context.Context) error
}

// LiveCommander builds the live view command handed to tea.ExecProcess
type LiveCommander interface {
	Command(command string) *exec.Cmd
}

// ModelOptions holds the optional parts of the UI
type ModelOptions struct {
	DevMode      bool
	Live         LiveCommander // nil disables the live view (SSH sessions)
	SettingsPath string        // empty disables the settings form
}

type Model struct {
	controller   UsageController
	details      *DetailsPanel
	devMode      bool
	err          error
	height       int
	help         help.Model
	helpScreen   *Dialog
	keys         KeyMap
	live         LiveCommander
	notice       string
	settingsForm *Dialog
	settingsPath string
	showTooltip  bool
	sink         *ProgramSink
	spinner      spinner.Model
	state        uiState
	width        int
}

// NewModel creates the status UI over a running poller and its sink
func NewModel(controller UsageController, sink *ProgramSink, opts ModelOptions) *Model {
	keys := NewKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	m := &Model{
		controller:   controller,
		devMode:      opts.DevMode,
		help:         help.New(),
		keys:         keys,
		live:         opts.Live,
		settingsPath: opts.SettingsPath,
		showTooltip:  true,
		sink:         sink,
		spinner:      s,
		state:        stateStatus,
	}
	m.details = NewDetailsPanel(&m.keys)
	m.syncDetails()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return statusChangedMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	case stateSettings:
		return m.updateSettings(msg)
	}
	return m.updateStatus(msg)
}

func (m *Model) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusChangedMsg:
		m.syncDetails()
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			logging.Logger.Debug("Manual refresh failed", "error", msg.err)
			m.err = msg.err
		}
		return m, nil

	case liveViewDoneMsg:
		if msg.err != nil {
			logging.Logger.Warn("Live view failed", "error", msg.err)
			m.err = msg.err
		}
		return m, nil

	case actionMsg:
		return m, m.runAction(msg.action)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.runAction(domain.ActionRefresh)
		case key.Matches(msg, m.keys.Details):
			return m, m.runAction(domain.ActionDetails)
		case key.Matches(msg, m.keys.Settings):
			return m, m.runAction(domain.ActionSettings)
		case key.Matches(msg, m.keys.Help):
			return m, m.runAction(domain.ActionHelp)
		case key.Matches(msg, m.keys.ToggleTooltip):
			m.showTooltip = !m.showTooltip
			return m, nil
		}
		return m, m.details.Update(msg)
	}

	return m, nil
}

// runAction performs one of domain.Actions
func (m *Model) runAction(action string) tea.Cmd {
	m.err = nil
	m.notice = ""

	switch action {
	case domain.ActionRefresh:
		controller := m.controller
		return func() tea.Msg {
			return refreshDoneMsg{err: controller.Refresh(context.Background())}
		}

	case domain.ActionDetails:
		if m.live == nil {
			m.err = errLiveViewUnavailable
			return nil
		}
		command := m.controller.Config().LiveCommand
		logging.Logger.Info("Opening live view", "command", command)
		return tea.ExecProcess(m.live.Command(command), func(err error) tea.Msg {
			return liveViewDoneMsg{err: err}
		})

	case domain.ActionSettings:
		if m.settingsPath == "" {
			m.err = errors.New("settings can only be edited locally")
			return nil
		}
		m.settingsForm = NewDialog("Settings", NewSettingsForm(m.settingsPath), m.devMode)
		m.state = stateSettings
		return m.initDialog(m.settingsForm)

	case domain.ActionHelp:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		return m.initDialog(m.helpScreen)

	case domain.ActionQuit:
		return tea.Quit
	}

	logging.Logger.Warn("Unknown action", "action", action)
	return nil
}

// initDialog runs Init and hands the dialog the current window size
func (m *Model) initDialog(d *Dialog) tea.Cmd {
	initCmd := d.Init()
	_, sizeCmd := d.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)
	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Completed {
		m.helpScreen = nil
		m.state = stateStatus
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keep the status current while the form is open
	if _, ok := msg.(statusChangedMsg); ok {
		m.syncDetails()
		return m, nil
	}

	_, cmd := m.settingsForm.Update(msg)
	form, ok := m.settingsForm.Content().(*SettingsForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	result := form.Result()
	switch {
	case result.Error != nil:
		m.err = result.Error
	case !result.Cancelled:
		m.notice = "Settings saved"
	}
	m.settingsForm = nil
	m.state = stateStatus
	return m, nil
}

func (m *Model) syncDetails() {
	var rec *domain.UsageRecord
	if last := m.controller.Last(); last != nil {
		rec = last.Record
	}
	m.details.SetItems(services.Details(rec))
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateSettings:
		return m.settingsForm.View()
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString("\n")
	b.WriteString(m.renderElement())
	b.WriteString("\n\n")

	st := m.sink.State()
	if m.showTooltip && !st.Hidden && st.View.Tooltip != "" {
		b.WriteString(theme.TooltipStyle.Render(st.View.Tooltip))
		b.WriteString("\n\n")
	}

	b.WriteString(m.details.View())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.width)))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.MutedStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderElement draws the status element the way a status bar would
func (m *Model) renderElement() string {
	st := m.sink.State()
	switch {
	case st.Hidden:
		return theme.MutedStyle.Render("usagebar is disabled (press s to enable)")
	case !st.HasView:
		return m.spinner.View() + " " + services.PresentFetching().Text
	}

	text := theme.StatusStyle(st.View.Color).Render(st.View.Text)
	if st.Fetching {
		text = m.spinner.View() + " " + text
	}
	return text
}
