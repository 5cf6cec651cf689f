package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"usagebar/internal/config"
	"usagebar/internal/logging"
)

// SettingsFormResult contains the result of the settings form
type SettingsFormResult struct {
	Cancelled bool
	Error     error
	Settings  *config.Settings
}

// settingsValues mirrors the editable settings as form-friendly types
type settingsValues struct {
	Command           string
	Currency          string
	Enabled           bool
	HistoryEnabled    bool
	Interval          string
	JPYRate           string
	LiveCommand       string
	NotifyBurnRate    bool
	ShowTimeRemaining bool
	Timeout           string
}

func newSettingsValues(cfg config.PollerConfig) settingsValues {
	return settingsValues{
		Command:           cfg.Command,
		Currency:          string(cfg.Display.Currency),
		Enabled:           cfg.Enabled,
		HistoryEnabled:    cfg.HistoryEnabled,
		Interval:          strconv.Itoa(int(cfg.Interval().Seconds())),
		JPYRate:           strconv.FormatFloat(cfg.Display.JPYRate, 'f', -1, 64),
		LiveCommand:       cfg.LiveCommand,
		NotifyBurnRate:    cfg.NotifyBurnRate,
		ShowTimeRemaining: cfg.Display.ShowTimeRemaining,
		Timeout:           strconv.Itoa(int(cfg.Timeout.Seconds())),
	}
}

// applyTo writes the values into s, leaving keys the form does not edit alone
func (v settingsValues) applyTo(s *config.Settings) error {
	interval, err := positiveInt(v.Interval)
	if err != nil {
		return fmt.Errorf("interval: %w", err)
	}
	timeout, err := positiveInt(v.Timeout)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	rate, err := positiveFloat(v.JPYRate)
	if err != nil {
		return fmt.Errorf("JPY rate: %w", err)
	}

	s.Command = strings.TrimSpace(v.Command)
	s.Currency = v.Currency
	s.Enabled = &v.Enabled
	s.HistoryEnabled = &v.HistoryEnabled
	s.IntervalSeconds = &interval
	s.JPYRate = &rate
	s.LiveCommand = strings.TrimSpace(v.LiveCommand)
	s.NotifyBurnRate = &v.NotifyBurnRate
	s.ShowTimeRemaining = &v.ShowTimeRemaining
	s.TimeoutSeconds = &timeout

	return s.Validate()
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("must be a positive whole number of seconds")
	}
	return n, nil
}

func positiveFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("must be a positive number")
	}
	return f, nil
}

func validatePositiveInt(s string) error {
	_, err := positiveInt(s)
	return err
}

func validatePositiveFloat(s string) error {
	_, err := positiveFloat(s)
	return err
}

// SettingsForm edits the settings file
type SettingsForm struct {
	Completed bool
	form      *huh.Form
	path      string
	result    SettingsFormResult
	values    *settingsValues
}

// NewSettingsForm creates a form pre-filled with the settings stored at path
func NewSettingsForm(path string) *SettingsForm {
	sf := &SettingsForm{path: path}

	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		logging.Logger.Warn("Settings file unreadable, editing defaults", "path", path, "error", err)
		settings = &config.Settings{}
	}
	values := newSettingsValues(config.Resolve(settings))
	sf.values = &values

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show the usage status").
				Value(&sf.values.Enabled),
			huh.NewInput().
				Title("Usage command").
				Description("Run every interval; its output is parsed for usage data").
				Value(&sf.values.Command).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("command required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Live view command").
				Value(&sf.values.LiveCommand),
			huh.NewInput().
				Title("Update interval (seconds)").
				Value(&sf.values.Interval).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Command timeout (seconds)").
				Value(&sf.values.Timeout).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(
					huh.NewOption("US dollar", string(config.CurrencyUSD)),
					huh.NewOption("Japanese yen", string(config.CurrencyJPY)),
				).
				Value(&sf.values.Currency),
			huh.NewInput().
				Title("Yen per dollar").
				Value(&sf.values.JPYRate).
				Validate(validatePositiveFloat),
			huh.NewConfirm().
				Title("Show time remaining").
				Value(&sf.values.ShowTimeRemaining),
			huh.NewConfirm().
				Title("Notify when the burn rate rises").
				Value(&sf.values.NotifyBurnRate),
			huh.NewConfirm().
				Title("Keep usage history").
				Value(&sf.values.HistoryEnabled),
		),
	)

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		if err := sf.save(); err != nil {
			logging.Logger.Error("Failed to save settings", "error", err)
			sf.result.Error = err
		}
		return sf, nil
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}

// save merges the form into the file so keys the form does not show survive
func (sf *SettingsForm) save() error {
	settings, err := config.LoadSettingsFrom(sf.path)
	if err != nil {
		settings = &config.Settings{}
	}
	if err := sf.values.applyTo(settings); err != nil {
		return err
	}
	if err := config.SaveSettingsTo(sf.path, settings); err != nil {
		return err
	}

	sf.result.Settings = settings
	logging.Logger.Info("Settings saved", "path", sf.path)
	return nil
}
