package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"usagebar/internal/theme"
)

// HelpScreen displays keyboard shortcuts and the status legend
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Usage") + "\n"
	content += renderBinding(keys.Refresh)
	content += renderBinding(keys.Details)
	content += renderBinding(keys.Settings)
	content += renderBinding(keys.ToggleTooltip)

	content += "\n" + theme.HelpGroupStyle.Render("Details list") + "\n"
	content += renderBinding(keys.Up)
	content += renderBinding(keys.Down)
	content += renderBinding(keys.Select)

	content += "\n" + theme.HelpGroupStyle.Render("Live view") + "\n"
	content += renderShortcut("ctrl+c", "leave the live view")
	content += renderShortcut("ctrl+q", "detach from `usagebar details`")

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Help)
	content += renderBinding(keys.Quit)
	content += renderBinding(keys.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("Status icons (read-only)") + "\n"
	content += renderShortcut(theme.IconMax, "Claude Max plan")
	content += renderShortcut(theme.IconPro, "Claude Pro plan")
	content += renderShortcut(theme.IconUsage, "usage-based plan, spent/limit")
	content += renderShortcut(theme.IconCloud, "plan unknown")
	content += renderShortcut(theme.IconProgress, "session progress")
	content += renderShortcut(theme.IconRemaining, "time left in the session")
	content += renderShortcut(theme.IconActive, "session active")
	content += renderShortcut(theme.IconError, "usage command failed")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, footer: 3 lines
		viewportHeight := msg.Height - 8
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Back, h.keys.Quit, h.keys.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
