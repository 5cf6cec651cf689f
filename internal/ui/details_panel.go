package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"usagebar/internal/domain"
	"usagebar/internal/theme"
)

// DetailsPanel lists the plan summary and the actions for the last record.
// Entries without an action are informational and are skipped by the cursor.
type DetailsPanel struct {
	cursor int
	items  []domain.DetailItem
	keys   *KeyMap
}

// NewDetailsPanel creates an empty panel
func NewDetailsPanel(keys *KeyMap) *DetailsPanel {
	return &DetailsPanel{keys: keys}
}

// SetItems replaces the list, keeping the cursor on the same action if it is
// still present
func (p *DetailsPanel) SetItems(items []domain.DetailItem) {
	selected := p.Selected()
	p.items = items
	p.cursor = -1
	for i, item := range items {
		if item.Action == "" {
			continue
		}
		if p.cursor < 0 || (selected != nil && item.Action == selected.Action) {
			p.cursor = i
		}
	}
}

// Selected returns the item under the cursor, or nil
func (p *DetailsPanel) Selected() *domain.DetailItem {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return nil
	}
	return &p.items[p.cursor]
}

// Update moves the cursor and turns enter into an action message
func (p *DetailsPanel) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Up):
		p.move(-1)
	case key.Matches(msg, p.keys.Down):
		p.move(1)
	case key.Matches(msg, p.keys.Select):
		if item := p.Selected(); item != nil {
			return actionCmd(item.Action)
		}
	}
	return nil
}

func (p *DetailsPanel) move(delta int) {
	for i := p.cursor + delta; i >= 0 && i < len(p.items); i += delta {
		if p.items[i].Action != "" {
			p.cursor = i
			return
		}
	}
}

// View renders the list
func (p *DetailsPanel) View() string {
	var b strings.Builder
	for i, item := range p.items {
		style := theme.DetailItemStyle
		prefix := "  "
		if i == p.cursor {
			style = theme.DetailItemSelectedStyle
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix + item.Label))
		b.WriteString("\n")
		if item.Description != "" {
			b.WriteString(theme.DetailDescStyle.Render(item.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}
