package ui

import tea "github.com/charmbracelet/bubbletea"

// statusChangedMsg tells the model to re-read the sink
type statusChangedMsg struct{}

// refreshDoneMsg reports the end of a manual refresh
type refreshDoneMsg struct {
	err error
}

// liveViewDoneMsg is sent when the live view command returns
type liveViewDoneMsg struct {
	err error
}

// actionMsg requests a details-list action by name
type actionMsg struct {
	action string
}

func actionCmd(action string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: action}
	}
}

// IsStatusChange reports whether msg is the sink's change notification
func IsStatusChange(msg tea.Msg) bool {
	_, ok := msg.(statusChangedMsg)
	return ok
}
