package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"usagebar/internal/logging"
	"usagebar/internal/ui"
)

// sessionModel wraps ui.Model for one SSH session. Status changes reach it
// through a channel instead of Program.Send since wish owns the program.
type sessionModel struct {
	*ui.Model
	changes     chan tea.Msg
	closeOnce   sync.Once
	done        <-chan struct{}
	sessionID   string
	startTime   time.Time
	unsubscribe func()
}

// waitForChange blocks until the sink reports a change or the session ends
func (s *sessionModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-s.changes:
			return msg
		case <-s.done:
			return nil
		}
	}
}

func (s *sessionModel) Init() tea.Cmd {
	return tea.Batch(s.Model.Init(), s.waitForChange())
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}

	if ui.IsStatusChange(msg) {
		return s, tea.Batch(cmd, s.waitForChange())
	}
	return s, cmd
}

// close runs on quit or when the connection drops, whichever comes first
func (s *sessionModel) close() {
	s.closeOnce.Do(func() {
		s.unsubscribe()
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler creates a status model for each SSH session, all sharing the
// server's poller and sink
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := &sessionModel{
		// No live view or settings form remotely: both would act on the
		// server's terminal and files
		Model:     ui.NewModel(s.controller, s.sink, ui.ModelOptions{}),
		changes:   make(chan tea.Msg, 1),
		done:      sess.Context().Done(),
		sessionID: sessionID,
		startTime: time.Now(),
	}
	model.unsubscribe = s.sink.Subscribe(func(msg tea.Msg) {
		// Coalesce: one pending change is enough, the model re-reads the sink
		select {
		case model.changes <- msg:
		default:
		}
	})

	go func() {
		<-sess.Context().Done()
		model.close()
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
