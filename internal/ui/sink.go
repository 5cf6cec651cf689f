package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"usagebar/internal/domain"
	"usagebar/internal/ports"
)

// SinkState is what the status element currently shows
type SinkState struct {
	Fetching bool
	HasView  bool
	Hidden   bool
	View     domain.StatusView
}

// ProgramSink implements ports.StatusSink for one or more bubbletea
// programs. The poller writes under its own lock, so subscribers are only
// poked with a message and read the state back; Send never blocks the poller.
type ProgramSink struct {
	mu          sync.Mutex
	nextID      int
	state       SinkState
	subscribers map[int]func(tea.Msg)
}

var _ ports.StatusSink = (*ProgramSink)(nil)

// NewProgramSink creates an empty sink
func NewProgramSink() *ProgramSink {
	return &ProgramSink{subscribers: make(map[int]func(tea.Msg))}
}

// Subscribe registers a program's Send function. The returned func removes it.
func (s *ProgramSink) Subscribe(send func(tea.Msg)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = send

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// State returns the current element state
func (s *ProgramSink) State() SinkState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fetching implements ports.StatusSink
func (s *ProgramSink) Fetching() {
	s.change(func(st *SinkState) {
		st.Fetching = true
		st.Hidden = false
	})
}

// Hide implements ports.StatusSink
func (s *ProgramSink) Hide() {
	s.change(func(st *SinkState) {
		st.Fetching = false
		st.Hidden = true
	})
}

// Update implements ports.StatusSink
func (s *ProgramSink) Update(view domain.StatusView) {
	s.change(func(st *SinkState) {
		st.Fetching = false
		st.HasView = true
		st.Hidden = false
		st.View = view
	})
}

func (s *ProgramSink) change(apply func(*SinkState)) {
	s.mu.Lock()
	apply(&s.state)
	subs := make([]func(tea.Msg), 0, len(s.subscribers))
	for _, send := range s.subscribers {
		subs = append(subs, send)
	}
	s.mu.Unlock()

	for _, send := range subs {
		go send(statusChangedMsg{})
	}
}
