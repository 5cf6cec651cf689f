package ports

import "usagebar/internal/domain"

// StatusSink is the UI element the poller writes to
type StatusSink interface {
	// Fetching shows the in-flight state
	Fetching()

	// Hide removes the element (disabled or disposed poller)
	Hide()

	// Update shows a rendered status
	Update(view domain.StatusView)
}

// StatusStore persists the last rendered status for other processes
type StatusStore interface {
	Read() (*domain.StatusSnapshot, error)
	Write(snapshot domain.StatusSnapshot) error
}
