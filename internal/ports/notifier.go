package ports

// Notifier sends desktop notifications
type Notifier interface {
	// Notify shows a notification with the given title and body
	Notify(title, message string) error
}
