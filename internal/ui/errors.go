package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders err on a single line that fits maxWidth,
// truncating with "..." when needed. A maxWidth of 0 (no window size yet)
// leaves the message whole.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		message = "unknown error"
	}

	if maxWidth <= 0 {
		return errorPrefix + message
	}

	room := maxWidth - utf8.RuneCountInString(errorPrefix)
	if room < 10 {
		room = 10
	}
	if utf8.RuneCountInString(message) > room {
		runes := []rune(message)
		message = string(runes[:room-utf8.RuneCountInString(truncationMark)]) + truncationMark
	}

	return errorPrefix + message
}
