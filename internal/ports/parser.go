package ports

import "usagebar/internal/domain"

// UsageParser turns raw usage command output into a record.
// Parse returns nil when the text carries no usable usage data.
type UsageParser interface {
	Parse(text string) *domain.UsageRecord
}
