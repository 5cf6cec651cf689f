package theme

// Status line icons
const (
	IconActive    = "●"
	IconArrow     = "→"
	IconCloud     = "☁"
	IconError     = "✖"
	IconFetching  = "↻"
	IconMax       = "⚡"
	IconPro       = "★"
	IconProgress  = "◔"
	IconRemaining = "⌛"
	IconUsage     = "▤"
	IconWarning   = "⚠"
)
