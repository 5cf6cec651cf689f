package domain

// Action represents a user-invocable action on the status element.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description string
	Name        string
	NeedsRecord bool
}

// Action names
const (
	ActionDetails  = "details"
	ActionHelp     = "help"
	ActionQuit     = "quit"
	ActionRefresh  = "refresh"
	ActionSettings = "settings"
)

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: ActionDetails, Description: "Open the live usage view", NeedsRecord: false},
	{Name: ActionHelp, Description: "Show keyboard shortcuts", NeedsRecord: false},
	{Name: ActionQuit, Description: "Exit usagebar", NeedsRecord: false},
	{Name: ActionRefresh, Description: "Refresh usage now", NeedsRecord: false},
	{Name: ActionSettings, Description: "Edit usagebar settings", NeedsRecord: false},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}
