package ports

// TmuxConfigurator reloads tmux configuration after setup changed it
type TmuxConfigurator interface {
	SourceFile(configPath string) error
}
