package config

// DefaultConfig returns the built-in configuration defaults. Empty
// containers prune automatically; single-child lifting stays off so a tabs
// group keeps its chrome when reduced to one tab.
func DefaultConfig() *Config {
	return &Config{
		Simplify: SimplifyConfig{
			PruneEmptyTabs:             true,
			PruneEmptyContainers:       true,
			PruneSingleChildTabs:       false,
			PruneSingleChildContainers: false,
			AllPanesMustHaveTabs:       false,
		},
		Floating: FloatingConfig{
			DefaultX:      100,
			DefaultY:      100,
			DefaultWidth:  200,
			DefaultHeight: 200,
			CascadeOffset: 24,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Validation: ValidationConfig{
			Enabled: true,
		},
	}
}
