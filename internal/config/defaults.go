package config

const (
	defaultAliasesPath    = "~/.local/share/cinescan/film-aliases.json"
	defaultMatchThreshold = 85.0
	defaultSimilarity     = "weighted"
	defaultResolveLimit   = 5
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

func defaultLocalePriority() []string {
	return []string{"ru", "en"}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: Catalog{
			AliasesPath:    defaultAliasesPath,
			DatabasePath:   "",
			LocalePriority: defaultLocalePriority(),
		},
		Matching: Matching{
			Threshold:    defaultMatchThreshold,
			Similarity:   defaultSimilarity,
			ResolveLimit: defaultResolveLimit,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
