package config

// Config is the top-level structure mapping to shinkoku.toml.
type Config struct {
	Advice AdviceConfig `toml:"advice"`
	Table  TableConfig  `toml:"table"`
}

// AdviceConfig maps to the [advice] section.
type AdviceConfig struct {
	// Model is the Gemini model name. Empty selects the built-in default.
	Model string `toml:"model"`

	// APIKeyEnv names the environment variable holding the Gemini API key.
	APIKeyEnv string `toml:"api_key_env"`

	// Disabled turns the advice fetch off entirely.
	Disabled bool `toml:"disabled"`
}

// TableConfig maps to the [table] section.
type TableConfig struct {
	// File overrides the embedded decision table with an external TOML file.
	File string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Advice: AdviceConfig{
			APIKeyEnv: "GEMINI_API_KEY",
		},
	}
}
