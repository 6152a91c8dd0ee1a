// Package config manages promptforge configuration via Viper. Sources
// in precedence order (lowest to highest): built-in defaults, the user
// file ~/.promptforge/config.toml, a project-local .promptforge.toml
// found by walking up from the working directory, and PROMPTFORGE_*
// environment variables. CLI flags override everything here.
package config

// Config is the promptforge core configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	History HistoryConfig `mapstructure:"history"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Log     LogConfig     `mapstructure:"log"`
}

// OutputConfig controls default output formatting
type OutputConfig struct {
	// Format is the default output format: text, markdown, or json
	Format string `mapstructure:"format"`

	// ShowTokens enables the token estimate by default
	ShowTokens bool `mapstructure:"show_tokens"`
}

// HistoryConfig controls the append-only history log
type HistoryConfig struct {
	// Path is where --save appends when given without a value
	Path string `mapstructure:"path"`
}

// RulesConfig controls simulation rule loading
type RulesConfig struct {
	// Path, when set, replaces the builtin rule set for every run
	// (same semantics as --rules)
	Path string `mapstructure:"path"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	// JSON switches logs from console to JSON output
	JSON bool `mapstructure:"json"`
}
