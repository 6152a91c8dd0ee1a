package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDirPermissions is used when creating the ~/.promptforge directory
const DefaultDirPermissions = 0750

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "text")
	v.SetDefault("output.show_tokens", false)

	v.SetDefault("history.path", defaultHistoryPath())

	v.SetDefault("rules.path", "")

	v.SetDefault("log.json", false)
}

// defaultHistoryPath is ~/.promptforge/history.log, falling back to a
// relative path when the home directory cannot be determined.
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "promptforge-history.log"
	}
	return filepath.Join(home, ".promptforge", "history.log")
}
