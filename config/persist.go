package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/teranos/promptforge/errors"
)

// starterConfig mirrors Config with toml tags for writing a commented
// starter file via `promptforge config init`.
type starterConfig struct {
	Output struct {
		Format     string `toml:"format"`
		ShowTokens bool   `toml:"show_tokens"`
	} `toml:"output"`
	History struct {
		Path string `toml:"path"`
	} `toml:"history"`
	Rules struct {
		Path string `toml:"path"`
	} `toml:"rules"`
	Log struct {
		JSON bool `toml:"json"`
	} `toml:"log"`
}

// Init writes a starter config file with the built-in defaults at path
// (UserConfigPath when empty). Refuses to overwrite an existing file.
func Init(path string) (string, error) {
	if path == "" {
		path = UserConfigPath()
	}
	if path == "" {
		return "", errors.New("could not determine config path")
	}

	if _, err := os.Stat(path); err == nil {
		return "", errors.Newf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	var starter starterConfig
	starter.Output.Format = "text"
	starter.Output.ShowTokens = false
	starter.History.Path = defaultHistoryPath()

	data, err := toml.Marshal(starter)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal starter config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write config file %s", path)
	}
	return path, nil
}
