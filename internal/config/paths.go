// Package config defines the sshblend tool configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading ~ against the user's home directory.
// Paths without the prefix pass through unchanged. Failing to
// determine the home directory is an error only when the path
// actually needs it.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("cannot determine home directory: " + err.Error())
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ExpandPaths resolves every path field of cfg in place. Called once
// after loading, before anything touches the filesystem.
func ExpandPaths(cfg *Config) error {
	var err error
	if cfg.Fragments.Dir, err = ExpandPath(cfg.Fragments.Dir); err != nil {
		return err
	}
	if cfg.Output.Path, err = ExpandPath(cfg.Output.Path); err != nil {
		return err
	}
	return nil
}

// ConfigFilePath resolves the tool's own configuration file location.
// An unresolvable default is not an error: the tool runs fine without
// a configuration file.
func ConfigFilePath(override string) string {
	if override != "" {
		return override
	}
	path, err := ExpandPath(DefaultConfigFile)
	if err != nil {
		return ""
	}
	return path
}
