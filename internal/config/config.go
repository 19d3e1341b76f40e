// Package config resolves the download root from an optional toml config
// file with an environment-variable fallback chain. All process-environment
// access lives here so the planner can be tested with injected strings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrRootNotConfigured = errors.New("download root not found: set $GC_DOWNLOAD_PATH or $GOPATH, or configure workspace.root")

type Config struct {
	Workspace WorkspaceConfig `toml:"workspace"`
}

type WorkspaceConfig struct {
	Root string `toml:"root"`
}

func Load(path string) (*Config, error) {
	configPath, err := FindConfigPath(path)
	if err != nil {
		if path != "" {
			return nil, err
		}
		return &Config{}, nil
	}

	return LoadFile(configPath)
}

func FindConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("config file not found: %s", path)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	configPaths := []string{
		filepath.Join(homeDir, ".config", "gc", "config.toml"),
		filepath.Join(homeDir, ".gc.toml"),
	}

	for _, p := range configPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found")
}

func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ResolveRoot returns the directory repositories are downloaded under. A
// workspace.root from the config file wins as-is; otherwise the first set
// variable of $GC_DOWNLOAD_PATH then $GOPATH is used with a src suffix,
// matching the GOPATH workspace layout.
func (c *Config) ResolveRoot() (string, error) {
	if root := expandHome(c.Workspace.Root); root != "" {
		return root, nil
	}

	for _, name := range []string{"GC_DOWNLOAD_PATH", "GOPATH"} {
		if base := os.Getenv(name); base != "" {
			return filepath.Join(base, "src"), nil
		}
	}

	return "", ErrRootNotConfigured
}

func expandHome(dir string) string {
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[2:])
		}
	}
	return dir
}
