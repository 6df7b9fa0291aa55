package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "KODISRC_CONFIG"

const (
	localConfig  = "kodisrc.toml"
	systemConfig = "/etc/kodisrc/config.toml"
)

// DefaultPath is $XDG_CONFIG_HOME/kodisrc/config.toml, falling back to
// ~/.config and then to ./kodisrc.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./" + localConfig
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "kodisrc", "config.toml")
}

// SearchPaths lists the files Discover tries when KODISRC_CONFIG is unset,
// in order.
func SearchPaths() []string {
	return []string{"./" + localConfig, DefaultPath(), systemConfig}
}

// Discover returns the first config file found. KODISRC_CONFIG wins when
// set and must name an existing file.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, p, err)
		}
		return p, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
