package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

const defaultDirLine = `dir = "${KODI_HOME:-~/.kodi}"`

// ErrExists is returned by WriteDefault when the file is present and
// overwrite is false.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the example config to path, creating parent
// directories. A non-empty kodiDir replaces the KODI_HOME default.
func WriteDefault(path, kodiDir string, overwrite bool) error {
	content, err := renderDefault(kodiDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderDefault(kodiDir string) (string, error) {
	if kodiDir == "" {
		return defaultConfig, nil
	}
	line, err := toml.Marshal(KodiConfig{Dir: kodiDir})
	if err != nil {
		return "", err
	}
	return strings.Replace(defaultConfig, defaultDirLine, strings.TrimSpace(string(line)), 1), nil
}
