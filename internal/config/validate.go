// internal/config/validate.go
package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}

// CheckKodiDir reports whether Kodi.Dir is an existing directory. Load does
// not call it; callers check after applying command-line overrides.
func (c *Config) CheckKodiDir() error {
	dir := expandHome(c.Kodi.Dir)
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("kodi directory %q does not exist", dir)
	case err != nil:
		return fmt.Errorf("kodi directory %q: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("kodi directory %q is not a directory", dir)
	}
	return nil
}
