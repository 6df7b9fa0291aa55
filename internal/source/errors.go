package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrConfiguration matches every *ConfigError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigError reports bad descriptor input or a bad source config file.
type ConfigError struct {
	Field      string // Offending field or config key
	Message    string
	Suggestion string // Closest valid value, if any
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func quote(s string) string {
	return strconv.Quote(s)
}

func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return strings.Join(quoted, ", ")
}
