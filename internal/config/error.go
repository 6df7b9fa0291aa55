package config

import (
	"fmt"
	"strings"
)

// Error collects everything wrong with one config file so it can be reported
// in a single pass.
type Error struct {
	Path    string
	Missing []string // unresolved ${VAR} references
	Errors  []string // field validation messages
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "invalid config %s", e.Path)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\n  unset: %s", strings.Join(e.Missing, ", "))
	}
	for _, msg := range e.Errors {
		fmt.Fprintf(&b, "\n  %s", msg)
	}
	return b.String()
}

// HasErrors reports whether anything was collected.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
