// Package source describes a Kodi media source and the values persisted for it.
package source

import (
	"fmt"
	"net/url"

	"golang.org/x/text/unicode/norm"
)

// Columns lists the path table columns written for a source, in RowValues order.
var Columns = []string{
	"strPath",
	"strContent",
	"strScraper",
	"strHash",
	"scanRecursive",
	"useFolderNames",
	"strSettings",
	"noUpdate",
	"exclude",
	"dateAdded",
	"idParentPath",
}

// Source is a network media source. The zero value is not valid; use New or FromConfig.
type Source struct {
	name    string
	path    string
	content Content
}

// New validates its arguments and returns a Source.
// Returns a *ConfigError if content is unsupported or path is not a URL.
func New(name, path, content string) (Source, error) {
	c, err := ParseContent(content)
	if err != nil {
		return Source{}, err
	}

	u, err := url.Parse(path)
	if err != nil {
		return Source{}, &ConfigError{Field: "path", Message: fmt.Sprintf("invalid URL %q: %v", path, err)}
	}
	if u.Scheme == "" {
		return Source{}, &ConfigError{Field: "path", Message: fmt.Sprintf("%q has no scheme (expected e.g. http:// or smb://)", path)}
	}

	return Source{
		name:    norm.NFC.String(name),
		path:    path,
		content: c,
	}, nil
}

func (s Source) Name() string     { return s.name }
func (s Source) Path() string     { return s.path }
func (s Source) Content() Content { return s.content }
func (s Source) Scraper() string  { return s.content.Scraper() }
func (s Source) Settings() string { return s.content.Settings() }

// RowValues returns the path table values for s, ordered like Columns.
// The constant entries fill columns Kodi manages itself (hash, recursion,
// folder naming, update/exclude flags, date added, parent path) and must
// stay exactly as they are for schema version 116.
func (s Source) RowValues() []any {
	return []any{
		s.path,
		string(s.content),
		s.Scraper(),
		"",
		"1",
		"0",
		s.Settings(),
		"0",
		"0",
		"",
		"",
	}
}

func (s Source) String() string {
	return fmt.Sprintf("%s (%s) %s", s.name, s.content, s.path)
}
