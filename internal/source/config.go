package source

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ConfigSection is the INI section FromConfig reads.
const ConfigSection = "config"

// Keys of ConfigSection.
const (
	KeyName    = "source_name"
	KeyPort    = "pcloud_port"
	KeyContent = "source_content"
)

// FromConfig builds a Source from an INI file of the form
//
//	[config]
//	source_name = Serien
//	pcloud_port = 13531
//	source_content = tvshows
//
// The source path is the local pCloud HTTP endpoint on that port.
func FromConfig(file string) (Source, error) {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, file)
	if err != nil {
		return Source{}, &ConfigError{Field: "file", Message: fmt.Sprintf("reading %s: %v", file, err)}
	}

	sec, err := f.GetSection(ConfigSection)
	if err != nil {
		return Source{}, &ConfigError{Field: ConfigSection, Message: fmt.Sprintf("section [%s] not found in %s", ConfigSection, file)}
	}

	values := make(map[string]string, 3)
	for _, key := range []string{KeyName, KeyPort, KeyContent} {
		if !sec.HasKey(key) {
			return Source{}, &ConfigError{Field: key, Message: fmt.Sprintf("required key missing from [%s] in %s", ConfigSection, file)}
		}
		values[key] = strings.TrimSpace(sec.Key(key).String())
	}

	port, err := strconv.Atoi(values[KeyPort])
	if err != nil || port < 1 || port > 65535 {
		return Source{}, &ConfigError{Field: KeyPort, Message: fmt.Sprintf("must be a port between 1 and 65535, got %q", values[KeyPort])}
	}

	return New(values[KeyName], fmt.Sprintf("http://127.0.0.1:%d/", port), values[KeyContent])
}
