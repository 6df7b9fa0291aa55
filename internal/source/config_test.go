package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFromConfig(t *testing.T) {
	path := writeConfig(t, `
[config]
source_name = Serien
pcloud_port = 13531
source_content = tvshows
`)

	src, err := FromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Serien", src.Name())
	assert.Equal(t, "http://127.0.0.1:13531/", src.Path())
	assert.Equal(t, ContentTVShows, src.Content())
}

func TestFromConfig_KeysCaseInsensitive(t *testing.T) {
	path := writeConfig(t, `
[config]
Source_Name = Filme
PCLOUD_PORT = 8080
source_content = movies
`)

	src, err := FromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Filme", src.Name())
	assert.Equal(t, "http://127.0.0.1:8080/", src.Path())
}

func TestFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "missing section",
			content: "[other]\nsource_name = x\n",
			field:   ConfigSection,
		},
		{
			name:    "missing name",
			content: "[config]\npcloud_port = 1\nsource_content = movies\n",
			field:   KeyName,
		},
		{
			name:    "missing port",
			content: "[config]\nsource_name = x\nsource_content = movies\n",
			field:   KeyPort,
		},
		{
			name:    "missing content",
			content: "[config]\nsource_name = x\npcloud_port = 1\n",
			field:   KeyContent,
		},
		{
			name:    "port not a number",
			content: "[config]\nsource_name = x\npcloud_port = abc\nsource_content = movies\n",
			field:   KeyPort,
		},
		{
			name:    "port out of range",
			content: "[config]\nsource_name = x\npcloud_port = 70000\nsource_content = movies\n",
			field:   KeyPort,
		},
		{
			name:    "unsupported content",
			content: "[config]\nsource_name = x\npcloud_port = 1\nsource_content = music\n",
			field:   "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestFromConfig_MissingFile(t *testing.T) {
	_, err := FromConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}
