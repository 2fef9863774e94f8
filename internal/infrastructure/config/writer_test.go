package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"[appearance]", "[database]", "[fonts]", "[logging]"}, sectionHeaders(string(content)))

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, *DefaultConfig(), decoded)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
}

func TestSortTOMLSections(t *testing.T) {
	input := `version = 2

[logging]
level = 'info'

[appearance]
fallback_dark = true

  [appearance.palette]
  background = '#000'

[database]
path = ''
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"[appearance]",
		"[appearance.palette]",
		"[database]",
		"[logging]",
	}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "version = 2\n\n[appearance]"))
	assert.True(t, strings.HasSuffix(result, "[database]\npath = ''\n\n[logging]\nlevel = 'info'\n"))
	assert.NotContains(t, result, "\n\n\n")
}

func TestSortTOMLSections_Empty(t *testing.T) {
	assert.Empty(t, sortTOMLSections(""))
}
