package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, schemaID, doc["$id"])
	assert.Equal(t, "Appearance Configuration", doc["title"])

	raw := string(data)
	for _, key := range []string{"color_scheme_override", "fallback_dark", "command", "level", "format", "path"} {
		assert.Contains(t, raw, `"`+key+`"`)
	}
	assert.Contains(t, raw, "prefer-dark")
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")

	require.NoError(t, WriteSchemaFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
