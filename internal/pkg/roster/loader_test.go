package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArray(t *testing.T) {
	data := []byte(`[
		{"id": 1, "firstName": "Ada", "lastName": "Lovelace", "department": "Engineering", "shift": "Day"},
		{"id": "2", "firstName": "Grace", "lastName": "Hopper", "department": "Engineering", "shift": "night"},
		{"id": 3, "firstName": "Alan", "lastName": "Turing", "department": "Research"}
	]`)

	entries, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Numeric and string ids both come through as strings.
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "2", entries[1].ID)
	assert.Equal(t, "night", entries[1].Shift)
	assert.Equal(t, "", entries[2].Shift)
}

func TestParseWrappedObject(t *testing.T) {
	data := []byte(`{"employees": [{"id": 7, "firstName": "Joan", "lastName": "Clarke", "department": "Research", "shift": "Day"}]}`)

	entries, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "7", entries[0].ID)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "firstName": "Ada", "lastName": "Lovelace", "department": "Engineering", "shift": "Day"}]`), 0o644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
