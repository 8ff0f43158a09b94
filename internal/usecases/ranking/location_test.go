package ranking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLocationResolver_Resolve(t *testing.T) {
	resolver := NewStaticLocationResolver()

	tests := []struct {
		location string
		code     int
		display  string
	}{
		{"", DefaultLocationCode, DefaultLocation},
		{"united states", 2840, "United States"},
		{"  United   Kingdom ", 2826, "United Kingdom"},
		{"USA", 2840, "United States"},
		{"New York, New York, United States", 1023191, "New York,New York,United States"},
		{"Atlantis", DefaultLocationCode, "Atlantis"},
		{"  Austin,Texas,United States ", DefaultLocationCode, "Austin,Texas,United States"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			code, display := resolver.Resolve(tt.location)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.display, display)
		})
	}
}

func TestLoadLocationResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	content := `
locations:
  - name: Lisbon,Lisbon,Portugal
    code: 1011742
  - name: invalid
    code: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	resolver, err := LoadLocationResolver(path)
	require.NoError(t, err)

	code, display := resolver.Resolve("lisbon,lisbon,portugal")
	assert.Equal(t, 1011742, code)
	assert.Equal(t, "Lisbon,Lisbon,Portugal", display)

	code, _ = resolver.Resolve("invalid")
	assert.Equal(t, DefaultLocationCode, code)

	code, _ = resolver.Resolve("Canada")
	assert.Equal(t, 2124, code)
}

func TestLoadLocationResolver_MissingFile(t *testing.T) {
	_, err := LoadLocationResolver(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	resolver, err := LoadLocationResolver("")
	require.NoError(t, err)
	assert.NotNil(t, resolver)
}
