package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"airwave/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
stations:
  - id: 0b8f6a52-55d3-4a8e-9d0f-0d7d0c3a9b11
    name: Deep House FM
    genre: house
    stream_url: https://stream.example.com/deep-house
  - id: 6c1a2e1f-4d1b-4c5a-8a35-2f3f1f8c7d22
    name: Jungle Pressure
    genre: drum and bass
    active: false
`

func TestParseStationCatalog(t *testing.T) {
	catalog, err := config.ParseStationCatalog([]byte(catalogYAML))
	require.NoError(t, err)
	require.Len(t, catalog.Stations, 2)

	assert.Equal(t, "Deep House FM", catalog.Stations[0].Name)
	assert.True(t, catalog.Stations[0].IsActive())
	assert.False(t, catalog.Stations[1].IsActive())
}

func TestParseStationCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty", yaml: "stations: []"},
		{name: "bad id", yaml: "stations:\n  - id: nope\n    name: X\n"},
		{name: "missing name", yaml: "stations:\n  - id: 0b8f6a52-55d3-4a8e-9d0f-0d7d0c3a9b11\n"},
		{
			name: "duplicate",
			yaml: "stations:\n  - id: 0b8f6a52-55d3-4a8e-9d0f-0d7d0c3a9b11\n    name: A\n  - id: 0b8f6a52-55d3-4a8e-9d0f-0d7d0c3a9b11\n    name: B\n",
		},
		{name: "not yaml", yaml: "stations: [::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseStationCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadStationCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	catalog, err := config.LoadStationCatalog(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Stations, 2)

	_, err = config.LoadStationCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
