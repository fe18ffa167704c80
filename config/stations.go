package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// StationSeed is one entry of the station catalog file.
type StationSeed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Genre       string `yaml:"genre"`
	Description string `yaml:"description"`
	StreamURL   string `yaml:"stream_url"`
	Active      *bool  `yaml:"active,omitempty"`
}

// StationCatalog is the root of stations.yaml.
type StationCatalog struct {
	Stations []StationSeed `yaml:"stations"`
}

// LoadStationCatalog reads and validates the station catalog at path.
func LoadStationCatalog(path string) (*StationCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read station catalog: %w", err)
	}

	return ParseStationCatalog(data)
}

func ParseStationCatalog(data []byte) (*StationCatalog, error) {
	var catalog StationCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse station catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validate station catalog: %w", err)
	}

	return &catalog, nil
}

func (c *StationCatalog) Validate() error {
	if len(c.Stations) == 0 {
		return errors.New("no stations defined")
	}

	seen := make(map[string]bool, len(c.Stations))

	for i, st := range c.Stations {
		if _, err := uuid.Parse(st.ID); err != nil {
			return fmt.Errorf("station %d: invalid id %q", i, st.ID)
		}

		if st.Name == "" {
			return fmt.Errorf("station %d: name is required", i)
		}

		if seen[st.ID] {
			return fmt.Errorf("station %d: duplicate id %s", i, st.ID)
		}

		seen[st.ID] = true
	}

	return nil
}

// IsActive defaults to true when the catalog omits the flag.
func (s StationSeed) IsActive() bool {
	return s.Active == nil || *s.Active
}
