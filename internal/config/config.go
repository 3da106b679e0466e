package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/selector"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

// #endregion

// #region config

// Config bundles the engine tuning constants and curated city profiles.
// A YAML file overrides defaults field by field; absent keys keep them.
type Config struct {
	Scoring   scoring.Config     `yaml:"scoring"`
	Selection selector.Config    `yaml:"selection"`
	Cities    []trip.CityProfile `yaml:"cities"`
}

// Default returns compiled-in defaults plus the builtin city profiles.
func Default() Config {
	cities := make([]trip.CityProfile, 0, len(trip.BuiltinProfiles))
	for _, p := range trip.BuiltinProfiles {
		cities = append(cities, p)
	}
	return Config{
		Scoring:   scoring.DefaultConfig(),
		Selection: selector.DefaultConfig(),
		Cities:    cities,
	}
}

// #endregion config

// #region load

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load

// #region profile-lookup

// Profile returns the configured profile for a city, falling back to a
// neutral default when the city is not curated.
func (c Config) Profile(name string) trip.CityProfile {
	for _, p := range c.Cities {
		if p.Name == name {
			return p
		}
	}
	return trip.DefaultCityProfile(name)
}

// #endregion profile-lookup
