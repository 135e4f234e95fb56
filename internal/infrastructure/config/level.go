package config

import "fmt"

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	Name     string         `yaml:"name"`
	Grid     []string       `yaml:"grid,omitempty"`
	Planes   []PlaneConfig  `yaml:"planes,omitempty"`
	Entities []EntityConfig `yaml:"entities"`
}

// PlaneConfig is a rectangle spanned by edges a and b from origin.
type PlaneConfig struct {
	Origin Vec3 `yaml:"origin"`
	A      Vec3 `yaml:"a"`
	B      Vec3 `yaml:"b"`
	Tile   int  `yaml:"tile"`
}

// Validate checks every entity entry.
func (c *LevelConfig) Validate() error {
	for i := range c.Entities {
		if err := c.Entities[i].Validate(); err != nil {
			return fmt.Errorf("level %q entity %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Count returns how many entities of kind the level declares.
func (c *LevelConfig) Count(kind string) int {
	n := 0
	for i := range c.Entities {
		if c.Entities[i].Kind == kind {
			n++
		}
	}
	return n
}
