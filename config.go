// Optional settings file.

package vaod

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlotDefaults seeds the plotting prompts: a blank answer at the prompt
// keeps the seeded value, anything else overrides it for the run.
type PlotDefaults struct {
	AODMax int    `yaml:"aod_max"`
	DPI    int    `yaml:"dpi"`
	Format string `yaml:"format"`
}

// validate bounds the seeds to the same ranges the prompts enforce, so a
// blank answer can never accept a value the prompt would have rejected.
func (d PlotDefaults) validate() error {
	if d.AODMax < 1 || d.AODMax > 5 {
		return fmt.Errorf("plot aod_max %d out of range 1-5", d.AODMax)
	}
	if d.DPI < 100 || d.DPI > 900 {
		return fmt.Errorf("plot dpi %d out of range 100-900", d.DPI)
	}
	if CheckChoice(d.Format, PlotFormats) != OutcomeOK {
		return fmt.Errorf("plot format %q not one of png, jpg or pdf", d.Format)
	}
	return nil
}

// Config carries the archive endpoints and plotting defaults. Every field
// has a working built-in default; a settings file only overrides what it
// names.
type Config struct {
	StarRoot         string       `yaml:"star_root"`
	NODDBucket       string       `yaml:"nodd_bucket"`
	CoastlineGeoJSON string       `yaml:"coastline_geojson"`
	Plot             PlotDefaults `yaml:"plot"`
}

func DefaultConfig() Config {
	return Config{
		StarRoot:   DefaultStarRoot,
		NODDBucket: DefaultNODDBucket,
		Plot: PlotDefaults{
			AODMax: 1,
			DPI:    300,
			Format: "png",
		},
	}
}

// LoadConfig reads a YAML settings file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Plot.validate(); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
