// Package config decodes a generic JSON document into the typed
// Config structs consumed by the search engines and the benchmark
// harness, layered under (or instead of) command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"gomets/internal/bench"
	"gomets/search"
)

// File is the top-level shape of a demo driver config document. Any
// section left absent falls back to the package defaults of the
// struct it decodes into.
type File struct {
	Tabu      search.TabuConfig        `mapstructure:"tabu"`
	Annealing search.AnnealingConfig   `mapstructure:"annealing"`
	Local     search.LocalSearchConfig `mapstructure:"local"`
	Case      bench.Case               `mapstructure:"case"`
}

// Default returns a File seeded with each section's package default.
func Default() File {
	return File{
		Tabu:      search.DefaultTabuConfig(),
		Annealing: search.DefaultAnnealingConfig(),
		Local:     search.DefaultLocalSearchConfig(),
		Case:      bench.Case{Size: 20, MaxWeight: 99, InstanceSeed: 1, MaxIters: 5000},
	}
}

// Load reads path as JSON into a File, starting from Default() and
// overwriting only the sections/fields present in the document.
func Load(path string) (File, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           &cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return File{}, fmt.Errorf("config: building decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return File{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	if err := cfg.Tabu.Validate(); err != nil {
		return File{}, err
	}
	if err := cfg.Annealing.Validate(); err != nil {
		return File{}, err
	}
	if err := cfg.Local.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}
