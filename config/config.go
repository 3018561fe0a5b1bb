// Package config loads sandpile run settings from YAML.
//
// A document looks like:
//
//	version: 1
//	grid: {height: 513, width: 513}
//	workers: 8
//	variant: distributed   # serial | shared | distributed
//	seed: {kind: uniform, grains: 4}   # uniform | center | values
//	output: {path: sandpile.ppm}
//	log: {path: ""}        # empty logs to stderr
//
// An explicit start uses kind values with one row per grid row:
//
//	grid: {height: 2, width: 3}
//	seed: {kind: values, values: [[4, 0, 4], [0, 9, 0]]}
//
// Missing keys keep their defaults; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sandpile/grid"
	"github.com/katalvlaran/sandpile/relax"
	"github.com/katalvlaran/sandpile/render"
)

// Version is the only document version this package understands.
const Version = 1

// Seed kinds.
const (
	SeedUniform = "uniform"
	SeedCenter  = "center"
	SeedValues  = "values"
)

var (
	// ErrUnsupportedVersion indicates a document version other than Version.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
	// ErrUnknownSeed indicates a seed kind other than uniform or center.
	ErrUnknownSeed = errors.New("config: unknown seed kind")
	// ErrSeedShape indicates explicit seed values that do not cover the grid.
	ErrSeedShape = errors.New("config: seed values do not match grid size")
)

// GridConfig is the interior grid size.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// SeedConfig selects the initial configuration. Grains 0 picks the kind's
// default: grid.DefaultGrains per cell for uniform, height×width on the centre
// cell for center. Values is read only by kind values and must hold exactly
// height rows of width cells.
type SeedConfig struct {
	Kind   string  `yaml:"kind"`
	Grains int     `yaml:"grains,omitempty"`
	Values [][]int `yaml:"values,omitempty"`
}

// OutputConfig names the image written after the run. The extension picks
// the format; an empty path skips the image.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LogConfig names the diagnostic log file; empty means stderr.
type LogConfig struct {
	Path string `yaml:"path"`
}

// File models a sandpile YAML document.
type File struct {
	Version int          `yaml:"version"`
	Grid    GridConfig   `yaml:"grid"`
	Workers int          `yaml:"workers"`
	Variant string       `yaml:"variant"`
	Seed    SeedConfig   `yaml:"seed"`
	Output  OutputConfig `yaml:"output"`
	Log     LogConfig    `yaml:"log"`
}

// Default returns the reference run: 513×513, four grains per cell, one
// worker per CPU, distributed, written to sandpile.ppm.
func Default() File {
	return File{
		Version: Version,
		Grid:    GridConfig{Height: relax.DefaultHeight, Width: relax.DefaultWidth},
		Workers: runtime.NumCPU(),
		Variant: relax.VariantDistributed.String(),
		Seed:    SeedConfig{Kind: SeedUniform},
		Output:  OutputConfig{Path: "sandpile.ppm"},
	}
}

// Load reads and validates the document at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("config: parse: %w", err)
	}
	f.normalize()
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f *File) normalize() {
	f.Variant = strings.ToLower(strings.TrimSpace(f.Variant))
	f.Seed.Kind = strings.ToLower(strings.TrimSpace(f.Seed.Kind))
	if f.Seed.Kind == "" {
		f.Seed.Kind = SeedUniform
	}
	f.Output.Path = strings.TrimSpace(f.Output.Path)
	f.Log.Path = strings.TrimSpace(f.Log.Path)
}

// Validate checks every field, including the engine settings.
func (f File) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("config: version %d: %w", f.Version, ErrUnsupportedVersion)
	}
	if _, _, err := f.RelaxConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if f.Output.Path != "" {
		if _, err := render.FormatFromPath(f.Output.Path); err != nil {
			return fmt.Errorf("config: output: %w", err)
		}
	}
	return nil
}

// RelaxConfig converts the document into engine settings.
func (f File) RelaxConfig() (relax.Config, relax.Variant, error) {
	v, err := relax.ParseVariant(f.Variant)
	if err != nil {
		return relax.Config{}, 0, err
	}
	seed, err := f.seed()
	if err != nil {
		return relax.Config{}, 0, err
	}
	cfg := relax.Config{
		Height:  f.Grid.Height,
		Width:   f.Grid.Width,
		Workers: f.Workers,
		Seed:    seed,
	}
	if err = cfg.Validate(); err != nil {
		return relax.Config{}, 0, err
	}
	return cfg, v, nil
}

func (f File) seed() (grid.Seed, error) {
	if f.Seed.Grains < 0 {
		return nil, fmt.Errorf("seed grains %d: %w", f.Seed.Grains, grid.ErrNegativeGrains)
	}
	switch f.Seed.Kind {
	case SeedUniform, "":
		if f.Seed.Grains == 0 {
			return grid.Uniform(grid.DefaultGrains), nil
		}
		return grid.Uniform(f.Seed.Grains), nil
	case SeedCenter:
		grains := f.Seed.Grains
		if grains == 0 {
			grains = f.Grid.Height * f.Grid.Width
		}
		return grid.CenterPile(f.Grid.Height, f.Grid.Width, grains), nil
	case SeedValues:
		seed, err := grid.FromValues(f.Seed.Values)
		if err != nil {
			return nil, fmt.Errorf("seed values: %w", err)
		}
		if len(f.Seed.Values) != f.Grid.Height || len(f.Seed.Values[0]) != f.Grid.Width {
			return nil, fmt.Errorf("seed values for %dx%d grid: %w", f.Grid.Height, f.Grid.Width, ErrSeedShape)
		}
		return seed, nil
	default:
		return nil, fmt.Errorf("seed kind %q: %w", f.Seed.Kind, ErrUnknownSeed)
	}
}
