// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/sandpile/grid"
)

// Reference grid size used by DefaultConfig.
const (
	DefaultHeight = 513
	DefaultWidth  = 513
)

// Logger receives engine diagnostics. *logging.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Config describes one relaxation run.
//
// Height, Width – interior grid size, both ≥ 1.
// Workers       – goroutines (Shared) or ranks (Distributed); ignored by Serial.
// Seed          – initial grain counts; nil means grid.Uniform(grid.DefaultGrains).
// Logger        – optional; receives state transitions and the timing line.
// OnSweep       – optional; called once per sweep with the global changed flag.
type Config struct {
	Height, Width int
	Workers       int
	Seed          grid.Seed
	Logger        Logger
	OnSweep       func(sweep int, changed bool)
}

// DefaultConfig returns the reference run: a 513×513 grid with four grains
// per cell and one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Height:  DefaultHeight,
		Width:   DefaultWidth,
		Workers: runtime.NumCPU(),
		Seed:    grid.Uniform(grid.DefaultGrains),
	}
}

// Validate reports ErrBadDimensions or ErrBadWorkers for an unusable config.
// Workers > Height is valid: the extra workers stay idle.
func (c Config) Validate() error {
	if c.Height < 1 || c.Width < 1 {
		return fmt.Errorf("Config(%dx%d): %w", c.Height, c.Width, ErrBadDimensions)
	}
	if c.Workers < 1 {
		return fmt.Errorf("Config(workers=%d): %w", c.Workers, ErrBadWorkers)
	}

	return nil
}

func (c Config) seed() grid.Seed {
	if c.Seed == nil {
		return grid.Uniform(grid.DefaultGrains)
	}
	return c.Seed
}

func (c Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (c Config) enter(v Variant, s State) {
	c.logf("%s: %s", v, s)
}

func (c Config) notify(sweep int, changed bool) {
	if c.OnSweep != nil {
		c.OnSweep(sweep, changed)
	}
}
