// SPDX-License-Identifier: MIT

package perlin

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for configuration validation. The evaluators never return them.
var (
	// ErrOctaves indicates a fractal configuration with fewer than MinOctaves layers.
	ErrOctaves = errors.New("perlin: octaves must be ≥ 1")
	// ErrPersistence indicates a persistence that is not a finite number > 0.
	ErrPersistence = errors.New("perlin: persistence must be finite and > 0")
)

// MinOctaves is the smallest octave count with a defined fractal value.
const MinOctaves = 1

const (
	// DefaultOctaves is the octave count returned by DefaultFractal.
	DefaultOctaves = 4
	// DefaultPersistence is the per-octave amplitude decay returned by DefaultFractal.
	DefaultPersistence = 0.5
)

// Source is anything that maps a 3-D coordinate to a noise sample.
type Source interface {
	At(x, y, z float64) float64
}

// Base is single-octave noise. Repeat > 0 tiles the field with that period
// on every axis; Repeat <= 0 means no tiling.
type Base struct {
	Repeat int
}

// At implements Source via GenerateTiled.
func (b Base) At(x, y, z float64) float64 {
	return GenerateTiled(x, y, z, b.Repeat)
}

// Tiled reports whether b repeats.
func (b Base) Tiled() bool {
	return b.Repeat > 0
}

// Fractal is multi-octave noise.
//
// Fields:
//   - Octaves     — number of layers; must be ≥ 1 for a defined result.
//   - Persistence — amplitude factor between consecutive layers, typically (0,1].
type Fractal struct {
	Octaves     int
	Persistence float64
}

// DefaultFractal returns Fractal{Octaves: 4, Persistence: 0.5}.
func DefaultFractal() Fractal {
	return Fractal{
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
	}
}

// At implements Source via GenerateFractal. It does not validate f; an
// invalid configuration yields NaN as GenerateFractal documents.
func (f Fractal) At(x, y, z float64) float64 {
	return GenerateFractal(x, y, z, f.Octaves, f.Persistence)
}

// Validate reports whether f produces defined values.
// Returns ErrOctaves or ErrPersistence wrapped with the offending value.
func (f Fractal) Validate() error {
	if f.Octaves < MinOctaves {
		return fmt.Errorf("%w, got %d", ErrOctaves, f.Octaves)
	}
	if math.IsNaN(f.Persistence) || math.IsInf(f.Persistence, 0) || f.Persistence <= 0 {
		return fmt.Errorf("%w, got %v", ErrPersistence, f.Persistence)
	}

	return nil
}

// Amplitude returns Σ persistence^i over the configured octaves, the
// denominator GenerateFractal normalises by.
func (f Fractal) Amplitude() float64 {
	var total float64
	amplitude := 1.0
	for i := 0; i < f.Octaves; i++ {
		total += amplitude
		amplitude *= f.Persistence
	}
	return total
}

// Compile-time checks.
var (
	_ Source = Base{}
	_ Source = Fractal{}
)
