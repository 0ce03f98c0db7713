// SPDX-License-Identifier: MIT

package field

import "errors"

// Sentinel errors for field sampling.
var (
	// ErrNilSource indicates Sample was called without a Source.
	ErrNilSource = errors.New("field: source must not be nil")
	// ErrDimensions indicates a non-positive Width or Height.
	ErrDimensions = errors.New("field: width and height must be ≥ 1")
	// ErrScale indicates a Scale that is not a finite number > 0.
	ErrScale = errors.New("field: scale must be finite and > 0")
)

const (
	// DefaultSize is the width and height used by DefaultOptions.
	DefaultSize = 64
	// DefaultScale maps one grid step to 1/16 of a lattice cell.
	DefaultScale = 1.0 / 16
)

// Options describes which slice of noise space Sample evaluates.
//
// Fields:
//   - Width, Height — grid dimensions in samples (≥ 1).
//   - Scale         — distance in noise space between neighbouring samples.
//   - OffsetX/Y     — noise-space coordinate of sample (0,0).
//   - Z             — fixed third coordinate of the slice; animate it for
//     time-varying fields.
type Options struct {
	Width, Height    int
	Scale            float64
	OffsetX, OffsetY float64
	Z                float64
}

// DefaultOptions returns a 64×64 grid with Scale 1/16 at the origin.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultSize,
		Height: DefaultSize,
		Scale:  DefaultScale,
	}
}

// Connectivity selects neighbour connectivity for Regions.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Field holds Width×Height samples in row-major order: Values[j*Width+i]
// is the sample at column i, row j.
type Field struct {
	Width, Height int
	Values        []float64
}

// Stats summarises the samples of a Field.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
}
