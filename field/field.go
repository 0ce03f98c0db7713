// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/katalvlaran/perlin/perlin"
)

// Sample evaluates src at every grid point of opts. Sample (i,j) is
//
//	src.At(OffsetX + i·Scale, OffsetY + j·Scale, Z)
//
// Returns ErrNilSource, ErrDimensions or ErrScale (wrapped with the offending
// value) when opts cannot describe a grid.
//
// Complexity: O(W·H) evaluations, rows split across goroutines.
// Memory: O(W·H).
func Sample(src perlin.Source, opts Options) (*Field, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	f := &Field{
		Width:  opts.Width,
		Height: opts.Height,
		Values: make([]float64, opts.Width*opts.Height),
	}
	// each goroutine owns whole rows; no two write the same element
	parallel.For(opts.Height, func(j, _ int) {
		y := opts.OffsetY + float64(j)*opts.Scale
		row := f.Values[j*opts.Width : (j+1)*opts.Width]
		for i := range row {
			row[i] = src.At(opts.OffsetX+float64(i)*opts.Scale, y, opts.Z)
		}
	})

	return f, nil
}

// validate checks grid dimensions and scale.
func (o Options) validate() error {
	if o.Width < 1 || o.Height < 1 {
		return fmt.Errorf("%w, got %d×%d", ErrDimensions, o.Width, o.Height)
	}
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale <= 0 {
		return fmt.Errorf("%w, got %v", ErrScale, o.Scale)
	}

	return nil
}

// At returns the sample at column i, row j. It panics if (i,j) is outside the grid.
func (f *Field) At(i, j int) float64 {
	return f.Values[f.index(i, j)]
}

// InBounds reports whether (i,j) lies within the grid.
func (f *Field) InBounds(i, j int) bool {
	return i >= 0 && i < f.Width && j >= 0 && j < f.Height
}

// Coordinate converts a row-major index back to (i,j).
func (f *Field) Coordinate(idx int) (i, j int) {
	return idx % f.Width, idx / f.Width
}

// index maps (i,j) to j*Width + i.
func (f *Field) index(i, j int) int {
	return j*f.Width + i
}

// Threshold returns a Height×Width mask with 1 where the sample is ≥ level
// and 0 elsewhere; mask[j][i] corresponds to At(i,j).
// Complexity: O(W·H).
func (f *Field) Threshold(level float64) [][]int {
	mask := make([][]int, f.Height)
	for j := 0; j < f.Height; j++ {
		mask[j] = make([]int, f.Width)
		for i := 0; i < f.Width; i++ {
			if f.At(i, j) >= level {
				mask[j][i] = 1
			}
		}
	}
	return mask
}
