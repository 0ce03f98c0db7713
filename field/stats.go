// SPDX-License-Identifier: MIT

package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats returns the minimum, maximum, mean and sample standard deviation of
// the field's values. A single-sample field reports StdDev as NaN; an empty
// field reports NaN for every statistic.
// Complexity: O(W·H).
func (f *Field) Stats() Stats {
	if len(f.Values) == 0 {
		nan := math.NaN()
		return Stats{Min: nan, Max: nan, Mean: nan, StdDev: nan}
	}
	mean, std := stat.MeanStdDev(f.Values, nil)
	return Stats{
		Min:    floats.Min(f.Values),
		Max:    floats.Max(f.Values),
		Mean:   mean,
		StdDev: std,
	}
}
