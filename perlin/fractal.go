// SPDX-License-Identifier: MIT

package perlin

// GenerateFractal sums `octaves` layers of Generate, doubling the frequency
// and scaling the amplitude by persistence on every layer, and divides by the
// total amplitude so the result stays in the single-octave band:
//
//	Σ Generate(x·2^i, y·2^i, z·2^i)·persistence^i / Σ persistence^i,  i ∈ [0,octaves)
//
// octaves <= 0 leaves both sums at zero and returns NaN (0/0).
//
// Complexity: O(octaves).
func GenerateFractal(x, y, z float64, octaves int, persistence float64) float64 {
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += Generate(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxValue
}
