package perlin

// Test bridge: white-box access to the unexported kernels for perlin_test.
// Compiled only with the test binary.
// This file only exposes existing functions; it adds no behaviour.

var (
	// ExportedFade exposes fade.
	ExportedFade = fade
	// ExportedGrad exposes grad.
	ExportedGrad = grad
	// ExportedLerp exposes lerp.
	ExportedLerp = lerp
	// ExportedInc exposes inc.
	ExportedInc = inc
	// ExportedHash exposes hash.
	ExportedHash = hash
)

// ExportedTable returns a copy of the 512-entry permutation table.
func ExportedTable() [2 * tableSize]int {
	return table
}

// ExportedBasePermutation returns a copy of the 256-entry base permutation.
func ExportedBasePermutation() [tableSize]int {
	return basePermutation
}
