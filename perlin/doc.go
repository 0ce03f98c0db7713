// Package perlin generates deterministic 3-D gradient noise (Ken Perlin's
// "improved noise") for procedural content: terrain heights, textures and
// animation curves.
//
// 🚀 What is Perlin noise?
//
//	A continuous pseudo-random scalar field. Every integer lattice corner gets
//	one of 16 gradient directions picked by hashing the corner through a fixed
//	permutation table; a sample point blends the 8 surrounding corner
//	contributions with a fade curve so the field has no visible grid seams.
//
// ✨ Key features:
//   - Generate        — single-octave noise remapped to roughly [0,1]
//   - GenerateTiled   — the same field repeating every `repeat` units per axis
//   - GenerateFractal — octave sum (fBm) normalised by the total amplitude
//   - Base / Fractal  — explicit configurations implementing Source
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/perlin/perlin"
//
//	h := perlin.Generate(0.5, 0.5, 0.5)                // ≈ 0.5 ± noise
//	t := perlin.GenerateTiled(x, y, 0, 16)             // period 16 on every axis
//	f := perlin.GenerateFractal(x, y, 0, 4, 0.5)       // 4 octaves, half amplitude each
//
//	var src perlin.Source = perlin.Fractal{Octaves: 6, Persistence: 0.45}
//	v := src.At(x, y, z)
//
// Determinism & concurrency:
//
//	The permutation table is built once at package initialisation and never
//	written again, so every function is pure and safe to call from any number
//	of goroutines without locking.
//
// Boundaries:
//   - Integer cells are taken by truncation toward zero (int(x)) and masked to
//     the low 8 bits. Negative coordinates are therefore not mirrored around
//     zero the way floor-based variants are: the fractional offset becomes
//     negative, the fade weights leave [0,1] and samples can fall far outside
//     [0,1]. This is part of the field's signature and is kept; shift inputs
//     into the positive octant when a bounded value is required.
//   - GenerateFractal with octaves <= 0 divides 0 by 0 and returns NaN.
//     Use Fractal.Validate to reject such configurations up front.
//   - Very large coordinates or repeat periods silently lose fractional
//     precision.
//
// Performance:
//
//   - Generate: O(1), no allocations.
//   - GenerateFractal: O(octaves), no allocations.
package perlin
