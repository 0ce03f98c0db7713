// Package perlin is the root of a small, deterministic 3-D Perlin noise
// toolkit for procedural content: terrain, textures and animation curves.
//
// 🚀 What's inside?
//
//	perlin/ — the noise engine: Generate, GenerateTiled, GenerateFractal and
//	          the Base / Fractal Source configurations
//	field/  — sample any Source over a 2-D grid, summarise it, threshold it
//	          and label connected regions
//
// ✨ Why this toolkit?
//
//   - Deterministic – one fixed permutation table, same input → same output
//   - Pure – no hidden state, safe from any number of goroutines
//   - Tileable – seamless repetition with a chosen period
//
// Quick example:
//
//	h := perlin.GenerateFractal(x*0.05, y*0.05, 0, 6, 0.5)
//
//	go get github.com/katalvlaran/perlin
package perlin
