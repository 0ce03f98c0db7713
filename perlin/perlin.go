// SPDX-License-Identifier: MIT

package perlin

import "math"

// Generate evaluates single-octave Perlin noise at (x,y,z) without tiling.
// The result lies approximately in [0,1]; integer lattice points return 0.5.
//
// Complexity: O(1).
func Generate(x, y, z float64) float64 {
	return GenerateTiled(x, y, z, 0)
}

// GenerateTiled evaluates single-octave Perlin noise that repeats every
// `repeat` units along each axis. A repeat of zero or less disables tiling,
// making the call identical to Generate.
//
// Algorithm:
//  1. If repeat > 0, wrap each coordinate with math.Mod (sign follows the dividend).
//  2. Split each coordinate into a truncated cell index (masked to 0..255)
//     and a fractional offset.
//  3. Fade the offsets into interpolation weights u, v, w.
//  4. Hash the 8 cube corners, turn each hash into a gradient·offset dot product.
//  5. Blend along x, then y, then z, and remap [-1,1] to [0,1].
//
// Complexity: O(1).
func GenerateTiled(x, y, z float64, repeat int) float64 {
	if repeat > 0 {
		r := float64(repeat)
		x = math.Mod(x, r)
		y = math.Mod(y, r)
		z = math.Mod(z, r)
	}

	// int() truncates toward zero; negative inputs keep that asymmetry.
	xt, yt, zt := int(x), int(y), int(z)
	xi, yi, zi := xt&cellMask, yt&cellMask, zt&cellMask
	xf, yf, zf := x-float64(xt), y-float64(yt), z-float64(zt)

	u, v, w := fade(xf), fade(yf), fade(zf)

	xn, yn, zn := inc(xi, repeat), inc(yi, repeat), inc(zi, repeat)

	aaa := hash(xi, yi, zi)
	aba := hash(xi, yn, zi)
	aab := hash(xi, yi, zn)
	abb := hash(xi, yn, zn)
	baa := hash(xn, yi, zi)
	bba := hash(xn, yn, zi)
	bab := hash(xn, yi, zn)
	bbb := hash(xn, yn, zn)

	x1 := lerp(grad(aaa, xf, yf, zf), grad(baa, xf-1, yf, zf), u)
	x2 := lerp(grad(aba, xf, yf-1, zf), grad(bba, xf-1, yf-1, zf), u)
	y1 := lerp(x1, x2, v)

	x1 = lerp(grad(aab, xf, yf, zf-1), grad(bab, xf-1, yf, zf-1), u)
	x2 = lerp(grad(abb, xf, yf-1, zf-1), grad(bbb, xf-1, yf-1, zf-1), u)
	y2 := lerp(x1, x2, v)

	return (lerp(y1, y2, w) + 1) / 2
}

// fade is the quintic easing 6t⁵ − 15t⁴ + 10t³; first and second derivatives
// vanish at t=0 and t=1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// inc returns the next lattice index along an axis, wrapping at repeat when
// tiling is enabled.
func inc(i, repeat int) int {
	i++
	if repeat > 0 {
		i %= repeat
	}
	return i
}

// grad picks one of 16 gradient directions from the low nibble of h and
// returns its dot product with (x,y,z).
//
// The 12 cube-edge directions are padded to 16 by repeating four of them:
// 0xC and 0xE are (1,1,0) and (-1,1,0) again, while 0xD and 0xF repeat the
// 0x9 and 0xB directions. The cases are spelled out rather than derived from
// bits so the field's exact output is pinned.
func grad(h int, x, y, z float64) float64 {
	switch h & 0xF {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xA:
		return y - z
	case 0xB:
		return -y - z
	case 0xC:
		return y + x
	case 0xD:
		return -y + z
	case 0xE:
		return y - x
	case 0xF:
		return -y - z
	default:
		return 0 // unreachable
	}
}

// lerp blends a toward b by t.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
