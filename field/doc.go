// Package field samples a perlin.Source over a rectangular slice of 3-D space
// and offers a few read-only views of the result.
//
// ✨ Key features:
//   - Sample     — evaluate any Source on a Width×Height grid at height Z
//   - Stats      — min / max / mean / standard deviation of the samples
//   - Threshold  — binary land mask (1 where value ≥ level)
//   - Regions    — connected “islands” of cells ≥ level, 4- or 8-connected
//
// ⚙️ Usage:
//
//	opts := field.DefaultOptions()
//	opts.Width, opts.Height = 256, 256
//	f, err := field.Sample(perlin.DefaultFractal(), opts)
//	if err != nil {
//	  // ErrNilSource, ErrDimensions or ErrScale
//	}
//	st := f.Stats()
//	islands := f.Regions(0.55, field.Conn4)
//
// Rows are evaluated concurrently; the result is identical to a sequential
// loop because every Source in package perlin is pure.
//
// A Field is a plain value: nothing is cached or persisted between calls.
package field
