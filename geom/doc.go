// Package geom provides 1-D ranges and 2-D rectangles on the unsigned
// integer grid, used to describe sub-images and dirty regions.
//
// Ranges come in two flavors. The "ii" flavor is closed, [Min, Max], and can
// describe the whole universe of its width, which "ie" cannot since one past
// the maximum value overflows. The "ie" flavor is half-open, [Min, Max), and
// its length is always representable in the same width as its bounds, so
// only "ie" types have Length, Width and Height methods.
//
// A range is empty when Min > Max ("ii") or Min >= Max ("ie"). Empty values
// have many representations; Equals treats them all as equal. For "ie", the
// zero value is empty.
//
// The X and Y axes increase right and down.
package geom
