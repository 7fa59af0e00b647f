package geom

import "github.com/gogpu/pixbase/numeric"

// RectIIU32 is a rectangle on the integer grid containing all points (x, y)
// with MinInclX <= x <= MaxInclX and MinInclY <= y <= MaxInclY.
type RectIIU32 struct {
	MinInclX uint32
	MinInclY uint32
	MaxInclX uint32
	MaxInclY uint32
}

// IsEmpty reports whether either axis of r is empty.
func (r RectIIU32) IsEmpty() bool {
	return r.MinInclX > r.MaxInclX || r.MinInclY > r.MaxInclY
}

// Equals reports whether r and s are field-equal or both empty.
func (r RectIIU32) Equals(s RectIIU32) bool {
	return r == s || (r.IsEmpty() && s.IsEmpty())
}

// Contains reports whether the point (x, y) lies in r.
func (r RectIIU32) Contains(x, y uint32) bool {
	return r.MinInclX <= x && x <= r.MaxInclX && r.MinInclY <= y && y <= r.MaxInclY
}

// Intersect returns the largest rectangle contained in both r and s.
func (r RectIIU32) Intersect(s RectIIU32) RectIIU32 {
	return RectIIU32{
		MinInclX: max(r.MinInclX, s.MinInclX),
		MinInclY: max(r.MinInclY, s.MinInclY),
		MaxInclX: min(r.MaxInclX, s.MaxInclX),
		MaxInclY: min(r.MaxInclY, s.MaxInclY),
	}
}

// Union returns the smallest rectangle containing both r and s. If either is
// empty, the other is returned unchanged.
func (r RectIIU32) Union(s RectIIU32) RectIIU32 {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RectIIU32{
		MinInclX: min(r.MinInclX, s.MinInclX),
		MinInclY: min(r.MinInclY, s.MinInclY),
		MaxInclX: max(r.MaxInclX, s.MaxInclX),
		MaxInclY: max(r.MaxInclY, s.MaxInclY),
	}
}

// RangeX returns the horizontal extent of r.
func (r RectIIU32) RangeX() RangeIIU32 {
	return RangeIIU32{MinIncl: r.MinInclX, MaxIncl: r.MaxInclX}
}

// RangeY returns the vertical extent of r.
func (r RectIIU32) RangeY() RangeIIU32 {
	return RangeIIU32{MinIncl: r.MinInclY, MaxIncl: r.MaxInclY}
}

// RectIEU32 is a rectangle on the integer grid containing all points (x, y)
// with MinInclX <= x < MaxExclX and MinInclY <= y < MaxExclY. The zero value
// is empty.
type RectIEU32 struct {
	MinInclX uint32
	MinInclY uint32
	MaxExclX uint32
	MaxExclY uint32
}

// MakeRectIEU32 returns the rectangle with the given corners.
func MakeRectIEU32(minX, minY, maxX, maxY uint32) RectIEU32 {
	return RectIEU32{MinInclX: minX, MinInclY: minY, MaxExclX: maxX, MaxExclY: maxY}
}

// IsEmpty reports whether either axis of r is empty.
func (r RectIEU32) IsEmpty() bool {
	return r.MinInclX >= r.MaxExclX || r.MinInclY >= r.MaxExclY
}

// Equals reports whether r and s are field-equal or both empty.
func (r RectIEU32) Equals(s RectIEU32) bool {
	return r == s || (r.IsEmpty() && s.IsEmpty())
}

// Contains reports whether the point (x, y) lies in r.
func (r RectIEU32) Contains(x, y uint32) bool {
	return r.MinInclX <= x && x < r.MaxExclX && r.MinInclY <= y && y < r.MaxExclY
}

// Intersect returns the largest rectangle contained in both r and s.
func (r RectIEU32) Intersect(s RectIEU32) RectIEU32 {
	return RectIEU32{
		MinInclX: max(r.MinInclX, s.MinInclX),
		MinInclY: max(r.MinInclY, s.MinInclY),
		MaxExclX: min(r.MaxExclX, s.MaxExclX),
		MaxExclY: min(r.MaxExclY, s.MaxExclY),
	}
}

// Union returns the smallest rectangle containing both r and s. If either is
// empty, the other is returned unchanged.
func (r RectIEU32) Union(s RectIEU32) RectIEU32 {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RectIEU32{
		MinInclX: min(r.MinInclX, s.MinInclX),
		MinInclY: min(r.MinInclY, s.MinInclY),
		MaxExclX: max(r.MaxExclX, s.MaxExclX),
		MaxExclY: max(r.MaxExclY, s.MaxExclY),
	}
}

// Width returns the horizontal extent of r, or zero if that axis is empty.
func (r RectIEU32) Width() uint32 {
	return numeric.SatSubU32(r.MaxExclX, r.MinInclX)
}

// Height returns the vertical extent of r, or zero if that axis is empty.
func (r RectIEU32) Height() uint32 {
	return numeric.SatSubU32(r.MaxExclY, r.MinInclY)
}

// RangeX returns the horizontal extent of r.
func (r RectIEU32) RangeX() RangeIEU32 {
	return RangeIEU32{MinIncl: r.MinInclX, MaxExcl: r.MaxExclX}
}

// RangeY returns the vertical extent of r.
func (r RectIEU32) RangeY() RangeIEU32 {
	return RangeIEU32{MinIncl: r.MinInclY, MaxExcl: r.MaxExclY}
}
