// Package buffer provides views over caller-owned memory: the 2-D Table and
// the IOBuffer with its Reader and Writer capability views.
//
// A Go slice already is a (pointer, length) view, so 1-D slices are plain
// []T. None of these types allocate or free the memory they describe.
package buffer

import (
	"errors"

	"github.com/gogpu/pixbase/geom"
)

// Common errors for table construction.
var (
	// ErrInvalidDimensions is returned when width, height or stride is negative.
	ErrInvalidDimensions = errors.New("buffer: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than width.
	ErrInvalidStride = errors.New("buffer: stride too small for width")

	// ErrDataTooSmall is returned when the backing slice cannot hold the table.
	ErrDataTooSmall = errors.New("buffer: data buffer too small")
)

// Table is a 2-D view of elements. The element at column x, row y is
// Data[y*Stride+x]; Stride >= Width allows row padding. The zero value is a
// valid, empty table.
type Table[T any] struct {
	Data   []T
	Width  int
	Height int
	Stride int
}

// NewTable returns a Table over data, checking that every row fits.
// The last row only needs Width elements, not Stride.
func NewTable[T any](data []T, width, height, stride int) (Table[T], error) {
	if width < 0 || height < 0 || stride < 0 {
		return Table[T]{}, ErrInvalidDimensions
	}
	if stride < width {
		return Table[T]{}, ErrInvalidStride
	}
	if need, ok := tableLen(width, height, stride); !ok || need > len(data) {
		return Table[T]{}, ErrDataTooSmall
	}
	return Table[T]{Data: data, Width: width, Height: height, Stride: stride}, nil
}

// tableLen returns (height-1)*stride + width, reporting false on overflow.
func tableLen(width, height, stride int) (int, bool) {
	if width == 0 || height == 0 {
		return 0, true
	}
	const maxInt = int(^uint(0) >> 1)
	if height-1 > 0 && stride > (maxInt-width)/(height-1) {
		return 0, false
	}
	return (height-1)*stride + width, true
}

// IsEmpty reports whether t has no elements.
func (t Table[T]) IsEmpty() bool {
	return t.Width <= 0 || t.Height <= 0
}

// IsValid reports whether every row of t lies within Data.
func (t Table[T]) IsValid() bool {
	if t.Width < 0 || t.Height < 0 || t.Stride < t.Width {
		return false
	}
	need, ok := tableLen(t.Width, t.Height, t.Stride)
	return ok && need <= len(t.Data)
}

// Row returns the Width elements of row y, or nil if y is out of bounds or
// the row does not fit in Data.
func (t Table[T]) Row(y int) []T {
	if y < 0 || y >= t.Height || t.Width <= 0 || t.Stride < t.Width {
		return nil
	}
	if t.Stride != 0 && y > len(t.Data)/t.Stride {
		return nil
	}
	start := y * t.Stride
	if t.Width > len(t.Data)-start {
		return nil
	}
	return t.Data[start : start+t.Width : start+t.Width]
}

// At returns a pointer to the element at (x, y), or nil if out of bounds.
func (t Table[T]) At(x, y int) *T {
	if x < 0 || x >= t.Width {
		return nil
	}
	row := t.Row(y)
	if row == nil {
		return nil
	}
	return &row[x]
}

// Sub returns the part of t inside r, in element units. The result shares
// Data with t and is clipped to t's bounds.
func (t Table[T]) Sub(r geom.RectIEU32) Table[T] {
	if !t.IsValid() {
		return Table[T]{}
	}
	r = r.Intersect(geom.MakeRectIEU32(0, 0, clampU32(t.Width), clampU32(t.Height)))
	if r.IsEmpty() {
		return Table[T]{}
	}
	start := int(r.MinInclY)*t.Stride + int(r.MinInclX)
	return Table[T]{
		Data:   t.Data[start:],
		Width:  int(r.Width()),
		Height: int(r.Height()),
		Stride: t.Stride,
	}
}

func clampU32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
