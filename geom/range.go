package geom

import "github.com/gogpu/pixbase/numeric"

// RangeIIU32 is the closed interval [MinIncl, MaxIncl] of uint32 values.
type RangeIIU32 struct {
	MinIncl uint32
	MaxIncl uint32
}

// IsEmpty reports whether r contains no values.
func (r RangeIIU32) IsEmpty() bool {
	return r.MinIncl > r.MaxIncl
}

// Equals reports whether r and s are field-equal or both empty.
func (r RangeIIU32) Equals(s RangeIIU32) bool {
	return (r.MinIncl == s.MinIncl && r.MaxIncl == s.MaxIncl) || (r.IsEmpty() && s.IsEmpty())
}

// Contains reports whether x lies in r.
func (r RangeIIU32) Contains(x uint32) bool {
	return r.MinIncl <= x && x <= r.MaxIncl
}

// Intersect returns the largest range contained in both r and s. The result
// may be empty.
func (r RangeIIU32) Intersect(s RangeIIU32) RangeIIU32 {
	return RangeIIU32{
		MinIncl: max(r.MinIncl, s.MinIncl),
		MaxIncl: min(r.MaxIncl, s.MaxIncl),
	}
}

// Union returns the smallest range containing both r and s. If either is
// empty, the other is returned unchanged.
func (r RangeIIU32) Union(s RangeIIU32) RangeIIU32 {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RangeIIU32{
		MinIncl: min(r.MinIncl, s.MinIncl),
		MaxIncl: max(r.MaxIncl, s.MaxIncl),
	}
}

// RangeIEU32 is the half-open interval [MinIncl, MaxExcl) of uint32 values.
type RangeIEU32 struct {
	MinIncl uint32
	MaxExcl uint32
}

// IsEmpty reports whether r contains no values.
func (r RangeIEU32) IsEmpty() bool {
	return r.MinIncl >= r.MaxExcl
}

// Equals reports whether r and s are field-equal or both empty.
func (r RangeIEU32) Equals(s RangeIEU32) bool {
	return (r.MinIncl == s.MinIncl && r.MaxExcl == s.MaxExcl) || (r.IsEmpty() && s.IsEmpty())
}

// Contains reports whether x lies in r.
func (r RangeIEU32) Contains(x uint32) bool {
	return r.MinIncl <= x && x < r.MaxExcl
}

// Intersect returns the largest range contained in both r and s. The result
// may be empty.
func (r RangeIEU32) Intersect(s RangeIEU32) RangeIEU32 {
	return RangeIEU32{
		MinIncl: max(r.MinIncl, s.MinIncl),
		MaxExcl: min(r.MaxExcl, s.MaxExcl),
	}
}

// Union returns the smallest range containing both r and s. If either is
// empty, the other is returned unchanged.
func (r RangeIEU32) Union(s RangeIEU32) RangeIEU32 {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RangeIEU32{
		MinIncl: min(r.MinIncl, s.MinIncl),
		MaxExcl: max(r.MaxExcl, s.MaxExcl),
	}
}

// Length returns the number of values in r, or zero if r is empty.
func (r RangeIEU32) Length() uint32 {
	return numeric.SatSubU32(r.MaxExcl, r.MinIncl)
}

// RangeIIU64 is the closed interval [MinIncl, MaxIncl] of uint64 values.
type RangeIIU64 struct {
	MinIncl uint64
	MaxIncl uint64
}

// IsEmpty reports whether r contains no values.
func (r RangeIIU64) IsEmpty() bool {
	return r.MinIncl > r.MaxIncl
}

// Equals reports whether r and s are field-equal or both empty.
func (r RangeIIU64) Equals(s RangeIIU64) bool {
	return (r.MinIncl == s.MinIncl && r.MaxIncl == s.MaxIncl) || (r.IsEmpty() && s.IsEmpty())
}

// Contains reports whether x lies in r.
func (r RangeIIU64) Contains(x uint64) bool {
	return r.MinIncl <= x && x <= r.MaxIncl
}

// Intersect returns the largest range contained in both r and s. The result
// may be empty.
func (r RangeIIU64) Intersect(s RangeIIU64) RangeIIU64 {
	return RangeIIU64{
		MinIncl: max(r.MinIncl, s.MinIncl),
		MaxIncl: min(r.MaxIncl, s.MaxIncl),
	}
}

// Union returns the smallest range containing both r and s. If either is
// empty, the other is returned unchanged.
func (r RangeIIU64) Union(s RangeIIU64) RangeIIU64 {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RangeIIU64{
		MinIncl: min(r.MinIncl, s.MinIncl),
		MaxIncl: max(r.MaxIncl, s.MaxIncl),
	}
}

// RangeIEU64 is the half-open interval [MinIncl, MaxExcl) of uint64 values.
type RangeIEU64 struct {
	MinIncl uint64
	MaxExcl uint64
}

// IsEmpty reports whether r contains no values.
func (r RangeIEU64) IsEmpty() bool {
	return r.MinIncl >= r.MaxExcl
}

// Equals reports whether r and s are field-equal or both empty.
func (r RangeIEU64) Equals(s RangeIEU64) bool {
	return (r.MinIncl == s.MinIncl && r.MaxExcl == s.MaxExcl) || (r.IsEmpty() && s.IsEmpty())
}

// Contains reports whether x lies in r.
func (r RangeIEU64) Contains(x uint64) bool {
	return r.MinIncl <= x && x < r.MaxExcl
}

// Intersect returns the largest range contained in both r and s. The result
// may be empty.
func (r RangeIEU64) Intersect(s RangeIEU64) RangeIEU64 {
	return RangeIEU64{
		MinIncl: max(r.MinIncl, s.MinIncl),
		MaxExcl: min(r.MaxExcl, s.MaxExcl),
	}
}

// Union returns the smallest range containing both r and s. If either is
// empty, the other is returned unchanged.
func (r RangeIEU64) Union(s RangeIEU64) RangeIEU64 {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RangeIEU64{
		MinIncl: min(r.MinIncl, s.MinIncl),
		MaxExcl: max(r.MaxExcl, s.MaxExcl),
	}
}

// Length returns the number of values in r, or zero if r is empty.
func (r RangeIEU64) Length() uint64 {
	return numeric.SatSubU64(r.MaxExcl, r.MinIncl)
}
