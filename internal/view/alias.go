package view

// MightAlias reports whether two views can address overlapping memory:
// true iff their half-open byte ranges intersect. The test is
// conservative (sound, not precise): it ignores strides, so interleaved
// views inside one address span report true even when they share no
// element, but true aliasing is never under-reported. Empty views never
// alias.
//
// Callers use this to prove view disjointness before reading or writing
// concurrently without synchronization, e.g. when partitioning an
// array's columns across worker threads.
func MightAlias[A, B Elem](a View[A], b View[B]) bool {
	return bytesOverlap(uintptr(a.base), a.ByteLen(), uintptr(b.base), b.ByteLen())
}

// Overlaps reports whether two untyped views can address overlapping
// memory, with the same conservative semantics as MightAlias.
func (rv RawView) Overlaps(other RawView) bool {
	return bytesOverlap(uintptr(rv.base), rv.ByteLen(), uintptr(other.base), other.ByteLen())
}

func bytesOverlap(aStart, aLen, bStart, bLen uintptr) bool {
	if aLen == 0 || bLen == 0 {
		return false
	}
	return aStart < bStart+bLen && bStart < aStart+aLen
}
