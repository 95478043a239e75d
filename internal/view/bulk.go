package view

import (
	"fmt"
	"unsafe"
)

// CopyInto bulk-copies every element of v into dst, starting at dst's
// first element, and returns dst. Since both sides hold the same
// fixed-layout element type the transfer is one flat memory copy.
// Fails with ErrOutOfBounds if dst is shorter than v.
func CopyInto[T Elem](dst *Array[T], v View[T]) (*Array[T], error) {
	n := v.NumElements()
	if n > dst.NumElements() {
		return nil, fmt.Errorf("%w: copying %d elements into array of %d", ErrOutOfBounds, n, dst.NumElements())
	}
	copy(dst.data[:n], v.Data())
	return dst, nil
}

// CopyFromSlice bulk-copies data into v's memory starting at v's
// first element. Fails with ErrOutOfBounds if data is longer than v.
func CopyFromSlice[T Elem](v View[T], data []T) error {
	if len(data) > v.NumElements() {
		return fmt.Errorf("%w: copying %d elements into view of %d", ErrOutOfBounds, len(data), v.NumElements())
	}
	copy(v.Data(), data)
	return nil
}

// CopyRangeInto copies count elements of v starting at one-based
// srcStart into dst starting at one-based dstStart, and returns dst.
// Fails with ErrBadArgument for a negative count and ErrOutOfBounds
// when either side's addressed range exceeds its length.
func CopyRangeInto[T Elem](dst *Array[T], dstStart int, v View[T], srcStart, count int) (*Array[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative copy count %d", ErrBadArgument, count)
	}
	if srcStart < 1 || srcStart-1+count > v.NumElements() {
		return nil, fmt.Errorf("%w: source range [%d, %d) outside [1, %d]",
			ErrOutOfBounds, srcStart, srcStart+count, v.NumElements())
	}
	if dstStart < 1 || dstStart-1+count > dst.NumElements() {
		return nil, fmt.Errorf("%w: destination range [%d, %d) outside [1, %d]",
			ErrOutOfBounds, dstStart, dstStart+count, dst.NumElements())
	}
	if count == 0 {
		return dst, nil
	}
	copy(dst.data[dstStart-1:dstStart-1+count], v.Data()[srcStart-1:srcStart-1+count])
	return dst, nil
}

// ConvertInto copies every element of v into dst with an element-wise
// numeric conversion, for source and destination types that differ in
// width or representation. Fails with ErrOutOfBounds if dst is shorter
// than v.
func ConvertInto[D, S Numeric](dst *Array[D], v View[S]) (*Array[D], error) {
	n := v.NumElements()
	if n > dst.NumElements() {
		return nil, fmt.Errorf("%w: converting %d elements into array of %d", ErrOutOfBounds, n, dst.NumElements())
	}
	src := v.Data()
	for i := 0; i < n; i++ {
		dst.data[i] = D(src[i])
	}
	return dst, nil
}

// Reinterpret reuses v's memory as elements of type To.
//
// When the element sizes match, the extents carry over unchanged. When
// they differ, the first dimension's extent is rescaled by the size
// ratio and the rescale must divide evenly; an uneven remainder would
// address partial elements and fails with ErrBadArgument, as does
// reinterpreting a rank-0 view across differing sizes.
func Reinterpret[To, From Elem](v View[From]) (View[To], error) {
	if dataTypeOf[To]() == Invalid {
		return View[To]{}, fmt.Errorf("%w: %T", ErrNotFixedLayout, *new(To))
	}

	var zf From
	var zt To
	sizeFrom := unsafe.Sizeof(zf)
	sizeTo := unsafe.Sizeof(zt)

	if sizeFrom == sizeTo {
		return View[To]{base: v.base, extents: v.extents}, nil
	}
	if v.Rank() == 0 {
		return View[To]{}, fmt.Errorf("%w: cannot rescale a rank-0 view from %d-byte to %d-byte elements",
			ErrBadArgument, sizeFrom, sizeTo)
	}

	firstBytes := uintptr(v.extents[0]) * sizeFrom
	if firstBytes%sizeTo != 0 {
		return View[To]{}, fmt.Errorf("%w: first extent %d of %d-byte elements does not divide into %d-byte elements",
			ErrBadArgument, v.extents[0], sizeFrom, sizeTo)
	}

	extents := v.extents.Clone()
	extents[0] = int(firstBytes / sizeTo)
	return View[To]{base: v.base, extents: extents}, nil
}
