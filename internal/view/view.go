package view

import (
	"fmt"
	"unsafe"
)

// View is a non-owning window over dense column-major memory holding
// elements of fixed-layout type T. It carries only a base address and
// extents: no bounds metadata beyond the extents, no reference count,
// and no cleanup on discard. Element k (one-based) lives at
// base + (k-1)*sizeof(T).
//
// A View is a plain value: copying it copies the address and extents,
// never the elements. Its validity depends entirely on an external
// guarantee, normally a protection scope, that the backing memory stays
// live and unmoved for the view's whole usage window.
type View[T Elem] struct {
	base    unsafe.Pointer
	extents Shape
}

// Make wraps an explicit base address and extents in a View.
// The address must point at element 1 of a dense column-major region
// with at least extents.NumElements() elements of T behind it; the view
// performs no liveness or length verification beyond extent validation.
func Make[T Elem](base unsafe.Pointer, extents Shape) (View[T], error) {
	if dataTypeOf[T]() == Invalid {
		return View[T]{}, fmt.Errorf("%w: %T", ErrNotFixedLayout, *new(T))
	}
	if err := extents.Validate(); err != nil {
		return View[T]{}, err
	}
	return View[T]{base: base, extents: extents}, nil
}

// Base returns the address of element 1.
func (v View[T]) Base() unsafe.Pointer {
	return v.base
}

// Extents returns the view's extents tuple.
func (v View[T]) Extents() Shape {
	return v.extents
}

// Rank returns the number of dimensions. Rank 0 is a scalar view.
func (v View[T]) Rank() int {
	return len(v.extents)
}

// NumElements returns the total number of addressable elements.
func (v View[T]) NumElements() int {
	return v.extents.NumElements()
}

// ByteLen returns the addressed range's length in bytes.
func (v View[T]) ByteLen() uintptr {
	var zero T
	return uintptr(v.NumElements()) * unsafe.Sizeof(zero)
}

// addr computes the element address for a one-based linear index.
// Callers must have bounds-checked k already.
func (v View[T]) addr(k int) *T {
	var zero T
	return (*T)(unsafe.Add(v.base, uintptr(k-1)*unsafe.Sizeof(zero)))
}

// At returns the element at one-based linear index k.
// Fails with ErrOutOfBounds outside [1, NumElements()]; a view with any
// zero extent has no valid index.
func (v View[T]) At(k int) (T, error) {
	if k < 1 || k > v.NumElements() {
		var zero T
		return zero, fmt.Errorf("%w: linear index %d outside [1, %d]", ErrOutOfBounds, k, v.NumElements())
	}
	return *v.addr(k), nil
}

// Set stores value at one-based linear index k.
// Fails with ErrOutOfBounds outside [1, NumElements()].
func (v View[T]) Set(k int, value T) error {
	if k < 1 || k > v.NumElements() {
		return fmt.Errorf("%w: linear index %d outside [1, %d]", ErrOutOfBounds, k, v.NumElements())
	}
	*v.addr(k) = value
	return nil
}

// Data returns the view's elements as a typed slice sharing the same
// memory (zero-copy). Modifications through the slice modify the
// backing storage.
func (v View[T]) Data() []T {
	n := v.NumElements()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.base), n)
}

// SubView derives a narrower view selected by spec.
//
// When the selection is Dense the returned view shares this view's
// memory at an adjusted base, with the sub-extents, allocating nothing
// beyond the extents tuple. Selecting every dimension with a full span
// returns the receiver unchanged. Pinning every dimension to a single
// index yields a rank-0 scalar view.
//
// When the selection is strided, SubView returns a zero view and the
// NeedsCopy classification: a pointer+shape pair cannot represent the
// selection, and the caller must dispatch to an owning sub-array
// representation instead.
func (v View[T]) SubView(spec SliceSpec) (View[T], Contiguity, error) {
	if err := checkSpec(v.extents, spec); err != nil {
		return View[T]{}, Dense, err
	}
	if spec.allSpanned() {
		return v, Dense, nil
	}
	if c := Classify(v.extents, spec); c == NeedsCopy {
		return View[T]{}, NeedsCopy, nil
	}

	sub, err := SubExtents(v.extents, spec)
	if err != nil {
		return View[T]{}, Dense, err
	}
	offset, err := StartOffset(v.extents, spec)
	if err != nil {
		return View[T]{}, Dense, err
	}

	var zero T
	return View[T]{
		base:    unsafe.Add(v.base, uintptr(offset)*unsafe.Sizeof(zero)),
		extents: sub,
	}, Dense, nil
}

// Reshape returns a view of the same memory with new extents.
// The element count must be preserved; fails with ErrDimensionMismatch
// otherwise. The base address is reused unchanged.
func (v View[T]) Reshape(extents Shape) (View[T], error) {
	if err := extents.Validate(); err != nil {
		return View[T]{}, err
	}
	if extents.NumElements() != v.NumElements() {
		return View[T]{}, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrDimensionMismatch, v.extents, v.NumElements(), extents, extents.NumElements())
	}
	return View[T]{base: v.base, extents: extents}, nil
}

// String returns a human-readable description of the view.
func (v View[T]) String() string {
	return fmt.Sprintf("View[%s]%v @ %p", dataTypeOf[T](), v.extents, v.base)
}
