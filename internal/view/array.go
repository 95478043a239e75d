package view

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Array is a minimal owning dense array: contiguous column-major
// storage plus extents. It is the reference owner implementation for
// view derivation and scoped protection; element storage policy beyond
// "one dense allocation" (growth strategies, pooling) stays with the
// host framework.
//
// The pin counter records how many protection scopes currently require
// the storage to stay live and unmoved. While pinned, Resize and Free
// panic: relocating protected storage would invalidate every derived
// view, and that misuse is not recoverable.
type Array[T Elem] struct {
	data    []T
	extents Shape
	pins    atomic.Int32
}

// NewArray creates a zero-initialized array with the given extents.
func NewArray[T Elem](extents Shape) (*Array[T], error) {
	if err := extents.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extents: %w", err)
	}
	return &Array[T]{
		data:    make([]T, extents.NumElements()),
		extents: extents.Clone(),
	}, nil
}

// FromSlice creates an array by copying data into fresh storage.
// The slice length must match the extents' element count.
func FromSlice[T Elem](data []T, extents Shape) (*Array[T], error) {
	a, err := NewArray[T](extents)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%w: extents %v require %d elements, got %d",
			ErrDimensionMismatch, extents, extents.NumElements(), len(data))
	}
	copy(a.data, data)
	return a, nil
}

// Full creates an array with every element set to value.
func Full[T Elem](extents Shape, value T) (*Array[T], error) {
	a, err := NewArray[T](extents)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Like creates a zero-initialized array with the same extents as a.
func Like[T Elem](a *Array[T]) *Array[T] {
	out, _ := NewArray[T](a.extents)
	return out
}

// Extents returns the array's extents tuple.
func (a *Array[T]) Extents() Shape {
	return a.extents
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.extents.NumElements()
}

// Data returns the backing slice in column-major element order.
func (a *Array[T]) Data() []T {
	return a.data
}

// View derives a view of the whole array. The view borrows the array's
// storage; the caller must keep the array protected for as long as the
// view is used.
func (a *Array[T]) View() View[T] {
	return View[T]{
		base:    unsafe.Pointer(unsafe.SliceData(a.data)),
		extents: a.extents,
	}
}

// SubView derives a view of the selection, with the same contiguity
// dispatch as View.SubView.
func (a *Array[T]) SubView(spec SliceSpec) (View[T], Contiguity, error) {
	return a.View().SubView(spec)
}

// Raw derives an untyped view of the whole array.
func (a *Array[T]) Raw() RawView {
	return a.View().Raw()
}

// At returns the element at one-based linear index k.
func (a *Array[T]) At(k int) (T, error) {
	if k < 1 || k > len(a.data) {
		var zero T
		return zero, fmt.Errorf("%w: linear index %d outside [1, %d]", ErrOutOfBounds, k, len(a.data))
	}
	return a.data[k-1], nil
}

// Set stores value at one-based linear index k.
func (a *Array[T]) Set(k int, value T) error {
	if k < 1 || k > len(a.data) {
		return fmt.Errorf("%w: linear index %d outside [1, %d]", ErrOutOfBounds, k, len(a.data))
	}
	a.data[k-1] = value
	return nil
}

// Pin marks the array's storage as required live and unmoved.
// Pins nest; each Pin must be balanced by one Unpin.
func (a *Array[T]) Pin() {
	a.pins.Add(1)
}

// Unpin releases one pin. Panics on unbalanced release.
func (a *Array[T]) Unpin() {
	if a.pins.Add(-1) < 0 {
		panic("view: unbalanced Unpin")
	}
}

// Pins returns the current protection count.
func (a *Array[T]) Pins() int {
	return int(a.pins.Load())
}

// Resize replaces the array's storage with a fresh allocation of the
// given extents, copying the shared prefix of elements in linear order.
// Panics if the array is pinned: derived views would dangle.
func (a *Array[T]) Resize(extents Shape) error {
	if err := extents.Validate(); err != nil {
		return fmt.Errorf("invalid extents: %w", err)
	}
	if a.Pins() > 0 {
		panic("view: Resize on a protected array")
	}
	data := make([]T, extents.NumElements())
	copy(data, a.data)
	a.data = data
	a.extents = extents.Clone()
	return nil
}

// Free releases the array's storage. Panics if the array is pinned.
func (a *Array[T]) Free() {
	if a.Pins() > 0 {
		panic("view: Free on a protected array")
	}
	a.data = nil
	a.extents = nil
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", dataTypeOf[T](), a.extents)
}
