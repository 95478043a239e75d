// Copyright 2026 The denseview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package denseview

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/denseview/denseview/internal/view"
)

// Type aliases for public API

// Elem is a constraint for supported view element types.
// Every member is fixed-layout: copying its bytes copies its value.
type Elem = view.Elem

// Numeric is the subset of Elem with a defined numeric conversion.
type Numeric = view.Numeric

// DataType represents runtime type information for untyped views.
type DataType = view.DataType

// Data type constants. Invalid tags element types that are not
// fixed-layout and can never back a raw view.
const (
	Invalid DataType = view.Invalid
	Float32 DataType = view.Float32
	Float64 DataType = view.Float64
	Int32   DataType = view.Int32
	Int64   DataType = view.Int64
	Uint8   DataType = view.Uint8
	Bool    DataType = view.Bool
)

// Shape holds the extents of a view, one entry per dimension.
// Layout is column-major and indexing is one-based.
type Shape = view.Shape

// SliceSpec is an ordered list of per-dimension selectors; trailing
// unselected dimensions are treated as fully spanned.
type SliceSpec = view.SliceSpec

// Selector narrows one dimension of a slice spec.
type Selector = view.Selector

// Contiguity classifies a sub-selection as Dense (one unbroken run,
// zero-copy view) or NeedsCopy (strided, owning fallback required).
type Contiguity = view.Contiguity

// Contiguity constants.
const (
	Dense     Contiguity = view.Dense
	NeedsCopy Contiguity = view.NeedsCopy
)

// View is a non-owning window over dense column-major memory.
//
// A View carries only a base address and extents. It never allocates
// or frees the memory it addresses; its validity depends on a
// protection scope keeping the owner alive for the view's usage window.
//
// Example:
//
//	a, _ := denseview.FromSlice([]float64{1, 2, 3, 4, 5, 6}, denseview.Shape{2, 3})
//	v := a.View()
//	x, _ := v.At(5) // element 5 in column-major order
type View[T Elem] = view.View[T]

// RawView is the untyped counterpart of View, tagged with a runtime
// DataType resolved once at construction.
type RawView = view.RawView

// Array is a minimal owning dense array, the reference owner for view
// derivation and scoped protection.
type Array[T Elem] = view.Array[T]

// Scope is a stack-discipline record of owners currently guaranteed
// live.
type Scope = view.Scope

// Pinnable is the owner contract required by protection scopes.
type Pinnable = view.Pinnable

// Sentinel errors.
var (
	ErrNotFixedLayout    = view.ErrNotFixedLayout
	ErrOutOfBounds       = view.ErrOutOfBounds
	ErrDimensionMismatch = view.ErrDimensionMismatch
	ErrRankMismatch      = view.ErrRankMismatch
	ErrBadArgument       = view.ErrBadArgument
)

// Selector constructors

// Index selects a single one-based position, dropping the dimension.
func Index(i int) Selector { return view.Index(i) }

// Span selects the inclusive one-based range [lo, hi], keeping the
// dimension with extent hi-lo+1.
func Span(lo, hi int) Selector { return view.Span(lo, hi) }

// All selects the full extent of a dimension, keeping it unchanged.
func All() Selector { return view.All() }

// Construction

// Make wraps an explicit base address and extents in a View.
//
// The address must point at element 1 of a dense column-major region
// holding at least the extents' element count. The caller is
// responsible for the memory's liveness; passing a dangling address is
// undefined behavior the engine cannot detect.
func Make[T Elem](base unsafe.Pointer, extents Shape) (View[T], error) {
	return view.Make[T](base, extents)
}

// MakeRaw wraps a base address, extents and runtime type tag.
// Fails with ErrNotFixedLayout for an unknown tag.
func MakeRaw(base unsafe.Pointer, extents Shape, dtype DataType) (RawView, error) {
	return view.MakeRaw(base, extents, dtype)
}

// Typed recovers a typed view from a raw one.
func Typed[T Elem](rv RawView) (View[T], error) {
	return view.Typed[T](rv)
}

// Owning array creation

// NewArray creates a zero-initialized array with the given extents.
//
// Example:
//
//	a, err := denseview.NewArray[float32](denseview.Shape{8, 7})
func NewArray[T Elem](extents Shape) (*Array[T], error) {
	return view.NewArray[T](extents)
}

// FromSlice creates an array by copying data into fresh storage.
//
// Example:
//
//	a, err := denseview.FromSlice([]float32{1, 2, 3, 4}, denseview.Shape{2, 2})
func FromSlice[T Elem](data []T, extents Shape) (*Array[T], error) {
	return view.FromSlice(data, extents)
}

// Full creates an array with every element set to value.
func Full[T Elem](extents Shape, value T) (*Array[T], error) {
	return view.Full(extents, value)
}

// Like creates a zero-initialized array with the same extents as a.
func Like[T Elem](a *Array[T]) *Array[T] {
	return view.Like(a)
}

// ShapeMath

// SubExtents computes the extents of the sub-view selected by spec.
func SubExtents(src Shape, spec SliceSpec) (Shape, error) {
	return view.SubExtents(src, spec)
}

// StartOffset computes the zero-based linear offset of the first
// selected element under column-major layout.
func StartOffset(src Shape, spec SliceSpec) (int, error) {
	return view.StartOffset(src, spec)
}

// Classify reports whether a selection is Dense or NeedsCopy.
func Classify(src Shape, spec SliceSpec) Contiguity {
	return view.Classify(src, spec)
}

// Bulk operations

// CopyInto bulk-copies every element of v into dst and returns dst.
//
// Example:
//
//	clone, err := denseview.CopyInto(denseview.Like(a), a.View())
func CopyInto[T Elem](dst *Array[T], v View[T]) (*Array[T], error) {
	return view.CopyInto(dst, v)
}

// CopyFromSlice bulk-copies data into v's memory starting at v's
// first element.
func CopyFromSlice[T Elem](v View[T], data []T) error {
	return view.CopyFromSlice(v, data)
}

// CopyRangeInto copies count elements of v starting at srcStart into
// dst starting at dstStart (both one-based), and returns dst.
func CopyRangeInto[T Elem](dst *Array[T], dstStart int, v View[T], srcStart, count int) (*Array[T], error) {
	return view.CopyRangeInto(dst, dstStart, v, srcStart, count)
}

// ConvertInto copies v into dst with element-wise numeric conversion.
func ConvertInto[D, S Numeric](dst *Array[D], v View[S]) (*Array[D], error) {
	return view.ConvertInto(dst, v)
}

// Reinterpret reuses v's memory as elements of type To, rescaling the
// first extent when the element sizes differ.
//
// Example:
//
//	bytes, err := denseview.Reinterpret[uint8](v) // View[float32] -> View[uint8]
func Reinterpret[To, From Elem](v View[From]) (View[To], error) {
	return view.Reinterpret[To](v)
}

// Scoped protection

// Enter opens a scope protecting the given owners. Pair with a
// deferred Exit.
func Enter(owners ...Pinnable) *Scope {
	return view.Enter(owners...)
}

// WithProtection pins every owner for the dynamic duration of work and
// releases the pins on every exit path, panics included.
//
// Example:
//
//	err := denseview.WithProtection(func() error {
//	    v := a.View()
//	    return process(v)
//	}, a)
func WithProtection(work func() error, owners ...Pinnable) error {
	return view.WithProtection(work, owners...)
}

// WithViews protects the owners and substitutes each with a view of
// its whole storage for the duration of work.
//
// Example:
//
//	err := denseview.WithViews(func(views []denseview.View[float64]) error {
//	    return process(views[0])
//	}, a, b)
func WithViews[T Elem](work func(views []View[T]) error, owners ...*Array[T]) error {
	return view.WithViews(work, owners...)
}

// Alias queries

// MightAlias reports whether two views can address overlapping memory.
// The test is conservative: stride-blind address-range intersection,
// never under-reporting true aliasing.
func MightAlias[A, B Elem](a View[A], b View[B]) bool {
	return view.MightAlias(a, b)
}

// Logging

// SetLogger configures the engine's logger. Scope transitions are
// reported at Debug level; the default logger is a no-op.
func SetLogger(l *zap.Logger) {
	view.SetLogger(l)
}
