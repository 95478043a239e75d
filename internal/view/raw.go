package view

import (
	"fmt"
	"unsafe"
)

// RawView is the untyped counterpart of View: a base address, extents,
// and a runtime DataType tag. It exists for owners whose element type
// is only known dynamically; the tag is resolved once at construction
// and callers branch on it rather than on polymorphic dispatch.
type RawView struct {
	base    unsafe.Pointer
	extents Shape
	dtype   DataType
}

// MakeRaw wraps a base address, extents and runtime type tag.
// Fails with ErrNotFixedLayout for an Invalid (or unknown) tag: memory
// holding non-fixed-layout elements must never be viewed raw.
func MakeRaw(base unsafe.Pointer, extents Shape, dtype DataType) (RawView, error) {
	if dtype <= Invalid || dtype > Bool {
		return RawView{}, fmt.Errorf("%w: data type tag %d", ErrNotFixedLayout, dtype)
	}
	if err := extents.Validate(); err != nil {
		return RawView{}, err
	}
	return RawView{base: base, extents: extents, dtype: dtype}, nil
}

// Raw erases the element type of a typed view.
func (v View[T]) Raw() RawView {
	return RawView{base: v.base, extents: v.extents, dtype: dataTypeOf[T]()}
}

// Typed recovers a typed view from a raw one.
// Fails with ErrNotFixedLayout if T does not match the runtime tag.
func Typed[T Elem](rv RawView) (View[T], error) {
	if dt := dataTypeOf[T](); dt != rv.dtype {
		return View[T]{}, fmt.Errorf("%w: view holds %s, requested %s", ErrNotFixedLayout, rv.dtype, dt)
	}
	return View[T]{base: rv.base, extents: rv.extents}, nil
}

// Base returns the address of element 1.
func (rv RawView) Base() unsafe.Pointer {
	return rv.base
}

// Extents returns the view's extents tuple.
func (rv RawView) Extents() Shape {
	return rv.extents
}

// DType returns the runtime element type tag.
func (rv RawView) DType() DataType {
	return rv.dtype
}

// NumElements returns the total number of addressable elements.
func (rv RawView) NumElements() int {
	return rv.extents.NumElements()
}

// ByteLen returns the addressed range's length in bytes.
func (rv RawView) ByteLen() uintptr {
	return uintptr(rv.NumElements() * rv.dtype.Size())
}

// Bytes returns the addressed range as a byte slice (zero-copy).
func (rv RawView) Bytes() []byte {
	n := rv.NumElements() * rv.dtype.Size()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(rv.base), n)
}

// AsFloat32 interprets the data as []float32.
// Panics if the view's dtype is not Float32.
func (rv RawView) AsFloat32() []float32 {
	if rv.dtype != Float32 {
		panic(fmt.Sprintf("view dtype is %s, not float32", rv.dtype))
	}
	return typedSlice[float32](rv)
}

// AsFloat64 interprets the data as []float64.
// Panics if the view's dtype is not Float64.
func (rv RawView) AsFloat64() []float64 {
	if rv.dtype != Float64 {
		panic(fmt.Sprintf("view dtype is %s, not float64", rv.dtype))
	}
	return typedSlice[float64](rv)
}

// AsInt32 interprets the data as []int32.
// Panics if the view's dtype is not Int32.
func (rv RawView) AsInt32() []int32 {
	if rv.dtype != Int32 {
		panic(fmt.Sprintf("view dtype is %s, not int32", rv.dtype))
	}
	return typedSlice[int32](rv)
}

// AsInt64 interprets the data as []int64.
// Panics if the view's dtype is not Int64.
func (rv RawView) AsInt64() []int64 {
	if rv.dtype != Int64 {
		panic(fmt.Sprintf("view dtype is %s, not int64", rv.dtype))
	}
	return typedSlice[int64](rv)
}

// AsUint8 interprets the data as []uint8.
// Panics if the view's dtype is not Uint8.
func (rv RawView) AsUint8() []uint8 {
	if rv.dtype != Uint8 {
		panic(fmt.Sprintf("view dtype is %s, not uint8", rv.dtype))
	}
	return typedSlice[uint8](rv)
}

// AsBool interprets the data as []bool.
// Panics if the view's dtype is not Bool.
func (rv RawView) AsBool() []bool {
	if rv.dtype != Bool {
		panic(fmt.Sprintf("view dtype is %s, not bool", rv.dtype))
	}
	return typedSlice[bool](rv)
}

func typedSlice[T Elem](rv RawView) []T {
	n := rv.NumElements()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(rv.base), n)
}

// String returns a human-readable description of the view.
func (rv RawView) String() string {
	return fmt.Sprintf("RawView[%s]%v @ %p", rv.dtype, rv.extents, rv.base)
}
