package view

import "fmt"

// Shape holds the extents of a view, one entry per dimension.
// Layout is column-major: the first dimension varies fastest in linear
// memory order. Linear indices and per-dimension indices are one-based.
type Shape []int

// NumElements returns the total number of addressable elements.
// A rank-0 shape is a scalar and has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, ext := range s {
		n *= ext
	}
	return n
}

// Validate checks that every extent is non-negative.
// Zero extents are legal: they describe an empty region.
func (s Shape) Validate() error {
	for i, ext := range s {
		if ext < 0 {
			return fmt.Errorf("%w: negative extent %d at dimension %d", ErrBadArgument, ext, i+1)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates column-major strides for the shape.
// stride[0] is 1; stride[i] is the product of all extents before i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// Contiguity classifies whether a sub-selection addresses one unbroken
// run of memory. The classification is computed once at sub-view
// construction; callers branch on it to dispatch between a zero-copy
// view and an owning fallback representation.
type Contiguity int

const (
	// Dense selections occupy a single contiguous run and are eligible
	// for a pointer+shape view.
	Dense Contiguity = iota
	// NeedsCopy selections are strided in memory; a pointer+shape pair
	// cannot represent them and the caller must fall back to a copying
	// or reference-counted sub-array.
	NeedsCopy
)

// String returns a human-readable classification name.
func (c Contiguity) String() string {
	switch c {
	case Dense:
		return "dense"
	case NeedsCopy:
		return "needs-copy"
	default:
		return "unknown"
	}
}

// selectorKind discriminates the three per-dimension selector forms.
type selectorKind int

const (
	selAll selectorKind = iota
	selIndex
	selRange
)

// Selector narrows one dimension of a slice spec: a single index (drops
// the dimension), an inclusive one-based range (keeps it, narrowed), or
// a full span (keeps it unchanged).
type Selector struct {
	kind   selectorKind
	index  int
	lo, hi int
}

// Index selects a single one-based position, dropping the dimension.
func Index(i int) Selector {
	return Selector{kind: selIndex, index: i}
}

// Span selects the inclusive one-based range [lo, hi], keeping the
// dimension with extent hi-lo+1. An empty range (hi == lo-1) is legal.
func Span(lo, hi int) Selector {
	return Selector{kind: selRange, lo: lo, hi: hi}
}

// All selects the full extent of a dimension, keeping it unchanged.
func All() Selector {
	return Selector{kind: selAll}
}

// first returns the one-based index of the first selected position.
func (sel Selector) first() int {
	switch sel.kind {
	case selIndex:
		return sel.index
	case selRange:
		return sel.lo
	default:
		return 1
	}
}

// check validates the selector against a dimension extent.
func (sel Selector) check(ext, dim int) error {
	switch sel.kind {
	case selIndex:
		if sel.index < 1 || sel.index > ext {
			return fmt.Errorf("%w: index %d outside [1, %d] in dimension %d", ErrOutOfBounds, sel.index, ext, dim)
		}
	case selRange:
		if sel.lo < 1 || sel.hi > ext || sel.hi < sel.lo-1 {
			return fmt.Errorf("%w: range [%d, %d] outside [1, %d] in dimension %d", ErrOutOfBounds, sel.lo, sel.hi, ext, dim)
		}
	}
	return nil
}

// SliceSpec is an ordered list of per-dimension selectors. Trailing
// unselected dimensions are treated as fully spanned.
type SliceSpec []Selector

// allSpanned reports whether every selector keeps its full dimension.
func (spec SliceSpec) allSpanned() bool {
	for _, sel := range spec {
		if sel.kind != selAll {
			return false
		}
	}
	return true
}

// checkSpec validates the spec's rank and every selector's bounds
// against src before any extent or offset arithmetic runs.
func checkSpec(src Shape, spec SliceSpec) error {
	if len(spec) > len(src) {
		return fmt.Errorf("%w: %d selectors for %d dimensions", ErrRankMismatch, len(spec), len(src))
	}
	for i, sel := range spec {
		if err := sel.check(src[i], i+1); err != nil {
			return err
		}
	}
	return nil
}

// SubExtents computes the extents of the sub-view selected by spec.
// Index selectors drop their dimension, ranges narrow it, full spans
// and trailing unselected dimensions keep the source extent.
func SubExtents(src Shape, spec SliceSpec) (Shape, error) {
	if err := checkSpec(src, spec); err != nil {
		return nil, err
	}

	out := make(Shape, 0, len(src))
	for i, ext := range src {
		if i >= len(spec) {
			out = append(out, ext)
			continue
		}
		switch spec[i].kind {
		case selAll:
			out = append(out, ext)
		case selRange:
			out = append(out, spec[i].hi-spec[i].lo+1)
		case selIndex:
			// Dimension dropped.
		}
	}
	return out, nil
}

// StartOffset computes the zero-based linear offset of the first
// selected element under column-major layout.
func StartOffset(src Shape, spec SliceSpec) (int, error) {
	if err := checkSpec(src, spec); err != nil {
		return 0, err
	}

	offset := 0
	stride := 1
	for i, ext := range src {
		if i < len(spec) {
			offset += (spec[i].first() - 1) * stride
		}
		stride *= ext
	}
	return offset, nil
}

// Classify reports whether the selection is Dense, i.e. occupies one
// contiguous run of column-major memory. This holds exactly when every
// dimension after the first narrowed one is pinned to a single index;
// trailing unselected dimensions count as full spans, so a narrowing
// followed by any spanned dimension is NeedsCopy.
func Classify(src Shape, spec SliceSpec) Contiguity {
	narrowed := false
	for i := range src {
		var kind selectorKind
		if i < len(spec) {
			kind = spec[i].kind
		} else {
			kind = selAll
		}

		if narrowed && kind != selIndex {
			return NeedsCopy
		}
		if kind != selAll {
			narrowed = true
		}
	}
	return Dense
}
