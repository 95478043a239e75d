package view

import "errors"

// Sentinel errors returned by view construction and access.
// Callers match with errors.Is; raise sites wrap them with context.
var (
	// ErrNotFixedLayout reports an element type whose values cannot be
	// copied byte-for-byte (unknown or reference-holding layout). Such
	// types must use an owning representation, never a raw view.
	ErrNotFixedLayout = errors.New("element type is not fixed-layout")

	// ErrOutOfBounds reports an index, selector, or copy range outside
	// the current extents.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrDimensionMismatch reports a reshape whose target extents do not
	// preserve the element count.
	ErrDimensionMismatch = errors.New("element count mismatch")

	// ErrRankMismatch reports a slice spec with more selectors than the
	// source has dimensions.
	ErrRankMismatch = errors.New("slice spec exceeds rank")

	// ErrBadArgument reports an invalid argument such as a negative copy
	// count or a reinterpret ratio that does not divide evenly.
	ErrBadArgument = errors.New("invalid argument")
)
