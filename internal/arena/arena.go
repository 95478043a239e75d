// Package arena provides page-backed storage for dense arrays whose
// memory must stay at a fixed address. On Linux the storage is an
// anonymous mmap outside the Go heap, so the collector can neither
// reclaim nor relocate it; elsewhere a plain heap allocation is used
// and liveness rests on the pin protocol alone.
package arena

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/denseview/denseview/internal/view"
)

// Arena is a fixed-address byte region implementing the owner contract
// for protection scopes. Close while pinned panics, mirroring the
// owning-array rules.
type Arena struct {
	data   []byte
	pins   atomic.Int32
	closed bool
}

// New allocates an arena of the given byte size.
func New(size int) (*Arena, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative arena size %d", view.ErrBadArgument, size)
	}
	data, err := alloc(size)
	if err != nil {
		return nil, fmt.Errorf("arena alloc: %w", err)
	}
	return &Arena{data: data}, nil
}

// Bytes returns the arena's backing bytes.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Size returns the arena's byte size.
func (a *Arena) Size() int {
	return len(a.data)
}

// Pin marks the arena as required live and unmoved.
func (a *Arena) Pin() {
	a.pins.Add(1)
}

// Unpin releases one pin. Panics on unbalanced release.
func (a *Arena) Unpin() {
	if a.pins.Add(-1) < 0 {
		panic("arena: unbalanced Unpin")
	}
}

// Pins returns the current protection count.
func (a *Arena) Pins() int {
	return int(a.pins.Load())
}

// Close releases the arena's memory. Panics if the arena is pinned.
func (a *Arena) Close() error {
	if a.Pins() > 0 {
		panic("arena: Close on a protected arena")
	}
	if a.closed {
		return nil
	}
	a.closed = true
	data := a.data
	a.data = nil
	return free(data)
}

// ViewOf derives a typed view of the arena's storage with the given
// extents. Fails with ErrOutOfBounds if the extents address more bytes
// than the arena holds.
func ViewOf[T view.Elem](a *Arena, extents view.Shape) (view.View[T], error) {
	if err := extents.Validate(); err != nil {
		return view.View[T]{}, err
	}
	var zero T
	need := uintptr(extents.NumElements()) * unsafe.Sizeof(zero)
	if need > uintptr(len(a.data)) {
		return view.View[T]{}, fmt.Errorf("%w: extents %v need %d bytes, arena holds %d",
			view.ErrOutOfBounds, extents, need, len(a.data))
	}
	var base unsafe.Pointer
	if len(a.data) > 0 {
		base = unsafe.Pointer(unsafe.SliceData(a.data))
	}
	return view.Make[T](base, extents)
}
