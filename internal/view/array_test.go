package view

import (
	"errors"
	"testing"
)

// Array owner Tests

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestArrayAtSet(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})

	got, err := a.At(3)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != 3 {
		t.Errorf("At(3) = %v, want 3", got)
	}

	if err := a.Set(4, 9); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if a.Data()[3] != 9 {
		t.Error("Set should write the backing storage")
	}

	if _, err := a.At(5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
}

func TestArrayPinCounting(t *testing.T) {
	a, _ := NewArray[float32](Shape{2, 2})

	if a.Pins() != 0 {
		t.Fatalf("fresh array pins = %d, want 0", a.Pins())
	}
	a.Pin()
	a.Pin()
	if a.Pins() != 2 {
		t.Errorf("pins = %d, want 2", a.Pins())
	}
	a.Unpin()
	a.Unpin()
	if a.Pins() != 0 {
		t.Errorf("pins = %d, want 0", a.Pins())
	}
}

func TestArrayUnbalancedUnpinPanics(t *testing.T) {
	a, _ := NewArray[float32](Shape{2})

	defer func() {
		if r := recover(); r == nil {
			t.Error("Unpin without Pin should panic")
		}
	}()
	a.Unpin()
}

func TestArrayResizeWhilePinnedPanics(t *testing.T) {
	a, _ := NewArray[float32](Shape{2, 2})
	a.Pin()
	defer a.Unpin()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Resize on a pinned array should panic")
		}
	}()
	_ = a.Resize(Shape{4, 4})
}

func TestArrayFreeWhilePinnedPanics(t *testing.T) {
	a, _ := NewArray[float32](Shape{2, 2})
	a.Pin()
	defer a.Unpin()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Free on a pinned array should panic")
		}
	}()
	a.Free()
}

func TestArrayResizeKeepsPrefix(t *testing.T) {
	a, _ := FromSlice([]int32{1, 2, 3, 4}, Shape{4})

	if err := a.Resize(Shape{2, 3}); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if !a.Extents().Equal(Shape{2, 3}) {
		t.Errorf("extents = %v, want [2 3]", a.Extents())
	}
	want := []int32{1, 2, 3, 4, 0, 0}
	for i, w := range want {
		if a.Data()[i] != w {
			t.Errorf("Data()[%d] = %d, want %d", i, a.Data()[i], w)
		}
	}
}

func TestLikeMatchesExtents(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	b := Like(a)

	if !b.Extents().Equal(a.Extents()) {
		t.Errorf("Like extents = %v, want %v", b.Extents(), a.Extents())
	}
	for _, x := range b.Data() {
		if x != 0 {
			t.Error("Like should zero-initialize")
		}
	}
}
