package view

import (
	"errors"
	"testing"
)

// RawView Tests

func TestMakeRawRejectsUnknownLayout(t *testing.T) {
	a, _ := NewArray[float32](Shape{2, 3})

	if _, err := MakeRaw(a.View().Base(), Shape{2, 3}, Float32); err != nil {
		t.Fatalf("MakeRaw failed: %v", err)
	}
	if _, err := MakeRaw(a.View().Base(), Shape{2, 3}, Invalid); !errors.Is(err, ErrNotFixedLayout) {
		t.Errorf("got %v, want ErrNotFixedLayout", err)
	}
	if _, err := MakeRaw(a.View().Base(), Shape{2, 3}, DataType(99)); !errors.Is(err, ErrNotFixedLayout) {
		t.Errorf("got %v, want ErrNotFixedLayout", err)
	}
}

func TestRawViewAsFloat32(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	rv := a.Raw()

	data := rv.AsFloat32()
	if len(data) != 6 {
		t.Errorf("AsFloat32 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if a.Data()[0] != 42 {
		t.Error("AsFloat32 should return a zero-copy slice")
	}
}

func TestRawViewAsWrongTypePanics(t *testing.T) {
	a, _ := NewArray[float32](Shape{2})
	rv := a.Raw()

	_ = rv.AsFloat32()

	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat64 on a float32 view should panic")
		}
	}()
	_ = rv.AsFloat64()
}

func TestRawViewRoundTripTyped(t *testing.T) {
	a, _ := FromSlice([]int64{7, 8, 9}, Shape{3})
	rv := a.Raw()

	v, err := Typed[int64](rv)
	if err != nil {
		t.Fatalf("Typed failed: %v", err)
	}
	got, _ := v.At(2)
	if got != 8 {
		t.Errorf("At(2) = %d, want 8", got)
	}

	if _, err := Typed[float64](rv); !errors.Is(err, ErrNotFixedLayout) {
		t.Errorf("got %v, want ErrNotFixedLayout", err)
	}
}

func TestRawViewBytes(t *testing.T) {
	a, _ := NewArray[int32](Shape{4})
	rv := a.Raw()

	if got := len(rv.Bytes()); got != 16 {
		t.Errorf("Bytes length = %d, want 16", got)
	}
	if rv.ByteLen() != 16 {
		t.Errorf("ByteLen = %d, want 16", rv.ByteLen())
	}

	empty, _ := NewArray[int32](Shape{0, 5})
	if empty.Raw().Bytes() != nil {
		t.Error("empty view should have nil bytes")
	}
}
