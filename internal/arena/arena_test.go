package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denseview/denseview/internal/view"
)

func TestNewAndClose(t *testing.T) {
	a, err := New(4096)
	require.NoError(t, err)
	assert.Equal(t, 4096, a.Size())
	require.NoError(t, a.Close())

	// Close is idempotent.
	require.NoError(t, a.Close())
}

func TestNewNegativeSize(t *testing.T) {
	_, err := New(-1)
	assert.ErrorIs(t, err, view.ErrBadArgument)
}

func TestViewOfRoundTrips(t *testing.T) {
	a, err := New(8 * 6)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	v, err := ViewOf[float64](a, view.Shape{3, 2})
	require.NoError(t, err)

	for k := 1; k <= 6; k++ {
		require.NoError(t, v.Set(k, float64(k)*1.5))
	}
	for k := 1; k <= 6; k++ {
		got, err := v.At(k)
		require.NoError(t, err)
		assert.Equal(t, float64(k)*1.5, got)
	}
}

func TestViewOfTooLarge(t *testing.T) {
	a, err := New(16)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	_, err = ViewOf[float64](a, view.Shape{3})
	assert.ErrorIs(t, err, view.ErrOutOfBounds)
}

func TestArenaIsPinnable(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	err = view.WithProtection(func() error {
		assert.Equal(t, 1, a.Pins())
		return nil
	}, a)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Pins())
}

func TestCloseWhilePinnedPanics(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)
	a.Pin()
	defer func() {
		a.Unpin()
		require.NoError(t, a.Close())
	}()

	assert.Panics(t, func() { _ = a.Close() })
}

func TestSubViewOverArenaMemory(t *testing.T) {
	a, err := New(8 * 56)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	v, err := ViewOf[float64](a, view.Shape{8, 7})
	require.NoError(t, err)
	for k := 1; k <= 56; k++ {
		require.NoError(t, v.Set(k, float64(k)))
	}

	sub, c, err := v.SubView(view.SliceSpec{view.Span(2, 4), view.Index(3)})
	require.NoError(t, err)
	require.Equal(t, view.Dense, c)
	got, err := sub.At(1)
	require.NoError(t, err)
	assert.Equal(t, float64(18), got)
}
