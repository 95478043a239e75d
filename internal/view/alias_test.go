package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columns(t *testing.T, a *Array[float64], lo, hi int) View[float64] {
	t.Helper()
	v, c, err := a.SubView(SliceSpec{All(), Span(lo, hi)})
	require.NoError(t, err)
	require.Equal(t, Dense, c)
	return v
}

func TestMightAliasDisjointColumnBands(t *testing.T) {
	a, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)

	left := columns(t, a, 1, 4)
	right := columns(t, a, 6, 10)
	assert.False(t, MightAlias(left, right))
	assert.False(t, MightAlias(right, left))
}

func TestMightAliasOverlappingColumnBands(t *testing.T) {
	a, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)

	left := columns(t, a, 2, 6)
	right := columns(t, a, 5, 10)
	assert.True(t, MightAlias(left, right))
	assert.True(t, MightAlias(right, left))
}

func TestMightAliasAdjacentBands(t *testing.T) {
	a, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)

	// Touching but not overlapping: half-open ranges do not intersect.
	left := columns(t, a, 1, 5)
	right := columns(t, a, 6, 10)
	assert.False(t, MightAlias(left, right))
}

func TestMightAliasSelf(t *testing.T) {
	a, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)
	v := a.View()
	assert.True(t, MightAlias(v, v))
}

func TestMightAliasEmptyView(t *testing.T) {
	a, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)
	empty, err := NewArray[float64](Shape{0, 10})
	require.NoError(t, err)

	assert.False(t, MightAlias(a.View(), empty.View()))
	assert.False(t, MightAlias(empty.View(), empty.View()))
}

func TestMightAliasAcrossElementTypes(t *testing.T) {
	a, err := NewArray[float64](Shape{4})
	require.NoError(t, err)

	asBytes, err := Reinterpret[uint8](a.View())
	require.NoError(t, err)
	assert.True(t, MightAlias(a.View(), asBytes))
}

func TestRawViewOverlaps(t *testing.T) {
	a, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)
	b, err := NewArray[float64](Shape{8, 10})
	require.NoError(t, err)

	assert.True(t, a.Raw().Overlaps(a.Raw()))
	assert.False(t, a.Raw().Overlaps(b.Raw()))
}
