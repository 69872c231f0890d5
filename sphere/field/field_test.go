package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShapes(t *testing.T) {
	f, err := New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, f.Shape())
	assert.Equal(t, 2, f.NDim())
	assert.Equal(t, 12, f.Len())

	f3, err := New(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, f3.NDim())
	_, _, err = f3.Dims()
	assert.ErrorIs(t, err, ErrNot2D)

	_, err = New()
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = New(3, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	f, err := FromSlice(src, 2, 3)
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, 1.0, f.At(0, 0))
	assert.Equal(t, 6.0, f.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, f.Row(1))

	_, err = FromSlice(src, 4, 2)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFromFloat32(t *testing.T) {
	f, err := FromFloat32([]float32{0.5, -1.25, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1.25, 3, 4}, f.Data())

	_, err = FromFloat32([]float32{1}, 2, 2)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFromRows(t *testing.T) {
	f, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, f.Shape())
	assert.Equal(t, 4.0, f.At(1, 1))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestCloneAndCopyFrom(t *testing.T) {
	f, err := Generate(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)

	c := f.Clone()
	c.Set(0, 0, -1)
	assert.Equal(t, 0.0, f.At(0, 0))

	require.NoError(t, f.CopyFrom(c))
	assert.Equal(t, -1.0, f.At(0, 0))

	other, err := New(3, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, f.CopyFrom(other), ErrShapeMismatch)
}

func TestArgMax(t *testing.T) {
	f, err := FromSlice([]float64{1, math.NaN(), 7, 3, 7.5, 2}, 2, 3)
	require.NoError(t, err)

	i, j := f.ArgMax()
	assert.Equal(t, 1, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 7.5, f.Max())

	nan, err := FromSlice([]float64{math.NaN(), math.NaN()}, 1, 2)
	require.NoError(t, err)
	i, j = nan.ArgMax()
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
	assert.True(t, math.IsNaN(nan.Max()))
}

func TestAtPanicsOutOfRange(t *testing.T) {
	f, err := New(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { f.At(2, 0) })

	f1, err := New(4)
	require.NoError(t, err)
	assert.Panics(t, func() { f1.At(0, 0) })
}
