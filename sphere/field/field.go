// Package field provides a dense float64 array with an explicit shape, used to
// hold scalar fields sampled on latitude/longitude grids.
//
// A Field may have any number of dimensions so callers can hand in whatever
// they loaded; operations that need a 2-D (lat, lon) field check [Field.NDim].
// Data is stored row-major: for a 2-D field element (i, j) lives at
// Data()[i*cols+j].
package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidShape is returned for an empty shape or a dimension <= 0.
	ErrInvalidShape = errors.New("field: dimensions must be > 0")
	// ErrLengthMismatch is returned when data does not fill the shape exactly.
	ErrLengthMismatch = errors.New("field: data length does not match shape")
	// ErrNot2D is returned by [Field.Dims] on fields of another rank.
	ErrNot2D = errors.New("field: field is not 2-dimensional")
	// ErrShapeMismatch is returned by [Field.CopyFrom] for differing shapes.
	ErrShapeMismatch = errors.New("field: shapes differ")
)

// Field is a dense row-major array.
type Field struct {
	shape []int
	data  []float64
}

// New returns a zero-filled field with the given shape.
func New(shape ...int) (*Field, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	return &Field{
		shape: append([]int(nil), shape...),
		data:  make([]float64, n),
	}, nil
}

// FromSlice copies data into a new field with the given shape.
func FromSlice(data []float64, shape ...int) (*Field, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrLengthMismatch, len(data), shape)
	}
	return &Field{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}, nil
}

// FromFloat32 converts single precision data into a new float64 field.
func FromFloat32(data []float32, shape ...int) (*Field, error) {
	f, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(f.data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrLengthMismatch, len(data), shape)
	}
	for i, v := range data {
		f.data[i] = float64(v)
	}
	return f, nil
}

// FromRows builds a 2-D field from equally long rows.
func FromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidShape
	}
	cols := len(rows[0])
	f, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrLengthMismatch, i, len(r), cols)
		}
		copy(f.data[i*cols:], r)
	}
	return f, nil
}

// Generate builds a 2-D field by evaluating fn at every (row, col).
func Generate(rows, cols int, fn func(i, j int) float64) (*Field, error) {
	f, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			f.data[i*cols+j] = fn(i, j)
		}
	}
	return f, nil
}

// Shape returns a copy of the field's shape.
func (f *Field) Shape() []int { return append([]int(nil), f.shape...) }

// NDim returns the number of dimensions.
func (f *Field) NDim() int { return len(f.shape) }

// Len returns the total number of elements.
func (f *Field) Len() int { return len(f.data) }

// Data returns the backing slice. Writes through it modify the field.
func (f *Field) Data() []float64 { return f.data }

// Dims returns (rows, cols) of a 2-D field.
func (f *Field) Dims() (rows, cols int, err error) {
	if len(f.shape) != 2 {
		return 0, 0, fmt.Errorf("%w: shape %v", ErrNot2D, f.shape)
	}
	return f.shape[0], f.shape[1], nil
}

// At returns element (i, j) of a 2-D field. It panics on out-of-range
// indices like a slice access does.
func (f *Field) At(i, j int) float64 {
	return f.data[f.offset(i, j)]
}

// Set assigns element (i, j) of a 2-D field.
func (f *Field) Set(i, j int, v float64) {
	f.data[f.offset(i, j)] = v
}

// Row returns row i of a 2-D field as a view into the backing data.
func (f *Field) Row(i int) []float64 {
	cols := f.shape[1]
	return f.data[i*cols : (i+1)*cols]
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	return &Field{
		shape: append([]int(nil), f.shape...),
		data:  append([]float64(nil), f.data...),
	}
}

// CopyFrom overwrites f with src. The shapes must be equal.
func (f *Field) CopyFrom(src *Field) error {
	if !sameShape(f.shape, src.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, f.shape, src.shape)
	}
	copy(f.data, src.data)
	return nil
}

// ArgMax returns the 2-D index of the largest element. NaN values are
// skipped; a field of only NaN returns (-1, -1).
func (f *Field) ArgMax() (row, col int) {
	cols := f.shape[len(f.shape)-1]
	best := math.Inf(-1)
	idx := -1
	for i, v := range f.data {
		if math.IsNaN(v) {
			continue
		}
		if idx < 0 || v > best {
			best, idx = v, i
		}
	}
	if idx < 0 {
		return -1, -1
	}
	return idx / cols, idx % cols
}

// Max returns the largest element, ignoring NaN.
func (f *Field) Max() float64 {
	i, j := f.ArgMax()
	if i < 0 {
		return math.NaN()
	}
	return f.data[i*f.shape[len(f.shape)-1]+j]
}

func (f *Field) offset(i, j int) int {
	if len(f.shape) != 2 {
		panic(fmt.Sprintf("field: 2-D access on shape %v", f.shape))
	}
	if i < 0 || i >= f.shape[0] || j < 0 || j >= f.shape[1] {
		panic(fmt.Sprintf("field: index (%d, %d) out of range for shape %v", i, j, f.shape))
	}
	return i*f.shape[1] + j
}

func numElements(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrInvalidShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
		}
		n *= d
	}
	return n, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
