// Package array provides the dense row-major numeric array returned by
// dataset reads.
package array

import "fmt"

// Dense is a dense row-major array of float64 values.
type Dense struct {
	shape []int
	data  []float64
}

// New creates a Dense with the given shape backed by data. The data length
// must match the product of the shape extents.
func New(shape []int, data []float64) (*Dense, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("negative dimension %d in shape %v", d, shape)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d", shape, n, len(data))
	}
	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// Shape returns a copy of the array's dimensions.
func (d *Dense) Shape() []int {
	return append([]int(nil), d.shape...)
}

// Rank returns the number of dimensions.
func (d *Dense) Rank() int {
	return len(d.shape)
}

// Len returns the total number of elements.
func (d *Dense) Len() int {
	return len(d.data)
}

// Data returns the underlying row-major element slice.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at the given indices. The number of indices must
// equal the rank.
func (d *Dense) At(indices ...int) float64 {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("array: At with %d indices on rank-%d array", len(indices), len(d.shape)))
	}
	off := 0
	for k, i := range indices {
		if i < 0 || i >= d.shape[k] {
			panic(fmt.Sprintf("array: index %d out of range for axis %d (extent %d)", i, k, d.shape[k]))
		}
		off = off*d.shape[k] + i
	}
	return d.data[off]
}

// Column extracts column i of a rank-2 array as a fresh (rows, 1) array.
// The result never aliases the receiver's storage.
func (d *Dense) Column(i int) (*Dense, error) {
	if len(d.shape) != 2 {
		return nil, fmt.Errorf("Column on rank-%d array", len(d.shape))
	}
	rows, cols := d.shape[0], d.shape[1]
	if i < 0 || i >= cols {
		return nil, fmt.Errorf("column %d out of range (have %d)", i, cols)
	}
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = d.data[r*cols+i]
	}
	return &Dense{shape: []int{rows, 1}, data: out}, nil
}

// Channel extracts last-axis index i of a rank-3 array as a fresh
// (d0, d1, 1) array. The result never aliases the receiver's storage.
func (d *Dense) Channel(i int) (*Dense, error) {
	if len(d.shape) != 3 {
		return nil, fmt.Errorf("Channel on rank-%d array", len(d.shape))
	}
	d0, d1, d2 := d.shape[0], d.shape[1], d.shape[2]
	if i < 0 || i >= d2 {
		return nil, fmt.Errorf("channel %d out of range (have %d)", i, d2)
	}
	out := make([]float64, d0*d1)
	for x := 0; x < d0; x++ {
		for y := 0; y < d1; y++ {
			out[x*d1+y] = d.data[(x*d1+y)*d2+i]
		}
	}
	return &Dense{shape: []int{d0, d1, 1}, data: out}, nil
}
