// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages the dimensionality of a tensor: the size of each dimension
// and the row-major strides computed from those sizes. A Shape with zero
// dimensions is a scalar holding exactly one value, following the NumPy
// 0-dimensional convention, so broadcasting treats plain scalars and
// tensors uniformly.
type Shape struct {

	// Sizes holds the size of each dimension.
	Sizes []int

	// Strides holds the row-major flat-index increment for each dimension.
	Strides []int
}

// NewShape returns a new shape with the given sizes per dimension,
// with strides computed in row-major order.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetSizes(sizes...)
	return sh
}

// SetSizes sets the dimension sizes and recomputes the strides.
func (sh *Shape) SetSizes(sizes ...int) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sizes...)
}

// RowMajorStrides returns the strides for the given dimension sizes,
// where the inner-most dimension is contiguous.
func RowMajorStrides(sizes ...int) []int {
	n := len(sizes)
	strides := make([]int, n)
	stride := 1
	for d := n - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= sizes[d]
	}
	return strides
}

// Len returns the total number of elements implied by the shape
// (the product of the dimension sizes). A 0-dimensional (scalar)
// shape has one element.
func (sh *Shape) Len() int {
	n := 1
	for _, sz := range sh.Sizes {
		n *= sz
	}
	return n
}

// NumDims returns the number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of the given dimension.
func (sh *Shape) DimSize(dim int) int { return sh.Sizes[dim] }

// IsEqual returns whether the two shapes have the same sizes.
func (sh *Shape) IsEqual(os *Shape) bool {
	return slices.Equal(sh.Sizes, os.Sizes)
}

// IndexTo1D returns the flat 1D index for the given n-dimensional indexes.
// No checking is done on the validity of the indexes relative to the shape.
func (sh *Shape) IndexTo1D(i ...int) int {
	oned := 0
	for d, ix := range i {
		oned += ix * sh.Strides[d]
	}
	return oned
}

// IndexFrom1D returns the n-dimensional indexes for the given flat 1D index.
func (sh *Shape) IndexFrom1D(oned int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := oned
	for d := 0; d < nd; d++ {
		s := sh.Strides[d]
		index[d] = rem / s
		rem = rem % s
	}
	return index
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	return fmt.Sprintf("%v", sh.Sizes)
}
