// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides a dense n-dimensional float64 tensor with
// NumPy-style elementwise broadcasting, used throughout the colour
// packages so that operations defined on single values extend directly
// to arrays of wavelengths, temperatures, and the like. Scalars are
// 0-dimensional tensors, so the broadcasting rules cover the mixed
// scalar / array cases with no special handling.
package tensor

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Float64 is a dense n-dimensional tensor of float64 values.
type Float64 struct {
	shape Shape

	// Values is the flat list of elements, in row-major order.
	Values []float64
}

// New returns a new tensor with the given sizes per dimension.
// With no sizes, the result is a 0-dimensional scalar holding one value.
func New(sizes ...int) *Float64 {
	tsr := &Float64{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewScalar returns a new 0-dimensional scalar tensor with the given value.
func NewScalar(val float64) *Float64 {
	tsr := New()
	tsr.Values[0] = val
	return tsr
}

// NewFromValues returns a new 1-dimensional tensor with the given values,
// which are used directly, not copied.
func NewFromValues(vals ...float64) *Float64 {
	tsr := &Float64{Values: vals}
	tsr.shape.SetSizes(len(vals))
	return tsr
}

// SetShapeSizes sets the dimension sizes, resizing Values as needed.
// Existing values are preserved up to the new length.
func (tsr *Float64) SetShapeSizes(sizes ...int) {
	tsr.shape.SetSizes(sizes...)
	n := tsr.shape.Len()
	if cap(tsr.Values) >= n {
		tsr.Values = tsr.Values[:n]
	} else {
		nv := make([]float64, n)
		copy(nv, tsr.Values)
		tsr.Values = nv
	}
}

// Shape returns a pointer to the shape that fully parametrizes the tensor.
func (tsr *Float64) Shape() *Shape { return &tsr.shape }

// ShapeSizes returns the sizes of each dimension.
func (tsr *Float64) ShapeSizes() []int { return tsr.shape.Sizes }

// Len returns the number of elements (product of the dimension sizes).
func (tsr *Float64) Len() int { return tsr.shape.Len() }

// NumDims returns the number of dimensions.
func (tsr *Float64) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns the size of the given dimension.
func (tsr *Float64) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// IsScalar returns whether the tensor is 0-dimensional,
// holding a single value.
func (tsr *Float64) IsScalar() bool { return tsr.shape.NumDims() == 0 }

// Float returns the value at the given n-dimensional index.
func (tsr *Float64) Float(i ...int) float64 {
	return tsr.Values[tsr.shape.IndexTo1D(i...)]
}

// SetFloat sets the value at the given n-dimensional index.
func (tsr *Float64) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.shape.IndexTo1D(i...)] = val
}

// Float1D returns the value at the given flat 1D index.
func (tsr *Float64) Float1D(i int) float64 { return tsr.Values[i] }

// SetFloat1D sets the value at the given flat 1D index.
func (tsr *Float64) SetFloat1D(val float64, i int) { tsr.Values[i] = val }

// Clone returns a new tensor with a copy of the shape and values.
func (tsr *Float64) Clone() *Float64 {
	csr := New(tsr.shape.Sizes...)
	copy(csr.Values, tsr.Values)
	return csr
}

// AsValues returns a copy of the values as a plain slice.
func (tsr *Float64) AsValues() []float64 {
	return slices.Clone(tsr.Values)
}

// Sum returns the sum of all values.
func (tsr *Float64) Sum() float64 {
	sum := 0.0
	for _, v := range tsr.Values {
		sum += v
	}
	return sum
}

// Range returns the minimum and maximum values along with their flat
// 1D indexes. NaN values are skipped; if all values are NaN, the
// indexes are -1.
func (tsr *Float64) Range() (min, max float64, minIndex, maxIndex int) {
	minIndex = -1
	maxIndex = -1
	for i, v := range tsr.Values {
		if math.IsNaN(v) {
			continue
		}
		if minIndex < 0 || v < min {
			min = v
			minIndex = i
		}
		if maxIndex < 0 || v > max {
			max = v
			maxIndex = i
		}
	}
	return
}

// maxStringValues is the maximum number of values included in String.
const maxStringValues = 24

// String satisfies the fmt.Stringer interface, printing the shape
// followed by the leading values, elided past a reasonable length.
func (tsr *Float64) String() string {
	var b strings.Builder
	b.WriteString("Tensor ")
	b.WriteString(tsr.shape.String())
	b.WriteString(" [")
	nv := min(len(tsr.Values), maxStringValues)
	for i, v := range tsr.Values[:nv] {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	if len(tsr.Values) > nv {
		b.WriteString(" ...")
	}
	b.WriteString("]")
	return b.String()
}
