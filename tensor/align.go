// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// AlignShapes aligns the shapes of two tensors, a and b, for a binary
// computation producing an output, returning the effective aligned shapes
// for a, b, and the output, all with the same number of dimensions.
// Alignment proceeds from the innermost dimension out, with 1s provided
// beyond the number of dimensions for a or b.
// The output has the max of the dimension sizes for each dimension.
// An error is returned if the rules of alignment are violated:
// each dimension size must be either the same, or one of them
// is equal to 1. This corresponds to the "broadcasting" logic of NumPy.
func AlignShapes(a, b *Float64) (as, bs, os *Shape, err error) {
	asz := a.ShapeSizes()
	bsz := b.ShapeSizes()
	an := len(asz)
	bn := len(bsz)
	n := max(an, bn)
	osizes := make([]int, n)
	asizes := make([]int, n)
	bsizes := make([]int, n)
	for d := 0; d < n; d++ {
		ai := an - 1 - d
		bi := bn - 1 - d
		oi := n - 1 - d
		ad := 1
		bd := 1
		if ai >= 0 {
			ad = asz[ai]
		}
		if bi >= 0 {
			bd = bsz[bi]
		}
		if ad != bd && !(ad == 1 || bd == 1) {
			err = fmt.Errorf("tensor.AlignShapes: output dimension %d does not align for a=%d b=%d: must be either the same or one of them is a 1", oi, ad, bd)
			return
		}
		od := max(ad, bd)
		osizes[oi] = od
		asizes[oi] = ad
		bsizes[oi] = bd
	}
	as = NewShape(asizes...)
	bs = NewShape(bsizes...)
	os = NewShape(osizes...)
	return
}

// WrapIndex1D returns the 1d flat index for given n-dimensional index
// based on given shape, where any singleton dimension sizes cause the
// resulting index value to remain at 0, effectively causing that dimension
// to wrap around, while the other tensor is presumably using the full range
// of the values along this dimension. See [AlignShapes] for more info.
func WrapIndex1D(sh *Shape, i ...int) int {
	nd := sh.NumDims()
	ai := slices.Clone(i)
	for d := 0; d < nd; d++ {
		if sh.DimSize(d) == 1 {
			ai[d] = 0
		}
	}
	return sh.IndexTo1D(ai...)
}

// BinaryFunc returns the result of applying the given binary function
// elementwise to a and b, with the shapes broadcast per [AlignShapes].
func BinaryFunc(fun func(a, b float64) float64, a, b *Float64) (*Float64, error) {
	out := &Float64{}
	if err := BinaryFuncOut(fun, a, b, out); err != nil {
		return nil, err
	}
	return out, nil
}

// BinaryFuncOut sets out to the result of applying the given binary function
// elementwise to a and b, with the shapes broadcast per [AlignShapes].
// Padding a shape with leading singleton dimensions does not change its
// row-major element ordering, so the wrapped indexes address the
// original values directly.
func BinaryFuncOut(fun func(a, b float64) float64, a, b, out *Float64) error {
	as, bs, os, err := AlignShapes(a, b)
	if err != nil {
		return err
	}
	out.SetShapeSizes(os.Sizes...)
	olen := os.Len()
	for idx := 0; idx < olen; idx++ {
		oi := os.IndexFrom1D(idx)
		ai := WrapIndex1D(as, oi...)
		bi := WrapIndex1D(bs, oi...)
		out.SetFloat1D(fun(a.Float1D(ai), b.Float1D(bi)), idx)
	}
	return nil
}

// UnaryFunc returns the result of applying the given function
// elementwise to a, with the same shape.
func UnaryFunc(fun func(a float64) float64, a *Float64) *Float64 {
	out := New(a.ShapeSizes()...)
	for i, v := range a.Values {
		out.Values[i] = fun(v)
	}
	return out
}

// Add returns the elementwise sum a + b, with broadcasting.
func Add(a, b *Float64) (*Float64, error) {
	return BinaryFunc(func(a, b float64) float64 { return a + b }, a, b)
}

// Sub returns the elementwise difference a - b, with broadcasting.
func Sub(a, b *Float64) (*Float64, error) {
	return BinaryFunc(func(a, b float64) float64 { return a - b }, a, b)
}

// Mul returns the elementwise product a * b, with broadcasting.
func Mul(a, b *Float64) (*Float64, error) {
	return BinaryFunc(func(a, b float64) float64 { return a * b }, a, b)
}

// Div returns the elementwise quotient a / b, with broadcasting.
// Division by zero follows IEEE-754 rules, producing Inf or NaN.
func Div(a, b *Float64) (*Float64, error) {
	return BinaryFunc(func(a, b float64) float64 { return a / b }, a, b)
}
