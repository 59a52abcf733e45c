// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	sh := NewShape(3, 2)
	assert.Equal(t, 6, sh.Len())
	assert.Equal(t, 2, sh.NumDims())
	assert.Equal(t, 3, sh.DimSize(0))
	assert.Equal(t, 2, sh.DimSize(1))
	assert.Equal(t, []int{2, 1}, sh.Strides)

	assert.Equal(t, 5, sh.IndexTo1D(2, 1))
	assert.Equal(t, []int{2, 1}, sh.IndexFrom1D(5))
	assert.Equal(t, []int{0, 1}, sh.IndexFrom1D(1))

	sc := NewShape()
	assert.Equal(t, 1, sc.Len())
	assert.Equal(t, 0, sc.NumDims())
	assert.Equal(t, 0, sc.IndexTo1D())
	assert.Equal(t, []int{}, sc.IndexFrom1D(0))

	assert.True(t, sh.IsEqual(NewShape(3, 2)))
	assert.False(t, sh.IsEqual(NewShape(2, 3)))
}

func TestCreate(t *testing.T) {
	assert.Equal(t, 5.5, NewScalar(5.5).Float1D(0))
	assert.True(t, NewScalar(5.5).IsScalar())
	assert.Equal(t, 1, NewScalar(5.5).Len())

	tsr := NewFromValues(5.5, 1.5)
	assert.Equal(t, []float64{5.5, 1.5}, tsr.Values)
	assert.Equal(t, 1, tsr.NumDims())
	assert.False(t, tsr.IsScalar())

	tsr = New(2, 3)
	assert.Equal(t, 6, tsr.Len())
	tsr.SetFloat(4.2, 1, 2)
	assert.Equal(t, 4.2, tsr.Float(1, 2))
	assert.Equal(t, 4.2, tsr.Float1D(5))

	cl := tsr.Clone()
	cl.SetFloat1D(0, 5)
	assert.Equal(t, 4.2, tsr.Float1D(5))
	assert.Equal(t, 0.0, cl.Float1D(5))
}

func TestAlignShapes(t *testing.T) {
	a := New(3, 4)
	b := New(4)
	as, bs, os, err := AlignShapes(a, b)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, os.Sizes)
	assert.Equal(t, []int{3, 4}, as.Sizes)
	assert.Equal(t, []int{1, 4}, bs.Sizes)

	_, _, _, err = AlignShapes(New(3, 4), New(3))
	assert.Error(t, err)

	_, _, os, err = AlignShapes(NewScalar(1), New(5))
	assert.NoError(t, err)
	assert.Equal(t, []int{5}, os.Sizes)

	oi := os.IndexFrom1D(3)
	assert.Equal(t, 0, WrapIndex1D(NewShape(1), oi...))
	assert.Equal(t, 3, WrapIndex1D(os, oi...))
}

func TestBinaryFunc(t *testing.T) {
	a := NewFromValues(1, 2, 3)
	b := NewFromValues(4, 5, 6)

	add, err := Add(a, b)
	assert.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, add.Values)

	sub, err := Sub(a, b)
	assert.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, sub.Values)

	mul, err := Mul(a, b)
	assert.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, mul.Values)

	div, err := Div(a, NewScalar(2))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, div.Values)

	// scalar broadcasts as the 0-dimensional case
	off, err := Add(a, NewScalar(10))
	assert.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, off.Values)

	// 2D x 1D broadcasts along the trailing dimension
	m := New(2, 3)
	for i := 0; i < 6; i++ {
		m.SetFloat1D(float64(i), i)
	}
	mb, err := Mul(m, NewFromValues(1, 10, 100))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 200, 3, 40, 500}, mb.Values)

	_, err = Add(NewFromValues(1, 2), NewFromValues(1, 2, 3))
	assert.Error(t, err)

	// the Out variant shapes and fills a destination in place
	out := New(3)
	err = BinaryFuncOut(func(a, b float64) float64 { return a + b }, m, NewFromValues(1, 10, 100), out)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.ShapeSizes())
	assert.Equal(t, []float64{1, 11, 102, 4, 14, 105}, out.Values)

	err = BinaryFuncOut(func(a, b float64) float64 { return a + b }, NewFromValues(1, 2), NewFromValues(1, 2, 3), out)
	assert.Error(t, err)
}

func TestUnaryFunc(t *testing.T) {
	sq := UnaryFunc(func(a float64) float64 { return a * a }, NewFromValues(1, 2, 3))
	assert.Equal(t, []float64{1, 4, 9}, sq.Values)
}

func TestStats(t *testing.T) {
	tsr := NewFromValues(3, 1, 4, 1, 5)
	assert.Equal(t, 14.0, tsr.Sum())

	mn, mx, mni, mxi := tsr.Range()
	assert.Equal(t, 1.0, mn)
	assert.Equal(t, 5.0, mx)
	assert.Equal(t, 1, mni)
	assert.Equal(t, 4, mxi)

	tsr = NewFromValues(math.NaN(), 2, math.NaN())
	mn, mx, mni, mxi = tsr.Range()
	assert.Equal(t, 2.0, mn)
	assert.Equal(t, 2.0, mx)
	assert.Equal(t, 1, mni)
	assert.Equal(t, 1, mxi)
}
