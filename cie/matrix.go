// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a row-major 3x3 matrix, used for the linear stage of
// colourspace and chromatic adaptation transforms.
type Matrix3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec returns the matrix-vector product m * (x, y, z).
func (m Matrix3) MulVec(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// Mul returns the matrix product m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// MulDiag returns the product m * diag(x, y, z), scaling each column
// of m by the corresponding diagonal entry.
func (m Matrix3) MulDiag(x, y, z float64) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		r[i][0] = m[i][0] * x
		r[i][1] = m[i][1] * y
		r[i][2] = m[i][2] * z
	}
	return r
}

// Transposed returns the transpose of the matrix.
func (m Matrix3) Transposed() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Inverse returns the inverse of the matrix, computed by LU
// decomposition, or an error if the matrix is singular.
func (m Matrix3) Inverse() (Matrix3, error) {
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(3, 3, m.flat())); err != nil {
		return Matrix3{}, err
	}
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = inv.At(i, j)
		}
	}
	return r, nil
}

// MustInverse returns the inverse of the matrix, panicking if it is
// singular. It is for the fixed, known-invertible matrices of the
// standard transforms.
func (m Matrix3) MustInverse() Matrix3 {
	r, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return r
}

func (m Matrix3) flat() []float64 {
	return []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}
