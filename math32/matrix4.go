// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 homogeneous transformation matrix, stored in
// column-major order: element (row, col) is at index col*4 + row.
// Points transform as column vectors, v' = M v, so in a product
// A × B the matrix B is applied first.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	var m Matrix4
	m.SetIdentity()
	return m
}

// SetIdentity sets the matrix to the identity.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetRotationX sets the matrix to a rotation of theta radians
// about the X axis.
func (m *Matrix4) SetRotationX(theta float32) {
	c, s := Cos(theta), Sin(theta)
	*m = Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// SetRotationY sets the matrix to a rotation of theta radians
// about the Y axis.
func (m *Matrix4) SetRotationY(theta float32) {
	c, s := Cos(theta), Sin(theta)
	*m = Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// SetRotationZ sets the matrix to a rotation of theta radians
// about the Z axis.
func (m *Matrix4) SetRotationZ(theta float32) {
	c, s := Cos(theta), Sin(theta)
	*m = Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetPos sets the translation components of the matrix without
// touching the rotation part.
func (m *Matrix4) SetPos(v Vector3) {
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// Pos returns the translation components of the matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// MulMatrices sets the matrix to the product a × b.
// The receiver must not alias either argument.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			m[col*4+row] = sum
		}
	}
}

// Mul returns the product m × other as a new matrix.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var out Matrix4
	out.MulMatrices(m, other)
	return out
}

// SetMul sets the matrix to the product m × other.
func (m *Matrix4) SetMul(other *Matrix4) {
	*m = m.Mul(other)
}

// SetEulerRotation sets the matrix to the intrinsic z-y'-x'' rotation
// given by the three Euler angles in radians: the overall product is
// Rz × Ry × Rx, so the z rotation is the outermost factor.
func (m *Matrix4) SetEulerRotation(rx, ry, rz float32) {
	var my, mx Matrix4
	m.SetRotationZ(rz)
	my.SetRotationY(ry)
	mx.SetRotationX(rx)
	m.SetMul(&my)
	m.SetMul(&mx)
}

// SetTransform sets the matrix to the homogeneous transform with the
// given translation and intrinsic z-y'-x'' Euler rotation in radians.
// There is no scale or shear.
func (m *Matrix4) SetTransform(pos Vector3, rx, ry, rz float32) {
	m.SetEulerRotation(rx, ry, rz)
	m.SetPos(pos)
}
