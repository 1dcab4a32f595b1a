package math

import "math"

// Mat4 is a 4x4 matrix in row-major order.
// Layout: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Matrices compose in application order against column vectors: A.Mul(B)
// applies B first. Upload with transpose=true for GLSL's column-major mat4.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * (math.Pi / 180)
}

func sincos(degrees float32) (s, c float32) {
	sf, cf := math.Sincos(float64(Radians(degrees)))
	return float32(sf), float32(cf)
}

// RotationX returns a rotation about the X axis. angle is in degrees.
func RotationX(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// RotationY returns a rotation about the Y axis. angle is in degrees.
func RotationY(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// RotationZ returns a rotation about the Z axis. angle is in degrees.
func RotationZ(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// Translation returns a translation matrix. The offset lives in the last
// column (indices 3, 7, 11).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a symmetric perspective projection.
// fov is the vertical field of view in degrees, aspect is width/height.
//
// Unlike the other builders the -1 sits at index 11 and the depth term at
// index 14, which is the column-major layout: upload it with transpose=false.
func Perspective(near, far, fov, aspect float32) Mat4 {
	a := float32(1 / math.Tan(float64(Radians(fov))/2))

	var m Mat4
	m[0] = a / aspect
	m[5] = a
	m[10] = -((far + near) / (far - near))
	m[11] = -1
	m[14] = -((2 * far * near) / (far - near))
	m[15] = 0
	return m
}

// Mul returns m × other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := range 16 {
		row, col := i/4, i%4
		for j := range 4 {
			result[i] += m[row*4+j] * other[j*4+col]
		}
	}
	return result
}

// MulInPlace sets a = a × b.
func MulInPlace(a *Mat4, b Mat4) {
	*a = a.Mul(b)
}

// MulVec4 returns m × v, treating v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var result Vec4
	for i := range 4 {
		for j := range 4 {
			result[i] += m[i*4+j] * v[j]
		}
	}
	return result
}

// RotateVecX rotates a homogeneous vector about the X axis (degrees).
func RotateVecX(angle float32, v Vec4) Vec4 {
	return RotationX(angle).MulVec4(v)
}

// RotateVecY rotates a homogeneous vector about the Y axis (degrees).
func RotateVecY(angle float32, v Vec4) Vec4 {
	return RotationY(angle).MulVec4(v)
}

// RotateVecZ rotates a homogeneous vector about the Z axis (degrees).
func RotateVecZ(angle float32, v Vec4) Vec4 {
	return RotationZ(angle).MulVec4(v)
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := range 4 {
		for c := range 4 {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// Inverse returns the inverse of the matrix.
// ok is false when the determinant is exactly zero; the returned matrix is
// then the zero matrix and must not be used.
func (m Mat4) Inverse() (inv Mat4, ok bool) {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	// 2x2 minors of the top two rows
	s0 := a00*a11 - a10*a01
	s1 := a00*a12 - a10*a02
	s2 := a00*a13 - a10*a03
	s3 := a01*a12 - a11*a02
	s4 := a01*a13 - a11*a03
	s5 := a02*a13 - a12*a03

	// 2x2 minors of the bottom two rows
	c5 := a22*a33 - a32*a23
	c4 := a21*a33 - a31*a23
	c3 := a21*a32 - a31*a22
	c2 := a20*a33 - a30*a23
	c1 := a20*a32 - a30*a22
	c0 := a20*a31 - a30*a21

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Mat4{}, false
	}
	d := 1 / det

	return Mat4{
		(a11*c5 - a12*c4 + a13*c3) * d,
		(-a01*c5 + a02*c4 - a03*c3) * d,
		(a31*s5 - a32*s4 + a33*s3) * d,
		(-a21*s5 + a22*s4 - a23*s3) * d,

		(-a10*c5 + a12*c2 - a13*c1) * d,
		(a00*c5 - a02*c2 + a03*c1) * d,
		(-a30*s5 + a32*s2 - a33*s1) * d,
		(a20*s5 - a22*s2 + a23*s1) * d,

		(a10*c4 - a11*c2 + a13*c0) * d,
		(-a00*c4 + a01*c2 - a03*c0) * d,
		(a30*s4 - a31*s2 + a33*s0) * d,
		(-a20*s4 + a21*s2 - a23*s0) * d,

		(-a10*c3 + a11*c1 - a12*c0) * d,
		(a00*c3 - a01*c1 + a02*c0) * d,
		(-a30*s3 + a31*s1 - a32*s0) * d,
		(a20*s3 - a21*s1 + a22*s0) * d,
	}, true
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float32

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}
