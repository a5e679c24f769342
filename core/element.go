// SPDX-License-Identifier: MIT

package core

import "math/cmplx"

// Element is the set of value types containers and expressions are generic over.
// The float and complex members match the four BLAS precisions. Division by
// zero over the integer members is reported as ErrDivideByZero before any
// destination is written.
type Element interface {
	float32 | float64 | complex64 | complex128 | int | int32 | int64
}

// Zero returns the zero value of T, the value every structural zero reads as.
func Zero[T Element]() T {
	var z T
	return z
}

// IsZero reports whether v equals the zero value of T.
// NaN is never zero.
func IsZero[T Element](v T) bool {
	var z T
	return v == z
}

// IsInteger reports whether T is one of the integer members of Element.
func IsInteger[T Element]() bool {
	switch any(Zero[T]()).(type) {
	case int, int32, int64:
		return true
	}
	return false
}

// Conj returns the complex conjugate of v; real types are returned unchanged.
func Conj[T Element](v T) T {
	switch x := any(v).(type) {
	case complex128:
		return any(cmplx.Conj(x)).(T)
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	}
	return v
}
