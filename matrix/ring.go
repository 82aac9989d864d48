// SPDX-License-Identifier: MIT
// Package: matrix
//
// ring.go — numeric capability consumed by every generic kernel.
//
// Purpose:
//   - Let one Dense[T] implementation serve both the fast float64 path and
//     the exact arbitrary-precision path. The element type is chosen by the
//     caller through the Ring value; no kernel branches on a mode flag.
//
// Contract:
//   - Add and Mul never mutate their operands (BigInt returns fresh values).
//   - Cmp is a total order consistent with Equal.
//   - AppendBytes yields the same bytes for equal values; Dense row hashing
//     relies on it.
package matrix

import (
	"encoding/binary"
	"math"
	"math/big"
)

// Ring is the arithmetic surface over element type T.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 converts an integer literal into T.
	FromInt64(v int64) T
	// Add returns a+b.
	Add(a, b T) T
	// Sub returns a-b.
	Sub(a, b T) T
	// Mul returns a*b.
	Mul(a, b T) T
	// Cmp returns -1, 0, +1 as a <, ==, > b.
	Cmp(a, b T) int
	// IsZero reports whether a == 0.
	IsZero(a T) bool
	// Float64 converts a to the nearest float64.
	Float64(a T) float64
	// AppendBytes appends a canonical encoding of a to dst.
	AppendBytes(dst []byte, a T) []byte
	// Exact reports whether arithmetic is exact (no rounding).
	Exact() bool
	// Name is a short label used in logs ("float64", "bigint").
	Name() string
}

// Float64Ring is the fast, inexact ring backed by IEEE-754 doubles.
type Float64Ring struct{}

// BigIntRing is the exact ring backed by math/big integers.
type BigIntRing struct{}

// Ring instances; both types are stateless.
var (
	Float64 Ring[float64]  = Float64Ring{}
	BigInt  Ring[*big.Int] = BigIntRing{}
)

func (Float64Ring) Zero() float64               { return 0 }
func (Float64Ring) One() float64                { return 1 }
func (Float64Ring) FromInt64(v int64) float64   { return float64(v) }
func (Float64Ring) Add(a, b float64) float64    { return a + b }
func (Float64Ring) Sub(a, b float64) float64    { return a - b }
func (Float64Ring) Mul(a, b float64) float64    { return a * b }
func (Float64Ring) IsZero(a float64) bool       { return a == 0 }
func (Float64Ring) Float64(a float64) float64   { return a }
func (Float64Ring) Exact() bool                 { return false }
func (Float64Ring) Name() string                { return "float64" }
func (Float64Ring) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AppendBytes writes the IEEE bits; -0 is folded into +0 so equal values hash equally.
func (Float64Ring) AppendBytes(dst []byte, a float64) []byte {
	if a == 0 {
		a = 0
	}

	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(a))
}

func (BigIntRing) Zero() *big.Int             { return new(big.Int) }
func (BigIntRing) One() *big.Int              { return big.NewInt(1) }
func (BigIntRing) FromInt64(v int64) *big.Int { return big.NewInt(v) }
func (BigIntRing) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigIntRing) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigIntRing) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigIntRing) Cmp(a, b *big.Int) int      { return a.Cmp(b) }
func (BigIntRing) IsZero(a *big.Int) bool     { return a.Sign() == 0 }
func (BigIntRing) Exact() bool                { return true }
func (BigIntRing) Name() string               { return "bigint" }

// Float64 rounds to the nearest double; huge walk counts may become +Inf.
func (BigIntRing) Float64(a *big.Int) float64 {
	f, _ := new(big.Float).SetInt(a).Float64()

	return f
}

// AppendBytes writes a sign byte, a length prefix and the magnitude so
// distinct values never share an encoding inside a row.
func (BigIntRing) AppendBytes(dst []byte, a *big.Int) []byte {
	mag := a.Bytes()
	dst = append(dst, byte(a.Sign()+1))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(mag)))

	return append(dst, mag...)
}
