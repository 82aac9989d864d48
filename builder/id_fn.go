// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// id_fn.go - vertex ID schemes.
//
// IDs are labels only: constructors address vertices by index and the walk
// analysis orders rows by insertion, so any injective scheme is valid.
package builder

import (
	"strconv"
)

// IDFn maps a vertex index to its ID. It must be injective.
type IDFn func(int) string

// DefaultIDFn yields decimal IDs "0", "1", ...
func DefaultIDFn(i int) string {
	return strconv.Itoa(i)
}

// PrefixIDFn yields prefix followed by the decimal index, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(i int) string {
		return prefix + strconv.Itoa(i)
	}
}

// HexIDFn yields lowercase hexadecimal IDs "0", ..., "a", ..., "ff".
func HexIDFn(i int) string {
	return strconv.FormatInt(int64(i), 16)
}
