// SPDX-License-Identifier: MIT
package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrEigenFailed indicates that no eigen routine converged for the input.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed")

	// ErrExpmFailed indicates that the Padé exponential panicked or produced
	// non-finite values.
	ErrExpmFailed = errors.New("linalg: matrix exponential failed")
)

func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
