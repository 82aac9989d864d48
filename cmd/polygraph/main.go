// SPDX-License-Identifier: MIT
// Command polygraph computes walk classes, flip-flop profiles and deceptive
// function certificates for generated graph families.
//
//	polygraph classes pyramid-prism 4 1
//	polygraph flipflop spider-torus 2 2 3 2 --exact
//	polygraph check nonnegative orthobicupola 3 --subset minimal
//	polygraph deceptive snowflake 2 3 2 --output text
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
