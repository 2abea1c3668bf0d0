// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// check panics on broken internal invariants, it is never used for user
// input validation.
package check

import "fmt"

func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic(assertMsg)
	}
}

func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic(fmt.Sprintf(format, a...))
	}
}

// InRange asserts that i is a valid index into a container of length n.
func InRange(i, n int, what string) {
	Checkf(i >= 0 && i < n, "%s index %d out of range [0,%d)", what, i, n)
}
