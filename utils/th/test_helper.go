// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// StripANSI removes every CSI escape from s, leaving only the printable
// text, so frame assertions can ignore colour and cursor movement.
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 0x40 && r <= 0x7E) && r != '[' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AssertContains checks that whole contains part, printing both on failure.
func AssertContains(t *testing.T, whole, part string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Check(t, is.Contains(whole, part), msgAndArgs...)
}
