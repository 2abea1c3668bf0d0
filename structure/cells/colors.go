// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package cells

import (
	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/terminal/ansi"
)

// 256-colour codes for the built-in handles. Unknown handles draw as white
// so a typo is visible rather than invisible.
var codes = map[highlight.Color]uint8{
	highlight.Red:      196,
	highlight.Blue:     33,
	highlight.Green:    40,
	highlight.Purple:   129,
	highlight.Yellow:   178,
	highlight.Teal:     37,
	highlight.Black:    16,
	highlight.Gray:     245,
	highlight.DarkGray: 237,
	highlight.White:    231,
}

func code(c highlight.Color) uint8 {
	if v, ok := codes[c]; ok {
		return v
	}
	return codes[highlight.White]
}

// Paint colours str with the handle's foreground colour, [highlight.NoColor]
// leaves str unstyled.
func Paint(c highlight.Color, str string) string {
	if c == highlight.NoColor {
		return str
	}
	return ansi.Foreground(code(c), str)
}
