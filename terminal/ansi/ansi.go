// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import "strconv"

type ED int // Erase in Display

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	CursorToScreenEnd         ED = 0
	CursorToScreenBegin       ED = 1
	CursorScreen              ED = 2
	CursorScreenAndScrollBack ED = 3

	R = CSI + "0m"
)

var s = strconv.Itoa

var Clear = EraseInDisplay(CursorScreen)
var Home = CursorPosition(1, 1)
var HideCursor = CSI + "?25l"
var ShowCursor = CSI + "?25h"

func CursorUp(n int) string      { return CSI + s(n) + "A" }
func CursorDown(n int) string    { return CSI + s(n) + "B" }
func CursorForward(n int) string { return CSI + s(n) + "C" }
func CursorBack(n int) string    { return CSI + s(n) + "D" }

func CursorPosition(row, column int) string { return CSI + s(row) + ";" + s(column) + "H" }

func EraseInDisplay(n ED) string { return CSI + s(int(n)) + "J" }

// Foreground paints str in the given 8-bit palette colour.
func Foreground(code uint8, str string) string {
	return CSI + "38;5;" + s(int(code)) + "m" + str + R
}

// Background paints the cells behind str in the given 8-bit palette colour.
func Background(code uint8, str string) string {
	return CSI + "48;5;" + s(int(code)) + "m" + str + R
}

// OnBackground combines a foreground and background colour for str.
func OnBackground(fg, bg uint8, str string) string {
	return CSI + "38;5;" + s(int(fg)) + ";48;5;" + s(int(bg)) + "m" + str + R
}
