// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// highlight implements the colour state shared by every linear structure:
// resolving up to three simultaneous index marks into per-slot colours,
// persisting them, and re-applying them onto freshly built slots when the
// backing data is replaced wholesale.
package highlight

import (
	"strconv"

	"github.com/Lexer747/algo-viz/utils/errors"
)

// Color is an opaque colour handle, the renderer decides what it maps to.
// The zero value means "no colour".
type Color string

const NoColor Color = ""

// Handles understood by the bundled cell renderer, callers with their own
// renderer may mint any handle they like.
const (
	Red      Color = "red"
	Blue     Color = "blue"
	Green    Color = "green"
	Purple   Color = "purple"
	Yellow   Color = "yellow"
	Teal     Color = "teal"
	Black    Color = "black"
	Gray     Color = "gray"
	DarkGray Color = "dark-gray"
	White    Color = "white"
)

// Marker is the colour triple for the three cursor glyphs attached to one
// slot, drawn left to right.
type Marker struct {
	Left, Middle, Right Color
}

// Side selects which marker row of a slot is being addressed.
type Side int

const (
	Top    Side = 0
	Bottom Side = 1
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "side(" + strconv.Itoa(int(s)) + ")"
	}
}

var (
	// ErrInvalidIndexCount is returned when a highlight call receives an index list outside 1-3, the caller's
	// state is never mutated by such a call.
	ErrInvalidIndexCount = errors.New("between 1 and 3 indices required")
	// ErrInvalidSide is returned for any [Side] other than [Top] or [Bottom], the caller's state is never
	// mutated by such a call.
	ErrInvalidSide = errors.New("side must be top or bottom")
)
