// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure

import (
	"github.com/Lexer747/algo-viz/structure/cells"
	t "github.com/Lexer747/algo-viz/terminal/typography"
	"github.com/Lexer747/algo-viz/utils/sliceutils"
)

// String visualizes a string as a row of one cell per rune, wrapped in
// quote glyphs. An empty string still draws a single quoted empty cell, its
// backing length is zero so highlights stay dormant until text appears.
type String struct {
	linear[rune]
}

func NewString(s string) *String {
	return NewStringWithPalette(s, DefaultPalette())
}

func NewStringWithPalette(s string, palette Palette) *String {
	makeRow := func(d []rune) *cells.Row {
		labels := sliceutils.Map(d, func(r rune) string { return string(r) })
		if len(labels) == 0 {
			labels = []string{""}
		}
		return cells.New(labels, cells.Config{Lead: t.Quote, Trail: t.Quote})
	}
	return &String{linear: newLinear([]rune(s), palette, makeRow)}
}

// UpdateValue replaces the whole string, the cells are rebuilt for the new
// length and previously applied highlights are carried over.
func (s *String) UpdateValue(newText string) {
	s.updateValue([]rune(newText))
}

func (s *String) Text() string {
	return string(s.data)
}
