// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure

import (
	"slices"
	"strconv"

	"github.com/Lexer747/algo-viz/structure/cells"
	"github.com/Lexer747/algo-viz/utils/sliceutils"
)

// Array visualizes a slice of ints as one row of cells.
type Array struct {
	linear[int]
}

func NewArray(data []int) *Array {
	return NewArrayWithPalette(data, DefaultPalette())
}

func NewArrayWithPalette(data []int, palette Palette) *Array {
	makeRow := func(d []int) *cells.Row {
		return cells.New(sliceutils.Map(d, strconv.Itoa), cells.Config{})
	}
	return &Array{linear: newLinear(slices.Clone(data), palette, makeRow)}
}

// UpdateValue replaces the whole backing slice, the cells are rebuilt for
// the new length and previously applied highlights are carried over.
func (a *Array) UpdateValue(newData []int) {
	a.updateValue(slices.Clone(newData))
}

func (a *Array) Values() []int {
	return slices.Clone(a.data)
}
