// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package highlight_test

import (
	"fmt"
	"testing"

	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/utils/errors"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var containerPalette = highlight.ContainerPalette{
	First:       "R",
	Second:      "G",
	Third:       "B",
	FirstSecond: "RG",
	FirstThird:  "RB",
	SecondThird: "GB",
	All:         "K",
}

var pointerPalette = highlight.PointerPalette{
	First:      "R",
	Second:     "G",
	Third:      "B",
	Background: "bg",
}

func TestContainers(t *testing.T) {
	t.Parallel()
	type Case struct {
		Indices  []int
		Expected map[int]highlight.Color
	}
	cases := []Case{
		{Indices: []int{2}, Expected: map[int]highlight.Color{2: "R"}},
		{Indices: []int{0, 4}, Expected: map[int]highlight.Color{0: "R", 4: "G"}},
		{Indices: []int{3, 3}, Expected: map[int]highlight.Color{3: "RG"}},
		{Indices: []int{0, 2, 4}, Expected: map[int]highlight.Color{0: "R", 2: "G", 4: "B"}},
		{Indices: []int{2, 2, 2}, Expected: map[int]highlight.Color{2: "K"}},
		{Indices: []int{1, 1, 4}, Expected: map[int]highlight.Color{1: "RG", 4: "B"}},
		{Indices: []int{1, 4, 1}, Expected: map[int]highlight.Color{1: "RB", 4: "G"}},
		{Indices: []int{4, 1, 1}, Expected: map[int]highlight.Color{4: "R", 1: "GB"}},
	}
	for i, test := range cases {
		test := test
		t.Run(fmt.Sprintf("%d:%v", i, test.Indices), func(t *testing.T) {
			t.Parallel()
			actual, err := highlight.Containers(test.Indices, containerPalette)
			assert.NilError(t, err)
			assert.Check(t, is.DeepEqual(test.Expected, actual))
		})
	}
}

func TestPointers(t *testing.T) {
	t.Parallel()
	lone := func(c highlight.Color) highlight.Marker { return highlight.Marker{Left: "bg", Middle: c, Right: "bg"} }
	type Case struct {
		Indices  []int
		Expected map[int]highlight.Marker
	}
	cases := []Case{
		{Indices: []int{2}, Expected: map[int]highlight.Marker{2: lone("R")}},
		{Indices: []int{0, 4}, Expected: map[int]highlight.Marker{0: lone("R"), 4: lone("G")}},
		{
			Indices:  []int{3, 3},
			Expected: map[int]highlight.Marker{3: {Left: "R", Middle: "bg", Right: "G"}},
		},
		{
			// first and third cursor collide, the pair takes the outer glyphs so it can't be mistaken for a
			// lone cursor
			Indices: []int{1, 3, 1},
			Expected: map[int]highlight.Marker{
				1: {Left: "R", Middle: "bg", Right: "B"},
				3: lone("G"),
			},
		},
		{
			Indices: []int{0, 0, 2},
			Expected: map[int]highlight.Marker{
				0: {Left: "R", Middle: "bg", Right: "G"},
				2: lone("B"),
			},
		},
		{
			Indices: []int{2, 0, 0},
			Expected: map[int]highlight.Marker{
				0: {Left: "G", Middle: "bg", Right: "B"},
				2: lone("R"),
			},
		},
		{
			Indices:  []int{5, 5, 5},
			Expected: map[int]highlight.Marker{5: {Left: "R", Middle: "G", Right: "B"}},
		},
	}
	for i, test := range cases {
		test := test
		t.Run(fmt.Sprintf("%d:%v", i, test.Indices), func(t *testing.T) {
			t.Parallel()
			actual, err := highlight.Pointers(test.Indices, pointerPalette)
			assert.NilError(t, err)
			assert.Check(t, is.DeepEqual(test.Expected, actual))
		})
	}
}

func TestResolveIndexCount(t *testing.T) {
	t.Parallel()
	for _, indices := range [][]int{{}, nil, {1, 2, 3, 4}, {0, 0, 0, 0, 0}} {
		indices := indices
		t.Run(fmt.Sprintf("%v", indices), func(t *testing.T) {
			t.Parallel()
			containers, err := highlight.Containers(indices, containerPalette)
			assert.Check(t, errors.Is(err, highlight.ErrInvalidIndexCount), "got %v", err)
			assert.Check(t, is.Nil(containers))
			pointers, err := highlight.Pointers(indices, pointerPalette)
			assert.Check(t, errors.Is(err, highlight.ErrInvalidIndexCount), "got %v", err)
			assert.Check(t, is.Nil(pointers))
		})
	}
}

func TestContainersByValue(t *testing.T) {
	t.Parallel()
	data := []int{0, 5, 0, 5, 0}
	actual := highlight.ContainersByValue(data, 0, "P")
	assert.Check(t, is.DeepEqual(map[int]highlight.Color{0: "P", 2: "P", 4: "P"}, actual))

	// no matches is an empty map, not an error
	actual = highlight.ContainersByValue(data, 9, "P")
	assert.Check(t, is.DeepEqual(map[int]highlight.Color{}, actual))

	actual = highlight.ContainersByValue([]int{}, 0, "P")
	assert.Check(t, is.DeepEqual(map[int]highlight.Color{}, actual))
}

func TestPointersByValue(t *testing.T) {
	t.Parallel()
	data := []rune("abcba")
	actual := highlight.PointersByValue(data, 'b', "P", "bg")
	expected := map[int]highlight.Marker{
		1: {Left: "bg", Middle: "P", Right: "bg"},
		3: {Left: "bg", Middle: "P", Right: "bg"},
	}
	assert.Check(t, is.DeepEqual(expected, actual))
	assert.Check(t, is.DeepEqual(map[int]highlight.Marker{}, highlight.PointersByValue(data, 'z', "P", "bg")))
}
