// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure_test

import (
	"testing"

	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/structure"
	"github.com/Lexer747/algo-viz/utils/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestStringRendersQuotedRunes(t *testing.T) {
	t.Parallel()
	s := structure.NewString("hi")
	assert.Check(t, is.Equal(2, s.Row().SlotCount()))
	frame := th.StripANSI(s.Frame())
	th.AssertContains(t, frame, `"`)
	th.AssertContains(t, frame, "h")
	th.AssertContains(t, frame, "i")
}

func TestEmptyStringIsOneQuotedCell(t *testing.T) {
	t.Parallel()
	s := structure.NewString("")
	// one visual cell exists but the backing length is zero
	assert.Check(t, is.Equal(1, s.Row().SlotCount()))
	assert.Check(t, is.Equal("", s.Text()))

	// highlights against the empty string stay dormant rather than painting
	s.HighlightContainersOnValue('x', "P")
	assert.Check(t, is.Equal(highlight.Gray, s.Row().Fill(0)))
}

func TestStringPointersOnValue(t *testing.T) {
	t.Parallel()
	s := structure.NewString("abcba")
	assert.NilError(t, s.PointersOnValue('b', highlight.Bottom, highlight.NoColor))
	// NoColor falls back to the palette's value match colour
	lone := highlight.Marker{Left: highlight.DarkGray, Middle: highlight.Black, Right: highlight.DarkGray}
	assert.Check(t, is.DeepEqual(map[int]highlight.Marker{1: lone, 3: lone}, s.StoreSnapshot().Bottom))
	assert.Check(t, is.DeepEqual(lone, s.Row().Markers(1, highlight.Bottom)))
}

func TestStringHighlightsSurviveReplacement(t *testing.T) {
	t.Parallel()
	s := structure.NewString("gopher")
	assert.NilError(t, s.HighlightContainers([]int{0, 5}, structure.ContainerColors{}))

	s.UpdateValue("go")
	assert.Check(t, is.Equal(highlight.Red, s.Row().Fill(0)))
	assert.Check(t, is.Equal(highlight.Gray, s.Row().Fill(1)))

	s.UpdateValue("gopher")
	assert.Check(t, is.Equal(highlight.Red, s.Row().Fill(0)))
	assert.Check(t, is.Equal(highlight.Blue, s.Row().Fill(5)))
	assert.Check(t, is.Equal("gopher", s.Text()))
}
