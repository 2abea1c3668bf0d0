// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package demo

import (
	"testing"

	"github.com/Lexer747/algo-viz/scene"
	"github.com/Lexer747/algo-viz/terminal/th"
	uth "github.com/Lexer747/algo-viz/utils/th"
	"gotest.tools/v3/assert"
)

func TestWalkthroughsBuildScenes(t *testing.T) {
	t.Parallel()
	for name, build := range walkthroughs {
		name, build := name, build
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := scene.New(0)
			build(s)
			assert.Check(t, s.Len() > 0, "walkthrough %q recorded no frames", name)
		})
	}
}

func TestPlayWritesWalkthrough(t *testing.T) {
	t.Parallel()
	_, stdout, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)

	s := scene.New(0)
	binarySearch(s)
	assert.NilError(t, play(s, term))
	// a whole walkthrough is bigger than ReadString's buffer
	buffer := make([]byte, 1<<20)
	n, err := stdout.Read(buffer)
	assert.NilError(t, err)
	written := uth.StripANSI(string(buffer[:n]))
	uth.AssertContains(t, written, "binary search")
	uth.AssertContains(t, written, "found 9")
}

func TestMakeTerminal(t *testing.T) {
	t.Parallel()
	size := "12x60"
	term, err := makeTerminal(&size)
	assert.NilError(t, err)
	assert.Equal(t, 12, term.Size().Height)
	assert.Equal(t, 60, term.Size().Width)

	bad := "sixty"
	_, err = makeTerminal(&bad)
	assert.Check(t, err != nil)
}
