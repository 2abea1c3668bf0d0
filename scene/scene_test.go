// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scene_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Lexer747/algo-viz/scene"
	"github.com/Lexer747/algo-viz/structure"
	"github.com/Lexer747/algo-viz/terminal/th"
	"github.com/Lexer747/algo-viz/utils/errors"
	uth "github.com/Lexer747/algo-viz/utils/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestPlayWritesEveryFrame(t *testing.T) {
	t.Parallel()
	_, stdout, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)

	s := scene.New(0)
	arr := structure.NewArray([]int{1, 2})
	s.Capture(arr)
	arr.UpdateValue([]int{3, 4})
	s.Capture(arr)
	assert.Check(t, is.Equal(2, s.Len()))

	assert.NilError(t, s.Play(context.Background(), term))
	written := uth.StripANSI(stdout.ReadString(t))
	uth.AssertContains(t, written, "1")
	uth.AssertContains(t, written, "4")
}

func TestCaptureIsASnapshot(t *testing.T) {
	t.Parallel()
	_, stdout, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)

	s := scene.New(0)
	arr := structure.NewArray([]int{7})
	s.Capture(arr)
	// mutating the structure after the capture must not rewrite history
	arr.UpdateValue([]int{8})

	assert.NilError(t, s.Play(context.Background(), term))
	written := uth.StripANSI(stdout.ReadString(t))
	uth.AssertContains(t, written, "7")
	assert.Check(t, !strings.Contains(written, "8"))
}

func TestPlayStopsWhenCancelled(t *testing.T) {
	t.Parallel()
	_, _, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)

	// holds long enough that only cancellation can end the playback
	s := scene.New(time.Minute)
	arr := structure.NewArray([]int{1})
	s.Capture(arr)
	s.Capture(arr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	playErr := s.Play(ctx, term)
	assert.Check(t, errors.Is(playErr, context.Canceled), "got %v", playErr)
}
