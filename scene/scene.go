// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// scene records the visual states of an algorithm walkthrough as discrete
// frames and plays them back to a terminal. No interpolation happens, a
// frame is exactly what the structures rendered when it was captured.
package scene

import (
	"context"
	"time"

	"github.com/Lexer747/algo-viz/terminal"
)

// Framer renders one printable frame of itself.
type Framer interface {
	Frame() string
}

type Scene struct {
	frames      []frame
	defaultHold time.Duration
}

type frame struct {
	content string
	hold    time.Duration
}

func New(defaultHold time.Duration) *Scene {
	return &Scene{frames: []frame{}, defaultHold: defaultHold}
}

// Capture snapshots f right now, later mutation of f doesn't change the
// recorded frame.
func (s *Scene) Capture(f Framer) {
	s.CaptureFor(f, s.defaultHold)
}

func (s *Scene) CaptureFor(f Framer, hold time.Duration) {
	s.frames = append(s.frames, frame{content: f.Frame(), hold: hold})
}

func (s *Scene) Len() int {
	return len(s.frames)
}

// Play clears the screen and prints each recorded frame in order, holding
// every frame for its recorded duration. Returns early with the context
// cause when cancelled, e.g. by the terminal's ctrl+C listener.
func (s *Scene) Play(ctx context.Context, term *terminal.Terminal) error {
	for _, f := range s.frames {
		if err := term.ClearScreen(true); err != nil {
			return err
		}
		term.Print(f.content)
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-time.After(f.hold):
		}
	}
	return nil
}
