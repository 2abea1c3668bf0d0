// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package demo

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Lexer747/algo-viz/scene"
	"github.com/Lexer747/algo-viz/terminal"
	"github.com/Lexer747/algo-viz/utils/check"
	"github.com/Lexer747/algo-viz/utils/errors"
	"github.com/Lexer747/algo-viz/utils/exit"
)

type Config struct {
	walkthrough *string
	delay       *time.Duration
	termSize    *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		walkthrough: f.String("walkthrough", "bubble-sort",
			"which bundled walkthrough to play, one of: "+strings.Join(walkthroughNames(), ", ")),
		delay: f.Duration("delay", 400*time.Millisecond, "how long each frame stays on screen"),
		termSize: f.String("term-size", "", "controls the terminal size and fixes it to the input,"+
			" input is in the form \"<H>x<W>\" e.g. 20x80. H and W must be integers - where H == height, and W == width of the terminal."),
		FlagSet: f,
	}
	f.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s: plays a bundled algorithm walkthrough in the terminal\n"+
			"\t demo [options]\n\n"+
			"e.g. %s demo -walkthrough binary-search\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	return ret
}

func RunDemo(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	build, ok := walkthroughs[*c.walkthrough]
	if !ok {
		exit.OnError(errors.Errorf("unknown walkthrough %q, expected one of: %s",
			*c.walkthrough, strings.Join(walkthroughNames(), ", ")))
	}

	term, err := makeTerminal(c.termSize)
	exit.OnErrorMsg(err, "failed to open terminal to draw")

	s := scene.New(*c.delay)
	build(s)
	// exiting happens out here so the raw terminal state is always restored
	exit.OnErrorMsg(play(s, term), "failed to play walkthrough")
}

func play(s *scene.Scene, term *terminal.Terminal) error {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanup, err := term.StartRaw(ctx, stop)
	defer cleanup()
	if err != nil {
		return errors.Wrap(err, "failed to start terminal")
	}
	if err := s.Play(ctx, term); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	term.Print("\n")
	return nil
}

func makeTerminal(termSize *string) (*terminal.Terminal, error) {
	if termSize == nil || *termSize == "" {
		return terminal.NewTerminal()
	}
	var h, w int
	if _, err := fmt.Sscanf(*termSize, "%dx%d", &h, &w); err != nil {
		return nil, errors.Wrapf(err, "couldn't parse term-size %q", *termSize)
	}
	return terminal.NewFixedSizeTerminal(terminal.Size{Height: h, Width: w})
}
