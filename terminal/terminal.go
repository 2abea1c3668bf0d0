// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal

import (
	"context"
	"io"
	"os"

	"github.com/Lexer747/algo-viz/terminal/ansi"
	"github.com/Lexer747/algo-viz/utils/errors"

	"golang.org/x/term"
)

type Size struct {
	Height int
	Width  int
}

type Terminal struct {
	size         Size
	sizeCallback func() (Size, error)
	stdin        io.Reader
	stdout       io.Writer
	realTerminal bool
	listeners    []Listener
}

// NewTerminal wraps the process stdout, falling back to a 20x80 size when no
// real terminal is attached (e.g. go tests).
func NewTerminal() (*Terminal, error) {
	t := &Terminal{
		size:         Size{Height: 20, Width: 80},
		sizeCallback: getCurrentTerminalSize,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		realTerminal: isRunningUnderTerminal(),
		listeners:    []Listener{},
	}
	if t.realTerminal {
		if err := t.UpdateCurrentTerminalSize(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewFixedSizeTerminal is [NewTerminal] with the size pinned to s, it never
// reacts to resizes.
func NewFixedSizeTerminal(s Size) (*Terminal, error) {
	return &Terminal{
		size:         s,
		sizeCallback: func() (Size, error) { return s, nil },
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		realTerminal: false,
		listeners:    []Listener{},
	}, nil
}

// NewTestTerminal substitutes both file handles and the size probe so tests
// can drive a terminal without owning a tty.
func NewTestTerminal(stdin io.Reader, stdout io.Writer, sizeCallback func() Size) (*Terminal, error) {
	t := &Terminal{
		size:         Size{},
		sizeCallback: func() (Size, error) { return sizeCallback(), nil },
		stdin:        stdin,
		stdout:       stdout,
		realTerminal: false,
		listeners:    []Listener{},
	}
	return t, t.UpdateCurrentTerminalSize()
}

func (t *Terminal) Size() Size {
	return t.size
}

func (t *Terminal) UpdateCurrentTerminalSize() error {
	size, err := t.sizeCallback()
	if err != nil {
		return err
	}
	t.size = size
	return nil
}

func (t *Terminal) Print(s string) {
	_, _ = io.WriteString(t.stdout, s)
}

// ClearScreen erases the whole display, also homing the cursor when [home].
func (t *Terminal) ClearScreen(home bool) error {
	toWrite := ansi.Clear
	if home {
		toWrite += ansi.Home
	}
	_, err := io.WriteString(t.stdout, toWrite)
	return errors.Wrap(err, "failed to clear screen")
}

type Listener struct {
	// Name is used for if a listener errors for easier identification, it may be omitted.
	Name string
	// Applicable is the applicability of this listener, i.e. for which input runes do you want this action to
	// be fired
	Applicable func(rune) bool
	// Action the callback which will be invoked when a user inputs the applicable rune.
	Action func() error
}

// StartRaw takes ownership of the stdin/stdout and control of the incoming context. It will asynchronously
// block on the users input and forward characters to the relevant listener. By default a `ctrl+C` listener is
// added which will call the [stop] function when detected.
//
// The returned cleanup restores the terminal state and must run even when
// StartRaw errors. To block a main thread until the `ctrl+C` listener is
// hit, simply wait on the input [ctx.Done()] channel.
func (t *Terminal) StartRaw(ctx context.Context, stop context.CancelFunc, listeners ...Listener) (func(), error) {
	cleanup := func() {}
	if t.realTerminal {
		inFd := int(os.Stdin.Fd())
		oldState, err := term.MakeRaw(inFd)
		if err != nil {
			return cleanup, errors.Wrap(err, "failed to set terminal to raw mode")
		}
		t.Print(ansi.HideCursor)
		cleanup = func() {
			t.Print(ansi.ShowCursor)
			_ = term.Restore(inFd, oldState)
		}
	}
	controlCListener := Listener{
		Name:       "ctrl+c",
		Applicable: func(r rune) bool { return r == '\u0003' },
		Action: func() error {
			stop()
			return nil
		},
	}
	t.listeners = append(t.listeners, controlCListener)
	t.listeners = append(t.listeners, listeners...)
	go t.beingListening(ctx)
	return cleanup, nil
}

func (t *Terminal) beingListening(ctx context.Context) {
	buffer := make([]byte, 10)
	var err error
	var n int
	inputChannel := make(chan struct{})
	// Create a go-routine which continuously reads from stdin
	go func() {
		defer close(inputChannel)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				// This is blocking hence why the go-routine wrapper exists, we still only free ourself when
				// the outer context is done which is racey.
				n, err = t.stdin.Read(buffer)
				inputChannel <- struct{}{}
			}
		}
	}()

	for {
		// Spin forever, waiting on input from the context which has cancelled us from else where, or a new
		// input char.
		select {
		case <-ctx.Done():
			return
		case <-inputChannel:
			if err != nil {
				panic(errors.Wrap(err, "unexpected read failure in terminal"))
			}
			if n == 0 {
				continue
			}
			r := []rune(string(buffer[:n]))[0]
			for _, l := range t.listeners {
				if l.Applicable(r) {
					actionErr := l.Action()
					if actionErr != nil {
						panic(errors.Wrapf(actionErr, "unexpected failure Action %q in terminal", l.Name))
					}
				}
			}
			for i := 0; i < n; i++ {
				buffer[i] = 0
			}
		}
	}
}

// getCurrentTerminalSize gets the current terminal size or error if the program doesn't have a terminal
// attached (e.g. go tests).
func getCurrentTerminalSize() (Size, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	return Size{Height: h, Width: w}, errors.Wrap(err, "failed to get terminal size")
}

func isRunningUnderTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
