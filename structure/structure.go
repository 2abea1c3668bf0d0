// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// structure exposes the visual data structures of the library. Every type
// shares the same highlight surface: up to three cursors per marker row,
// per-cell fill highlights, value based variants of both, and data
// replacement which preserves whatever highlights were set before it.
package structure

import (
	"github.com/Lexer747/algo-viz/draw"
	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/structure/cells"
)

// Palette is the per-instance colour scheme, threaded explicitly into every
// resolver call so resolution stays a pure function of its arguments.
type Palette struct {
	First, Second, Third                 highlight.Color
	FirstSecond, FirstThird, SecondThird highlight.Color
	All                                  highlight.Color
	// ValueMatch colours the hits of the value based highlight calls.
	ValueMatch highlight.Color
	// Fill is the resting cell colour, Background the resting marker colour.
	Fill       highlight.Color
	Background highlight.Color
}

func DefaultPalette() Palette {
	return Palette{
		First:       highlight.Red,
		Second:      highlight.Blue,
		Third:       highlight.Green,
		FirstSecond: highlight.Purple,
		FirstThird:  highlight.Yellow,
		SecondThird: highlight.Teal,
		All:         highlight.Black,
		ValueMatch:  highlight.Black,
		Fill:        highlight.Gray,
		Background:  highlight.DarkGray,
	}
}

// ContainerColors overrides the instance palette for a single call, zero
// fields keep the palette colour.
type ContainerColors struct {
	First, Second, Third                 highlight.Color
	FirstSecond, FirstThird, SecondThird highlight.Color
	All                                  highlight.Color
}

// PointerColors overrides the three cursor colours for a single call, zero
// fields keep the palette colour.
type PointerColors struct {
	First, Second, Third highlight.Color
}

// Anchored is implemented by anything able to serve as a relative
// positioning anchor for another structure.
type Anchored interface {
	Bounds() cells.Bounds
}

type Movable interface {
	MoveTo(x, y int)
}

// MoveBelow places m directly below the anchor with gap blank lines between.
func MoveBelow(anchor Anchored, m Movable, gap int) {
	b := anchor.Bounds()
	m.MoveTo(b.X, b.Y+b.Height+gap)
}

// MoveRightOf places m directly right of the anchor with gap blank columns between.
func MoveRightOf(anchor Anchored, m Movable, gap int) {
	b := anchor.Bounds()
	m.MoveTo(b.X+b.Width+gap, b.Y)
}

// linear is the shared core of every structure: the backing data, the cell
// row currently on screen, and the owned highlight store. The store always
// outlives the row, rows are rebuilt wholesale on every data replacement
// while the store is carried over verbatim.
type linear[T comparable] struct {
	data    []T
	row     *cells.Row
	store   *highlight.Store
	palette Palette
	makeRow func([]T) *cells.Row
	buf     *draw.Buffer
}

func newLinear[T comparable](data []T, palette Palette, makeRow func([]T) *cells.Row) linear[T] {
	l := linear[T]{
		data:    data,
		row:     makeRow(data),
		store:   highlight.NewStore(),
		palette: palette,
		makeRow: makeRow,
		buf:     draw.NewBuffer(),
	}
	l.paint()
	return l
}

// Pointers highlights the marker row on one side at up to three indices.
// Cursors landing on the same cell collapse per the collision rules of
// [highlight.Pointers]. This replaces the previous pointer highlights on
// that side outright. A failed call changes nothing.
func (l *linear[T]) Pointers(indices []int, side highlight.Side, c PointerColors) error {
	m, err := highlight.Pointers(indices, l.pointerPalette(c))
	if err != nil {
		return err
	}
	if err := l.store.ReplacePointers(side, m); err != nil {
		return err
	}
	l.paint()
	return nil
}

// PointersOnValue puts a middle marker on every cell whose value equals
// val. NoColor uses the palette's ValueMatch colour.
func (l *linear[T]) PointersOnValue(val T, side highlight.Side, c highlight.Color) error {
	if c == highlight.NoColor {
		c = l.palette.ValueMatch
	}
	m := highlight.PointersByValue(l.data, val, c, l.palette.Background)
	if err := l.store.ReplacePointers(side, m); err != nil {
		return err
	}
	l.paint()
	return nil
}

// HighlightContainers fills up to three cells, coinciding indices collapse
// to the pair or triple colour per the collision rules of
// [highlight.Containers]. This replaces the previous container highlights
// outright. A failed call changes nothing.
func (l *linear[T]) HighlightContainers(indices []int, c ContainerColors) error {
	m, err := highlight.Containers(indices, l.containerPalette(c))
	if err != nil {
		return err
	}
	l.store.ReplaceContainers(m)
	l.paint()
	return nil
}

// HighlightContainersOnValue fills every cell whose value equals val.
// NoColor uses the palette's ValueMatch colour. No matches simply clears
// the container highlights.
func (l *linear[T]) HighlightContainersOnValue(val T, c highlight.Color) {
	if c == highlight.NoColor {
		c = l.palette.ValueMatch
	}
	l.store.ReplaceContainers(highlight.ContainersByValue(l.data, val, c))
	l.paint()
}

func (l *linear[T]) ClearContainerHighlights() {
	l.store.ClearContainers()
	l.paint()
}

func (l *linear[T]) ClearPointerHighlights(side highlight.Side) error {
	if err := l.store.ClearPointers(side); err != nil {
		return err
	}
	l.paint()
	return nil
}

func (l *linear[T]) MoveTo(x, y int) {
	l.row.MoveTo(x, y)
}

func (l *linear[T]) Bounds() cells.Bounds {
	return l.row.Bounds()
}

// Frame renders the current visual state into one printable string.
func (l *linear[T]) Frame() string {
	l.buf.Reset()
	l.row.Render(l.buf)
	return l.buf.Paint()
}

// Render draws the structure into shared buffers so it can be composed with
// other renderables, see [Group].
func (l *linear[T]) Render(buf *draw.Buffer) {
	l.row.Render(buf)
}

func (l *linear[T]) paint() {
	highlight.Paint(l.row, l.store, len(l.data), highlight.Defaults{
		Fill:       l.palette.Fill,
		Background: l.palette.Background,
	})
}

// updateValue replaces the backing data wholesale: fresh cells at the old
// position, then the old highlight state is carried over verbatim and
// repainted against however many cells now exist. Entries beyond the new
// length go dormant rather than being dropped, they re-appear if a later
// update grows the data back over them.
func (l *linear[T]) updateValue(newData []T) {
	if len(l.data) == 0 && len(newData) == 0 {
		return
	}
	snap := highlight.Transfer(l.store)
	b := l.row.Bounds()
	row := l.makeRow(newData)
	row.MoveTo(b.X, b.Y)

	l.data = newData
	l.row = row
	l.store = highlight.NewStore()
	l.store.Restore(snap)
	l.paint()
}

func (l *linear[T]) containerPalette(c ContainerColors) highlight.ContainerPalette {
	return highlight.ContainerPalette{
		First:       pick(c.First, l.palette.First),
		Second:      pick(c.Second, l.palette.Second),
		Third:       pick(c.Third, l.palette.Third),
		FirstSecond: pick(c.FirstSecond, l.palette.FirstSecond),
		FirstThird:  pick(c.FirstThird, l.palette.FirstThird),
		SecondThird: pick(c.SecondThird, l.palette.SecondThird),
		All:         pick(c.All, l.palette.All),
	}
}

func (l *linear[T]) pointerPalette(c PointerColors) highlight.PointerPalette {
	return highlight.PointerPalette{
		First:      pick(c.First, l.palette.First),
		Second:     pick(c.Second, l.palette.Second),
		Third:      pick(c.Third, l.palette.Third),
		Background: l.palette.Background,
	}
}

func pick(override, fallback highlight.Color) highlight.Color {
	if override != highlight.NoColor {
		return override
	}
	return fallback
}
