// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// cells draws a linear structure as one row of equal-width box cells, each
// cell owning three cursor glyphs above and three below. It is the concrete
// [highlight.SlotRenderer] used by every structure in this library.
package cells

import (
	"strings"
	"unicode/utf8"

	"github.com/Lexer747/algo-viz/draw"
	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/terminal/ansi"
	t "github.com/Lexer747/algo-viz/terminal/typography"
	"github.com/Lexer747/algo-viz/utils/check"
)

// Bounds is the rectangle a row occupies, in 1-based terminal coordinates,
// including both marker lines.
type Bounds struct {
	X, Y          int
	Width, Height int
}

type Config struct {
	// Lead and Trail are decoration glyphs drawn beside the first and last cell, e.g. string quotes. They
	// are not slots and never highlighted.
	Lead, Trail string
	// Separator is drawn between adjacent cells on the value line, e.g. the linked-list arrow.
	Separator string
	// Frame draws a box around the whole row, marker lines included.
	Frame bool
}

// Row implements [highlight.SlotRenderer]. Slot i draws the i'th label, in
// data order, the geometry is fixed at construction, only colours change
// afterwards.
type Row struct {
	labels []string
	cfg    Config
	inner  int
	x, y   int

	fills  []highlight.Color
	top    []highlight.Marker
	bottom []highlight.Marker
}

func New(labels []string, cfg Config) *Row {
	inner := 5 // room for the three marker glyphs and their gaps
	for _, l := range labels {
		inner = max(inner, utf8.RuneCountInString(l)+2)
	}
	if inner%2 == 0 {
		// odd widths keep the label and the middle marker glyph centred
		inner++
	}
	n := len(labels)
	return &Row{
		labels: labels,
		cfg:    cfg,
		inner:  inner,
		x:      1,
		y:      1,
		fills:  make([]highlight.Color, n),
		top:    make([]highlight.Marker, n),
		bottom: make([]highlight.Marker, n),
	}
}

func (r *Row) SlotCount() int {
	return len(r.labels)
}

func (r *Row) SetFill(idx int, c highlight.Color) {
	check.InRange(idx, len(r.fills), "fill")
	r.fills[idx] = c
}

func (r *Row) SetMarkers(idx int, side highlight.Side, m highlight.Marker) {
	check.InRange(idx, len(r.labels), "marker")
	switch side {
	case highlight.Top:
		r.top[idx] = m
	case highlight.Bottom:
		r.bottom[idx] = m
	default:
		check.Checkf(false, "unknown side %s", side)
	}
}

// Fill reads back the colour last painted onto a slot.
func (r *Row) Fill(idx int) highlight.Color {
	check.InRange(idx, len(r.fills), "fill")
	return r.fills[idx]
}

// Markers reads back the marker triple last painted onto a slot.
func (r *Row) Markers(idx int, side highlight.Side) highlight.Marker {
	check.InRange(idx, len(r.labels), "marker")
	if side == highlight.Top {
		return r.top[idx]
	}
	return r.bottom[idx]
}

// MoveTo places the top-left of the row (the first top marker line) at the
// given terminal position.
func (r *Row) MoveTo(x, y int) {
	r.x, r.y = x, y
}

func (r *Row) Bounds() Bounds {
	width, height := r.contentWidth(), 5
	if r.cfg.Frame {
		// two columns each side, one row above and below
		width += 4
		height += 2
	}
	return Bounds{X: r.x, Y: r.y, Width: width, Height: height}
}

// Render writes the whole row into buf, one z-layer per visual concern.
// Every write carries its own cursor position so layers compose by
// concatenation, the same frame can be rendered any number of times.
func (r *Row) Render(buf *draw.Buffer) {
	boxes := buf.Get(draw.BoxIndex)
	values := buf.Get(draw.ValueIndex)
	decoration := buf.Get(draw.DecorationIndex)
	topMarkers := buf.Get(draw.TopMarkerIndex)
	bottomMarkers := buf.Get(draw.BottomMarkerIndex)

	cy := r.contentY()
	markerY, boxTopY, valueY, boxBottomY, markerBottomY := cy, cy+1, cy+2, cy+3, cy+4
	bar := strings.Repeat(t.Horizontal, r.inner)

	if r.cfg.Frame {
		b := r.Bounds()
		frameBar := strings.Repeat(t.Horizontal, b.Width-2)
		decoration.WriteString(ansi.CursorPosition(r.y, r.x) + t.TopLeft + frameBar + t.TopRight)
		decoration.WriteString(ansi.CursorPosition(r.y+b.Height-1, r.x) + t.BottomLeft + frameBar + t.BottomRight)
		for row := r.y + 1; row < r.y+b.Height-1; row++ {
			decoration.WriteString(ansi.CursorPosition(row, r.x) + t.Vertical)
			decoration.WriteString(ansi.CursorPosition(row, r.x+b.Width-1) + t.Vertical)
		}
	}
	if r.cfg.Lead != "" {
		decoration.WriteString(ansi.CursorPosition(valueY, r.contentX()) + r.cfg.Lead)
	}
	for i, label := range r.labels {
		x := r.cellX(i)
		boxes.WriteString(ansi.CursorPosition(boxTopY, x) + t.TopLeft + bar + t.TopRight)
		boxes.WriteString(ansi.CursorPosition(boxBottomY, x) + t.BottomLeft + bar + t.BottomRight)
		boxes.WriteString(ansi.CursorPosition(valueY, x) + t.Vertical)
		boxes.WriteString(ansi.CursorPosition(valueY, x+r.inner+1) + t.Vertical)

		values.WriteString(ansi.CursorPosition(valueY, x+1) + r.paintCell(i, label))

		markerX := x + 1 + (r.inner-5)/2
		topMarkers.WriteString(ansi.CursorPosition(markerY, markerX) + paintMarkers(r.top[i], t.DownTriangle))
		bottomMarkers.WriteString(ansi.CursorPosition(markerBottomY, markerX) + paintMarkers(r.bottom[i], t.UpTriangle))

		if r.cfg.Separator != "" && i < len(r.labels)-1 {
			decoration.WriteString(ansi.CursorPosition(valueY, x+r.cellWidth()) + r.cfg.Separator)
		}
	}
	if r.cfg.Trail != "" {
		decoration.WriteString(ansi.CursorPosition(valueY, r.contentX()+r.contentWidth()-r.trailWidth()) + r.cfg.Trail)
	}
}

// paintCell centres the label over the cell fill colour.
func (r *Row) paintCell(i int, label string) string {
	padding := r.inner - utf8.RuneCountInString(label)
	left := padding / 2
	padded := strings.Repeat(" ", left) + label + strings.Repeat(" ", padding-left)
	fill := r.fills[i]
	if fill == highlight.NoColor {
		return padded
	}
	return ansi.OnBackground(code(highlight.White), code(fill), padded)
}

func paintMarkers(m highlight.Marker, glyph string) string {
	return ansi.Foreground(code(m.Left), glyph) + " " +
		ansi.Foreground(code(m.Middle), glyph) + " " +
		ansi.Foreground(code(m.Right), glyph)
}

func (r *Row) cellX(i int) int {
	return r.contentX() + r.leadWidth() + i*(r.cellWidth()+r.separatorWidth())
}

func (r *Row) contentWidth() int {
	n := len(r.labels)
	width := r.leadWidth() + r.trailWidth() + n*r.cellWidth()
	if n > 1 {
		width += (n - 1) * r.separatorWidth()
	}
	return width
}

func (r *Row) contentX() int {
	if r.cfg.Frame {
		return r.x + 2
	}
	return r.x
}

func (r *Row) contentY() int {
	if r.cfg.Frame {
		return r.y + 1
	}
	return r.y
}

func (r *Row) cellWidth() int      { return r.inner + 2 }
func (r *Row) leadWidth() int      { return utf8.RuneCountInString(r.cfg.Lead) }
func (r *Row) trailWidth() int     { return utf8.RuneCountInString(r.cfg.Trail) }
func (r *Row) separatorWidth() int { return utf8.RuneCountInString(r.cfg.Separator) }
