// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure

import (
	"unicode/utf8"

	"github.com/Lexer747/algo-viz/draw"
	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/structure/cells"
	"github.com/Lexer747/algo-viz/terminal/ansi"
)

// Label is one line of free text, typically anchored next to a structure to
// show a tracked value ("lo=2 hi=5") or act as a title. It draws on the top
// label layer so it stays visible over every other renderable.
type Label struct {
	text  string
	color highlight.Color
	x, y  int
	buf   *draw.Buffer
}

func NewLabel(text string) *Label {
	return NewColoredLabel(text, highlight.NoColor)
}

func NewColoredLabel(text string, c highlight.Color) *Label {
	return &Label{text: text, color: c, x: 1, y: 1, buf: draw.NewBuffer()}
}

// SetText replaces the text, the next render shows the new value.
func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) MoveTo(x, y int) {
	l.x, l.y = x, y
}

func (l *Label) Bounds() cells.Bounds {
	return cells.Bounds{X: l.x, Y: l.y, Width: utf8.RuneCountInString(l.text), Height: 1}
}

func (l *Label) Render(buf *draw.Buffer) {
	if l.text == "" {
		return
	}
	buf.Get(draw.LabelIndex).WriteString(ansi.CursorPosition(l.y, l.x) + cells.Paint(l.color, l.text))
}

// Frame renders the label on its own, when composed with other renderables
// use a [Group] instead.
func (l *Label) Frame() string {
	l.buf.Reset()
	l.Render(l.buf)
	return l.buf.Paint()
}
