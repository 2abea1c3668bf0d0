// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure

import "github.com/Lexer747/algo-viz/draw"

// Renderer is anything which can draw itself into shared z-indexed buffers,
// every structure and [Label] qualifies.
type Renderer interface {
	Render(buf *draw.Buffer)
}

// Group composes several renderables into one frame, e.g. an array plus the
// label tracking an algorithm's cursors. Members keep their own positions,
// the group only shares the buffers they draw into.
type Group struct {
	items []Renderer
	buf   *draw.Buffer
}

func NewGroup(items ...Renderer) *Group {
	return &Group{items: items, buf: draw.NewBuffer()}
}

func (g *Group) Add(items ...Renderer) {
	g.items = append(g.items, items...)
}

// Frame renders every member into one printable string, z-order is decided
// by the layers the members draw on, not their order in the group.
func (g *Group) Frame() string {
	g.buf.Reset()
	for _, item := range g.items {
		item.Render(g.buf)
	}
	return g.buf.Paint()
}
