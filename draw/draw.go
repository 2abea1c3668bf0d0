// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package draw

import (
	"bytes"
	"strings"
	"sync/atomic"
)

// Buffer is a helper type for the structure drawing code, instead of writing everything as literal go
// strings (the output type expected by the terminal) we keep a byte buffer for every z-index in our program.
// This allows the program to re-use the memory we allocate every frame, this means the total memory we need
// to allocate for drawing is bounded for the amount of the single largest frame we ever draw.
type Buffer struct {
	storage []*bytes.Buffer
}

func NewBuffer() *Buffer {
	count := int(indexCount.Load())
	storage := make([]*bytes.Buffer, count)
	for i := 0; i < count; i++ {
		storage[i] = &bytes.Buffer{}
	}
	return &Buffer{storage: storage}
}

type Index int

// Get the underlying buffer for this z-index
func (b *Buffer) Get(z Index) *bytes.Buffer {
	return b.storage[z]
}

// Reset will reset all the buffers so that they no longer contain the last frame but are all empty.
func (b *Buffer) Reset() {
	for _, buf := range b.storage {
		buf.Reset()
	}
}

// Paint composes every layer into one printable frame, back to front in
// [PaintOrder]. Every write already carries its own cursor position so
// composition is plain concatenation.
func (b *Buffer) Paint() string {
	var ret strings.Builder
	for _, idx := range PaintOrder {
		ret.Write(b.Get(idx).Bytes())
	}
	return ret.String()
}

var (
	BoxIndex          = newIndex()
	DecorationIndex   = newIndex()
	ValueIndex        = newIndex()
	TopMarkerIndex    = newIndex()
	BottomMarkerIndex = newIndex()
	LabelIndex        = newIndex()
)

// Z-order is top to bottom so the first item added is at the back, the last item is at the front
var PaintOrder = []Index{
	// boxes carry the cell fills so everything else must stay readable on top of them
	BoxIndex,
	// quotes, list arrows and frames sit outside the cells
	DecorationIndex,
	ValueIndex,
	TopMarkerIndex,
	BottomMarkerIndex,
	// free text labels are ephemeral and always visible
	LabelIndex,
}

var indexCount atomic.Int64

func newIndex() Index {
	return Index(indexCount.Add(1) - 1)
}
