// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package typography

const (
	Vertical   = "│"
	Horizontal = "─"

	TopLeft     = "┌"
	TopRight    = "┐"
	BottomLeft  = "└"
	BottomRight = "┘"

	// Cursor glyphs drawn above and below cells, three per slot.
	DownTriangle = "▾"
	UpTriangle   = "▴"

	// Link glyph drawn between adjacent linked-list nodes.
	Arrow = "→"

	Quote = `"`
)
