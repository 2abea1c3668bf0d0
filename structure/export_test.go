// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure

import (
	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/structure/cells"
)

// StoreSnapshot exposes the owned highlight state to tests.
func (l *linear[T]) StoreSnapshot() highlight.Snapshot {
	return l.store.Snapshot()
}

// Row exposes the live cell renderer to tests.
func (l *linear[T]) Row() *cells.Row {
	return l.row
}
