// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package highlight

// SlotRenderer is the visual surface a [Store] is painted onto. Slots are
// positional, 0..SlotCount()-1, in the same order as the backing data.
type SlotRenderer interface {
	SlotCount() int
	SetFill(idx int, c Color)
	SetMarkers(idx int, side Side, m Marker)
}

// Defaults are the instance-level fallback colours painted wherever no
// stored highlight applies.
type Defaults struct {
	// Fill is the resting container colour.
	Fill Color
	// Background is the resting colour of every marker glyph.
	Background Color
}

// Paint re-applies every stored highlight onto r. Each live slot is visited
// exactly once and set to either its stored colour or the default, so
// repainting with an unchanged store is idempotent. Stored entries at or
// above the slot count are skipped but kept, dormant rather than deleted.
// When liveLen is zero every slot paints as default regardless of the
// store. Paint cannot fail, stale keys are inert.
func Paint(r SlotRenderer, s *Store, liveLen int, d Defaults) {
	blank := Marker{Left: d.Background, Middle: d.Background, Right: d.Background}
	for idx := 0; idx < r.SlotCount(); idx++ {
		if c, ok := s.containers[idx]; ok && liveLen > 0 {
			r.SetFill(idx, c)
		} else {
			r.SetFill(idx, d.Fill)
		}
		if m, ok := s.top[idx]; ok && liveLen > 0 {
			r.SetMarkers(idx, Top, m)
		} else {
			r.SetMarkers(idx, Top, blank)
		}
		if m, ok := s.bottom[idx]; ok && liveLen > 0 {
			r.SetMarkers(idx, Bottom, m)
		} else {
			r.SetMarkers(idx, Bottom, blank)
		}
	}
}

// Transfer hands the highlight state of a retiring structure instance over
// to its successor. The successor restores the snapshot and paints it
// against its own slot count, it never recomputes highlight intent, which
// is how highlights survive the data being replaced under them.
func Transfer(old *Store) Snapshot {
	return old.Snapshot()
}
