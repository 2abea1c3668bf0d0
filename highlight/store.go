// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package highlight

import (
	"maps"

	"github.com/Lexer747/algo-viz/utils/errors"
)

// Store holds the highlight state owned by one structure instance: one fill
// colour per index plus one marker triple per index for each side. Every
// replace is clear-then-fill, a call never merges with the previous one.
//
// Entries whose index has no live slot are kept untouched, they lie dormant
// and re-apply if the slot count grows back over them (see [Paint]).
type Store struct {
	containers map[int]Color
	top        map[int]Marker
	bottom     map[int]Marker
}

func NewStore() *Store {
	return &Store{
		containers: map[int]Color{},
		top:        map[int]Marker{},
		bottom:     map[int]Marker{},
	}
}

// ReplaceContainers discards the previous container highlights and installs
// m. The input is copied, the caller keeps ownership of m.
func (s *Store) ReplaceContainers(m map[int]Color) {
	s.containers = cloned(m)
}

// ReplacePointers discards the previous marker highlights on the given side
// and installs m. The store is untouched when side is invalid.
func (s *Store) ReplacePointers(side Side, m map[int]Marker) error {
	switch side {
	case Top:
		s.top = cloned(m)
	case Bottom:
		s.bottom = cloned(m)
	default:
		return errors.Wrapf(ErrInvalidSide, "got %s", side)
	}
	return nil
}

func (s *Store) ClearContainers() {
	s.containers = map[int]Color{}
}

func (s *Store) ClearPointers(side Side) error {
	switch side {
	case Top:
		s.top = map[int]Marker{}
	case Bottom:
		s.bottom = map[int]Marker{}
	default:
		return errors.Wrapf(ErrInvalidSide, "got %s", side)
	}
	return nil
}

// Snapshot is a deep copy of a [Store] at one point in time, safe to hold
// across later mutation of the store it came from.
type Snapshot struct {
	Containers map[int]Color
	Top        map[int]Marker
	Bottom     map[int]Marker
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Containers: cloned(s.containers),
		Top:        cloned(s.top),
		Bottom:     cloned(s.bottom),
	}
}

// Restore overwrites all three maps from snap, copying again so the
// snapshot stays reusable.
func (s *Store) Restore(snap Snapshot) {
	s.containers = cloned(snap.Containers)
	s.top = cloned(snap.Top)
	s.bottom = cloned(snap.Bottom)
}

func cloned[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return maps.Clone(m)
}
