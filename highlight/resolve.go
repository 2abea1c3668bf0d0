// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package highlight

import "github.com/Lexer747/algo-viz/utils/errors"

// ContainerPalette carries one colour for every way 1-3 cursors can land on
// a slot: a colour per lone cursor and a colour per coincidence.
type ContainerPalette struct {
	First, Second, Third                 Color
	FirstSecond, FirstThird, SecondThird Color
	All                                  Color
}

// PointerPalette needs no coincidence colours, coinciding cursors stay
// individually visible in the marker triple.
type PointerPalette struct {
	First, Second, Third Color
	Background           Color
}

// Containers maps every distinct index in indices to its resolved fill
// colour. Indices sharing a slot resolve to the coincidence colour for that
// pair or triple, checked most-specific first. Slots matching no index get
// no entry, the painter falls back to the default fill for those.
func Containers(indices []int, p ContainerPalette) (map[int]Color, error) {
	if err := checkIndices(indices); err != nil {
		return nil, err
	}
	ret := make(map[int]Color, len(indices))
	switch len(indices) {
	case 1:
		ret[indices[0]] = p.First
	case 2:
		i, j := indices[0], indices[1]
		for _, idx := range indices {
			switch {
			case idx == i && idx == j:
				ret[idx] = p.FirstSecond
			case idx == i:
				ret[idx] = p.First
			case idx == j:
				ret[idx] = p.Second
			}
		}
	case 3:
		i, j, k := indices[0], indices[1], indices[2]
		for _, idx := range indices {
			switch {
			case idx == i && idx == j && idx == k:
				ret[idx] = p.All
			case idx == i && idx == j:
				ret[idx] = p.FirstSecond
			case idx == i && idx == k:
				ret[idx] = p.FirstThird
			case idx == j && idx == k:
				ret[idx] = p.SecondThird
			case idx == i:
				ret[idx] = p.First
			case idx == j:
				ret[idx] = p.Second
			case idx == k:
				ret[idx] = p.Third
			}
		}
	}
	return ret, nil
}

// Pointers resolves like [Containers] but keeps coinciding cursors visually
// distinct: a lone cursor sits in the middle glyph, a colliding pair takes
// the two outer glyphs with a blank middle, and a full triple fills all
// three glyphs one per cursor. A viewer can therefore tell "two cursors
// here" apart from "one cursor here" at a glance.
func Pointers(indices []int, p PointerPalette) (map[int]Marker, error) {
	if err := checkIndices(indices); err != nil {
		return nil, err
	}
	lone := func(c Color) Marker { return Marker{Left: p.Background, Middle: c, Right: p.Background} }
	pair := func(a, b Color) Marker { return Marker{Left: a, Middle: p.Background, Right: b} }
	ret := make(map[int]Marker, len(indices))
	switch len(indices) {
	case 1:
		ret[indices[0]] = lone(p.First)
	case 2:
		i, j := indices[0], indices[1]
		for _, idx := range indices {
			switch {
			case idx == i && idx == j:
				ret[idx] = pair(p.First, p.Second)
			case idx == i:
				ret[idx] = lone(p.First)
			case idx == j:
				ret[idx] = lone(p.Second)
			}
		}
	case 3:
		i, j, k := indices[0], indices[1], indices[2]
		for _, idx := range indices {
			switch {
			case idx == i && idx == j && idx == k:
				ret[idx] = Marker{Left: p.First, Middle: p.Second, Right: p.Third}
			case idx == i && idx == j:
				ret[idx] = pair(p.First, p.Second)
			case idx == i && idx == k:
				ret[idx] = pair(p.First, p.Third)
			case idx == j && idx == k:
				ret[idx] = pair(p.Second, p.Third)
			case idx == i:
				ret[idx] = lone(p.First)
			case idx == j:
				ret[idx] = lone(p.Second)
			case idx == k:
				ret[idx] = lone(p.Third)
			}
		}
	}
	return ret, nil
}

// ContainersByValue marks every slot whose value equals val. No collision
// logic applies, every hit gets the same colour. No hits yields an empty
// map, not an error.
func ContainersByValue[T comparable](data []T, val T, c Color) map[int]Color {
	ret := map[int]Color{}
	for idx, v := range data {
		if v == val {
			ret[idx] = c
		}
	}
	return ret
}

// PointersByValue is [ContainersByValue] in middle-marker form.
func PointersByValue[T comparable](data []T, val T, c Color, background Color) map[int]Marker {
	ret := map[int]Marker{}
	for idx, v := range data {
		if v == val {
			ret[idx] = Marker{Left: background, Middle: c, Right: background}
		}
	}
	return ret
}

func checkIndices(indices []int) error {
	if len(indices) < 1 || len(indices) > 3 {
		return errors.Wrapf(ErrInvalidIndexCount, "got %d", len(indices))
	}
	return nil
}
