// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package demo

import (
	"fmt"
	"slices"

	"github.com/Lexer747/algo-viz/highlight"
	"github.com/Lexer747/algo-viz/scene"
	"github.com/Lexer747/algo-viz/structure"
	"github.com/Lexer747/algo-viz/utils/exit"
	"golang.org/x/exp/maps"
)

var walkthroughs = map[string]func(*scene.Scene){
	"bubble-sort":   bubbleSort,
	"binary-search": binarySearch,
}

func walkthroughNames() []string {
	names := maps.Keys(walkthroughs)
	slices.Sort(names)
	return names
}

func bubbleSort(s *scene.Scene) {
	values := []int{5, 1, 4, 2, 8}
	title := structure.NewLabel("bubble sort")
	arr := structure.NewArray(values)
	status := structure.NewLabel("")
	structure.MoveBelow(title, arr, 0)
	structure.MoveBelow(arr, status, 0)
	view := structure.NewGroup(title, arr, status)

	s.Capture(view)
	for i := 0; i < len(values); i++ {
		status.SetText(fmt.Sprintf("pass %d", i+1))
		for j := 0; j+1 < len(values)-i; j++ {
			exit.OnError(arr.Pointers([]int{j, j + 1}, highlight.Top, structure.PointerColors{}))
			s.Capture(view)
			if values[j] > values[j+1] {
				values[j], values[j+1] = values[j+1], values[j]
				arr.UpdateValue(values)
				exit.OnError(arr.HighlightContainers([]int{j, j + 1}, structure.ContainerColors{}))
				s.Capture(view)
			}
		}
		arr.ClearContainerHighlights()
	}
	exit.OnError(arr.ClearPointerHighlights(highlight.Top))
	status.SetText("sorted")
	s.Capture(view)
}

func binarySearch(s *scene.Scene) {
	values := []int{1, 3, 5, 7, 9, 11, 13, 15}
	target := 9
	title := structure.NewLabel(fmt.Sprintf("binary search, target %d", target))
	arr := structure.NewArray(values)
	status := structure.NewLabel("")
	structure.MoveBelow(title, arr, 0)
	structure.MoveBelow(arr, status, 0)
	view := structure.NewGroup(title, arr, status)

	s.Capture(view)
	lo, hi := 0, len(values)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		status.SetText(fmt.Sprintf("lo=%d mid=%d hi=%d", lo, mid, hi))
		// lo, mid and hi are the three cursors, collisions collapse per the
		// usual rules as the window narrows
		exit.OnError(arr.Pointers([]int{lo, mid, hi}, highlight.Top, structure.PointerColors{}))
		s.Capture(view)
		switch {
		case values[mid] == target:
			arr.HighlightContainersOnValue(target, highlight.Green)
			status.SetText(fmt.Sprintf("found %d at index %d", target, mid))
			s.Capture(view)
			return
		case values[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	arr.HighlightContainersOnValue(target, highlight.Red)
	status.SetText(fmt.Sprintf("%d is not present", target))
	s.Capture(view)
}
