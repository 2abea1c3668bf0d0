// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package structure

import (
	"slices"
	"strconv"

	"github.com/Lexer747/algo-viz/structure/cells"
	t "github.com/Lexer747/algo-viz/terminal/typography"
	"github.com/Lexer747/algo-viz/utils/sliceutils"
)

// ListNode is the classic singly linked node, exposed so callers can feed a
// real list to [LinkedList] or read one back out of it.
type ListNode struct {
	Val  int
	Next *ListNode
}

// NewListNodes builds a list from values, nil for no values.
func NewListNodes(values []int) *ListNode {
	var head *ListNode
	for i := len(values) - 1; i >= 0; i-- {
		head = &ListNode{Val: values[i], Next: head}
	}
	return head
}

func ListLength(head *ListNode) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}
	return n
}

func ListValues(head *ListNode) []int {
	ret := []int{}
	for ; head != nil; head = head.Next {
		ret = append(ret, head.Val)
	}
	return ret
}

// LinkedList visualizes a singly linked list as one cell per node joined by
// arrows, the whole list wrapped in a frame. Slots are positional in
// traversal order, exactly like the other structures, so the highlight API
// carries over unchanged.
type LinkedList struct {
	linear[int]
}

func NewLinkedList(values []int) *LinkedList {
	return NewLinkedListWithPalette(values, DefaultPalette())
}

func NewLinkedListWithPalette(values []int, palette Palette) *LinkedList {
	makeRow := func(d []int) *cells.Row {
		return cells.New(sliceutils.Map(d, strconv.Itoa), cells.Config{
			Separator: " " + t.Arrow + " ",
			Frame:     true,
		})
	}
	return &LinkedList{linear: newLinear(slices.Clone(values), palette, makeRow)}
}

// UpdateValue replaces the whole list, the cells are rebuilt for the new
// length and previously applied highlights are carried over.
func (l *LinkedList) UpdateValue(values []int) {
	l.updateValue(slices.Clone(values))
}

// UpdateNodes is [UpdateValue] for callers holding a real node list.
func (l *LinkedList) UpdateNodes(head *ListNode) {
	l.updateValue(ListValues(head))
}

func (l *LinkedList) Nodes() *ListNode {
	return NewListNodes(l.data)
}
