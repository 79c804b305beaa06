// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"io"
	"strings"
	"unicode/utf8"
)

// EmptyTree - drawn in place of a tree without nodes
const EmptyTree = "<empty tree>"

// a drawn sub-tree: lines all of the same width and the column
// above which the parent's branch should sit
type block struct {
	lines []string
	pos   int
	width int
}

// Box - draw a tree top down with each label above and between its
// children, dots join a label to the branches below it
//
//	   .4..
//	  /    \
//	  2     6
//	 / \   / \
//	1  3  5  7
//
// trailing spaces are removed from every line
func Box(w io.Writer, v View) error {
	if nil == v {
		_, err := io.WriteString(w, EmptyTree+"\n")
		return err
	}
	b := layout(v, false)
	for _, line := range b.lines {
		if _, err := io.WriteString(w, strings.TrimRight(line, " ")+"\n"); nil != err {
			return err
		}
	}
	return nil
}

// BoxString - Box into a string
func BoxString(v View) string {
	s := strings.Builder{}
	_ = Box(&s, v) // strings.Builder does not fail
	return s.String()
}

func layout(v View, isLeft bool) block {
	label := v.Label()
	labelWidth := utf8.RuneCountInString(label)

	left := block{}
	right := block{}
	lv := v.Left()
	rv := v.Right()
	if nil != lv {
		left = layout(lv, true)
	}
	if nil != rv {
		right = layout(rv, false)
	}

	middle := right.pos + left.width - left.pos + 1
	if labelWidth > middle {
		middle = labelWidth
	}
	if middle < 2 {
		middle = 2
	}
	pos := left.pos + middle/2
	width := left.pos + middle + right.width - right.pos

	// a left child leans its label towards the parent
	if 1 == (middle-labelWidth)%2 && isLeft && labelWidth < middle {
		label += "."
		labelWidth += 1
	}
	label = centre(label, labelWidth, middle, '.')
	if strings.HasPrefix(label, ".") {
		label = " " + label[1:]
	}
	if strings.HasSuffix(label, ".") {
		label = label[:len(label)-1] + " "
	}

	tail := spaces(right.width - right.pos)
	lines := []string{spaces(left.pos) + label + tail}

	if nil == lv && nil == rv {
		return block{lines: lines, pos: pos, width: width}
	}

	branch := spaces(left.pos)
	if nil != lv {
		branch += "/"
	} else {
		branch += " "
	}
	branch += spaces(middle - 2)
	if nil != rv {
		branch += "\\"
	} else {
		branch += " "
	}
	lines = append(lines, branch+tail)

	n := len(left.lines)
	if len(right.lines) > n {
		n = len(right.lines)
	}
	gap := spaces(width - left.width - right.width)
	for i := 0; i < n; i += 1 {
		l := spaces(left.width)
		if i < len(left.lines) {
			l = left.lines[i]
		}
		r := spaces(right.width)
		if i < len(right.lines) {
			r = right.lines[i]
		}
		lines = append(lines, l+gap+r)
	}
	return block{lines: lines, pos: pos, width: width}
}

// pad s to width with fill on both sides, an odd extra fill goes on
// the left only when width is odd as well
func centre(s string, n int, width int, fill rune) string {
	margin := width - n
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	f := string(fill)
	return strings.Repeat(f, left) + s + strings.Repeat(f, margin-left)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
