// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// accumulate the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, arguments ...interface{}) {
	if nil != p.err {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, arguments...)
}

// Sideways - display an ASCII graphic of the tree rotated a quarter
// turn, right sub-trees above their parent
//
// returns the maximum depth of the tree
func Sideways(w io.Writer, v View) (int, error) {
	p := &printer{w: w}
	if nil == v {
		p.printf("%s\n", EmptyTree)
		return 0, p.err
	}
	depth := p.tree(v, "", root)
	return depth, p.err
}

// internal print - returns the maximum depth of the tree
func (p *printer) tree(v View, prefix string, br branch) int {
	rd := 0
	ld := 0
	if rv := v.Right(); nil != rv {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = p.tree(rv, prefix+t, right)
	}
	switch br {
	case root:
		p.printf("%s|------+ ", prefix)
	case left:
		p.printf("%s\\------+ ", prefix)
	case right:
		p.printf("%s/------+ ", prefix)
	}
	p.printf("%s\n", v.Label())
	if lv := v.Left(); nil != lv {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = p.tree(lv, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
