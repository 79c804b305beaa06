// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote the right child y of x into the position of x
//
//	   x              y
//	  / \            / \
//	 a   y    →     x   c
//	    / \        / \
//	   b   c      a   b
func (tree *Tree) leftRotate(x *Node) {
	y := x.right
	tree.replaceChild(x, y)

	x.right = y.left
	if nil != x.right {
		x.right.up = x
	}
	y.left = x
	x.up = y

	// x is now below y so must be updated first
	x.updateHeight()
	y.updateHeight()
}

// promote the left child y of x into the position of x
//
//	     x          y
//	    / \        / \
//	   y   c  →   a   x
//	  / \            / \
//	 a   b          b   c
func (tree *Tree) rightRotate(x *Node) {
	y := x.left
	tree.replaceChild(x, y)

	x.left = y.right
	if nil != x.left {
		x.left.up = x
	}
	y.right = x
	x.up = y

	x.updateHeight()
	y.updateHeight()
}

// point the parent of x (or the root) at y instead
func (tree *Tree) replaceChild(x *Node, y *Node) {
	y.up = x.up
	switch {
	case nil == y.up:
		tree.root = y
	case x == y.up.left:
		y.up.left = y
	default:
		y.up.right = y
	}
}
