// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk from p up to the root refreshing heights and rotating any
// node whose sub-trees differ in height by two
//
// when the taller child leans the same way, or is level, a single
// rotation is used; otherwise the child is rotated first (the
// zig-zag case)
func (tree *Tree) rebalance(p *Node) {
	for nil != p {
		p.updateHeight()

		if height(p.left) >= 2+height(p.right) {
			// left heavy
			if height(p.left.left) >= height(p.left.right) {
				tree.rightRotate(p)
			} else {
				tree.leftRotate(p.left)
				tree.rightRotate(p)
			}
		} else if height(p.right) >= 2+height(p.left) {
			// right heavy
			if height(p.right.right) >= height(p.right.left) {
				tree.leftRotate(p)
			} else {
				tree.rightRotate(p.right)
				tree.leftRotate(p)
			}
		}

		// after a rotation this is the promoted node whose height
		// is already correct, the walk still has to reach the root
		p = p.up
	}
}
