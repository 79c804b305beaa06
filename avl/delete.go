// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a node holding key from the tree
//
// returns the node that was unlinked, detached and holding key, or
// nil if key was not in the tree.  When the matching node has two
// children its successor is the node unlinked, so a node previously
// returned by Find may now hold a different key
func (tree *Tree) Delete(key Item) *Node {
	p := tree.root.find(key)
	if nil == p {
		return nil
	}

	var deleted *Node
	var start *Node

	if p == tree.root {
		// a temporary parent so the root unlinks like any other node
		sentinel := Node{left: tree.root}
		tree.root.up = &sentinel

		deleted = tree.root.delete()

		tree.root = sentinel.left
		if nil != tree.root {
			tree.root.up = nil
		}
		start = deleted.up
		if &sentinel == start {
			start = nil
		}
	} else {
		deleted = p.delete()
		start = deleted.up
	}
	tree.count -= 1

	deleted.up = nil
	deleted.left = nil
	deleted.right = nil
	deleted.height = 0

	tree.rebalance(start)
	return deleted
}
