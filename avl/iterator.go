// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.findMin()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.findMax()
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	return p.nextLarger()
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	return p.nextSmaller()
}

// Walk - visit every node in key order until f returns false
func (tree *Tree) Walk(f func(*Node) bool) {
	for p := tree.root.findMin(); nil != p; p = p.nextLarger() {
		if !f(p) {
			return
		}
	}
}

// Keys - all keys in order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	tree.Walk(func(p *Node) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}
