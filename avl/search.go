// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - node holding a specific key or nil if not in the tree
func (tree *Tree) Find(key Item) *Node {
	return tree.root.find(key)
}

// FindMin - node with the lowest key or nil if the tree is empty
func (tree *Tree) FindMin() *Node {
	return tree.root.findMin()
}

// NextLarger - successor of the node holding key, nil if the key is
// not in the tree or is the highest key
func (tree *Tree) NextLarger(key Item) *Node {
	p := tree.root.find(key)
	if nil == p {
		return nil
	}
	return p.nextLarger()
}
