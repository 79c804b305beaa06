// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node, does not own it
	key    Item  // key part for ordering
	height int   // height of the sub-tree rooted here, leaf is zero
}

// allocate a new detached leaf
func newNode(key Item) *Node {
	return &Node{
		key:    key,
		height: 0,
	}
}

// internal: node with a matching key in a sub-tree
func (p *Node) find(key Item) *Node {
	for nil != p {
		c := key.Compare(p.key)
		if c < 0 {
			p = p.left
		} else if 0 == c {
			return p
		} else {
			p = p.right
		}
	}
	return nil
}

// internal: lowest node in a sub-tree
func (p *Node) findMin() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node) findMax() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor or nil if p holds the last key
func (p *Node) nextLarger() *Node {
	if nil != p.right {
		return p.right.findMin()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// internal: in-order predecessor or nil if p holds the first key
func (p *Node) nextSmaller() *Node {
	if nil != p.left {
		return p.left.findMax()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}

// internal: link a detached node into the sub-tree below p
//
// equal keys descend to the right; no rebalancing is done here
func (p *Node) insert(node *Node) {
	for {
		if node.key.Compare(p.key) < 0 {
			if nil == p.left {
				node.up = p
				p.left = node
				return
			}
			p = p.left
		} else {
			if nil == p.right {
				node.up = p
				p.right = node
				return
			}
			p = p.right
		}
	}
}

// internal: unlink p from its parent and return the node that was
// physically removed
//
// a node with two children swaps keys with its successor and the
// successor, which has no left child, is removed instead.  p must
// have a parent, the tree supplies a sentinel when removing the root
func (p *Node) delete() *Node {
	if nil != p.left && nil != p.right {
		s := p.nextLarger()
		p.key, s.key = s.key, p.key
		return s.delete()
	}

	child := p.left
	if nil == child {
		child = p.right
	}
	if p == p.up.left {
		p.up.left = child
	} else {
		p.up.right = child
	}
	if nil != child {
		child.up = p.up
	}
	return p
}

// internal: height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// internal: recompute the cached height from the children
func (p *Node) updateHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
