// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify parent links, cached heights, balance, key order
// and the node count
//
// returns nil or the fault.RecordError for the first problem found
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: check a sub-tree whose keys must lie within [low, high]
// (nil bounds are open) and return its node count
func check(p *Node, up *Node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fault.ErrParentLink
	}
	if nil != low && p.key.Compare(low) < 0 {
		return 0, fault.ErrOrder
	}
	if nil != high && p.key.Compare(high) > 0 {
		return 0, fault.ErrOrder
	}

	nl, err := check(p.left, p, low, p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p, p.key, high)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	expected := 1 + hr
	if hl > hr {
		expected = 1 + hl
	}
	if p.height != expected {
		return 0, fault.ErrHeightCache
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, fault.ErrUnbalanced
	}
	return 1 + nl + nr, nil
}
