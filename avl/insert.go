// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"

	"github.com/bitmark-inc/avltree/fault"
)

// Insert - add a new node holding key and return it
//
// a key equal to one already present is added as well, to the right
// of it.  Panics if key is nil or of a different type to the keys
// already in the tree since such keys have no defined order
func (tree *Tree) Insert(key Item) *Node {
	if nil == key {
		panic(fault.ErrNilKey)
	}
	if nil != tree.root && reflect.TypeOf(key) != reflect.TypeOf(tree.root.key) {
		panic(fault.ErrInvalidComparison)
	}

	node := newNode(key)
	if nil == tree.root {
		tree.root = node
	} else {
		tree.root.insert(node)
	}
	tree.count += 1

	// start at the leaf so every ancestor accounts for it
	tree.rebalance(node)
	return node
}
