// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers and cached
// sub-tree heights
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access.
//       Rotations rewrite several links and the intermediate states
//       are not valid trees.
//
// Every mutation is a plain binary search tree edit followed by a
// rebalance walk from the edit point up to the root, which refreshes
// the cached heights and rotates wherever the heights of two sibling
// sub-trees differ by two.
//
// Equal keys are not rejected: an insert routes a duplicate to the
// right, so the tree can hold several nodes with the same key.
//
// Deleting a node with two children swaps its key with the in-order
// successor and unlinks the successor instead, so a node's identity
// is not tied to its key across a delete.
package avl
