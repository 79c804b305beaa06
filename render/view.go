// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -destination=mocks/view.go -package=mocks github.com/bitmark-inc/avltree/render View

// View - read only access to one node of a tree
//
// Left and Right return nil for an absent child
type View interface {
	Label() string
	Left() View
	Right() View
}

// view of an AVL tree node
type nodeView struct {
	node *avl.Node
}

// FromNode - a view of an AVL sub-tree, nil for an empty sub-tree
func FromNode(node *avl.Node) View {
	if nil == node {
		return nil
	}
	return nodeView{node: node}
}

func (v nodeView) Label() string {
	return fmt.Sprint(v.node.Key())
}

func (v nodeView) Left() View {
	return FromNode(v.node.Left())
}

func (v nodeView) Right() View {
	return FromNode(v.node.Right())
}
