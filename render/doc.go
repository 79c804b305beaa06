// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package render - text drawings of a binary tree
//
// The drawings only need a label and the two optional children of
// each node, see View, so any binary tree can be drawn.
package render
