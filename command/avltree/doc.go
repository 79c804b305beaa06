// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Build an AVL tree one key at a time and draw it after each insert
//
// e.g. ten random keys, or the given keys then delete one of them:
//
//   avltree 10
//   avltree --style=sideways --delete=4 5 3 8 4 1
package main
