// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative number if the receiver orders before
// the argument, zero if equal and a positive number if after.
// All the keys of one tree must be of the same type.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntItem - integer key
type IntItem int

// Compare - integer comparison for AVL interface
func (i IntItem) Compare(x interface{}) int {
	j, ok := x.(IntItem)
	if !ok {
		panic(fault.ErrInvalidComparison)
	}
	if i < j {
		return -1
	}
	if i > j {
		return +1
	}
	return 0
}

// String - decimal form of the key
func (i IntItem) String() string {
	return strconv.Itoa(int(i))
}

// StringItem - string key ordered bytewise
type StringItem string

// Compare - string comparison for AVL interface
func (s StringItem) Compare(x interface{}) int {
	t, ok := x.(StringItem)
	if !ok {
		panic(fault.ErrInvalidComparison)
	}
	return strings.Compare(string(s), string(t))
}

// String - the key itself
func (s StringItem) String() string {
	return string(s)
}
