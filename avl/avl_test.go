// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

func stringList(s ...string) []avl.StringItem {
	list := make([]avl.StringItem, len(s))
	for i, v := range s {
		list[i] = avl.StringItem(v)
	}
	return list
}

func TestListShort(t *testing.T) {
	addList := stringList(
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	)
	doList(t, addList)
	doTraverse(t, addList)
}

// duplicates are kept, each one needs its own delete
func TestListDuplicates(t *testing.T) {
	addList := stringList(
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	)
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := stringList(
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
	)
	doList(t, addList)
	doTraverse(t, addList)
}

// build the tree, delete a growing prefix of the list, check, then
// delete the rest and expect an empty tree
func doList(t *testing.T, addList []avl.StringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key)
		}

		if err := tree.Check(); nil != err {
			t.Fatalf("add: inconsistent tree: %s", err)
		}
		if !tree.CheckUp() {
			t.Fatal("add: inconsistent up pointers")
		}

		for _, key := range addList[:i] {
			d := tree.Delete(key)
			if nil == d {
				t.Fatalf("delete: %q returned nil", key)
			}
			if 0 != d.Key().Compare(key) {
				t.Fatalf("delete returned: %q  expected: %q", d.Key(), key)
			}
		}

		if err := tree.Check(); nil != err {
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

		for _, key := range addList[i:] {
			d := tree.Delete(key)
			if nil == d {
				t.Fatalf("delete: %q returned nil", key)
			}
		}
		if !tree.IsEmpty() {
			t.Fatalf("remainder: %d remaining nodes", tree.Count())
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []avl.StringItem) {

	tree := avl.New()
	expected := make([]string, 0, len(addList))
	for _, key := range addList {
		expected = append(expected, key.String())
		tree.Insert(key)
	}
	sort.Strings(expected)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(avl.StringItem(expected[i])) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(avl.StringItem(expected[i])) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(avl.StringItem(key))
	}

	if !tree.IsEmpty() {
		t.Fatalf("remainder: %d remaining nodes", tree.Count())
	}
}

func makeKey() avl.IntItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return avl.IntItem(n % 10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]avl.IntItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		if nil == tree.Delete(key) {
			t.Fatalf("delete: %d returned nil", key)
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("delete: %d: inconsistent tree: %s", key, err)
		}
	}

	if total-toDelete != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), total-toDelete)
	}

	// add back a test value outside the random range
	testKey := avl.IntItem(10500)
	tree.Insert(testKey)

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	tv := tree.Find(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %d", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %v  expected: %d", tv.Key(), testKey)
	}
	if nil != tv.Next() {
		t.Fatalf("highest key has a successor: %v", tv.Next().Key())
	}
	if tree.Last() != tv {
		t.Fatal("highest key is not last")
	}

	deleted := tree.Delete(testKey)
	if nil == deleted || testKey != deleted.Key() {
		t.Fatalf("delete returned: %v", deleted)
	}
	if nil != tree.Find(testKey) {
		t.Fatal("test key not deleted")
	}
}

// an AVL tree of n nodes is never more than about 1.44 log2(n) high
func TestHeightBound(t *testing.T) {
	tree := avl.New()
	for i := 0; i < 4096; i += 1 {
		tree.Insert(avl.IntItem(i))
	}
	if h := tree.Height(); h < 12 || h > 17 {
		t.Fatalf("height out of range: %d", h)
	}
	for i := 0; i < 4096; i += 2 {
		tree.Delete(avl.IntItem(i))
	}
	if h := tree.Height(); h > 15 {
		t.Fatalf("height after deletes too large: %d", h)
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.New()
	for _, key := range stringList("01", "02", "03", "04", "05", "06", "07") {
		tree.Insert(key)
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.New()
	for _, key := range stringList("01", "02", "03", "04", "05", "06", "07") {
		tree.Insert(key)
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

func ExampleTree_NextLarger() {
	tree := avl.New()
	for i := 1; i <= 5; i += 1 {
		tree.Insert(avl.IntItem(i))
	}
	fmt.Println(tree.NextLarger(avl.IntItem(3)).Key())
	fmt.Println(tree.NextLarger(avl.IntItem(5)))
	fmt.Println(tree.FindMin().Key())
	// Output:
	// 4
	// <nil>
	// 1
}
