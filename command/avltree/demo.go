// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/render"
)

// build and draw one tree
type demo struct {
	w     io.Writer
	style string
	check bool
	log   *logger.L
	tree  *avl.Tree
}

func newDemo(w io.Writer, style string, check bool, log *logger.L) *demo {
	return &demo{
		w:     w,
		style: style,
		check: check,
		log:   log,
		tree:  avl.New(),
	}
}

func validStyle(style string) bool {
	switch style {
	case configuration.StyleBox, configuration.StyleSideways, configuration.StyleNone:
		return true
	}
	return false
}

// a single argument is a count of random keys, otherwise the
// arguments are the keys
func keyList(arguments []string, c *configuration.Configuration) ([]avl.IntItem, error) {
	if 1 != len(arguments) {
		return parseKeys(arguments)
	}

	n, err := strconv.Atoi(arguments[0])
	if nil != err || n < 0 {
		return nil, fault.ErrInvalidNodeCount
	}

	seed := c.RandomSeed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	keys := make([]avl.IntItem, n)
	for i := range keys {
		keys[i] = avl.IntItem(r.Intn(c.KeyRange))
	}
	return keys, nil
}

// decimal integer keys
func parseKeys(arguments []string) ([]avl.IntItem, error) {
	keys := make([]avl.IntItem, 0, len(arguments))
	for _, s := range arguments {
		k, err := strconv.Atoi(s)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, avl.IntItem(k))
	}
	return keys, nil
}

// insert each key and draw, then delete and draw
func (d *demo) run(inserts []avl.IntItem, deletes []avl.IntItem) error {
	if err := d.draw(); nil != err {
		return err
	}

	for _, key := range inserts {
		d.tree.Insert(key)
		d.log.Debugf("insert: %d  count: %d  height: %d", key, d.tree.Count(), d.tree.Height())
		if err := d.verify("insert", key); nil != err {
			return err
		}
		fmt.Fprintln(d.w)
		if err := d.draw(); nil != err {
			return err
		}
	}

	for _, key := range deletes {
		if nil == d.tree.Delete(key) {
			d.log.Warnf("delete: %d  error: %s", key, fault.ErrNotFoundKey)
			fmt.Fprintf(d.w, "\ndelete: %d: %s\n", key, fault.ErrNotFoundKey)
			continue
		}
		d.log.Debugf("delete: %d  count: %d  height: %d", key, d.tree.Count(), d.tree.Height())
		if err := d.verify("delete", key); nil != err {
			return err
		}
		fmt.Fprintln(d.w)
		if err := d.draw(); nil != err {
			return err
		}
	}
	return nil
}

func (d *demo) verify(operation string, key avl.IntItem) error {
	if !d.check {
		return nil
	}
	err := d.tree.Check()
	if nil != err {
		d.log.Criticalf("%s: %d  check error: %s", operation, key, err)
	}
	return err
}

func (d *demo) draw() error {
	v := render.FromNode(d.tree.Root())
	switch d.style {
	case configuration.StyleSideways:
		depth, err := render.Sideways(d.w, v)
		d.log.Tracef("depth: %d", depth)
		return err
	case configuration.StyleNone:
		return nil
	default:
		return render.Box(d.w, v)
	}
}
