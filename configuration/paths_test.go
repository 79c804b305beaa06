// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"testing"
)

func TestAbsolutePath(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/tmp", "log", "/var/tmp/log"},
		{"/var/tmp", "/srv/./log", "/srv/log"},
		{"/var/tmp/", "./a/../log", "/var/tmp/log"},
	}
	for i, item := range items {
		actual := absolutePath(item.directory, item.path)
		if item.expected != actual {
			t.Errorf("%d: actual: %q  expected: %q", i, actual, item.expected)
		}
	}
}

func TestIsFile(t *testing.T) {
	if isFile(os.TempDir()) {
		t.Errorf("directory: %q reported as a file", os.TempDir())
	}
	if isFile("/no/such/file/anywhere") {
		t.Error("missing file reported as existing")
	}
}
