// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

func Warn(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// ExeDir returns the directory that contains the running executable. The
// default locations of the input and output directories are relative to it.
func ExeDir() string {
	exe, err := os.Executable()
	FatalErr("", err)
	exe, err = filepath.EvalSymlinks(exe)
	FatalErr("", err)
	return filepath.Dir(exe)
}
