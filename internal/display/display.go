// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display shows files in the desktop's default viewer.
package display

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
)

// ErrNoDisplay is returned by Open when there is no graphical session
// to show a file in.
var ErrNoDisplay = errors.New("no graphical display available")

// start launches a command without waiting for it to exit.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens path in the default viewer of the current desktop. It
// returns as soon as the viewer has been started.
func Open(path string) error {
	name, args, err := viewer(runtime.GOOS, os.Getenv)
	if err != nil {
		return err
	}
	return start(name, append(args, path)...)
}

// viewer returns the command that opens a file on goos.
func viewer(goos string, getenv func(string) string) (name string, args []string, err error) {
	switch goos {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	}
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return "", nil, ErrNoDisplay
	}
	return "xdg-open", nil, nil
}
