//go:build !unix && !windows

package main

import "errors"

func terminalSize(int) (width, height int, err error) {
	return 0, 0, errors.New("terminal size is not available on this platform")
}
