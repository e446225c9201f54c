//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package cbreak

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios       = unix.TIOCGETA
	ioctlWriteTermiosFlush = unix.TIOCSETAF
)
