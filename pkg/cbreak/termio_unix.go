//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package cbreak

import (
	"golang.org/x/sys/unix"
)

// termio abstracts the terminal-attribute ioctls so tests can substitute
// a fake terminal.
type termio interface {
	getAttr(fd int) (*unix.Termios, error)
	setAttrFlush(fd int, attrs *unix.Termios) error
	getWinsize(fd int) (*unix.Winsize, error)
}

type osTermio struct{}

func (osTermio) getAttr(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, ioctlReadTermios)
}

// setAttrFlush applies attrs after draining queued output and discarding
// unread input, i.e. tcsetattr with TCSAFLUSH.
func (osTermio) setAttrFlush(fd int, attrs *unix.Termios) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermiosFlush, attrs)
}

func (osTermio) getWinsize(fd int) (*unix.Winsize, error) {
	return unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
}
