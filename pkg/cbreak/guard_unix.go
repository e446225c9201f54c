//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package cbreak

import (
	"errors"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// Guard holds a single saved terminal-attribute snapshot for one file
// descriptor. The snapshot is overwritten by every successful attribute
// query in Prepare, so nested Prepare/Restore pairs do not compose: a
// second Prepare without an intervening Restore loses the original
// settings.
type Guard struct {
	fd       int
	tio      termio
	saved    unix.Termios
	prepared bool
	lastErr  *Error
}

// Default guards the process's standard output.
var Default = New()

// New returns a Guard for the process's standard output.
func New() *Guard {
	return NewWithFd(int(os.Stdout.Fd()))
}

// NewWithFd returns a Guard for the given terminal file descriptor.
func NewWithFd(fd int) *Guard {
	return &Guard{fd: fd, tio: osTermio{}}
}

// Prepare saves the terminal's current attributes and disables canonical
// mode, leaving every other attribute untouched. The snapshot is kept
// even when applying the new mode fails, so Restore stays legal after a
// failed Prepare as long as the initial query succeeded.
func (g *Guard) Prepare() error {
	slog.Debug("Preparing terminal", "fd", g.fd)
	attrs, err := g.tio.getAttr(g.fd)
	if err != nil {
		return g.fail("Error getting terminal attributes", err)
	}

	g.saved = *attrs
	g.prepared = true

	attrs.Lflag &^= unix.ICANON
	if err := g.tio.setAttrFlush(g.fd, attrs); err != nil {
		return g.fail("Error setting terminal attributes", err)
	}
	return nil
}

// Restore reapplies the attributes saved by the most recent Prepare. It
// does not consume the snapshot and may be called repeatedly.
func (g *Guard) Restore() error {
	slog.Debug("Restoring terminal", "fd", g.fd)
	if !g.prepared {
		g.lastErr = ErrNotPrepared
		return ErrNotPrepared
	}

	saved := g.saved
	if err := g.tio.setAttrFlush(g.fd, &saved); err != nil {
		return g.fail("Error restoring terminal attributes", err)
	}
	return nil
}

// Do runs fn with the terminal in non-canonical mode and restores the
// saved attributes on every exit path, including panics.
func (g *Guard) Do(fn func() error) (err error) {
	if err := g.Prepare(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, g.Restore())
	}()
	return fn()
}

// Canonical reports whether the terminal is currently in canonical mode.
func (g *Guard) Canonical() (bool, error) {
	attrs, err := g.tio.getAttr(g.fd)
	if err != nil {
		return false, g.fail("Error getting terminal attributes", err)
	}
	return attrs.Lflag&unix.ICANON != 0, nil
}

// WindowSize returns the terminal's dimensions in character cells.
func (g *Guard) WindowSize() (Winsize, error) {
	ws, err := g.tio.getWinsize(g.fd)
	if err != nil {
		return Winsize{}, g.fail("Error getting terminal size", err)
	}
	return Winsize{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// LastError returns the most recent failure, or nil if none occurred.
// It is not cleared by later successes; check returned errors instead.
func (g *Guard) LastError() *Error {
	return g.lastErr
}

func (g *Guard) fail(msg string, err error) error {
	g.lastErr = &Error{Message: msg, Err: err}
	return g.lastErr
}

// Prepare disables canonical mode on the Default guard's terminal.
func Prepare() error {
	return Default.Prepare()
}

// Restore reapplies the Default guard's saved attributes.
func Restore() error {
	return Default.Restore()
}

// LastError returns the Default guard's most recent failure.
func LastError() *Error {
	return Default.LastError()
}
