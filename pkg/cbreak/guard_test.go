//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package cbreak

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fakeTermio simulates a terminal device: setAttrFlush mutates attrs the
// way tcsetattr would, and either call can be forced to fail.
type fakeTermio struct {
	attrs    unix.Termios
	winsize  unix.Winsize
	getErr   error
	setErr   error
	setCalls int
}

func (f *fakeTermio) getAttr(fd int) (*unix.Termios, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	attrs := f.attrs
	return &attrs, nil
}

func (f *fakeTermio) setAttrFlush(fd int, attrs *unix.Termios) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.attrs = *attrs
	return nil
}

func (f *fakeTermio) getWinsize(fd int) (*unix.Winsize, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	ws := f.winsize
	return &ws, nil
}

func canonicalTermios() unix.Termios {
	var t unix.Termios
	t.Iflag = unix.ICRNL | unix.IXON
	t.Oflag = unix.OPOST
	t.Cflag = unix.CS8 | unix.CREAD
	t.Lflag = unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

func newTestGuard(f *fakeTermio) *Guard {
	return &Guard{fd: 1, tio: f}
}

func TestRestoreBeforePrepare(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)

	err := g.Restore()
	if !errors.Is(err, ErrNotPrepared) {
		t.Fatalf("Restore() = %v; want ErrNotPrepared", err)
	}
	if g.LastError() != ErrNotPrepared {
		t.Errorf("LastError() = %v; want ErrNotPrepared", g.LastError())
	}
	if g.LastError().Err != nil {
		t.Error("ErrNotPrepared should not carry an OS error")
	}
	if f.setCalls != 0 {
		t.Errorf("terminal attributes were written %d times; want 0", f.setCalls)
	}
}

func TestPrepareClearsOnlyCanonicalFlag(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)
	orig := f.attrs

	require.NoError(t, g.Prepare())

	if f.attrs.Lflag&unix.ICANON != 0 {
		t.Error("ICANON still set after Prepare")
	}
	want := orig
	want.Lflag &^= unix.ICANON
	assert.Equal(t, want, f.attrs, "only the canonical-mode flag may change")
}

func TestPrepareRestoreRoundTrip(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)
	orig := f.attrs

	require.NoError(t, g.Prepare())
	require.NoError(t, g.Restore())

	assert.Equal(t, orig, f.attrs, "round trip must restore the attribute set bit for bit")

	// Restore does not consume the snapshot
	require.NoError(t, g.Restore())
	assert.Equal(t, orig, f.attrs)
}

func TestSecondPrepareOverwritesSnapshot(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)
	orig := f.attrs

	require.NoError(t, g.Prepare())
	require.NoError(t, g.Prepare()) // snapshots the already-non-canonical attributes
	require.NoError(t, g.Restore())

	if f.attrs.Lflag&unix.ICANON != 0 {
		t.Error("Restore brought back ICANON; the second Prepare should have overwritten the snapshot")
	}
	assert.NotEqual(t, orig, f.attrs)
}

func TestPrepareQueryFailure(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios(), getErr: unix.ENOTTY}
	g := newTestGuard(f)

	err := g.Prepare()
	if err == nil {
		t.Fatal("Prepare() succeeded with a failing attribute query")
	}
	if g.prepared {
		t.Error("prepared flag changed on a failed query")
	}
	le := g.LastError()
	if le.Message != "Error getting terminal attributes" {
		t.Errorf("LastError().Message = %q", le.Message)
	}
	if !errors.Is(le, unix.ENOTTY) {
		t.Errorf("LastError() = %v; want wrapped ENOTTY", le)
	}
	if f.setCalls != 0 {
		t.Error("attributes were written despite a failed query")
	}

	// A failed query must not clear a previously valid snapshot either.
	f.getErr = nil
	require.NoError(t, g.Prepare())
	f.getErr = unix.EIO
	require.Error(t, g.Prepare())
	if !g.prepared {
		t.Error("prepared flag reset by a later failed query")
	}
}

func TestPrepareApplyFailureKeepsSnapshot(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios(), setErr: unix.EIO}
	g := newTestGuard(f)
	orig := f.attrs

	err := g.Prepare()
	if err == nil {
		t.Fatal("Prepare() succeeded with a failing attribute apply")
	}
	le := g.LastError()
	if le.Message != "Error setting terminal attributes" {
		t.Errorf("LastError().Message = %q", le.Message)
	}
	if le.Err == nil {
		t.Error("apply failure should carry the OS error")
	}

	// Snapshotting and mode activation are decoupled: Restore still works.
	f.setErr = nil
	require.NoError(t, g.Restore())
	assert.Equal(t, orig, f.attrs)
}

func TestRestoreApplyFailure(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)
	require.NoError(t, g.Prepare())

	f.setErr = unix.EIO
	err := g.Restore()
	if err == nil {
		t.Fatal("Restore() succeeded with a failing attribute apply")
	}
	if g.LastError().Message != "Error restoring terminal attributes" {
		t.Errorf("LastError().Message = %q", g.LastError().Message)
	}
}

func TestLastErrorStaleAfterSuccess(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)

	require.Error(t, g.Restore())
	require.NoError(t, g.Prepare())

	// Success does not clear the record; callers must check return values.
	if g.LastError() != ErrNotPrepared {
		t.Errorf("LastError() = %v; want the stale ErrNotPrepared", g.LastError())
	}
}

func TestDoRestoresOnEveryPath(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)
	orig := f.attrs

	ran := false
	err := g.Do(func() error {
		ran = true
		if f.attrs.Lflag&unix.ICANON != 0 {
			t.Error("fn ran with canonical mode still enabled")
		}
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)
	assert.Equal(t, orig, f.attrs)

	// fn errors propagate, and the terminal is restored regardless
	fnErr := errors.New("boom")
	err = g.Do(func() error { return fnErr })
	if !errors.Is(err, fnErr) {
		t.Errorf("Do() = %v; want %v", err, fnErr)
	}
	assert.Equal(t, orig, f.attrs)
}

func TestCanonical(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)

	on, err := g.Canonical()
	require.NoError(t, err)
	require.True(t, on)

	require.NoError(t, g.Prepare())
	on, err = g.Canonical()
	require.NoError(t, err)
	require.False(t, on)
}

func TestWindowSize(t *testing.T) {
	f := &fakeTermio{winsize: unix.Winsize{Row: 24, Col: 80}}
	g := newTestGuard(f)

	ws, err := g.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, Winsize{Rows: 24, Cols: 80}, ws)

	f.getErr = unix.ENOTTY
	_, err = g.WindowSize()
	require.Error(t, err)
	if g.LastError().Message != "Error getting terminal size" {
		t.Errorf("LastError().Message = %q", g.LastError().Message)
	}
}

// The end-to-end scenario: canonical mode on, Prepare turns it off,
// Restore turns it back on with every other field identical.
func TestScenario(t *testing.T) {
	f := &fakeTermio{attrs: canonicalTermios()}
	g := newTestGuard(f)
	orig := f.attrs

	require.NoError(t, g.Prepare())
	on, err := g.Canonical()
	require.NoError(t, err)
	require.False(t, on, "canonical mode still on after Prepare")

	require.NoError(t, g.Restore())
	on, err = g.Canonical()
	require.NoError(t, err)
	require.True(t, on, "canonical mode still off after Restore")
	assert.Equal(t, orig, f.attrs)
}
