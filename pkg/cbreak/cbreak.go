// Package cbreak switches a terminal out of canonical (line-buffered)
// input mode and restores its original settings afterwards.
//
// The usual pattern is:
//
//	g := cbreak.New()
//	if err := g.Prepare(); err != nil {
//	        return err
//	}
//	defer g.Restore()
//
// or, equivalently, Do:
//
//	err := cbreak.New().Do(func() error { ... })
//
// A Guard is not safe for concurrent use; callers must serialize
// Prepare/Restore calls. Only Unix-like systems are supported.
package cbreak

// Winsize holds the dimensions of a terminal in character cells.
type Winsize struct {
	Rows int
	Cols int
}

// Error describes a failed terminal operation. Err holds the underlying
// OS error when the failure came from the terminal-attribute ioctls; it
// is nil for usage errors like ErrNotPrepared.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNotPrepared is returned by Restore when no snapshot was ever taken.
var ErrNotPrepared = &Error{Message: "restore called before prepare"}
