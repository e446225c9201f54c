package term

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type Term struct {
	stdin          FileReader
	stdout, stderr io.Writer
	out, err       *termenv.Output
	debug          bool

	isTerminal bool
	hasDarkBg  bool
}

var DefaultTerm = NewTerm(os.Stdin, os.Stdout, os.Stderr)

type Color = termenv.ANSIColor

const (
	InfoColor  = termenv.ANSIBrightMagenta
	ErrorColor = termenv.ANSIBrightRed
	WarnColor  = termenv.ANSIYellow      // not bright to improve readability on light backgrounds
	DebugColor = termenv.ANSIBrightBlack // Gray

	resetColorStr = termenv.CSI + termenv.ResetSeq + "m"
)

type FileReader interface {
	io.Reader
	Fd() uintptr
}

func NewTerm(stdin FileReader, stdout, stderr io.Writer) *Term {
	t := &Term{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		out:    termenv.NewOutput(stdout),
		err:    termenv.NewOutput(stderr),
	}
	t.hasDarkBg = t.out.HasDarkBackground()
	if hasTermInEnv() {
		if fout, ok := stdout.(interface{ Fd() uintptr }); ok {
			t.isTerminal = term.IsTerminal(int(fout.Fd())) && term.IsTerminal(int(stdin.Fd()))
		}
	}
	return t
}

func (t *Term) ForceColor(color bool) {
	if color {
		t.out = termenv.NewOutput(t.stdout, termenv.WithProfile(termenv.ANSI))
		t.err = termenv.NewOutput(t.stderr, termenv.WithProfile(termenv.ANSI))
	} else {
		t.out = termenv.NewOutput(t.stdout, termenv.WithProfile(termenv.Ascii))
		t.err = termenv.NewOutput(t.stderr, termenv.WithProfile(termenv.Ascii))
	}
}

func (t *Term) SetDebug(debug bool) {
	t.debug = debug
}

func (t *Term) DoDebug() bool {
	return t.debug
}

func (t *Term) HasDarkBackground() bool {
	return t.hasDarkBg
}

func (t *Term) IsTerminal() bool {
	return t.isTerminal
}

func (t *Term) StdoutCanColor() bool {
	return doColor(t.out)
}

func (t *Term) StderrCanColor() bool {
	return doColor(t.err)
}

func (t *Term) ColorProfile() termenv.Profile {
	return t.out.Profile
}

// doColor returns true if the provided output's profile is not Ascii.
func doColor(o *termenv.Output) bool {
	return o.Profile != termenv.Ascii
}

func output(w *termenv.Output, c Color, msg string) (int, error) {
	if len(msg) == 0 {
		return 0, nil
	}
	var buf strings.Builder
	if doColor(w) {
		fprintc(&buf, true, c, msg)
		msg = buf.String() // this uses the buffer to avoid allocation, so make sure buf is not garbage collected
	}
	return w.WriteString(msg)
}

func fprintc(w io.Writer, canColor bool, c Color, v ...any) (l int, e error) {
	if canColor {
		n, err := io.WriteString(w, termenv.CSI+c.Sequence(false)+"m")
		l += n
		if err != nil {
			return l, err
		}
		defer func() {
			n, err := io.WriteString(w, resetColorStr)
			l += n
			e = err
		}()
	}

	n, err := fmt.Fprint(w, v...)
	l += n
	if err != nil {
		return l, err
	}
	return l, nil
}

func ensureNewline(s string) string {
	if len(s) == 0 || (s[len(s)-1] != '\n' && s[len(s)-1] != '\r') {
		return s + "\n"
	}
	return s
}

func ensurePrefix(s string, prefix string) string {
	// Don't add prefix to empty strings or strings that already have it
	if len(s) == 0 || strings.HasPrefix(s, prefix) {
		return s
	}
	return prefix + s
}

func (t *Term) Printc(c Color, v ...any) (int, error) {
	return output(t.out, c, fmt.Sprint(v...))
}

func (t *Term) Print(v ...any) (int, error) {
	return fmt.Fprint(t.out, v...)
}

func (t *Term) Println(v ...any) (int, error) {
	return fmt.Fprint(t.out, ensureNewline(fmt.Sprintln(v...)))
}

func (t *Term) Printf(format string, v ...any) (int, error) {
	return fmt.Fprint(t.out, ensureNewline(fmt.Sprintf(format, v...)))
}

func (t *Term) Debug(v ...any) (int, error) {
	if !t.debug {
		return 0, nil
	}
	return output(t.out, DebugColor, ensurePrefix(fmt.Sprintln(v...), " - "))
}

func (t *Term) Debugf(format string, v ...any) (int, error) {
	if !t.debug {
		return 0, nil
	}
	s := ensureNewline(ensurePrefix(fmt.Sprintf(format, v...), " - "))
	return output(t.out, DebugColor, s)
}

func (t *Term) Info(v ...any) (int, error) {
	return output(t.out, InfoColor, ensurePrefix(fmt.Sprintln(v...), " * "))
}

func (t *Term) Infof(format string, v ...any) (int, error) {
	s := ensureNewline(ensurePrefix(fmt.Sprintf(format, v...), " * "))
	return output(t.out, InfoColor, s)
}

func (t *Term) Warn(v ...any) (int, error) {
	return output(t.out, WarnColor, ensurePrefix(fmt.Sprintln(v...), " ! "))
}

func (t *Term) Warnf(format string, v ...any) (int, error) {
	s := ensureNewline(ensurePrefix(fmt.Sprintf(format, v...), " ! "))
	return output(t.out, WarnColor, s)
}

func (t *Term) Error(v ...any) (int, error) {
	return output(t.err, ErrorColor, fmt.Sprintln(v...))
}

func (t *Term) Errorf(format string, v ...any) (int, error) {
	return output(t.err, ErrorColor, ensureNewline(fmt.Sprintf(format, v...)))
}

func Print(v ...any) (int, error) {
	return DefaultTerm.Print(v...)
}

func Println(v ...any) (int, error) {
	return DefaultTerm.Println(v...)
}

func Printf(format string, v ...any) (int, error) {
	return DefaultTerm.Printf(format, v...)
}

func Printc(c Color, v ...any) (int, error) {
	return DefaultTerm.Printc(c, v...)
}

func Debug(v ...any) (int, error) {
	return DefaultTerm.Debug(v...)
}

func Debugf(format string, v ...any) (int, error) {
	return DefaultTerm.Debugf(format, v...)
}

func Info(v ...any) (int, error) {
	return DefaultTerm.Info(v...)
}

func Infof(format string, v ...any) (int, error) {
	return DefaultTerm.Infof(format, v...)
}

func Warn(v ...any) (int, error) {
	return DefaultTerm.Warn(v...)
}

func Warnf(format string, v ...any) (int, error) {
	return DefaultTerm.Warnf(format, v...)
}

func Error(v ...any) (int, error) {
	return DefaultTerm.Error(v...)
}

func Errorf(format string, v ...any) (int, error) {
	return DefaultTerm.Errorf(format, v...)
}

func ForceColor(color bool) {
	DefaultTerm.ForceColor(color)
}

func SetDebug(debug bool) {
	DefaultTerm.SetDebug(debug)
}

func DoDebug() bool {
	return DefaultTerm.DoDebug()
}

func IsTerminal() bool {
	return DefaultTerm.IsTerminal()
}

func StdoutCanColor() bool {
	return DefaultTerm.StdoutCanColor()
}

func HasDarkBackground() bool {
	return DefaultTerm.HasDarkBackground()
}

func ColorProfile() termenv.Profile {
	return DefaultTerm.ColorProfile()
}

/* ANSI escape codes https://en.wikipedia.org/wiki/ANSI_escape_code
 * Fp/Fe/Fs: ESC [0-WYZ\`-~] 						 				(0x30-0x7E except 'X', '[', ']', '^', '_')
 * CSI:      ESC '[' [0-?]* [ -/]* [@-~]  							(common commands like color, cursor movement, etc.)
 * OSC:      ESC ('X' | ']' | '^' | '_') .*? (BEL | ESC '\' | $)	(commands that set window title, etc.)
 */
var ansiRegex = regexp.MustCompile("\x1b(?:[@-WYZ\\\\`-~]|\\[[0-?]*[ -/]*[@-~]|[X\\]^_].*?(?:\x1b\\\\|\x07|$))")

func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllLiteralString(s, "")
}
