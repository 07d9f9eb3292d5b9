package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"pegthis/internal/config"
)

// ErrCancelled reports that the user aborted an interactive flow. It is a
// third outcome next to success and failure, never an error toast.
var ErrCancelled = errors.New("cancelled by user")

// ErrBack reports that the user navigated back one menu level.
var ErrBack = errors.New("back")

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// Console owns the interactive terminal surface. Output, input, and key
// decoding are injectable so tests can script whole flows.
type Console struct {
	out      io.Writer
	in       *bufio.Reader
	keys     KeyReader
	colorize bool
	tty      bool
}

// NewConsole builds a console over the process terminal, honoring the
// configured color override.
func NewConsole(cfg *config.Config) *Console {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	colorize := tty
	if cfg != nil && cfg.UI.Color != nil {
		colorize = *cfg.UI.Color
	}
	return &Console{
		out:      os.Stdout,
		in:       bufio.NewReader(os.Stdin),
		keys:     NewRawKeyReader(os.Stdin),
		colorize: colorize,
		tty:      tty,
	}
}

// NewTestConsole builds a console over in-memory streams with scripted keys.
func NewTestConsole(out io.Writer, in io.Reader, keys KeyReader) *Console {
	return &Console{
		out:  out,
		in:   bufio.NewReader(in),
		keys: keys,
		tty:  keys != nil,
	}
}

// Interactive reports whether arrow-key menus can be used.
func (c *Console) Interactive() bool {
	return c.tty && c.keys != nil
}

// ReadKey blocks until the next decoded keypress.
func (c *Console) ReadKey() (KeyEvent, error) {
	if c.keys == nil {
		return KeyEvent{}, errors.New("console has no key reader")
	}
	return c.keys.ReadKey()
}

// Print writes a line to the console.
func (c *Console) Print(message string) {
	fmt.Fprintln(c.out, message)
}

// Printf writes a formatted line to the console.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Clear erases the screen on a real terminal and is a no-op elsewhere.
func (c *Console) Clear() {
	if c.tty {
		fmt.Fprint(c.out, "\x1b[2J\x1b[H")
	}
}

// Rule draws a titled horizontal rule.
func (c *Console) Rule(title string) {
	line := strings.Repeat("-", 8)
	if title == "" {
		fmt.Fprintln(c.out, line+line)
		return
	}
	fmt.Fprintf(c.out, "%s %s %s\n", line, c.paint(ansiBold, title), line)
}

// Header prints the per-file banner shown atop interactive screens.
func (c *Console) Header(title string, lines ...string) {
	c.Rule(title)
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
	if len(lines) > 0 {
		fmt.Fprintln(c.out)
	}
}

// Success prints a confirmation line.
func (c *Console) Success(message string) {
	fmt.Fprintln(c.out, c.paint(ansiGreen, message))
}

// Warn prints a cautionary line.
func (c *Console) Warn(message string) {
	fmt.Fprintln(c.out, c.paint(ansiYellow, message))
}

// Error prints a failure line.
func (c *Console) Error(message string) {
	fmt.Fprintln(c.out, c.paint(ansiRed, message))
}

// Info prints an informational line.
func (c *Console) Info(message string) {
	fmt.Fprintln(c.out, c.paint(ansiCyan, message))
}

func (c *Console) paint(color, message string) string {
	if !c.colorize {
		return message
	}
	return color + message + ansiReset
}

// readLine reads one line of cooked input.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
