package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-isatty"
)

// Styling selects between styled and plain console output.
type Styling int

const (
	// StylingAuto styles each channel whose writer is a colour-capable terminal.
	StylingAuto Styling = iota
	// StylingAlways always styles output.
	StylingAlways
	// StylingNever always writes plain text.
	StylingNever
)

// ConsoleConfig defines the sinks and styling of a Console.
type ConsoleConfig struct {
	// Stdout receives debug and info lines.
	// Default: os.Stdout
	Stdout io.Writer
	// Stderr receives warn and error lines.
	// Default: os.Stderr
	Stderr io.Writer
	// Styling chooses styled or plain output.
	// Default: StylingAuto
	Styling Styling
}

// Console renders log lines and groups to a pair of writers. It is safe for
// concurrent use; group nesting is shared by everything written through it.
type Console struct {
	stdout   io.Writer
	stderr   io.Writer
	styling  Styling
	journald bool
	metrics  metrics

	// styled output per channel, decided once in NewConsole
	richOut bool
	richErr bool

	// guards depth and serializes writes
	mu    sync.Mutex
	depth int
}

// NewConsole returns a Console for cfg.
func NewConsole(cfg ConsoleConfig) *Console {
	c := &Console{
		stdout:   cfg.Stdout,
		stderr:   cfg.Stderr,
		styling:  cfg.Styling,
		journald: os.Getenv("JOURNAL_STREAM") != "",
		metrics:  newMetrics(),
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	switch c.styling {
	case StylingAlways:
		c.richOut, c.richErr = true, true
	case StylingNever:
	default:
		c.richOut = colorAllowed() && isTerminal(c.stdout)
		c.richErr = colorAllowed() && isTerminal(c.stderr)
	}
	return c
}

var defaultConsole = sync.OnceValue(func() *Console {
	return NewConsole(ConsoleConfig{})
})

// DefaultConsole returns the process-wide Console writing to os.Stdout and os.Stderr.
func DefaultConsole() *Console {
	return defaultConsole()
}

// colorAllowed reports whether the environment permits styled output. The
// answer does not change for the life of the process.
var colorAllowed = sync.OnceValue(func() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
})

// terminals memoizes isatty by file descriptor.
var terminals sync.Map

// isTerminal reports whether w is a terminal. Writers without a file
// descriptor never are.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	if v, ok := terminals.Load(fd); ok {
		return v.(bool)
	}
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	terminals.Store(fd, tty)
	return tty
}

// Rich reports whether lines at severity s are written styled.
func (c *Console) Rich(s Severity) bool {
	if s >= WarnSeverity {
		return c.richErr
	}
	return c.richOut
}

func newStyle(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// labelStyles is indexed by Severity.
var labelStyles = [...]*color.Color{
	DebugSeverity: newStyle(color.Bold, color.BgHiBlack, color.FgHiWhite),
	InfoSeverity:  newStyle(color.Bold, color.BgBlue, color.FgHiWhite),
	WarnSeverity:  newStyle(color.Bold, color.BgYellow, color.FgBlack),
	ErrorSeverity: newStyle(color.Bold, color.BgRed, color.FgHiWhite),
}

// Emit writes one line for message and args at severity s.
func (c *Console) Emit(s Severity, context, message string, args ...any) {
	if !s.valid() {
		s = InfoSeverity
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	rich := c.Rich(s)
	c.writeLocked(s, rich, c.line(s, context, message, args, rich))
	c.metrics.emitted(s)
}

// Group writes a group opener and a header line, runs body with the group
// open, then closes it. body runs without the Console lock held so it may
// log through the same Console.
func (c *Console) Group(s Severity, context, label string, body func(), collapsed bool) {
	if !s.valid() {
		s = InfoSeverity
	}
	marker := "▾"
	if collapsed {
		marker = "▸"
	}

	c.mu.Lock()
	rich := c.Rich(s)
	c.writeLocked(s, rich, marker+" "+c.line(s, context, label, nil, rich))
	c.depth++
	c.writeLocked(s, rich, c.line(s, context, label, nil, rich))
	c.metrics.Groups.Inc()
	c.metrics.emitted(s)
	c.metrics.emitted(s)
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.depth--
		c.mu.Unlock()
	}()

	if body != nil {
		body()
	}
}

// line renders "[SEVERITY] [context] message args...".
func (c *Console) line(s Severity, context, message string, args []any, rich bool) string {
	header := "[" + s.String() + "]"
	if context != "" {
		header += " [" + context + "]"
	}
	if rich {
		header = labelStyles[s].Sprint(header)
	}

	var b strings.Builder
	b.WriteString(header)
	if message != "" {
		b.WriteByte(' ')
		b.WriteString(message)
	}
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(formatArg(arg, rich))
	}
	return b.String()
}

// argPrinter renders non-string args in styled lines.
var argPrinter = func() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(true)
	return p
}()

func formatArg(arg any, rich bool) string {
	if s, ok := arg.(string); ok {
		return s
	}
	if rich {
		return argPrinter.Sprint(arg)
	}
	return fmt.Sprintf("%+v", arg)
}

// writeLocked indents text for the current depth and writes it to the
// channel for s. c.mu must be held.
func (c *Console) writeLocked(s Severity, rich bool, text string) {
	prefix := strings.Repeat("  ", c.depth)
	if c.journald && !rich {
		prefix = journaldPrefix(s) + prefix
	}
	if prefix != "" {
		text = prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
	}
	_, _ = io.WriteString(c.writer(s), text+"\n")
}

func (c *Console) writer(s Severity) io.Writer {
	if s >= WarnSeverity {
		return c.stderr
	}
	return c.stdout
}
