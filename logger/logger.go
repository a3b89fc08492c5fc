package logger

// Config defines the options for New.
type Config struct {
	// Context labels the subsystem this logger speaks for, e.g. "app:core".
	// It is matched against the DEBUG / LOGS context filters.
	// Default: "" (no context; context filters do not apply)
	Context string
	// Enabled forces the logger on or off, bypassing every external signal.
	// Default: nil (decided by the Resolver on each call)
	Enabled *bool
	// Resolver decides enablement.
	// Default: DefaultResolver()
	Resolver *Resolver
	// Console renders output.
	// Default: DefaultConsole()
	Console *Console
}

// Bool returns a pointer to v, for use with Config.Enabled.
func Bool(v bool) *bool { return &v }

// Logger is a context-bound logger. Its context and explicit enablement are
// fixed at construction; everything else is re-evaluated on each call.
type Logger struct {
	context  string
	enabled  *bool
	resolver *Resolver
	console  *Console
}

// New returns a Logger for cfg.
func New(cfg Config) *Logger {
	l := &Logger{
		context:  cfg.Context,
		resolver: cfg.Resolver,
		console:  cfg.Console,
	}
	if cfg.Enabled != nil {
		l.enabled = Bool(*cfg.Enabled)
	}
	if l.resolver == nil {
		l.resolver = DefaultResolver()
	}
	if l.console == nil {
		l.console = DefaultConsole()
	}
	return l
}

// Context returns the bound context label.
func (l *Logger) Context() string { return l.context }

// Enabled reports whether the logger would emit right now.
func (l *Logger) Enabled() bool {
	return l.resolver.ShouldLog(l.context, l.enabled)
}

// Debug logs message and args at debug severity.
func (l *Logger) Debug(message string, args ...any) { l.log(DebugSeverity, message, args) }

// Info logs message and args at info severity.
func (l *Logger) Info(message string, args ...any) { l.log(InfoSeverity, message, args) }

// Warn logs message and args at warn severity.
func (l *Logger) Warn(message string, args ...any) { l.log(WarnSeverity, message, args) }

// Error logs message and args at error severity.
func (l *Logger) Error(message string, args ...any) { l.log(ErrorSeverity, message, args) }

// Log logs message and args at severity s.
func (l *Logger) Log(s Severity, message string, args ...any) { l.log(s, message, args) }

func (l *Logger) log(s Severity, message string, args []any) {
	if !l.Enabled() {
		return
	}
	l.console.Emit(s, l.context, message, args...)
}

// GroupOption modifies how Group renders.
type GroupOption func(*groupOptions)

type groupOptions struct {
	collapsed bool
	severity  Severity
}

// Collapsed sets whether the group opens collapsed.
func Collapsed(v bool) GroupOption {
	return func(o *groupOptions) { o.collapsed = v }
}

// Expanded opens the group expanded.
func Expanded() GroupOption {
	return Collapsed(false)
}

// AtSeverity sets the severity of the group header.
func AtSeverity(s Severity) GroupOption {
	return func(o *groupOptions) { o.severity = s }
}

// Group runs body inside a labelled group. Groups open collapsed at info
// severity unless opts say otherwise. When the logger is disabled body is
// not called and nothing is written.
//
// Only lines logged before body returns belong to the group; work that body
// leaves running in other goroutines is not grouped.
func (l *Logger) Group(label string, body func(), opts ...GroupOption) {
	o := groupOptions{collapsed: true, severity: InfoSeverity}
	for _, opt := range opts {
		opt(&o)
	}
	if !l.Enabled() {
		return
	}
	l.console.Group(o.severity, l.context, label, body, o.collapsed)
}
