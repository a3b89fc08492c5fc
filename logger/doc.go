// Package logger provides context-bound loggers whose output is switched on
// and off at call time by external settings.
//
// # Enablement
//
// Every call re-evaluates, in order:
//
//  1. Config.Enabled, when set, wins outright
//  2. DISABLE_LOGS=true silences everything else
//  3. DEBUG (or LOGS) context filters decide for loggers with a context
//  4. LOGS_ENABLED=true turns logging on
//  5. otherwise logging is on unless APP_ENV=production
//
// Each signal is read from the persisted settings store first (by default a
// YAML file in the user config directory) and then from the environment.
// Every key also has a PUBLIC_ alias, e.g. PUBLIC_DEBUG.
//
// # Context Filters
//
// Filters are comma or whitespace separated glob patterns. '*' matches any
// run of characters and a leading '-' excludes:
//
//	DEBUG="app:*,-app:noise svc:beta" ./myapp
//
// Excludes win over includes. When a filter is configured, a logger whose
// context matches no include stays silent even if LOGS_ENABLED is set.
//
// # Console Output
//
// Debug and info go to stdout, warn and error to stderr. On a colour
// terminal the "[SEVERITY] [context]" label is styled and extra arguments are
// pretty-printed; otherwise plain text is written. Journald priority prefixes
// are added to plain output when JOURNAL_STREAM is set.
//
// # Usage
//
//	log := logger.New(logger.Config{Context: "app:core"})
//	log.Info("server started", 8080)
//	log.Group("migrations", func() {
//	    log.Debug("applied", "0001_init")
//	})
//
// Force a logger on or off regardless of settings:
//
//	quiet := logger.New(logger.Config{Context: "app:noise", Enabled: logger.Bool(false)})
package logger
