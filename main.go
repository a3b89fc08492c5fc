package main

import (
	"errors"
	"os"
	"time"

	"github.com/mordilloSan/scopelog/logger"
	"github.com/mordilloSan/scopelog/settings"
)

// Example demonstrating context-filtered logging.
//
// Usage: ./scopelog [filter]
// Example: ./scopelog 'app:*,-app:noise'
//
// The filter is written to an in-memory settings store; DEBUG, LOGS,
// LOGS_ENABLED, DISABLE_LOGS and APP_ENV from the environment still apply.
func main() {
	store := settings.NewMemoryStore(nil)
	if len(os.Args) > 1 {
		_ = store.Set(settings.KeyDebug, os.Args[1])
	}
	resolver := logger.NewResolver(settings.NewReader(store))

	core := logger.New(logger.Config{Context: "app:core", Resolver: resolver})
	noise := logger.New(logger.Config{Context: "app:noise", Resolver: resolver})
	db := logger.New(logger.Config{Context: "db:pool", Resolver: resolver})
	audit := logger.New(logger.Config{Context: "audit", Enabled: logger.Bool(true), Resolver: resolver})

	core.Debug("starting", time.Now())
	core.Info("listening", map[string]any{"port": 8080, "tls": false})
	noise.Debug("tick")
	db.Warn("slow query", 1200*time.Millisecond)
	db.Error("connection lost", errors.New("connection reset by peer"))
	audit.Info("audit logging is always on")

	core.Group("migrations", func() {
		core.Info("0001_init")
		db.Info("pool resized", 16)
		core.Group("seed", func() {
			core.Debug("users")
		}, logger.Expanded())
	})

	// Switch everything off at runtime; the next call sees it.
	_ = store.Set(settings.KeyDisableLogs, "true")
	core.Info("not shown")
	audit.Info("still shown")
}
