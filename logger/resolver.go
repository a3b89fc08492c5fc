package logger

import (
	"sync"

	"github.com/mordilloSan/scopelog/filter"
	"github.com/mordilloSan/scopelog/settings"
)

// Resolver decides whether a logger emits. Signals are re-read on every
// call, so changes to the settings store or environment apply immediately.
type Resolver struct {
	// Signals supplies the external settings.
	Signals *settings.Reader
	// Keys names the signals consulted for each rule.
	Keys settings.Keys
	// Filters caches compiled filter strings; nil compiles on every call.
	Filters *filter.Cache
}

// NewResolver returns a Resolver over signals with the default key names.
func NewResolver(signals *settings.Reader) *Resolver {
	return &Resolver{
		Signals: signals,
		Keys:    settings.DefaultKeys(),
		Filters: filter.NewCache(filter.DefaultCacheSize),
	}
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	var store settings.Store
	if path, err := settings.DefaultFileStorePath(); err == nil {
		store = settings.NewFileStore(nil, path)
	}
	return NewResolver(settings.NewReader(store))
})

// DefaultResolver returns the process-wide Resolver. It reads the per-user
// settings file first and the process environment second.
func DefaultResolver() *Resolver {
	return defaultResolver()
}

// ShouldLog applies the enablement rules in order; the first that applies wins.
// The persisted settings are read once per call.
//
//  1. explicit, when non-nil
//  2. hard off signal "true": disabled
//  3. non-empty context and a configured filter: the filter decides
//  4. global enable signal "true": enabled
//  5. enabled unless the environment is exactly "production"
func (r *Resolver) ShouldLog(context string, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	signals := r.Signals.Snapshot()
	if signals.IsTrue(r.Keys.HardOff...) {
		return false
	}
	if context != "" {
		if set := r.contextFilter(signals); !set.Empty() {
			return set.Match(context)
		}
	}
	if signals.IsTrue(r.Keys.GlobalEnable...) {
		return true
	}
	env, _ := signals.Resolve(r.Keys.Environment...)
	return env != settings.Production
}

// ContextFilter returns the currently configured filter. The fallback key
// family is consulted only when no primary filter key is present.
func (r *Resolver) ContextFilter() filter.Set {
	return r.contextFilter(r.Signals.Snapshot())
}

func (r *Resolver) contextFilter(signals *settings.Reader) filter.Set {
	raw, ok := signals.Resolve(r.Keys.Filter...)
	if !ok {
		raw, _ = signals.Resolve(r.Keys.FilterFallback...)
	}
	return r.Filters.Compile(raw)
}
