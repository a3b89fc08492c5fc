// Package settings reads the external signals that drive log enablement.
//
// A signal is looked up by an ordered list of key names across two tiers:
// the persisted settings Store first, then the process environment. The
// first key that is present in a tier wins, and a present value is returned
// verbatim even when it looks falsy ("false", "0", "").
//
// # Stores
//
// The persisted tier is any Store implementation:
//
//   - MemoryStore: in-process map, useful for tests and interactive toggles
//   - FileStore: YAML file of KEY: value pairs, re-read on every lookup
//   - ViperStore: adapts an existing *viper.Viper instance
//
// Lookups never fail. A Store that errors or panics is treated as if the key
// were absent, so resolution always completes.
//
// # Keys
//
// Keys groups the key families consulted by the logger:
//
//	DISABLE_LOGS / PUBLIC_DISABLE_LOGS    hard off
//	DEBUG / PUBLIC_DEBUG                  context filter
//	LOGS / PUBLIC_LOGS                    context filter fallback
//	LOGS_ENABLED / PUBLIC_LOGS_ENABLED    global enable
//	APP_ENV                               deployment environment
package settings
