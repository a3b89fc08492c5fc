package settings

import (
	"os"
	"strings"
)

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Reader resolves signals from the persisted Store, then the environment.
// A nil Settings or Lookup skips that tier. The zero value finds nothing.
type Reader struct {
	// Settings is the persisted settings tier, consulted first.
	Settings Store
	// Lookup is the environment tier, consulted second.
	Lookup LookupFunc
}

// NewReader returns a Reader over store and the process environment.
func NewReader(store Store) *Reader {
	return &Reader{Settings: store, Lookup: os.LookupEnv}
}

// Resolve returns the first present value for keys, trying every key
// against the Store before falling back to the environment.
func (r *Reader) Resolve(keys ...string) (string, bool) {
	if r == nil {
		return "", false
	}
	if r.Settings != nil {
		for _, key := range keys {
			if v, ok := r.fromStore(key); ok {
				return v, true
			}
		}
	}
	if r.Lookup != nil {
		for _, key := range keys {
			if v, ok := r.fromEnv(key); ok {
				return v, true
			}
		}
	}
	return "", false
}

// Snapshot returns a Reader whose persisted tier is read once, now. Stores
// that do not implement Snapshotter are kept as they are. A snapshot that
// fails leaves the persisted tier empty; the environment tier is unchanged.
func (r *Reader) Snapshot() *Reader {
	if r == nil {
		return nil
	}
	snap := &Reader{Settings: r.Settings, Lookup: r.Lookup}
	if s, ok := r.Settings.(Snapshotter); ok {
		snap.Settings = takeSnapshot(s)
	}
	return snap
}

func takeSnapshot(s Snapshotter) (store Store) {
	defer func() {
		if recover() != nil {
			store = nil
		}
	}()
	snap, err := s.Snapshot()
	if err != nil || snap == nil {
		return nil
	}
	return snap
}

// IsTrue reports whether keys resolve to "true", ignoring case.
func (r *Reader) IsTrue(keys ...string) bool {
	v, ok := r.Resolve(keys...)
	return ok && strings.EqualFold(v, "true")
}

func (r *Reader) fromStore(key string) (v string, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = "", false
		}
	}()
	v, err := r.Settings.Get(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *Reader) fromEnv(key string) (v string, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = "", false
		}
	}()
	return r.Lookup(key)
}
