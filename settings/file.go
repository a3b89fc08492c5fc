package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// DefaultFileName is the settings file name inside the user config directory.
const DefaultFileName = "settings.yaml"

// FileStore keeps settings as a flat YAML document of KEY: value pairs.
// The file is checked on every lookup so edits take effect on the next one;
// it is decoded again only when its modification time or size changes.
// Writes replace the file atomically, so readers never see a partial document.
type FileStore struct {
	fs   afero.Fs
	path string

	// guards the file and the decoded values
	mu      sync.Mutex
	values  map[string]string
	version fileVersion
}

type fileVersion struct {
	modTime time.Time
	size    int64
}

func (v fileVersion) same(o fileVersion) bool {
	return v.size == o.size && v.modTime.Equal(o.modTime)
}

// NewFileStore returns a FileStore for path on fs. A nil fs uses the OS filesystem.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs, path: path}
}

// DefaultFileStorePath returns the per-user settings file location.
func DefaultFileStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: config dir: %w", err)
	}
	return filepath.Join(dir, "scopelog", DefaultFileName), nil
}

// Path returns the file location.
func (f *FileStore) Path() string { return f.path }

// Get implements Store.
func (f *FileStore) Get(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Set writes value under key, creating the file when needed.
func (f *FileStore) Set(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	values := make(map[string]string, len(current)+1)
	for k, v := range current {
		values[k] = v
	}
	values[key] = value
	return f.save(values)
}

// Delete removes key from the file.
func (f *FileStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := current[key]; !ok {
		return ErrKeyNotFound
	}
	values := make(map[string]string, len(current))
	for k, v := range current {
		if k != key {
			values[k] = v
		}
	}
	return f.save(values)
}

// Keys returns the keys currently in the file, sorted.
func (f *FileStore) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Snapshot implements Snapshotter. The returned Store holds the values as
// they are now and does not follow later edits.
func (f *FileStore) Snapshot() (Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(values), nil
}

// load returns the decoded file, reusing the last decode while the file is
// unchanged. The returned map must not be modified. f.mu must be held.
func (f *FileStore) load() (map[string]string, error) {
	info, err := f.fs.Stat(f.path)
	if err != nil {
		f.values = nil
		return nil, fmt.Errorf("settings: stat %s: %w", f.path, err)
	}
	version := fileVersion{modTime: info.ModTime(), size: info.Size()}
	if f.values != nil && version.same(f.version) {
		return f.values, nil
	}

	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		f.values = nil
		return nil, fmt.Errorf("settings: read %s: %w", f.path, err)
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		f.values = nil
		return nil, fmt.Errorf("settings: decode %s: %w", f.path, err)
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			values[k] = ""
			continue
		}
		values[k] = fmt.Sprint(v)
	}
	f.values, f.version = values, version
	return values, nil
}

// save replaces the file with values through a temporary file in the same
// directory. f.mu must be held.
func (f *FileStore) save(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("settings: encode %s: %w", f.path, err)
	}
	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: mkdir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(f.fs, dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("settings: write %s: %w", f.path, err)
	}
	name := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = f.fs.Chmod(name, 0o644)
	}
	if err == nil {
		err = f.fs.Rename(name, f.path)
	}
	if err != nil {
		_ = f.fs.Remove(name)
		f.values = nil
		return fmt.Errorf("settings: write %s: %w", f.path, err)
	}

	f.values = nil
	if info, err := f.fs.Stat(f.path); err == nil {
		f.values = values
		f.version = fileVersion{modTime: info.ModTime(), size: info.Size()}
	}
	return nil
}
