package logger

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/scopelog/settings"
)

func TestFileSettings_DriveEnablement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scopelog", settings.DefaultFileName)
	store := settings.NewFileStore(nil, path)

	reader := &settings.Reader{
		Settings: store,
		Lookup: func(key string) (string, bool) {
			if key == settings.KeyEnvironment {
				return settings.Production, true
			}
			return "", false
		},
	}
	con, stdout, _ := newTestConsole(t, StylingNever)
	l := New(Config{Context: "app:core", Resolver: NewResolver(reader), Console: con})

	// no file yet: production default applies
	l.Info("before file")

	require.NoError(t, store.Set(settings.KeyLogsEnabled, "true"))
	l.Info("global enable from file")

	require.NoError(t, os.WriteFile(path, []byte("DEBUG: \"svc:*\"\nLOGS_ENABLED: true\n"), 0o644))
	l.Info("filtered by file")

	require.NoError(t, os.WriteFile(path, []byte("PUBLIC_DEBUG: app:*\n"), 0o644))
	l.Info("included by alias")

	require.NoError(t, os.WriteFile(path, []byte("DISABLE_LOGS: TRUE\nDEBUG: app:*\n"), 0o644))
	l.Info("hard off from file")

	assert.Equal(t,
		"[INFO] [app:core] global enable from file\n[INFO] [app:core] included by alias\n",
		stdout.String())
}

func TestFileSettings_UnreadableFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, settings.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml :::\n\t- ["), 0o644))

	reader := &settings.Reader{
		Settings: settings.NewFileStore(nil, path),
		Lookup: func(key string) (string, bool) {
			if key == settings.KeyDebug {
				return "app:*", true
			}
			return "", false
		},
	}
	con, stdout, _ := newTestConsole(t, StylingNever)
	New(Config{Context: "app:core", Resolver: NewResolver(reader), Console: con}).Info("env still applies")
	New(Config{Context: "svc:beta", Resolver: NewResolver(reader), Console: con}).Info("filtered")

	assert.Equal(t, "[INFO] [app:core] env still applies\n", stdout.String())
}

type countingFs struct {
	afero.Fs
	opens atomic.Int64
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.opens.Add(1)
	return c.Fs.Open(name)
}

func (c *countingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	c.opens.Add(1)
	return c.Fs.OpenFile(name, flag, perm)
}

func TestFileSettings_ReadAtMostOncePerCall(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := &countingFs{Fs: mem}
	path := "/cfg/scopelog/settings.yaml"
	require.NoError(t, afero.WriteFile(mem, path, []byte("LOGS_ENABLED: true\nAPP_ENV: production\n"), 0o644))

	reader := &settings.Reader{Settings: settings.NewFileStore(fs, path)}
	con, stdout, _ := newTestConsole(t, StylingNever)
	l := New(Config{Context: "app:core", Resolver: NewResolver(reader), Console: con})

	l.Info("one line")
	assert.Equal(t, int64(1), fs.opens.Load())

	l.Info("unchanged file")
	l.Group("grouped", func() { l.Debug("inside") })
	assert.Equal(t, int64(1), fs.opens.Load())

	require.NoError(t, afero.WriteFile(mem, path, []byte("DISABLE_LOGS: \"true\"\nLOGS_ENABLED: true\n"), 0o644))
	l.Info("switched off")
	assert.Equal(t, int64(2), fs.opens.Load())

	assert.Equal(t,
		"[INFO] [app:core] one line\n[INFO] [app:core] unchanged file\n"+
			"▸ [INFO] [app:core] grouped\n  [INFO] [app:core] grouped\n  [DEBUG] [app:core] inside\n",
		stdout.String())
}
