package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varalys/ackrc/internal/platform"
)

func env(m map[string]string) platform.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_OrderAndLines(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	sys := filepath.Join(root, "etc", "ackrc")
	home := filepath.Join(root, "home")
	work := filepath.Join(root, "work")
	for _, d := range []string{filepath.Dir(sys), home, work} {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}
	require.NoError(t, os.WriteFile(sys, []byte("--sort-files\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".ackrc"), []byte("# mine\n--smart-case\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(work, "_ackrc"), []byte("--ignore-dir=vendor\n"), 0o644))

	sources, err := Load(Options{
		Platform:  platform.Unix(sys),
		Cwd:       work,
		LookupEnv: env(map[string]string{"HOME": home}),
	})
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, ScopeSystem, sources[0].Scope)
	assert.Equal(t, ScopeUser, sources[1].Scope)
	assert.True(t, sources[2].Project)
	assert.Equal(t, []string{"--sort-files", "--smart-case", "--ignore-dir=vendor"}, Args(sources))
}

func TestLoad_Conflict(t *testing.T) {
	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".ackrc"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(work, "_ackrc"), nil, 0o644))

	sources, err := Load(Options{Platform: platform.Unix(""), Cwd: work, LookupEnv: env(nil)})
	assert.Nil(t, sources)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
}
