package aisledir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_PathAccessors(t *testing.T) {
	d := New("/project/.aisle")

	assert.Equal(t, "/project/.aisle", d.Root())
	assert.Equal(t, "/project/.aisle/config.yaml", d.ConfigPath())
	assert.Equal(t, "/project/.aisle/local", d.LocalDir())
	assert.Equal(t, "/project/.aisle/local/debug.log", d.DebugLogPath())
	assert.Equal(t, "/project/.aisle/.gitignore", d.GitignorePath())
}

func TestDir_Exists(t *testing.T) {
	tmp := t.TempDir()

	d := New(filepath.Join(tmp, "missing"))
	assert.False(t, d.Exists())

	d = New(tmp)
	assert.True(t, d.Exists())
}

func TestEnsureStructure(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, ".aisle")
	require.NoError(t, os.Mkdir(root, 0o750))

	d := New(root)
	require.NoError(t, EnsureStructure(d))

	info, err := os.Stat(d.LocalDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "local/\n", string(data))
}

func TestEnsureStructure_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, ".aisle")
	require.NoError(t, os.Mkdir(root, 0o750))

	d := New(root)
	require.NoError(t, EnsureStructure(d))

	custom := "local/\ncustom-entry\n"
	require.NoError(t, os.WriteFile(d.GitignorePath(), []byte(custom), 0o600))

	require.NoError(t, EnsureStructure(d))

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestBootstrap(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, ".aisle")

	d := New(root)
	require.NoError(t, Bootstrap(d))

	assert.True(t, d.Exists())

	info, err := os.Stat(d.LocalDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(d.GitignorePath())
	require.NoError(t, err)

	data, err := os.ReadFile(d.ConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend:")
	assert.Contains(t, string(data), "model: llama3")
}

func TestBootstrap_DoesNotOverwrite(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, ".aisle")

	d := New(root)
	require.NoError(t, Bootstrap(d))

	custom := "custom: true\n"
	require.NoError(t, os.WriteFile(d.ConfigPath(), []byte(custom), 0o600))

	require.NoError(t, Bootstrap(d))

	data, err := os.ReadFile(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}
