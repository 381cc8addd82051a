package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	dir, err := DefaultConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".jsonbridge"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStoreFs(afero.NewMemMapFs(), "/cfg")
	require.NoError(t, err)

	require.NoError(t, store.Set("dialog.title", "Export"))
	require.NoError(t, store.Set("format.indent", 2))
	require.NoError(t, store.Set("history.enabled", true))

	assert.Equal(t, "Export", store.GetString("dialog.title"))
	assert.Equal(t, 2, store.GetInt("format.indent"))
	assert.True(t, store.GetBool("history.enabled"))

	assert.Empty(t, store.GetString("format.indent"))
	assert.Zero(t, store.GetInt("dialog.title"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Set_EmptyKey(t *testing.T) {
	store, err := NewConfigStoreFs(afero.NewMemMapFs(), "/cfg")
	require.NoError(t, err)

	assert.Error(t, store.Set("", "x"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewConfigStoreFs(fs, "/cfg")
	require.NoError(t, err)

	require.NoError(t, store.Set("format.indent", 2))
	require.NoError(t, store.Set("save.malformed", "skip"))

	data, err := afero.ReadFile(fs, "/cfg/config.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[format]")
	assert.Contains(t, string(data), "indent = 2")
	assert.Contains(t, string(data), "[save]")
	assert.Contains(t, string(data), "malformed = ")
	assert.Contains(t, string(data), "skip")
}

func TestConfigStore_Persistence(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewConfigStoreFs(fs, "/cfg")
	require.NoError(t, err)
	require.NoError(t, store.Set("dialog.title", "Keep me"))
	require.NoError(t, store.Set("format.indent", 8))

	reopened, err := NewConfigStoreFs(fs, "/cfg")
	require.NoError(t, err)

	assert.Equal(t, "Keep me", reopened.GetString("dialog.title"))
	assert.Equal(t, 8, reopened.GetInt("format.indent"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "[dialog]\ntitle = \"Pick a file\"\n\n[history]\nenabled = false\nlimit = 5\n"
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.toml", []byte(content), 0600))

	store, err := NewConfigStoreFs(fs, "/cfg")
	require.NoError(t, err)

	assert.Equal(t, "Pick a file", store.GetString("dialog.title"))
	assert.False(t, store.GetBool("history.enabled"))
	_, exists := store.Get("history.enabled")
	assert.True(t, exists)
	assert.Equal(t, 5, store.GetInt("history.limit"))
}

func TestConfigStore_Delete(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewConfigStoreFs(fs, "/cfg")
	require.NoError(t, err)
	require.NoError(t, store.Set("format.indent", 2))

	require.NoError(t, store.Delete("format.indent"))
	require.NoError(t, store.Delete("never.set"))

	reopened, err := NewConfigStoreFs(fs, "/cfg")
	require.NoError(t, err)
	_, ok := reopened.Get("format.indent")
	assert.False(t, ok)
}

func TestConfigStore_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStoreFs(afero.NewMemMapFs(), "/cfg")
	require.NoError(t, err)
	require.NoError(t, store.Set("format", "plain"))

	err = store.Set("format.indent", 2)

	assert.ErrorContains(t, err, "conflicts")
	_, ok := store.Get("format.indent")
	assert.False(t, ok, "a rejected key is not kept")
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.toml", []byte("not = [valid"), 0600))

	_, err := NewConfigStoreFs(fs, "/cfg")

	assert.ErrorContains(t, err, "parsing")
}

func TestNewConfigStore_EmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.toml", nil, 0600))

	store, err := NewConfigStoreFs(fs, "/cfg")

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_Save_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/cfg", 0700))
	store, err := NewConfigStoreFs(afero.NewReadOnlyFs(base), "/cfg")
	require.NoError(t, err)

	err = store.Set("format.indent", 2)

	assert.ErrorContains(t, err, "writing config")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("dialog.title", "x"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStoreFs(afero.NewMemMapFs(), "/cfg")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("history.limit", n+1)
			_ = store.GetInt("history.limit")
		}(i)
	}
	wg.Wait()

	assert.Positive(t, store.GetInt("history.limit"))
}
