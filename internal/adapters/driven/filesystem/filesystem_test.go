package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

func TestStore_WriteFile_Creates(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := New(fs)

	n, err := store.WriteFile("/out.json", []byte("{}\n"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	data, err := afero.ReadFile(fs, "/out.json")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestStore_WriteFile_Truncates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out.json", []byte("a much longer previous document"), 0644))
	store := New(fs)

	_, err := store.WriteFile("/out.json", []byte("1\n"))

	require.NoError(t, err)
	data, _ := afero.ReadFile(fs, "/out.json")
	assert.Equal(t, "1\n", string(data))
}

func TestStore_WriteFile_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out.json", []byte("old"), 0644))

	n, err := New(fs).WriteFile("/out.json", []byte{})

	require.NoError(t, err)
	assert.Zero(t, n)
	data, _ := afero.ReadFile(fs, "/out.json")
	assert.Empty(t, data)
}

func TestStore_WriteFile_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/keep.json", []byte("original"), 0644))
	store := New(afero.NewReadOnlyFs(base))

	n, err := store.WriteFile("/keep.json", []byte("new"))

	assert.ErrorIs(t, err, domain.ErrOpenFailed)
	assert.Zero(t, n)
	data, _ := afero.ReadFile(base, "/keep.json")
	assert.Equal(t, "original", string(data))
}

func TestStore_WriteFile_MissingDirectory(t *testing.T) {
	dir := t.TempDir()
	store := NewOS()

	_, err := store.WriteFile(filepath.Join(dir, "nope", "out.json"), []byte("{}"))

	assert.ErrorIs(t, err, domain.ErrOpenFailed)
}

func TestStore_WriteFile_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := NewOS().WriteFile(path, []byte("{}"))

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, FileMode, info.Mode().Perm()&FileMode)
}

func TestStore_ReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "exact\r\nbytes\x00\xff"
	require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte(content), 0644))

	data, err := New(fs).ReadFile("/in.txt")

	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestStore_ReadFile_Missing(t *testing.T) {
	_, err := New(afero.NewMemMapFs()).ReadFile("/missing.json")

	assert.ErrorIs(t, err, domain.ErrOpenFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_ReadFile_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0755))

	_, err := New(fs).ReadFile("/dir")

	assert.ErrorIs(t, err, domain.ErrReadFailed)
}

func TestStore_HomeDir(t *testing.T) {
	store := New(afero.NewMemMapFs()).WithHomeDir(func() (string, error) { return "/home/tester", nil })

	home, err := store.HomeDir()

	require.NoError(t, err)
	assert.Equal(t, "/home/tester", home)
}

func TestStore_HomeDir_Errors(t *testing.T) {
	failing := New(afero.NewMemMapFs()).WithHomeDir(func() (string, error) { return "", errors.New("no $HOME") })
	_, err := failing.HomeDir()
	assert.ErrorContains(t, err, "no $HOME")

	empty := New(afero.NewMemMapFs()).WithHomeDir(func() (string, error) { return "", nil })
	_, err = empty.HomeDir()
	assert.Error(t, err)
}
