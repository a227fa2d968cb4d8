package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage_StoreAndPath(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Store(strings.NewReader("conteúdo"), "foto.jpg")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(name, ".jpg"))
	require.NotEqual(t, "foto.jpg", name) // nome regenerado, nunca o original

	path, err := store.Path(name)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "conteúdo", string(data))
}

func TestLocalStorage_UniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	a, err := store.Store(strings.NewReader("a"), "mesma.png")
	require.NoError(t, err)
	b, err := store.Store(strings.NewReader("b"), "mesma.png")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestLocalStorage_Delete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Store(strings.NewReader("x"), "apagar.png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(name))

	_, err = store.Path(name)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, store.Delete(name), ErrNotFound)
}

func TestLocalStorage_PathRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// um arquivo fora da raiz que não pode ser alcançado
	outside := filepath.Join(filepath.Dir(dir), "segredo.txt")
	require.NoError(t, os.WriteFile(outside, []byte("segredo"), 0o600))

	for _, name := range []string{
		"",
		"..",
		"../segredo.txt",
		"..\\segredo.txt",
		"sub/arquivo.png",
		"inexistente.png",
	} {
		_, err := store.Path(name)
		require.ErrorIs(t, err, ErrNotFound, "name=%q", name)
	}
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "establishments")

	_, err := NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
