package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-gamehub-client/storage"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := storage.NewMemoryStore()

	_, ok := s.Get("k")
	require.False(t, ok)

	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	require.NoError(t, s.Delete("k"))
	_, ok = s.Get("k")
	require.False(t, ok)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "gamehub.json")

	s, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "abc"))
	require.NoError(t, s.Set("flag", "true"))
	require.NoError(t, s.Delete("flag"))

	reopened, err := storage.NewFileStore(path)
	require.NoError(t, err)

	v, ok := reopened.Get("token")
	require.True(t, ok)
	require.Equal(t, "abc", v)
	_, ok = reopened.Get("flag")
	require.False(t, ok)
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s, err := storage.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	_, ok := s.Get("anything")
	require.False(t, ok)
}

func TestFileStoreCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := storage.NewFileStore(path)
	require.Error(t, err)
}
