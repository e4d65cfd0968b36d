package storage_test

import (
	"testing"

	"github.com/jrsteele09/go-gamehub-client/storage"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newSelector() (*storage.Selector, *storage.MemoryStore, *storage.MemoryStore) {
	durable := storage.NewMemoryStore()
	session := storage.NewMemoryStore()
	return storage.NewSelector(durable, session, zerolog.Nop()), durable, session
}

func TestSelectorScopeFollowsRememberFlag(t *testing.T) {
	s, durable, _ := newSelector()

	require.Equal(t, storage.ScopeSession, s.Scope())
	require.False(t, s.Remember())

	s.SetRemember(true)
	require.Equal(t, storage.ScopeDurable, s.Scope())
	require.True(t, s.Remember())

	v, ok := durable.Get(storage.RememberKey)
	require.True(t, ok)
	require.Equal(t, "true", v)

	// Disabling removes the flag rather than writing "false".
	s.SetRemember(false)
	require.Equal(t, storage.ScopeSession, s.Scope())
	_, ok = durable.Get(storage.RememberKey)
	require.False(t, ok)
}

func TestSelectorWriteLandsInSelectedScope(t *testing.T) {
	s, durable, session := newSelector()

	s.Write("k", "session-value")
	_, ok := durable.Get("k")
	require.False(t, ok)
	v, ok := session.Get("k")
	require.True(t, ok)
	require.Equal(t, "session-value", v)

	s.SetRemember(true)
	s.Write("k", "durable-value")
	v, ok = durable.Get("k")
	require.True(t, ok)
	require.Equal(t, "durable-value", v)
}

func TestSelectorReadPrefersDurableWithFallback(t *testing.T) {
	s, durable, _ := newSelector()

	// Written while session-scoped, then preference flips: the session value
	// must still be readable because durable holds nothing.
	s.Write("k", "session-value")
	s.SetRemember(true)

	v, ok := s.Read("k")
	require.True(t, ok)
	require.Equal(t, "session-value", v)

	// Once durable actually holds a value it takes priority.
	require.NoError(t, durable.Set("k", "durable-value"))
	v, ok = s.Read("k")
	require.True(t, ok)
	require.Equal(t, "durable-value", v)
}

func TestSelectorEraseClearsBothScopes(t *testing.T) {
	s, durable, session := newSelector()

	require.NoError(t, durable.Set("k", "a"))
	require.NoError(t, session.Set("k", "b"))

	s.Erase("k")

	_, ok := s.Read("k")
	require.False(t, ok)
	_, ok = durable.Get("k")
	require.False(t, ok)
	_, ok = session.Get("k")
	require.False(t, ok)
}

// faultyStore fails every operation, standing in for a disabled or full
// storage backend.
type faultyStore struct{}

func (faultyStore) Get(string) (string, bool) { return "", false }
func (faultyStore) Set(string, string) error  { return errors.New("quota exceeded") }
func (faultyStore) Delete(string) error       { return errors.New("storage disabled") }

func TestSelectorSwallowsStorageFailures(t *testing.T) {
	s := storage.NewSelector(faultyStore{}, faultyStore{}, zerolog.Nop())

	// None of these may panic or propagate the error.
	s.SetRemember(true)
	s.SetRemember(false)
	s.Write("k", "v")
	s.Erase("k")

	_, ok := s.Read("k")
	require.False(t, ok)
}
