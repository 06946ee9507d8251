package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemory()

	err := s.Put("k", &sample{Name: "cbc", Count: 2})
	require.NoError(t, err)

	var out sample
	err = s.Get("k", &out)
	require.NoError(t, err)
	assert.Equal(t, "cbc", out.Name)
	assert.Equal(t, 2, out.Count)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	s := NewMemory()

	var out sample
	err := s.Get("absent", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Put("k", &sample{Name: "x"}))
	require.NoError(t, s.Delete("k"))

	var out sample
	assert.ErrorIs(t, s.Get("k", &out), ErrKeyNotFound)

	// Deleting an absent key is a no-op
	assert.NoError(t, s.Delete("k"))
}

func TestMemoryStore_PutReplacesWholesale(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Put("list", []sample{{Name: "a"}, {Name: "b"}}))
	require.NoError(t, s.Put("list", []sample{{Name: "c"}}))

	var out []sample
	require.NoError(t, s.Get("list", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Name)
}

func TestBoltStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("k", &sample{Name: "mri", Count: 1}))

	var out sample
	require.NoError(t, s.Get("k", &out))
	assert.Equal(t, "mri", out.Name)

	var missing sample
	assert.ErrorIs(t, s.Get("absent", &missing), ErrKeyNotFound)
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("theme", "dark"))
	require.NoError(t, s.Close())

	s2, err := OpenBolt(path)
	require.NoError(t, err)
	defer s2.Close()

	var theme string
	require.NoError(t, s2.Get("theme", &theme))
	assert.Equal(t, "dark", theme)
}
