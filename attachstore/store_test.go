package attachstore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A")

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, _, err := s.Get("1")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Put("1", "a.png", pngHeader)
	data, name, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "a.png", name)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attach.db")

	s, err := OpenBolt(path, false)
	require.NoError(t, err)
	_, _, err = s.Get("img:1")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Put("img:1", "cat.png", pngHeader))
	require.NoError(t, s.Close())

	ro, err := OpenBolt(path, true)
	require.NoError(t, err)
	defer ro.Close()

	data, name, err := ro.Get("img:1")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "cat.png", name)

	_, _, err = ro.Get("img:2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Error(t, ro.Put("img:3", "x", nil), "read-only store")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "cat.png", Filename("/tmp/pics/cat.png", nil))

	name := Filename("", pngHeader)
	assert.True(t, strings.HasPrefix(name, "gchat"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotEqual(t, name, Filename("", pngHeader))
}
