package gallery

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArchive(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.gallery")
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := testArchive(t)

	w, err := NewWriter(path, Metadata{Name: "test", Version: "1.0"})
	require.NoError(t, err)

	entry := Entry{
		Sketch: "contours",
		Seed:   42,
		Frame:  3,
		Params: `{"points":24}`,
		Data:   []byte("not-really-png"),
	}
	require.NoError(t, w.WriteFrame(entry))
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.ReadFrame("contours", 42, 3)
	require.NoError(t, err)
	assert.Equal(t, entry.Params, got.Params)
	assert.Equal(t, entry.Data, got.Data)

	meta, err := r.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "test", meta.Name)
	assert.Equal(t, "1.0", meta.Version)
}

func TestReadMissingFrame(t *testing.T) {
	path := testArchive(t)

	w, err := NewWriter(path, Metadata{Name: "empty"})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.ReadFrame("contours", 1, 0)
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestWriteFrameReplacesDuplicate(t *testing.T) {
	path := testArchive(t)

	w, err := NewWriter(path, Metadata{Name: "dup"})
	require.NoError(t, err)

	first := Entry{Sketch: "grid", Seed: 1, Frame: 0, Params: "{}", Data: []byte("v1")}
	second := first
	second.Data = []byte("v2")

	require.NoError(t, w.WriteFrame(first))
	require.NoError(t, w.WriteFrame(second))
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.ReadFrame("grid", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got.Data)

	keys, err := r.List()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestListOrder(t *testing.T) {
	path := testArchive(t)

	w, err := NewWriter(path, Metadata{Name: "order"})
	require.NoError(t, err)

	for _, e := range []Entry{
		{Sketch: "stripes", Seed: 2, Frame: 1, Params: "{}", Data: []byte("a")},
		{Sketch: "contours", Seed: 1, Frame: 5, Params: "{}", Data: []byte("b")},
		{Sketch: "contours", Seed: 1, Frame: 2, Params: "{}", Data: []byte("c")},
	} {
		require.NoError(t, w.WriteFrame(e))
	}
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	keys, err := r.List()
	require.NoError(t, err)
	require.Len(t, keys, 3)
	assert.Equal(t, Key{Sketch: "contours", Seed: 1, Frame: 2}, keys[0])
	assert.Equal(t, Key{Sketch: "contours", Seed: 1, Frame: 5}, keys[1])
	assert.Equal(t, Key{Sketch: "stripes", Seed: 2, Frame: 1}, keys[2])
}

func TestBatchFlushOnThreshold(t *testing.T) {
	path := testArchive(t)

	w, err := NewWriter(path, Metadata{Name: "batch"})
	require.NoError(t, err)
	w.batchSize = 2

	require.NoError(t, w.WriteFrame(Entry{Sketch: "a", Seed: 1, Frame: 0, Params: "{}", Data: []byte("x")}))
	assert.Len(t, w.batch, 1, "first write should stay buffered")

	require.NoError(t, w.WriteFrame(Entry{Sketch: "a", Seed: 1, Frame: 1, Params: "{}", Data: []byte("y")}))
	assert.Empty(t, w.batch, "reaching the batch size should flush")

	require.NoError(t, w.Close())
}

func TestOpenReaderRejectsMissingSchema(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "missing.gallery"))
	assert.Error(t, err)
}
