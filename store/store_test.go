package store_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cascade/store"
)

func TestSaveArray_CreatesDirectoryAndRoundTrips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	data := []float64{0, 1.5, math.Inf(1)}

	path, err := store.SaveArray(dir, "dist", data)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dist.npy"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []float64
	require.NoError(t, npyio.Read(f, &got))
	assert.Equal(t, data, got)
}

func TestSaveArray_KeepsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := store.SaveArray(dir, "x.npy", []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.npy"), path)
}

func TestSaveArray_EmptyFilename(t *testing.T) {
	_, err := store.SaveArray(t.TempDir(), "", []float64{1})
	require.ErrorIs(t, err, store.ErrEmptyFilename)
}

func TestDistanceVector(t *testing.T) {
	got := store.DistanceVector(map[string]float64{"a": 0, "c": 2}, []string{"a", "b", "c"})
	require.Len(t, got, 3)
	assert.Equal(t, 0.0, got[0])
	assert.True(t, math.IsInf(got[1], 1))
	assert.Equal(t, 2.0, got[2])
}
