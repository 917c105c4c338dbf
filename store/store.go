// Package store persists numeric results as NumPy .npy files so they can be
// loaded with numpy.load next to the tooling that produced the graphs.
package store

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbinet/npyio"
)

// npyExt is appended to file names that lack it, as numpy.save does.
const npyExt = ".npy"

// ErrEmptyFilename indicates SaveArray was called without a file name.
var ErrEmptyFilename = errors.New("store: filename is empty")

// SaveArray writes data in .npy format to dir/filename and returns the path
// written. dir and its parents are created when absent. data may be any value
// npyio can encode: a slice or array of numbers, or a gonum matrix.
func SaveArray(dir, filename string, data any) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create %q: %w", dir, err)
	}
	if !strings.HasSuffix(filename, npyExt) {
		filename += npyExt
	}
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store: create %q: %w", path, err)
	}
	if err = npyio.Write(f, data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("store: write %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("store: close %q: %w", path, err)
	}

	return path, nil
}

// DistanceVector lays a distance map out along order. Vertices missing from
// dist (unreachable) become +Inf.
func DistanceVector(dist map[string]float64, order []string) []float64 {
	out := make([]float64, len(order))
	for i, v := range order {
		d, ok := dist[v]
		if !ok {
			d = math.Inf(1)
		}
		out[i] = d
	}

	return out
}
