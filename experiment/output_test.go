package experiment_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/experiment"
)

func TestWriteResults(t *testing.T) {
	results := []experiment.Result{
		{Size: 500, Mean: 40.12},
		{Size: 250, Mean: 28.35},
		{Size: 750, Mean: 49},
	}
	var buf bytes.Buffer
	require.NoError(t, experiment.WriteResults(&buf, results))
	assert.Equal(t, "250 28.350000\n500 40.120000\n750 49.000000\n", buf.String())
	assert.Equal(t, 500, results[0].Size, "input slice is not reordered")
}

func TestWriteFileAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randomwalk.txt")
	in := []experiment.Result{{Size: 250, Mean: 1.5}, {Size: 2000, Mean: 3.25}}
	require.NoError(t, experiment.WriteFile(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "250 1.500000\n2000 3.250000\n", string(raw))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	out, err := experiment.ReadResults(f)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteFile_BadPath(t *testing.T) {
	err := experiment.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadResults_Malformed(t *testing.T) {
	for _, in := range []string{"250\n", "x 1.0\n", "250 y\n", "1 2 3\n"} {
		_, err := experiment.ReadResults(strings.NewReader(in))
		assert.ErrorIs(t, err, experiment.ErrMalformedLine, "input %q", in)
	}

	out, err := experiment.ReadResults(strings.NewReader("\n10 2.000000\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []experiment.Result{{Size: 10, Mean: 2}}, out)
}

func TestAggregate(t *testing.T) {
	res := experiment.Aggregate(10, []float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 10, res.Size)
	assert.Equal(t, 8, res.Trials)
	assert.InDelta(t, 5.0, res.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), res.StdDev, 1e-12)
	assert.Equal(t, 2, res.Min)
	assert.Equal(t, 9, res.Max)

	one := experiment.Aggregate(3, []float64{6})
	assert.Equal(t, experiment.Result{Size: 3, Trials: 1, Mean: 6, Min: 6, Max: 6}, one)

	assert.Equal(t, experiment.Result{Size: 4}, experiment.Aggregate(4, nil))
}
