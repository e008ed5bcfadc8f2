package views_test

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"core-temp/models"
	"core-temp/services/interp"
	"core-temp/views"
)

// sampleMatrices returns a 4-core, 5-row log and its slopes.
func sampleMatrices(t *testing.T) (*models.ChannelMatrix, *models.ChannelMatrix) {
	t.Helper()
	rows := [][]float64{
		{40.0, 41.0, 42.0, 43.0},
		{41.5, 41.0, 42.3, 44.5},
		{43.0, 40.4, 42.9, 44.5},
		{42.1, 40.4, 43.5, 45.1},
		{41.2, 40.7, 44.1, 46.0},
	}
	orig, err := models.NewRowTaggedMatrix(rows, 4, models.DefaultTimeStep)
	require.NoError(t, err)
	slopes, err := interp.Interpolate(orig, models.DefaultTimeStep)
	require.NoError(t, err)
	return orig, slopes
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestFormatLine(t *testing.T) {
	got := views.FormatLine(models.Interval{T0: 0, T1: 30, Y0: 12.34, Slope: 0.05})
	assert.Equal(t, "0.000 <= x <=     30.000 ; y =   12.340 +    0.050 x ; interpolation\n", got)

	got = views.FormatLine(models.Interval{T0: 120, T1: 150, Y0: 41.2, Slope: -0.0333})
	assert.Equal(t, "120.000 <= x <=    150.000 ; y =   41.200 +   -0.033 x ; interpolation\n", got)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("logs", "run1-core-2.txt"), views.OutputPath(filepath.Join("logs", "run1.txt"), "", 2))
	assert.Equal(t, filepath.Join("out", "run1-core-0.txt"), views.OutputPath("/data/run1.txt", "out", 0))
	assert.Equal(t, filepath.Join("out", "run1-interp.csv"), views.ExportPath("run1.txt", "out", views.ExportCSV))
	assert.Equal(t, "run1", views.Stem("/a/b/run1.log"))
	assert.Equal(t, ".hidden", views.Stem(".hidden"))
}

func TestIntervals(t *testing.T) {
	orig, slopes := sampleMatrices(t)
	ivs := views.Intervals(orig, slopes, 30, 1)
	require.Len(t, ivs, 4)

	assert.Equal(t, 1, ivs[0].Core)
	assert.Equal(t, 0.0, ivs[0].T0)
	assert.Equal(t, 30.0, ivs[0].T1)
	assert.Equal(t, 41.0, ivs[0].Y0)
	assert.Equal(t, 90.0, ivs[3].T0)
	assert.Equal(t, 120.0, ivs[3].T1)
	assert.InDelta(t, 0.3/30, ivs[3].Slope, 1e-12)
}

// TestInterpWriter_OneFilePerCore checks file naming and that every file
// holds L-1 lines.
func TestInterpWriter_OneFilePerCore(t *testing.T) {
	orig, slopes := sampleMatrices(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "temps.txt")

	w := &views.InterpWriter{Workers: 2}
	paths, err := w.Write(context.Background(), orig, slopes, 30, base)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for k, p := range paths {
		assert.Equal(t, filepath.Join(dir, fmt.Sprintf("temps-core-%d.txt", k)), p)
		lines := readLines(t, p)
		assert.Len(t, lines, orig.Len()-1)
		for _, l := range lines {
			assert.True(t, strings.HasSuffix(l, "; interpolation"), l)
		}
	}

	first := readLines(t, paths[0])
	assert.Equal(t, "0.000 <= x <=     30.000 ; y =   40.000 +    0.050 x ; interpolation", first[0])
}

func TestInterpWriter_ShapeMismatch(t *testing.T) {
	orig, _ := sampleMatrices(t)
	bad, err := models.NewInterpolatedMatrix([]float64{0, 30}, [][]float64{{1, 2}, {1, 2}, {1, 2}, {1, 2}}, 30)
	require.NoError(t, err)

	dir := t.TempDir()
	w := &views.InterpWriter{}
	_, err = w.Write(context.Background(), orig, bad, 30, filepath.Join(dir, "temps.txt"))
	assert.ErrorIs(t, err, models.ErrShapeMismatch)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInterpWriter_UnwritableDir(t *testing.T) {
	orig, slopes := sampleMatrices(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	w := &views.InterpWriter{OutDir: blocker, Workers: 4}
	_, err := w.Write(context.Background(), orig, slopes, 30, "temps.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIO)
}

func TestInterpWriter_Cancelled(t *testing.T) {
	orig, slopes := sampleMatrices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &views.InterpWriter{OutDir: t.TempDir(), Workers: 1}
	_, err := w.Write(ctx, orig, slopes, 30, "temps.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckShapes_Empty(t *testing.T) {
	orig, err := models.NewRowTaggedMatrix(nil, 4, 30)
	require.NoError(t, err)
	slopes, err := interp.Interpolate(orig, 30)
	require.NoError(t, err)
	assert.NoError(t, views.CheckShapes(orig, slopes))

	w := &views.InterpWriter{OutDir: t.TempDir()}
	paths, err := w.Write(context.Background(), orig, slopes, 30, "empty.txt")
	require.NoError(t, err)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Empty(t, data)
	}
}
