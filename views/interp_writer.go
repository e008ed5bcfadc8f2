package views

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"core-temp/models"
	"core-temp/utils"
)

// lineFormat renders one interval: t0 and t1 bound x, y0 is the original
// value at the interval start and the slope is the interpolated value.
const lineFormat = "%5.3f <= x <= %10.3f ; y = %8.3f + %8.3f x ; interpolation\n"

// FormatLine renders iv as one line of a per-core output file.
func FormatLine(iv models.Interval) string {
	return fmt.Sprintf(lineFormat, iv.T0, iv.T1, iv.Y0, iv.Slope)
}

// CheckShapes verifies interp was derived from orig: same channel count and
// exactly one fewer sample per channel (or both empty).
func CheckShapes(orig, interp *models.ChannelMatrix) error {
	o, i := orig.Shape(), interp.Shape()
	if o.Channels != i.Channels {
		return fmt.Errorf("original %s vs interpolated %s: %w", o, i, models.ErrShapeMismatch)
	}
	if o.Length == i.Length+1 || (o.Length == 0 && i.Length == 0) {
		return nil
	}
	return fmt.Errorf("original %s vs interpolated %s: %w", o, i, models.ErrShapeMismatch)
}

// Intervals returns channel k's piecewise-linear pieces. Interval i spans
// [i·dt, i·dt+dt] and starts at the original value orig[k][i].
func Intervals(orig, interp *models.ChannelMatrix, dt float64, k int) []models.Interval {
	out := make([]models.Interval, interp.Len())
	for i := range out {
		t0, t1 := utils.IntervalBounds(i, dt)
		out[i] = models.Interval{
			Core:  k,
			T0:    t0,
			T1:    t1,
			Y0:    orig.At(k, i),
			Slope: interp.At(k, i),
		}
	}
	return out
}

// InterpWriter writes one text file per channel describing its
// piecewise-linear reconstruction.
type InterpWriter struct {
	OutDir       string // empty: next to the input file
	Workers      int    // concurrent files; <= 0 means one at a time
	BufSizeBytes int
}

// Write emits "<stem>-core-<k>.txt" for every channel k and returns the paths
// in channel order. Channels are written concurrently; if one fails, files
// already written are left on disk.
func (w *InterpWriter) Write(ctx context.Context, orig, interp *models.ChannelMatrix, dt float64, basePath string) ([]string, error) {
	if err := CheckShapes(orig, interp); err != nil {
		return nil, err
	}

	n := interp.NumChannels()
	paths := make([]string, n)
	for k := range paths {
		paths[k] = OutputPath(basePath, w.OutDir, k)
	}

	workers := w.Workers
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return w.writeCore(paths[k], Intervals(orig, interp, dt, k))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (w *InterpWriter) writeCore(path string, intervals []models.Interval) error {
	f, err := os.Create(path)
	if err != nil {
		return &models.IOError{Op: "create", Path: path, Err: err}
	}
	defer f.Close()

	size := w.BufSizeBytes
	if size <= 0 {
		size = 64 * 1024
	}
	bw := bufio.NewWriterSize(f, size)
	for _, iv := range intervals {
		if _, err := bw.WriteString(FormatLine(iv)); err != nil {
			return &models.IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &models.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &models.IOError{Op: "close", Path: path, Err: err}
	}
	utils.L().Debug("wrote %d intervals to %s", len(intervals), path)
	return nil
}
