// Package interp derives piecewise-linear slopes from channel matrices.
//
// Two variants exist:
//
//   - FixedStep divides each adjacent difference by a caller-supplied dt.
//     Reshaped matrices use it.
//   - PerSampleDelta divides by the samples' own time delta. Row-tagged
//     matrices use it.
//
// Both produce len(input)-1 slopes and an empty slice for inputs of length
// 0 or 1. They are pure and safe to call concurrently on distinct channels.
package interp

import (
	"fmt"

	"core-temp/models"
	"core-temp/utils"
)

// FixedStep returns (v[i+1]-v[i])/dt for each adjacent pair.
func FixedStep(values []float64, dt float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}
	out := make([]float64, len(values)-1)
	for i := range out {
		out[i] = (values[i+1] - values[i]) / dt
	}
	return out
}

// PerSampleDelta returns (v[i+1]-v[i])/(t[i+1]-t[i]) for each adjacent pair.
func PerSampleDelta(ch models.Channel) []float64 {
	if len(ch) < 2 {
		return []float64{}
	}
	out := make([]float64, len(ch)-1)
	for i := range out {
		out[i] = (ch[i+1].Value - ch[i].Value) / (ch[i+1].Time - ch[i].Time)
	}
	return out
}

// Slopes interpolates channel k of m with the variant m's origin calls for.
// dt is only used by the fixed-step variant.
func Slopes(m *models.ChannelMatrix, k int, dt float64) []float64 {
	if m.Origin() == models.OriginRowTagged {
		return PerSampleDelta(m.Channel(k))
	}
	return FixedStep(m.Values(k), dt)
}

// Interpolate derives the slope matrix of m. The result has the same channel
// count and one fewer sample per channel (zero for an empty matrix).
func Interpolate(m *models.ChannelMatrix, dt float64) (*models.ChannelMatrix, error) {
	if err := CheckStep(m, dt); err != nil {
		return nil, err
	}
	slopes := make([][]float64, m.NumChannels())
	for k := range slopes {
		slopes[k] = Slopes(m, k, dt)
	}
	return Assemble(m, dt, slopes)
}

// Assemble wraps per-channel slopes of m into an interpolated matrix whose
// time axis is the start of each interval on the matrix's own step grid.
func Assemble(m *models.ChannelMatrix, dt float64, slopes [][]float64) (*models.ChannelMatrix, error) {
	step := dt
	if m.Origin() == models.OriginRowTagged {
		step = m.Step()
	}
	n := m.Len() - 1
	if n < 0 {
		n = 0
	}
	return models.NewInterpolatedMatrix(utils.RowTimestamps(n, step), slopes, step)
}

// CheckStep rejects a non-positive dt for matrices that use the fixed-step
// variant. Row-tagged matrices ignore dt.
func CheckStep(m *models.ChannelMatrix, dt float64) error {
	if m.Origin() == models.OriginRowTagged {
		return nil
	}
	if !(dt > 0) {
		return fmt.Errorf("interp: %w (got %v)", models.ErrInvalidStep, dt)
	}
	return nil
}
