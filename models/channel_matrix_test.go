package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"core-temp/models"
)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// TestReshape_LengthsRoundTrip checks that k*N values split into N channels
// of length k for every distribution that partitions.
func TestReshape_LengthsRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		for _, k := range []int{0, 1, 3, 10} {
			for _, d := range []models.Distribution{models.RoundRobin, models.Block} {
				m, err := models.NewReshapedMatrix(seq(k*n), n, d, models.DefaultTimeStep)
				require.NoError(t, err)
				assert.Equal(t, models.Shape{Channels: n, Length: k}, m.Shape(), "n=%d k=%d %s", n, k, d)
				for c := 0; c < n; c++ {
					assert.Len(t, m.Values(c), k)
				}
			}
		}
	}
}

// TestReshape_DimensionError verifies a non-divisible stream is rejected.
func TestReshape_DimensionError(t *testing.T) {
	_, err := models.NewReshapedMatrix(seq(10), 4, models.RoundRobin, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDimension)

	var de *models.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 4, de.Expected)
	assert.Equal(t, 10, de.Got)
	assert.Contains(t, err.Error(), "multiples of 4")
}

func TestReshape_RoundRobin(t *testing.T) {
	m, err := models.NewReshapedMatrix(seq(8), 4, models.RoundRobin, 30)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4}, m.Values(0))
	assert.Equal(t, []float64{1, 5}, m.Values(1))
	assert.Equal(t, []float64{3, 7}, m.Values(3))
	assert.Equal(t, []float64{0, 30}, m.Times())
	assert.Equal(t, models.OriginReshaped, m.Origin())
}

func TestReshape_Block(t *testing.T) {
	m, err := models.NewReshapedMatrix(seq(8), 4, models.Block, 30)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, m.Values(0))
	assert.Equal(t, []float64{6, 7}, m.Values(3))
}

// TestReshape_Broadcast keeps the legacy behaviour: every channel is the full stream.
func TestReshape_Broadcast(t *testing.T) {
	flat := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	m, err := models.NewReshapedMatrix(flat, 4, models.Broadcast, 30)
	require.NoError(t, err)
	assert.Equal(t, models.Shape{Channels: 4, Length: 8}, m.Shape())
	for k := 0; k < 4; k++ {
		assert.Equal(t, flat, m.Values(k))
	}
}

func TestReshape_BadArguments(t *testing.T) {
	_, err := models.NewReshapedMatrix(seq(4), 0, models.RoundRobin, 30)
	assert.ErrorIs(t, err, models.ErrInvalidChannels)

	_, err = models.NewReshapedMatrix(seq(4), 2, models.RoundRobin, 0)
	assert.ErrorIs(t, err, models.ErrInvalidStep)

	_, err = models.NewReshapedMatrix(seq(4), 2, models.Distribution(42), 30)
	assert.Error(t, err)
}

// TestRowTagged_Timestamps verifies row i is stamped i*30.
func TestRowTagged_Timestamps(t *testing.T) {
	rows := make([][]float64, 6)
	for i := range rows {
		rows[i] = []float64{float64(i), 10 + float64(i), 20 + float64(i), 30 + float64(i)}
	}
	m, err := models.NewRowTaggedMatrix(rows, 4, models.DefaultTimeStep)
	require.NoError(t, err)

	assert.Equal(t, models.Shape{Channels: 4, Length: 6}, m.Shape())
	assert.Equal(t, models.OriginRowTagged, m.Origin())

	ts := m.Times()
	assert.Equal(t, 0.0, ts[0])
	assert.Equal(t, 30.0, ts[1])
	assert.Equal(t, 150.0, ts[5])

	ch := m.Channel(2)
	assert.Equal(t, models.Sample{Time: 150, Value: 25}, ch[5])
	assert.Equal(t, []float64{10, 11, 12, 13, 14, 15}, m.Values(1))
}

func TestRowTagged_CustomStep(t *testing.T) {
	m, err := models.NewRowTaggedMatrix([][]float64{{1, 2}, {3, 4}, {5, 6}}, 2, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5}, m.Times())
	assert.Equal(t, 2.5, m.Step())
}

func TestRowTagged_WrongWidth(t *testing.T) {
	_, err := models.NewRowTaggedMatrix([][]float64{{1, 2, 3, 4}, {1, 2, 3}}, 4, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrParse)
	assert.ErrorIs(t, err, models.ErrFieldCount)

	var pe *models.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

// TestMatrix_Immutable ensures accessor results do not alias internal storage.
func TestMatrix_Immutable(t *testing.T) {
	m, err := models.NewRowTaggedMatrix([][]float64{{1, 2}, {3, 4}}, 2, 30)
	require.NoError(t, err)

	v := m.Values(0)
	v[0] = 99
	ts := m.Times()
	ts[1] = -1

	assert.Equal(t, []float64{1, 3}, m.Values(0))
	assert.Equal(t, []float64{0, 30}, m.Times())
}

func TestInterpolatedMatrix_Ragged(t *testing.T) {
	_, err := models.NewInterpolatedMatrix([]float64{0, 30}, [][]float64{{1, 2}, {1}}, 30)
	assert.ErrorIs(t, err, models.ErrRaggedChannels)
	assert.ErrorIs(t, err, models.ErrDimension)

	m, err := models.NewInterpolatedMatrix([]float64{0, 30}, [][]float64{{1, 2}, {3, 4}}, 30)
	require.NoError(t, err)
	assert.Equal(t, models.OriginInterpolated, m.Origin())
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestShapeAndNames(t *testing.T) {
	assert.Equal(t, "(4, 12)", models.Shape{Channels: 4, Length: 12}.String())
	assert.Equal(t, "row-tagged", models.OriginRowTagged.String())

	d, err := models.ParseDistribution(" Block ")
	require.NoError(t, err)
	assert.Equal(t, models.Block, d)
	assert.Equal(t, "round_robin", models.RoundRobin.String())

	_, err = models.ParseDistribution("zigzag")
	assert.Error(t, err)
}
