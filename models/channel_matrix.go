package models

import (
	"fmt"
	"strings"

	"core-temp/utils"
)

// DefaultTimeStep is the synthetic sampling interval of the temperature logs.
const DefaultTimeStep = 30.0

// Origin records how a ChannelMatrix was produced. It selects the slope
// variant used when the matrix is interpolated.
type Origin int

const (
	OriginReshaped Origin = iota
	OriginRowTagged
	OriginInterpolated
)

var originNames = [...]string{"reshaped", "row-tagged", "interpolated"}

func (o Origin) String() string {
	if o >= 0 && int(o) < len(originNames) {
		return originNames[o]
	}
	return "unknown"
}

// Distribution decides how a flat value stream is split across channels.
type Distribution int

const (
	// RoundRobin sends value j to channel j mod N (row-major records).
	RoundRobin Distribution = iota
	// Block gives channel k the contiguous run [k·L, (k+1)·L).
	Block
	// Broadcast appends every value to every channel, yielding N identical
	// channels of the full stream.
	Broadcast
)

var distributionNames = map[Distribution]string{
	RoundRobin: "round_robin",
	Block:      "block",
	Broadcast:  "broadcast",
}

func (d Distribution) String() string {
	if n, ok := distributionNames[d]; ok {
		return n
	}
	return "unknown"
}

// ParseDistribution maps a config name to a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d, n := range distributionNames {
		if n == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown distribution %q", s)
}

// Shape is (channels, length).
type Shape struct {
	Channels int
	Length   int
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Channels, s.Length)
}

// ChannelMatrix holds N channels of identical length L sharing one time axis.
// It is immutable once built; accessors hand out copies.
type ChannelMatrix struct {
	origin Origin
	step   float64
	times  []float64
	values [][]float64 // values[k][i] is channel k at times[i]
}

// NewReshapedMatrix distributes flat into n channels on a step grid.
// len(flat) must be a multiple of n; the check happens before any channel
// storage is allocated.
func NewReshapedMatrix(flat []float64, n int, dist Distribution, step float64) (*ChannelMatrix, error) {
	if n < 1 {
		return nil, ErrInvalidChannels
	}
	if !(step > 0) {
		return nil, fmt.Errorf("reshape: %w (got %v)", ErrInvalidStep, step)
	}
	if _, ok := distributionNames[dist]; !ok {
		return nil, fmt.Errorf("reshape: unknown distribution %d", int(dist))
	}
	if len(flat)%n != 0 {
		return nil, &DimensionError{Expected: n, Got: len(flat)}
	}

	length := len(flat) / n
	if dist == Broadcast {
		length = len(flat)
	}
	values := make([][]float64, n)
	for k := range values {
		values[k] = make([]float64, length)
	}

	switch dist {
	case RoundRobin:
		for j, v := range flat {
			values[j%n][j/n] = v
		}
	case Block:
		for k := range values {
			copy(values[k], flat[k*length:(k+1)*length])
		}
	case Broadcast:
		for k := range values {
			copy(values[k], flat)
		}
	}

	return &ChannelMatrix{
		origin: OriginReshaped,
		step:   step,
		times:  utils.RowTimestamps(length, step),
		values: values,
	}, nil
}

// NewRowTaggedMatrix builds n channels from fixed-width records. Row i is
// stamped i·step and channel k holds rows[i][k].
func NewRowTaggedMatrix(rows [][]float64, n int, step float64) (*ChannelMatrix, error) {
	if n < 1 {
		return nil, ErrInvalidChannels
	}
	if !(step > 0) {
		return nil, fmt.Errorf("row-tagged: %w (got %v)", ErrInvalidStep, step)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, &ParseError{
				Line: i + 1,
				Err:  fmt.Errorf("%w: expected %d values, got %d", ErrFieldCount, n, len(r)),
			}
		}
	}

	values := make([][]float64, n)
	for k := range values {
		values[k] = make([]float64, len(rows))
		for i, r := range rows {
			values[k][i] = r[k]
		}
	}

	return &ChannelMatrix{
		origin: OriginRowTagged,
		step:   step,
		times:  utils.RowTimestamps(len(rows), step),
		values: values,
	}, nil
}

// NewInterpolatedMatrix wraps per-channel slopes computed from a parent
// matrix. times holds the start of each interval; every channel must have
// len(times) entries. Inputs are copied.
func NewInterpolatedMatrix(times []float64, slopes [][]float64, step float64) (*ChannelMatrix, error) {
	if len(slopes) < 1 {
		return nil, ErrInvalidChannels
	}
	values := make([][]float64, len(slopes))
	for k, s := range slopes {
		if len(s) != len(times) {
			return nil, fmt.Errorf("channel %d has %d slopes for %d intervals: %w",
				k, len(s), len(times), ErrRaggedChannels)
		}
		values[k] = append([]float64(nil), s...)
	}
	return &ChannelMatrix{
		origin: OriginInterpolated,
		step:   step,
		times:  append([]float64(nil), times...),
		values: values,
	}, nil
}

// Origin reports how the matrix was built.
func (m *ChannelMatrix) Origin() Origin { return m.origin }

// Step is the grid step the matrix was built or interpolated with.
func (m *ChannelMatrix) Step() float64 { return m.step }

// NumChannels returns N.
func (m *ChannelMatrix) NumChannels() int { return len(m.values) }

// Len returns the common channel length L.
func (m *ChannelMatrix) Len() int { return len(m.times) }

// Shape returns (N, L).
func (m *ChannelMatrix) Shape() Shape {
	return Shape{Channels: m.NumChannels(), Length: m.Len()}
}

// Times returns a copy of the shared time axis.
func (m *ChannelMatrix) Times() []float64 {
	return append([]float64(nil), m.times...)
}

// Values returns a copy of channel k's values. k must be in [0, N).
func (m *ChannelMatrix) Values(k int) []float64 {
	return append([]float64(nil), m.values[k]...)
}

// At returns channel k's value at index i.
func (m *ChannelMatrix) At(k, i int) float64 {
	return m.values[k][i]
}

// Channel returns channel k as timestamped samples.
func (m *ChannelMatrix) Channel(k int) Channel {
	ch := make(Channel, len(m.times))
	for i, t := range m.times {
		ch[i] = Sample{Time: t, Value: m.values[k][i]}
	}
	return ch
}
