package views

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"core-temp/models"
)

// Stats holds the descriptive statistics of one channel.
type Stats struct {
	Max  float64 // -math.MaxFloat64 for an empty channel
	Mean float64 // NaN for an empty channel
}

// ChannelStats computes max and arithmetic mean for every channel, in order.
func ChannelStats(m *models.ChannelMatrix) []Stats {
	out := make([]Stats, m.NumChannels())
	for k := range out {
		v := m.Values(k)
		if len(v) == 0 {
			out[k] = Stats{Max: -math.MaxFloat64, Mean: math.NaN()}
			continue
		}
		out[k] = Stats{Max: floats.Max(v), Mean: stat.Mean(v, nil)}
	}
	return out
}

// Describe renders the length, every channel maximum and every channel mean
// of m as a multi-line block.
func Describe(m *models.ChannelMatrix) string {
	return render(m, "%.3f", "")
}

// TemperatureSummary renders the console summary of a temperature log:
// total sample count, then per-core maxima and means in °C.
func TemperatureSummary(m *models.ChannelMatrix) string {
	return render(m, "%.2f", "°C")
}

func render(m *models.ChannelMatrix, numFmt, unit string) string {
	stats := ChannelStats(m)
	s := m.Shape()

	var b strings.Builder
	fmt.Fprintf(&b, "Shape: %s\n", s)
	fmt.Fprintf(&b, "Total samples: %d (%d per channel)\n", s.Channels*s.Length, s.Length)

	b.WriteString("Max:")
	for k, st := range stats {
		fmt.Fprintf(&b, "  core-%d="+numFmt+unit, k, st.Max)
	}
	b.WriteString("\nMean:")
	for k, st := range stats {
		fmt.Fprintf(&b, "  core-%d="+numFmt+unit, k, st.Mean)
	}
	b.WriteString("\n")
	return b.String()
}
