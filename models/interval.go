package models

// Interval is one piece of a channel's piecewise-linear reconstruction:
//
//	y = Y0 + Slope·x   for T0 <= x <= T1
//
// One Interval is emitted per interpolated sample.
type Interval struct {
	Core  int     `json:"core"`
	T0    float64 `json:"t0"`
	T1    float64 `json:"t1"`
	Y0    float64 `json:"y0"`
	Slope float64 `json:"slope"`
}

func (Interval) CSVHeader() []string {
	return []string{"core", "t0", "t1", "y0", "slope"}
}

func (iv *Interval) CSVRow() []string {
	return []string{
		itoa(iv.Core),
		ftoa(iv.T0, 3), ftoa(iv.T1, 3),
		ftoa(iv.Y0, 6), ftoa(iv.Slope, 6),
	}
}
