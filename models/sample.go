package models

// Sample holds one reading of one channel at one instant.
type Sample struct {
	Time  float64 `json:"time_s"`
	Value float64 `json:"value"` // °C in the row-tagged temperature logs
}

// Channel is a time-ascending sequence of samples for one core.
type Channel []Sample
