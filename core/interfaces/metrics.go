package interfaces

import "time"

// Metrics receives one observation per finished resolution.
type Metrics interface {
	// RecordResolution records the outcome kind, the hops consumed and how long
	// the whole resolution took.
	RecordResolution(outcome string, hops int, duration time.Duration)
}
