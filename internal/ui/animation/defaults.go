package animation

import "time"

// DefaultConfig returns a slow, calm pulse.
func DefaultConfig() Config {
	return Config{
		FrameDuration: Range{
			Min: 700 * time.Millisecond,
			Max: 900 * time.Millisecond,
		},
		RestDuration: Range{
			Min: 1500 * time.Millisecond,
			Max: 2500 * time.Millisecond,
		},
	}
}
