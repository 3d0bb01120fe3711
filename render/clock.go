package render

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// Only footer stamps read it; everything else in this package is time-free.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for footer stamps. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
