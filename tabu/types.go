package tabu

import (
	"time"

	"github.com/flightcontest/solver/tour"
)

// Config carries the driver's tunable constants. The CLI hard-codes these
// and exposes no flags, but an Options-struct-with-DefaultX-constructor is
// kept here for the parameters that genuinely vary (time budget,
// diversification), rather than scattering magic numbers through driver.go.
type Config struct {
	// TimeBudget bounds the wall-clock duration of the main loop.
	TimeBudget time.Duration

	// DiversificationThreshold is the number of consecutive
	// non-improving iterations that triggers a diversification restart.
	DiversificationThreshold int

	// EnableDiversification toggles the restart entirely; when false the
	// driver runs a pure intensification search for the whole budget.
	EnableDiversification bool
}

// DefaultConfig returns the 29 second time budget and 400-iteration
// diversification threshold that this solver ships with, diversification
// enabled.
func DefaultConfig() Config {
	return Config{
		TimeBudget:               29 * time.Second,
		DiversificationThreshold: 400,
		EnableDiversification:    true,
	}
}

// Result is the outcome of a Run: the incumbent tour and bookkeeping
// useful for diagnostics.
type Result struct {
	Best            tour.Tour
	Cost            int
	Iterations      int
	Diversifications int
}
