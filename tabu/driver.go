package tabu

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flightcontest/solver/graph"
	"github.com/flightcontest/solver/neighbourhood"
	"github.com/flightcontest/solver/semimatrix"
	"github.com/flightcontest/solver/tour"
)

// Run drives the tabu search loop starting from initial until cfg.TimeBudget
// elapses, returning the best tour found. log receives one diagnostic entry
// per diversification restart and a summary entry on exit; a nil log is
// replaced with a logger discarding output.
func Run(store *graph.Store, start int, initial tour.Tour, cfg Config, log *logrus.Logger) Result {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	d := store.N()
	path := append([]graph.Edge(nil), initial.Path...)
	currentCost := tour.New(path).Cost()

	incumbent := initial.Snapshot()
	incumbentCost := currentCost

	threshold := int64(d - 1)
	tabuM, err := semimatrix.New(d-1, threshold)
	if err != nil {
		// D too small for any move to exist; nothing to search.
		return Result{Best: incumbent, Cost: incumbentCost}
	}
	freqM, err := semimatrix.New(d-1, threshold)
	if err != nil {
		return Result{Best: incumbent, Cost: incumbentCost}
	}

	deadline := time.Now().Add(cfg.TimeBudget)
	iterationsSinceImprovement := 0
	iterations := 0
	diversifications := 0

	for time.Now().Before(deadline) {
		iterations++

		move, found := neighbourhood.Evaluate(path, store, tabuM, freqM, store.MinPrice(), currentCost, incumbentCost)
		if found {
			neighbourhood.Apply(path, move)
			_ = tabuM.Set(move.I, move.J)
			_ = freqM.Inc(move.I, move.J)
			currentCost = move.NewCost

			if currentCost < incumbentCost {
				incumbentCost = currentCost
				incumbent = tour.New(append([]graph.Edge(nil), path...)).Snapshot()
				iterationsSinceImprovement = 0
			} else {
				iterationsSinceImprovement++
			}
		}

		if cfg.EnableDiversification && iterationsSinceImprovement >= cfg.DiversificationThreshold {
			if dmove, dok := neighbourhood.LeastFrequentValidMove(path, store, freqM, currentCost); dok {
				neighbourhood.Apply(path, dmove)
				_ = tabuM.Set(dmove.I, dmove.J)
				_ = freqM.Inc(dmove.I, dmove.J)
				currentCost = dmove.NewCost
				if currentCost < incumbentCost {
					incumbentCost = currentCost
					incumbent = tour.New(append([]graph.Edge(nil), path...)).Snapshot()
				}
			}
			tabuM.Reset()
			freqM.Reset()
			iterationsSinceImprovement = 0
			diversifications++
			log.WithFields(logrus.Fields{
				"iteration":     iterations,
				"incumbentCost": incumbentCost,
			}).Info("diversification restart")
		}
	}

	log.WithFields(logrus.Fields{
		"iterations":       iterations,
		"diversifications": diversifications,
		"incumbentCost":    incumbentCost,
	}).Info("tabu search finished")

	return Result{
		Best:             incumbent,
		Cost:             incumbentCost,
		Iterations:       iterations,
		Diversifications: diversifications,
	}
}
