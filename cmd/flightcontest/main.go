// Command flightcontest reads a day-indexed flight-ticket instance from
// stdin, searches for a minimum-cost Hamiltonian tour, and writes the
// result to stdout.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/flightcontest/solver/construct"
	"github.com/flightcontest/solver/instance"
	"github.com/flightcontest/solver/tabu"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	store, start, d, err := instance.Parse(os.Stdin)
	if err != nil {
		log.WithError(err).Error("failed to parse instance")
		return 1
	}

	initial, err := construct.Construct(store, start, d)
	if err != nil {
		log.WithError(err).Error("stack depleted, no Hamiltonian tour exists")
		return 0
	}

	result := tabu.Run(store, start, initial, tabu.DefaultConfig(), log)

	if err := instance.Write(os.Stdout, store, result.Best); err != nil {
		log.WithError(err).Error("failed to write result")
		return 1
	}
	return 0
}
