// Package construct implements the greedy depth-first Hamiltonian search
// that produces the initial tour handed to the tabu driver.
//
// The search explores cheapest-price candidates first at every node and
// backtracks chronologically on dead ends, using an explicit work stack of
// per-day candidate frames rather than recursion. It runs to exhaustion or
// success; there is no time budget here, unlike the tabu phase.
package construct
