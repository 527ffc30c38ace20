// Package tabu implements the time-bounded driving loop: repeatedly ask
// package neighbourhood for a move, apply it, update the tabu and
// frequency matrices, and track the incumbent (best-ever) tour. It also
// owns post-stagnation diversification: when no improving move has been
// found for a configurable number of iterations, it forces a pick from the
// currently least-visited valid move and then resets both matrices.
package tabu
