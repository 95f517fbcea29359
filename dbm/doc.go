// Package dbm implements the clock-region algebra used by the simulation
// engine: a difference bound matrix (DBM) over integer clock valuations,
// plus a flat, replayable log of the operations applied to one.
//
// A DBM over clocks {x0, x1, ..., xn} (x0 the synthetic reference clock,
// fixed at 0) is an (n+1)x(n+1) matrix of Bound values. Entry M[i][j]
// encodes the constraint xi - xj < M[i][j].V (or <=, depending on
// M[i][j].Strict). All mutating operations leave the matrix in canonical
// (shortest-path-closed) form except where documented otherwise.
//
//	go get <module>/dbm
package dbm
