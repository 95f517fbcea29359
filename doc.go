// Package ntasim simulates networks of timed automata written in the
// Uppaal modeling language.
//
// A scenario is parsed into a model.System (templates, locations, edges,
// channels), instantiated into a state.Program plus an initial dbm.DBM by
// package instantiate, and stepped by package engine's six-stage transition
// pipeline: enumerate candidate edges, filter by committed locations,
// enable (guards and clock constraints), fire (updates and resets), apply
// post-fire invariants and delay, and publish the resulting outcomes.
//
// Package sim wraps an engine.Engine in a navigable history (cmd/ntasim's
// REPL drives it interactively); package fixture builds model.System values
// programmatically, standing in for a full Uppaal XML loader.
package ntasim
