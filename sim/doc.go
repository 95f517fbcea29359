// Package sim wraps engine.Engine with the ambient facade spec.md §6.3's
// CLI commands and spec.md §5's parallel-exploration contract need:
// Simulator adds step/fire/goto/random plus forward/back history
// navigation over a single cooperative engine; Explore fans a bounded
// random walk out across disjoint engine.State copies; ScenarioSpec gives
// the otherwise out-of-scope XML loader a small YAML-driven substitute.
package sim
