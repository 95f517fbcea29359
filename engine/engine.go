package engine

import (
	"log/slog"
	"math/rand"

	"github.com/ntasim/ntasim/dbm"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/value"
)

// FiredEdge records one instance's contribution to a published Transition:
// which edge it took and the select valuation it took it under.
type FiredEdge struct {
	Instance string
	EdgeID   string
	Select   map[string]value.Value
}

// Transition is the published record of one completed step: the edges that
// fired together and the flat, replayable DBM operation sequence their
// firing produced (spec.md §4.8).
type Transition struct {
	Fired []FiredEdge
	Ops   dbm.OpLog
}

// Outcome pairs a Transition with the state it leads to — one entry of the
// enabled set Transitions returns.
type Outcome struct {
	Transition Transition
	Next       *State
}

// Engine runs the six-stage transition pipeline of spec.md §4.7 against
// State values. It is single-threaded and holds no state of its own beyond
// its evaluator, its pseudorandom source for Step, and its logger — every
// public method either takes a State explicitly or returns a fresh one.
type Engine struct {
	ev  *eval.Evaluator
	rng *rand.Rand
	log *slog.Logger
}

// New returns an Engine driven by ev, seeded for Step's random selection.
// A nil logger falls back to slog.Default().
func New(ev *eval.Evaluator, seed int64, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{ev: ev, rng: rand.New(rand.NewSource(seed)), log: logger}
}

// Transitions runs Stages 1-5 against s and returns every enabled outcome,
// in the deterministic order spec.md §4.7 names (instance-name × edge-id ×
// select-valuation × listener-instance-name). s is never mutated.
func (e *Engine) Transitions(s *State) ([]Outcome, error) {
	potentials := filterCommitted(s, buildPotentials(e.collectCandidates(s)))

	outcomes := make([]Outcome, 0, len(potentials))
	for _, p := range potentials {
		outcome, ok, err := e.enable(s, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		outcomes = append(outcomes, *outcome)
	}
	e.log.Debug("computed enabled transitions", "count", len(outcomes))
	return outcomes, nil
}

// Fire runs Transitions against s and publishes the outcome at idx,
// giving the user-chosen-index determinism contract of spec.md §5.
func (e *Engine) Fire(s *State, idx int) (*State, *Transition, error) {
	outcomes, err := e.Transitions(s)
	if err != nil {
		return nil, nil, err
	}
	if idx < 0 || idx >= len(outcomes) {
		return nil, nil, engineErrorf("Fire", ErrNoSuchTransition)
	}
	o := outcomes[idx]
	return o.Next, &o.Transition, nil
}

// Step runs Transitions against s and publishes a uniformly-random outcome,
// giving the fixed-seed determinism contract of spec.md §5.
func (e *Engine) Step(s *State) (*State, *Transition, error) {
	outcomes, err := e.Transitions(s)
	if err != nil {
		return nil, nil, err
	}
	if len(outcomes) == 0 {
		return nil, nil, engineErrorf("Step", ErrNoEnabledTransition)
	}
	idx := e.rng.Intn(len(outcomes))
	o := outcomes[idx]
	e.log.Info("stepped", "index", idx, "of", len(outcomes), "fired", o.Transition.Fired)
	return o.Next, &o.Transition, nil
}
