package sim

import (
	"errors"
	"log/slog"

	"github.com/ntasim/ntasim/engine"
)

// Simulator wraps one engine.Engine with the recorded-history view the CLI
// of spec.md §6.3 needs: a cursor into a linear history of states plus the
// transition that produced each step, and forward/back navigation over it.
// Firing from a cursor short of the end discards the abandoned future,
// exactly like a conventional undo/redo stack.
type Simulator struct {
	eng     *engine.Engine
	log     *slog.Logger
	history []*engine.State
	trace   []engine.Transition // trace[i] connects history[i] to history[i+1]
	cursor  int
}

// New returns a Simulator positioned at initial, step 0 of its history.
func New(eng *engine.Engine, initial *engine.State, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{eng: eng, log: logger, history: []*engine.State{initial}}
}

// Current returns the state at the simulator's cursor.
func (s *Simulator) Current() *engine.State { return s.history[s.cursor] }

// Cursor reports the current history position.
func (s *Simulator) Cursor() int { return s.cursor }

// Depth reports how many states are recorded, including the initial one.
func (s *Simulator) Depth() int { return len(s.history) }

// Trace returns every transition fired up to the cursor, in order.
func (s *Simulator) Trace() []engine.Transition {
	return append([]engine.Transition(nil), s.trace[:s.cursor]...)
}

// Transitions lists every outcome enabled from the current state, without
// firing any of them — the enabled set `t<i>` indexes into.
func (s *Simulator) Transitions() ([]engine.Outcome, error) {
	return s.eng.Transitions(s.Current())
}

// commit appends next/tr as the step past the cursor, discarding any
// history beyond it, and advances the cursor onto the new step.
func (s *Simulator) commit(next *engine.State, tr *engine.Transition) {
	s.history = append(s.history[:s.cursor+1], next)
	s.trace = append(s.trace[:s.cursor], *tr)
	s.cursor++
	s.log.Debug("sim: committed step", "cursor", s.cursor, "fired", tr.Fired)
}

// Step fires a uniformly-random enabled transition from the current state.
func (s *Simulator) Step() (*engine.State, *engine.Transition, error) {
	next, tr, err := s.eng.Step(s.Current())
	if err != nil {
		return nil, nil, err
	}
	s.commit(next, tr)
	return next, tr, nil
}

// Fire fires the idx'th enabled transition from the current state.
func (s *Simulator) Fire(idx int) (*engine.State, *engine.Transition, error) {
	next, tr, err := s.eng.Fire(s.Current(), idx)
	if err != nil {
		return nil, nil, err
	}
	s.commit(next, tr)
	return next, tr, nil
}

// Random fires up to n random steps in sequence (one step if n <= 0),
// stopping early without error on deadlock.
func (s *Simulator) Random(n int) ([]*engine.State, []engine.Transition, error) {
	if n <= 0 {
		n = 1
	}
	var states []*engine.State
	var trace []engine.Transition
	for i := 0; i < n; i++ {
		next, tr, err := s.Step()
		if err != nil {
			if errors.Is(err, engine.ErrNoEnabledTransition) {
				break
			}
			return states, trace, err
		}
		states = append(states, next)
		trace = append(trace, *tr)
	}
	return states, trace, nil
}

// Back moves the cursor back n steps (one step if n <= 0).
func (s *Simulator) Back(n int) (*engine.State, error) {
	if n <= 0 {
		n = 1
	}
	if s.cursor-n < 0 {
		return nil, simErrorf("Back", ErrNoHistory)
	}
	s.cursor -= n
	return s.Current(), nil
}

// Forward moves the cursor forward n steps (one step if n <= 0), never
// past the last recorded state.
func (s *Simulator) Forward(n int) (*engine.State, error) {
	if n <= 0 {
		n = 1
	}
	if s.cursor+n >= len(s.history) {
		return nil, simErrorf("Forward", ErrNoHistory)
	}
	s.cursor += n
	return s.Current(), nil
}

// Goto moves the cursor directly to step idx.
func (s *Simulator) Goto(idx int) (*engine.State, error) {
	if idx < 0 || idx >= len(s.history) {
		return nil, simErrorf("Goto", ErrNoHistory)
	}
	s.cursor = idx
	return s.Current(), nil
}
