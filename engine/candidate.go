package engine

import (
	"slices"
	"sort"

	"github.com/ntasim/ntasim/instantiate"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// candidateKind classifies one (instance, edge, select-valuation) triple
// by its synchronization label (spec.md §4.7 Stage 1).
type candidateKind int

const (
	silentKind candidateKind = iota
	callerKind
	listenerKind
)

// candidate is one fully select-resolved, sync-classified edge a single
// instance could fire this step.
type candidate struct {
	Instance *instantiate.Instance
	Edge     *model.Edge
	Select   map[string]value.Value
	Kind     candidateKind
	Chan     *value.Chan // set for callerKind/listenerKind
}

// potential is one potential transition: the set of candidates that would
// fire together (one, for a silent edge or a binary rendezvous pair; one
// caller plus zero or more listeners, for a broadcast).
type potential struct {
	Candidates []candidate
}

// collectCandidates runs Stage 1's enumeration, in instance-name order ×
// edge-id order × select-valuation lexicographic order, without mutating
// s.
func (e *Engine) collectCandidates(s *State) []candidate {
	instances := slices.Clone(s.Instances)
	sort.Slice(instances, func(i, j int) bool { return instances[i].Name < instances[j].Name })

	var all []candidate
	for _, inst := range instances {
		loc := s.activeLocation(inst)
		for _, edge := range edgesFrom(inst.Template, loc.ID) {
			for _, sel := range e.selectCombos(s, inst, edge) {
				cand := candidate{Instance: inst, Edge: edge, Select: sel}
				switch {
				case edge.Sync == nil:
					cand.Kind = silentKind
				case edge.Sync.Op == uast.SyncEmit:
					ch, ok := e.resolveChannel(s, inst, edge, sel)
					if !ok {
						continue
					}
					cand.Kind, cand.Chan = callerKind, ch
				case edge.Sync.Op == uast.SyncListen:
					ch, ok := e.resolveChannel(s, inst, edge, sel)
					if !ok {
						continue
					}
					cand.Kind, cand.Chan = listenerKind, ch
				}
				all = append(all, cand)
			}
		}
	}
	return all
}

// edgesFrom returns tmpl's edges sourced at locID, in ascending id order.
func edgesFrom(tmpl *model.Template, locID string) []*model.Edge {
	var out []*model.Edge
	for _, edge := range tmpl.Edges {
		if edge.Source == locID {
			out = append(out, edge)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// selectCombos enumerates every select-valuation edge's selects range
// over, evaluated with inst's scope active. A nil/empty Selects list
// yields exactly one empty valuation.
func (e *Engine) selectCombos(s *State, inst *instantiate.Instance, edge *model.Edge) []map[string]value.Value {
	if len(edge.Selects) == 0 {
		return []map[string]value.Value{{}}
	}

	if err := s.Prog.ActivateInstance(inst.Name); err != nil {
		return nil
	}
	defer s.Prog.ActivateGlobal(false)

	domains := make([][]value.Value, len(edge.Selects))
	for i, sel := range edge.Selects {
		d, err := e.ev.TypeDomain(sel.Type, s.Prog)
		if err != nil {
			return nil
		}
		domains[i] = d
	}

	tuples := [][]value.Value{{}}
	for _, d := range domains {
		next := make([][]value.Value, 0, len(tuples)*len(d))
		for _, t := range tuples {
			for _, v := range d {
				next = append(next, append(slices.Clone(t), v))
			}
		}
		tuples = next
	}

	out := make([]map[string]value.Value, len(tuples))
	for i, tuple := range tuples {
		m := make(map[string]value.Value, len(edge.Selects))
		for j, sel := range edge.Selects {
			m[sel.Var] = tuple[j]
		}
		out[i] = m
	}
	return out
}

// resolveChannel evaluates edge's sync channel expression with sel bound
// as a transient local scope, returning ok=false (a candidate-local
// discard, not an error) if it fails to evaluate to a channel.
func (e *Engine) resolveChannel(s *State, inst *instantiate.Instance, edge *model.Edge, sel map[string]value.Value) (*value.Chan, bool) {
	if err := s.Prog.ActivateInstance(inst.Name); err != nil {
		return nil, false
	}
	s.Prog.PushLocal("")
	defer func() {
		_ = s.Prog.PopLocal()
		s.Prog.ActivateGlobal(false)
	}()
	for name, v := range sel {
		if _, err := s.Prog.Define(name, v.Copy(), false); err != nil {
			return nil, false
		}
	}
	val, err := e.ev.Eval(edge.Sync.Channel, s.Prog)
	if err != nil {
		return nil, false
	}
	ch, ok := val.(*value.Chan)
	return ch, ok
}

// buildPotentials pairs caller candidates against listener candidates on
// the same resolved channel (spec.md §4.7 Stage 1's pairing rules),
// emitting potentials in the order their caller (or, for silent edges,
// their sole candidate) appears in all.
func buildPotentials(all []candidate) []potential {
	listenersByChan := make(map[string][]candidate)
	for _, c := range all {
		if c.Kind == listenerKind {
			listenersByChan[c.Chan.Name] = append(listenersByChan[c.Chan.Name], c)
		}
	}

	var out []potential
	for _, c := range all {
		switch c.Kind {
		case silentKind:
			out = append(out, potential{Candidates: []candidate{c}})
		case callerKind:
			others := otherInstanceListeners(listenersByChan[c.Chan.Name], c.Instance.Name)
			if c.Chan.Broadcast {
				for _, combo := range broadcastCombos(others) {
					out = append(out, potential{Candidates: append([]candidate{c}, combo...)})
				}
			} else {
				for _, l := range others {
					out = append(out, potential{Candidates: []candidate{c, l}})
				}
			}
		}
	}
	return out
}

func otherInstanceListeners(listeners []candidate, callerInstance string) []candidate {
	var out []candidate
	for _, l := range listeners {
		if l.Instance.Name != callerInstance {
			out = append(out, l)
		}
	}
	return out
}

// broadcastCombos enumerates the Cartesian product of "each other instance
// contributes one of its listener candidates, or none" (spec.md §4.7
// Stage 1), in listener-instance-name order.
func broadcastCombos(others []candidate) [][]candidate {
	type group struct {
		name  string
		cands []candidate
	}
	var groups []group
	index := make(map[string]int)
	for _, l := range others {
		if i, ok := index[l.Instance.Name]; ok {
			groups[i].cands = append(groups[i].cands, l)
			continue
		}
		index[l.Instance.Name] = len(groups)
		groups = append(groups, group{name: l.Instance.Name, cands: []candidate{l}})
	}

	combos := [][]candidate{{}}
	for _, g := range groups {
		next := make([][]candidate, 0, len(combos)*(len(g.cands)+1))
		for _, combo := range combos {
			next = append(next, combo)
			for _, cand := range g.cands {
				next = append(next, append(slices.Clone(combo), cand))
			}
		}
		combos = next
	}
	return combos
}
