package sim

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ntasim/ntasim/fixture"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/uast"
)

// ScenarioSpec is a deliberately simple, data-driven NTA description —
// the working substitute spec.md §1 leaves a gap for by putting the XML
// model loader out of scope (SPEC_FULL §4.12). It covers exactly the
// shapes the engine understands: named clocks, locations with
// urgency/commitment/a single upper-bound invariant, and edges with a
// single lower-bound clock guard, an optional reset-to-zero, and an
// optional channel synchronization.
type ScenarioSpec struct {
	Name      string         `yaml:"name"`
	Seed      int64          `yaml:"seed"`
	Channels  []ChannelSpec  `yaml:"channels"`
	Templates []TemplateSpec `yaml:"templates"`
	Compose   [][]string     `yaml:"compose"`
}

// ChannelSpec declares one global channel.
type ChannelSpec struct {
	Name      string `yaml:"name"`
	Broadcast bool   `yaml:"broadcast"`
	Urgent    bool   `yaml:"urgent"`
}

// TemplateSpec declares one template's clocks, locations, and edges.
type TemplateSpec struct {
	Name      string         `yaml:"name"`
	Clocks    []string       `yaml:"clocks"`
	Locations []LocationSpec `yaml:"locations"`
	Edges     []EdgeSpec     `yaml:"edges"`
}

// LocationSpec declares one location. At most one of Urgent/Committed
// should be set; InvariantClock, if non-empty, attaches `clock <= max`.
type LocationSpec struct {
	Name           string `yaml:"name"`
	Initial        bool   `yaml:"initial"`
	Urgent         bool   `yaml:"urgent"`
	Committed      bool   `yaml:"committed"`
	InvariantClock string `yaml:"invariant_clock,omitempty"`
	InvariantMax   int64  `yaml:"invariant_max,omitempty"`
}

// EdgeSpec declares one edge. GuardClock, if non-empty, attaches
// `clock >= min`; ResetClock, if non-empty, attaches `clock := 0`;
// SyncChannel, if non-empty, attaches `channel!` (SyncEmit true) or
// `channel?` (SyncEmit false).
type EdgeSpec struct {
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	GuardClock  string `yaml:"guard_clock,omitempty"`
	GuardMin    int64  `yaml:"guard_min,omitempty"`
	ResetClock  string `yaml:"reset_clock,omitempty"`
	SyncChannel string `yaml:"sync_channel,omitempty"`
	SyncEmit    bool   `yaml:"sync_emit,omitempty"`
}

// LoadScenario decodes a single YAML document from r.
func LoadScenario(r io.Reader) (ScenarioSpec, error) {
	var spec ScenarioSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return ScenarioSpec{}, simErrorf("LoadScenario", err)
	}
	return spec, nil
}

// ToSystem builds a model.System from spec via fixture, the way a real
// XML loader would from a parsed document.
func (spec ScenarioSpec) ToSystem() (*model.System, error) {
	var opts []fixture.SystemOption
	for _, ch := range spec.Channels {
		opts = append(opts, fixture.WithGlobalDecl(ch.decl()))
	}
	for _, t := range spec.Templates {
		opts = append(opts, fixture.Template(t.Name, t.options()...))
	}
	opts = append(opts, fixture.WithSystemDecl(uast.System{ProcessNames: spec.composition()}))
	return fixture.New(opts...)
}

func (spec ScenarioSpec) composition() [][]string {
	if len(spec.Compose) > 0 {
		return spec.Compose
	}
	names := make([]string, len(spec.Templates))
	for i, t := range spec.Templates {
		names[i] = t.Name
	}
	return [][]string{names}
}

func (ch ChannelSpec) decl() uast.Node {
	var prefixes []string
	if ch.Broadcast {
		prefixes = append(prefixes, "broadcast")
	}
	if ch.Urgent {
		prefixes = append(prefixes, "urgent")
	}
	typ := uast.Type{Prefixes: prefixes, TypeID: uast.CustomType{Name: "chan"}}
	return uast.VariableDecls{Type: typ, VarData: []uast.VariableID{{VarName: ch.Name}}}
}

func (t TemplateSpec) options() []fixture.TemplateOption {
	var topts []fixture.TemplateOption
	if len(t.Clocks) > 0 {
		varData := make([]uast.VariableID, len(t.Clocks))
		for i, c := range t.Clocks {
			varData[i] = uast.VariableID{VarName: c}
		}
		clockType := uast.Type{TypeID: uast.CustomType{Name: "clock"}}
		topts = append(topts, fixture.Decl(uast.VariableDecls{Type: clockType, VarData: varData}))
	}
	for _, loc := range t.Locations {
		topts = append(topts, fixture.Location(loc.Name, loc.options()...))
	}
	for _, loc := range t.Locations {
		if loc.Initial {
			topts = append(topts, fixture.Initial(loc.Name))
		}
	}
	for _, e := range t.Edges {
		topts = append(topts, fixture.Edge(e.From, e.To, e.options()...))
	}
	return topts
}

func (loc LocationSpec) options() []fixture.LocationOption {
	var lopts []fixture.LocationOption
	if loc.Urgent {
		lopts = append(lopts, fixture.Urgent())
	}
	if loc.Committed {
		lopts = append(lopts, fixture.Committed())
	}
	if loc.InvariantClock != "" {
		lopts = append(lopts, fixture.LocInvariant(uast.BinaryExpr{
			Op:    uast.OpLessEqual,
			Left:  uast.Variable{Name: loc.InvariantClock},
			Right: uast.Integer{Val: loc.InvariantMax},
		}))
	}
	return lopts
}

func (e EdgeSpec) options() []fixture.EdgeOption {
	var eopts []fixture.EdgeOption
	if e.GuardClock != "" {
		eopts = append(eopts, fixture.Guard(uast.BinaryExpr{
			Op:    uast.OpGreaterEqual,
			Left:  uast.Variable{Name: e.GuardClock},
			Right: uast.Integer{Val: e.GuardMin},
		}))
	}
	if e.ResetClock != "" {
		eopts = append(eopts, fixture.Assign(uast.AssignExpr{
			Op:    uast.OpAssign,
			Left:  uast.Variable{Name: e.ResetClock},
			Right: uast.Integer{Val: 0},
		}))
	}
	if e.SyncChannel != "" {
		if e.SyncEmit {
			eopts = append(eopts, fixture.SyncEmit(uast.Variable{Name: e.SyncChannel}))
		} else {
			eopts = append(eopts, fixture.SyncListen(uast.Variable{Name: e.SyncChannel}))
		}
	}
	return eopts
}
