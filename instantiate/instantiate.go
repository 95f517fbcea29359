package instantiate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ntasim/ntasim/dbm"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// Instance is one materialized process: the template it was stamped from,
// its unique scope name in the Program, and the location id it currently
// occupies.
type Instance struct {
	Name     string
	Template *model.Template
	Active   string
}

// boundArg is a template parameter argument resolved against the scope
// active when the composition list was read, before the instance's own
// scope exists to shadow anything (spec.md §4.6).
type boundArg struct {
	isRef bool
	path  value.Path  // set when isRef
	val   value.Value // set otherwise: a fresh slot with the argument already assigned in
}

// Materialize builds the initial runtime state for sys: the global
// declaration and every instance's local declaration evaluated into a
// fresh state.Program, a dbm.DBM spanning every clock discovered along the
// way, and the instance list in the order the system declaration's
// composition list names them (spec.md §4.6).
func Materialize(sys *model.System, ev *eval.Evaluator) (*state.Program, *dbm.DBM, []*Instance, error) {
	prog := state.NewProgram()
	prog.ActivateGlobal(false)

	for _, n := range sys.Decls {
		if _, _, err := ev.EvalStmt(n, prog); err != nil {
			return nil, nil, nil, instantiateErrorf("Materialize", err)
		}
	}

	instantiations, composition := splitSystemDecl(sys.SystemDecl)
	if composition == nil {
		return nil, nil, nil, instantiateErrorf("Materialize", ErrNoComposition)
	}

	var procNames []string
	for _, group := range composition.ProcessNames {
		procNames = append(procNames, group...)
	}

	var instances []*Instance
	for _, procName := range procNames {
		next, err := materializeProcess(ev, prog, sys, instantiations, procName)
		if err != nil {
			return nil, nil, nil, instantiateErrorf("Materialize", err)
		}
		instances = append(instances, next...)
	}

	d := dbm.New(discoverClocks(prog, instances), true)
	return prog, d, instances, nil
}

// splitSystemDecl separates the system declaration's Instantiation nodes
// (named derived templates, keyed by the name they introduce) from its
// terminal System node (the composition list). Instantiation.Params, which
// would let an instantiation itself declare further formal parameters for
// chaining, is not used: every seed model instantiates base templates
// directly.
func splitSystemDecl(nodes []uast.Node) (map[string]uast.Instantiation, *uast.System) {
	instantiations := make(map[string]uast.Instantiation)
	var composition *uast.System
	for _, n := range nodes {
		switch v := n.(type) {
		case uast.Instantiation:
			instantiations[v.InstanceName] = v
		case uast.System:
			sysNode := v
			composition = &sysNode
		}
	}
	return instantiations, composition
}

// materializeProcess resolves one composition-list name to the one or more
// instances it denotes: an explicit Instantiation's single instance, a
// zero-parameter template's single instance, or a ranged template's
// Cartesian product of instances (spec.md §4.6).
func materializeProcess(ev *eval.Evaluator, prog *state.Program, sys *model.System, instantiations map[string]uast.Instantiation, procName string) ([]*Instance, error) {
	if inst, ok := instantiations[procName]; ok {
		tmpl, err := sys.Template(inst.TemplateName)
		if err != nil {
			return nil, err
		}
		args, err := resolveArgs(ev, prog, tmpl.Parameters, inst.Args)
		if err != nil {
			return nil, err
		}
		one, err := materializeInstance(ev, prog, inst.InstanceName, tmpl, args)
		if err != nil {
			return nil, err
		}
		return []*Instance{one}, nil
	}

	tmpl, err := sys.Template(procName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", procName, ErrUnknownProcess)
	}
	if len(tmpl.Parameters) == 0 {
		one, err := materializeInstance(ev, prog, procName, tmpl, nil)
		if err != nil {
			return nil, err
		}
		return []*Instance{one}, nil
	}

	tuples, err := enumerateParams(ev, prog, tmpl.Parameters)
	if err != nil {
		return nil, err
	}
	out := make([]*Instance, 0, len(tuples))
	for _, tuple := range tuples {
		args, err := valueArgs(ev, prog, tmpl.Parameters, tuple)
		if err != nil {
			return nil, err
		}
		one, err := materializeInstance(ev, prog, instanceName(tmpl.Name, tuple), tmpl, args)
		if err != nil {
			return nil, err
		}
		out = append(out, one)
	}
	return out, nil
}

// resolveArgs binds argASTs against params while prog's global scope is
// still active, mirroring Call's parameter-binding rule: a by-reference
// parameter captures the argument's value.Path, a by-value parameter gets
// a fresh slot of its own declared type with the argument assigned in.
func resolveArgs(ev *eval.Evaluator, prog *state.Program, params []model.Parameter, argASTs []uast.Node) ([]boundArg, error) {
	if len(argASTs) != len(params) {
		return nil, ErrArgCountMismatch
	}
	out := make([]boundArg, len(params))
	for i, p := range params {
		if p.IsRef {
			path, err := ev.ResolvePath(argASTs[i], prog)
			if err != nil {
				return nil, err
			}
			out[i] = boundArg{isRef: true, path: path}
			continue
		}
		argVal, err := ev.Eval(argASTs[i], prog)
		if err != nil {
			return nil, err
		}
		slot, err := freshSlot(ev, prog, p.Type, argVal)
		if err != nil {
			return nil, err
		}
		out[i] = boundArg{val: slot}
	}
	return out, nil
}

// valueArgs binds an already-enumerated parameter tuple by value; ranged
// instantiation never binds by reference since each tuple element is a
// synthesized literal, not an addressable variable.
func valueArgs(ev *eval.Evaluator, prog *state.Program, params []model.Parameter, tuple []value.Value) ([]boundArg, error) {
	out := make([]boundArg, len(params))
	for i, p := range params {
		slot, err := freshSlot(ev, prog, p.Type, tuple[i])
		if err != nil {
			return nil, err
		}
		out[i] = boundArg{val: slot}
	}
	return out, nil
}

func freshSlot(ev *eval.Evaluator, prog *state.Program, typ uast.Node, v value.Value) (value.Value, error) {
	zero, err := ev.EvalType(typ, prog)
	if err != nil {
		return nil, err
	}
	slot := zero()
	if err := slot.Assign(v); err != nil {
		return nil, err
	}
	return slot, nil
}

// materializeInstance allocates instName's scope, binds its parameters,
// evaluates its template's local declaration into that scope, and leaves
// the global scope active again for the next composition-list entry.
func materializeInstance(ev *eval.Evaluator, prog *state.Program, instName string, tmpl *model.Template, args []boundArg) (*Instance, error) {
	if len(args) != len(tmpl.Parameters) {
		return nil, ErrArgCountMismatch
	}
	if err := prog.NewInstanceScope(instName); err != nil {
		return nil, err
	}
	if err := prog.ActivateInstance(instName); err != nil {
		return nil, err
	}
	for i, p := range tmpl.Parameters {
		a := args[i]
		if a.isRef {
			ref := value.NewReference(a.path)
			if err := ref.Bind(prog.Resolve); err != nil {
				return nil, err
			}
			if _, err := prog.Add(p.Name, ref, false); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := prog.Add(p.Name, a.val, false); err != nil {
			return nil, err
		}
	}
	for _, decl := range tmpl.Decls {
		if _, _, err := ev.EvalStmt(decl, prog); err != nil {
			return nil, err
		}
	}
	prog.ActivateGlobal(false)

	if _, ok := tmpl.Locations[tmpl.Initial]; !ok {
		return nil, model.ErrNoInitialLocation
	}
	return &Instance{Name: instName, Template: tmpl, Active: tmpl.Initial}, nil
}

// enumerateParams computes the Cartesian product of params' domains, in
// the deterministic ascending order eval.TypeDomain already produces for
// bounded-int and scalar types.
func enumerateParams(ev *eval.Evaluator, prog *state.Program, params []model.Parameter) ([][]value.Value, error) {
	domains := make([][]value.Value, len(params))
	for i, p := range params {
		d, err := ev.TypeDomain(p.Type, prog)
		if err != nil {
			return nil, ErrUnrangedParameter
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
	return tuples, nil
}

// instanceName formats a ranged template's generated instance name as
// "Template(v1,...,vk)" (spec.md §4.6).
func instanceName(tmplName string, tuple []value.Value) string {
	parts := make([]string, len(tuple))
	for i, v := range tuple {
		parts[i] = fmt.Sprint(v.GetRaw())
	}
	return fmt.Sprintf("%s(%s)", tmplName, strings.Join(parts, ","))
}

// discoverClocks walks the global scope and every instance's scope for
// Clock leaves, returning the sorted column name list dbm.New expects.
// Declarations are stamped with their DBM-qualified name as they are
// evaluated, so this is a pure collection pass over already-named values.
func discoverClocks(prog *state.Program, instances []*Instance) []string {
	clocks := make(map[string]struct{})
	for _, v := range prog.ScopeValues("") {
		collectClocks(v, clocks)
	}
	for _, inst := range instances {
		for _, v := range prog.ScopeValues(inst.Name) {
			collectClocks(v, clocks)
		}
	}
	return dbm.SortedClockNames(clocks)
}

func collectClocks(v value.Value, clocks map[string]struct{}) {
	switch t := v.(type) {
	case *value.Clock:
		clocks[t.Name] = struct{}{}
	case *value.Array:
		for i := 0; i < t.Len(); i++ {
			elem, err := t.At(i)
			if err != nil {
				continue
			}
			collectClocks(elem, clocks)
		}
	case *value.Struct:
		for _, name := range t.FieldNames() {
			f, err := t.Field(name)
			if err != nil {
				continue
			}
			collectClocks(f, clocks)
		}
	}
}
