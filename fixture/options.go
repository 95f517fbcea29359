package fixture

import (
	"github.com/google/uuid"

	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/uast"
)

// buildCtx carries state shared across option application within one New
// call: the id generator and a per-template name→id index so Edge options
// can reference locations by the human-readable name they were created
// with (spec.md §4.10 — fixture stands in for the XML loader, which would
// otherwise resolve these references from document structure).
type buildCtx struct {
	idFn     func() string
	locIndex map[*model.Template]map[string]string
}

func newBuildCtx() *buildCtx {
	return &buildCtx{
		idFn:     func() string { return uuid.NewString() },
		locIndex: make(map[*model.Template]map[string]string),
	}
}

func (c *buildCtx) locID(tmpl *model.Template, name string) (string, bool) {
	id, ok := c.locIndex[tmpl][name]
	return id, ok
}

func (c *buildCtx) indexLoc(tmpl *model.Template, name, id string) {
	if c.locIndex[tmpl] == nil {
		c.locIndex[tmpl] = make(map[string]string)
	}
	c.locIndex[tmpl][name] = id
}

// SystemOption mutates a model.System under construction.
type SystemOption func(*buildCtx, *model.System) error

// TemplateOption mutates a model.Template under construction.
type TemplateOption func(*buildCtx, *model.Template) error

// LocationOption mutates a model.Location under construction.
type LocationOption func(*model.Location)

// EdgeOption mutates a model.Edge under construction. Guard/Assignment
// options need the template's clock set, which is only complete once every
// preceding Decl/Param option on the same Template call has applied —
// callers must list Decl/Param options before Edge options (New applies
// options strictly in order, the same determinism guarantee the teacher's
// builder package documents for its own constructors).
type EdgeOption func(*buildCtx, *model.Edge, map[string]struct{})

// WithIDFunc overrides the default UUID id generator, chiefly so tests can
// get deterministic, readable ids. It must precede any Template/Location/
// Edge option in the opts list passed to New, since later options call the
// generator immediately.
func WithIDFunc(fn func() string) SystemOption {
	return func(ctx *buildCtx, _ *model.System) error {
		ctx.idFn = fn
		return nil
	}
}

// WithGlobalDecl appends nodes to the system's global declaration.
func WithGlobalDecl(nodes ...uast.Node) SystemOption {
	return func(_ *buildCtx, sys *model.System) error {
		sys.Decls = append(sys.Decls, nodes...)
		return nil
	}
}

// WithSystemDecl appends nodes to the system declaration (instantiations
// plus the composition list, spec.md §4.6).
func WithSystemDecl(nodes ...uast.Node) SystemOption {
	return func(_ *buildCtx, sys *model.System) error {
		sys.SystemDecl = append(sys.SystemDecl, nodes...)
		return nil
	}
}

// WithQuery appends a stored-but-unevaluated query (spec.md §1 Non-goals).
func WithQuery(text string, ast uast.Node) SystemOption {
	return func(_ *buildCtx, sys *model.System) error {
		sys.Queries = append(sys.Queries, model.Query{Text: text, AST: ast})
		return nil
	}
}

// Template creates a new model.Template named name, applies topts to it in
// order, and registers it on the system.
func Template(name string, topts ...TemplateOption) SystemOption {
	return func(ctx *buildCtx, sys *model.System) error {
		tmpl := model.NewTemplate(ctx.idFn(), name)
		for _, opt := range topts {
			if opt == nil {
				return fixtureErrorf("Template", ErrNilOption)
			}
			if err := opt(ctx, tmpl); err != nil {
				return err
			}
		}
		return sys.AddTemplate(tmpl)
	}
}

// Decl appends nodes to a template's local declaration.
func Decl(nodes ...uast.Node) TemplateOption {
	return func(_ *buildCtx, tmpl *model.Template) error {
		tmpl.Decls = append(tmpl.Decls, nodes...)
		return nil
	}
}

// Param appends a formal parameter to a template.
func Param(name string, isRef bool, typ uast.Node) TemplateOption {
	return func(_ *buildCtx, tmpl *model.Template) error {
		tmpl.Parameters = append(tmpl.Parameters, model.Parameter{Name: name, IsRef: isRef, Type: typ})
		return nil
	}
}

// Location creates a new model.Location named name, applies lopts, and
// adds it to the enclosing template. The first Location call on a
// template becomes its initial location unless a later Initial call
// overrides it.
func Location(name string, lopts ...LocationOption) TemplateOption {
	return func(ctx *buildCtx, tmpl *model.Template) error {
		loc := model.NewLocation(ctx.idFn(), name)
		for _, opt := range lopts {
			if opt == nil {
				return fixtureErrorf("Location", ErrNilOption)
			}
			opt(loc)
		}
		if err := tmpl.AddLocation(loc); err != nil {
			return err
		}
		ctx.indexLoc(tmpl, name, loc.ID)
		if tmpl.Initial == "" {
			tmpl.Initial = loc.ID
		}
		return nil
	}
}

// Initial overrides the template's initial location by name. It must
// appear after the corresponding Location call.
func Initial(name string) TemplateOption {
	return func(ctx *buildCtx, tmpl *model.Template) error {
		id, ok := ctx.locID(tmpl, name)
		if !ok {
			return fixtureErrorf("Initial", model.ErrLocationNotFound)
		}
		tmpl.Initial = id
		return nil
	}
}

// Urgent marks a location urgent.
func Urgent() LocationOption {
	return func(loc *model.Location) { loc.SetUrgent(true) }
}

// Committed marks a location committed.
func Committed() LocationOption {
	return func(loc *model.Location) { loc.SetCommitted(true) }
}

// LocInvariant appends an invariant to a location.
func LocInvariant(ast uast.Node) LocationOption {
	return func(loc *model.Location) { loc.AddInvariant(ast) }
}

// Edge creates a new model.Edge from sourceName to targetName (resolved
// against locations already added to the enclosing template), applies
// eopts, and adds it to the template.
func Edge(sourceName, targetName string, eopts ...EdgeOption) TemplateOption {
	return func(ctx *buildCtx, tmpl *model.Template) error {
		srcID, ok := ctx.locID(tmpl, sourceName)
		if !ok {
			return fixtureErrorf("Edge", model.ErrLocationNotFound)
		}
		dstID, ok := ctx.locID(tmpl, targetName)
		if !ok {
			return fixtureErrorf("Edge", model.ErrLocationNotFound)
		}
		edge := model.NewEdge(ctx.idFn(), srcID, dstID)
		clocks := tmpl.ClockNames()
		for _, opt := range eopts {
			if opt == nil {
				return fixtureErrorf("Edge", ErrNilOption)
			}
			opt(ctx, edge, clocks)
		}
		return tmpl.AddEdge(edge)
	}
}

// Guard attaches ast, classified as a clock or variable guard.
func Guard(ast uast.Node) EdgeOption {
	return func(_ *buildCtx, edge *model.Edge, clocks map[string]struct{}) {
		edge.AddGuard(ast, clocks)
	}
}

// Assign attaches ast, classified as a reset or a plain update.
func Assign(ast uast.Node) EdgeOption {
	return func(_ *buildCtx, edge *model.Edge, clocks map[string]struct{}) {
		edge.AddAssignment(ast, clocks)
	}
}

// SelectVar attaches a select label.
func SelectVar(varName string, typ uast.Node) EdgeOption {
	return func(_ *buildCtx, edge *model.Edge, _ map[string]struct{}) {
		edge.AddSelect(varName, typ)
	}
}

// SyncEmit attaches a `channel!` synchronization label.
func SyncEmit(channel uast.Node) EdgeOption {
	return func(_ *buildCtx, edge *model.Edge, _ map[string]struct{}) {
		edge.SetSync(channel, uast.SyncEmit)
	}
}

// SyncListen attaches a `channel?` synchronization label.
func SyncListen(channel uast.Node) EdgeOption {
	return func(_ *buildCtx, edge *model.Edge, _ map[string]struct{}) {
		edge.SetSync(channel, uast.SyncListen)
	}
}
