package fixture

import "github.com/ntasim/ntasim/model"

// New builds a model.System by applying opts in order against a fresh
// buildCtx, then validates that every template resolves a usable initial
// location (unique ids and non-dangling edges are already enforced
// incrementally by model.Template.AddLocation/AddEdge). Mirrors the
// teacher's single-orchestrator BuildGraph contract: one entry point,
// deterministic option order, sentinel errors, no partial cleanup on
// failure.
func New(opts ...SystemOption) (*model.System, error) {
	ctx := newBuildCtx()
	sys := model.NewSystem()

	for _, opt := range opts {
		if opt == nil {
			return nil, fixtureErrorf("New", ErrNilOption)
		}
		if err := opt(ctx, sys); err != nil {
			return nil, fixtureErrorf("New", err)
		}
	}

	if len(sys.Templates) == 0 {
		return nil, fixtureErrorf("New", ErrNoTemplates)
	}
	for _, tmpl := range sys.Templates {
		if err := tmpl.Validate(); err != nil {
			return nil, fixtureErrorf("New", err)
		}
	}
	return sys, nil
}
