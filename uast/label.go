package uast

// Invariant, Guard, Update, and Select wrap a plain expression; the
// distinction is purely positional (which edge/location slot holds the
// node), carried by the wrapper's tag rather than by any field.
type Invariant struct{ Expr Node }

func (Invariant) ASTType() string { return TagInvariant }

type Guard struct{ Expr Node }

func (Guard) ASTType() string { return TagGuard }

type Update struct{ Expr Node }

func (Update) ASTType() string { return TagUpdate }

// Select binds Var to each value the given Type ranges over, once per
// enabled transition (spec.md §4.6's select-value enumeration).
type Select struct {
	Var  string
	Type Node
}

func (Select) ASTType() string { return TagSelect }

// Sync is a synchronization label: `Channel!` or `Channel?`.
type Sync struct {
	Channel Node
	Op      SyncOp
}

func (Sync) ASTType() string { return TagSync }
