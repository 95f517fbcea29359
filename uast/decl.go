package uast

// Type is a base type reference: a chain of storage-class prefixes
// (`const`, `meta`, `urgent`, `broadcast`, ...) plus the underlying type id
// (a builtin keyword or a CustomType name).
type Type struct {
	Prefixes []string
	TypeID   Node
}

func (Type) ASTType() string { return TagType }

// BoundedIntType is `int[Lower, Upper]`.
type BoundedIntType struct{ Lower, Upper Node }

func (BoundedIntType) ASTType() string { return TagBoundedIntType }

// ScalarType is `scalar[Expr]`, where Expr evaluates to the domain size.
type ScalarType struct{ Expr Node }

func (ScalarType) ASTType() string { return TagScalarType }

// FieldDecl is one member of a StructType.
type FieldDecl struct {
	Type Node
	Name string
	// ArrayDecl holds one Node per array dimension, outermost first;
	// empty for a non-array field.
	ArrayDecl []Node
}

func (FieldDecl) ASTType() string { return TagFieldDecl }

// StructType is an ordered field list.
type StructType struct{ Fields []FieldDecl }

func (StructType) ASTType() string { return TagStructType }

// CustomType names a previously declared type (typedef, struct, or
// template parameter type).
type CustomType struct{ Name string }

func (CustomType) ASTType() string { return TagCustomType }

// ArrayDecl wraps a base Node-returning-a-type in one array dimension.
type ArrayDecl struct {
	Elem Node
	Size Node
}

func (ArrayDecl) ASTType() string { return TagArrayDecl }

// VariableID is one declarator within a VariableDecls: a name, zero or
// more array dimensions, and an optional initializer.
type VariableID struct {
	VarName   string
	ArrayDecl []Node
	InitData  Node
}

func (VariableID) ASTType() string { return TagVariableID }

// VariableDecls declares one or more variables sharing a base type.
type VariableDecls struct {
	Type    Node
	VarData []VariableID
}

func (VariableDecls) ASTType() string { return TagVariableDecls }

// Parameter is one formal parameter of a FunctionDef or a template.
// IsRef marks a by-reference parameter (spec.md §4.4 "Parameter binding").
type Parameter struct {
	IsRef   bool
	Type    Node
	VarData VariableID
}

func (Parameter) ASTType() string { return TagParameter }

// FunctionDef declares a named function.
type FunctionDef struct {
	Name   string
	Params []Parameter
	Body   Node
	Type   Node
}

func (FunctionDef) ASTType() string { return TagFunctionDef }

// Instantiation names a template instance, e.g. `P1 = Process(id0)` or the
// parameterless `P2 = Process2`.
type Instantiation struct {
	InstanceName string
	TemplateName string
	Params       []Node
	Args         []Node
}

func (Instantiation) ASTType() string { return TagInstantiation }

// System lists the instance names to run, grouped into priority order
// groups (spec.md §6.1; priority groups are parsed but not enforced,
// spec.md §9).
type System struct{ ProcessNames [][]string }

func (System) ASTType() string { return TagSystem }
