// Package instantiate turns a loaded model.System into the initial runtime
// state the engine steps from: a state.Program with the global declaration
// and every process instance's local declaration evaluated, a dbm.DBM
// spanning every clock discovered along the way, and the ordered instance
// list the system declaration's composition list names (spec.md §4.6).
//
// Materialization is two-phase. First the global declaration is evaluated
// into the Program's global scope, and the system declaration's AST is
// split into its named Instantiation nodes and its final composition list.
// Second, each composition entry is resolved to one or more instances:
// explicit instantiation arguments bind straight from the argument
// expressions, a zero-parameter template gets exactly one instance, and a
// template with ranged parameters is enumerated over the Cartesian product
// of its parameter domains, one instance per tuple, named
// "Template(v1,...,vk)".
package instantiate
