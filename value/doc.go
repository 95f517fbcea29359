// Package value implements the typed Uppaal value model: int, bounded int,
// bool, scalar, clock, chan, array, struct, function, reference and void,
// each satisfying the Value interface with Copy/Assign/GetRaw and the
// polymorphic ApplyBinary/ApplyUnary operator dispatch described in
// spec.md §4.2. One concrete type per kind keeps dispatch exhaustive and
// compiler-checked instead of the source's per-kind operator overloading.
package value
