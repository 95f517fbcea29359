package dbm

import (
	"fmt"
	"math"
)

// Bound is one DBM entry (v, s): the constraint "xi - xj (< if Strict else <=) V".
// Infinite bounds use V == Inf with Strict == true, matching the convention
// that an unconstrained difference is "< +Inf".
type Bound struct {
	V      int64
	Strict bool
}

// Inf is the sentinel value representing +infinity in a Bound.
const Inf int64 = math.MaxInt64

// Zero is the diagonal bound (0, <=).
func Zero() Bound { return Bound{V: 0, Strict: false} }

// InfBound is the unconstrained bound (+Inf, <).
func InfBound() Bound { return Bound{V: Inf, Strict: true} }

// LessThan orders bounds: (v1,s1) < (v2,s2) iff v1 < v2, or v1 == v2 and
// s1 is strict while s2 is not.
func (b Bound) LessThan(o Bound) bool {
	if b.V != o.V {
		return b.V < o.V
	}
	return b.Strict && !o.Strict
}

// LessEqual is the non-strict companion of LessThan.
func (b Bound) LessEqual(o Bound) bool {
	return b.LessThan(o) || b == o
}

// Add combines two bounds along a shortest-path edge: values sum, and the
// result is non-strict only if both operands are non-strict.
func (b Bound) Add(o Bound) Bound {
	if b.V == Inf || o.V == Inf {
		return InfBound()
	}
	return Bound{V: b.V + o.V, Strict: b.Strict || o.Strict}
}

// Negate flips the sign of a finite bound's value, keeping its strictness;
// an infinite bound is returned unchanged.
func (b Bound) Negate() Bound {
	if b.V == Inf {
		return b
	}
	return Bound{V: -b.V, Strict: b.Strict}
}

// Min returns the tighter (smaller) of two bounds.
func Min(a, b Bound) Bound {
	if a.LessThan(b) {
		return a
	}
	return b
}

func (b Bound) String() string {
	if b.V == Inf {
		return "<inf"
	}
	rel := "<="
	if b.Strict {
		rel = "<"
	}
	return fmt.Sprintf("%s%d", rel, b.V)
}

// relSymbol renders a relation token for diagnostics/op logging.
func relSymbol(strict bool) string {
	if strict {
		return "<"
	}
	return "<="
}
