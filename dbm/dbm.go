package dbm

import (
	"sort"
	"strings"
)

// RefClock is the name of the synthetic reference clock, always present at
// index 0 and fixed at value 0.
const RefClock = "T0_REF"

// DBM is a difference bound matrix over a fixed, ordered set of clocks
// (including the synthetic reference clock at index 0), stored as a flat
// row-major matrix. Canonicalize, DelayFuture and DelayPast return the
// receiver to allow chaining; mutating methods that can fail (Conjugate,
// Reset, Intersect) return only an error.
type DBM struct {
	clocks []string       // clocks[0] == RefClock
	index  map[string]int // clock name -> matrix index
	n      int            // len(clocks)
	m      []Bound        // flat row-major n*n matrix
}

// New creates a DBM over the given clocks, prepending the synthetic
// reference clock. If zeroInit, every entry starts at (0, <=) (Uppaal's
// convention for a freshly instantiated system); otherwise off-diagonal
// entries start unconstrained ((+Inf, <)) and the diagonal is (0, <=).
func New(clocks []string, zeroInit bool) *DBM {
	all := make([]string, 0, len(clocks)+1)
	all = append(all, RefClock)
	all = append(all, clocks...)

	n := len(all)
	idx := make(map[string]int, n)
	for i, c := range all {
		idx[c] = i
	}

	d := &DBM{clocks: all, index: idx, n: n, m: make([]Bound, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				d.m[i*n+j] = Zero()
			} else if zeroInit {
				d.m[i*n+j] = Zero()
			} else {
				d.m[i*n+j] = InfBound()
			}
		}
	}
	return d
}

// Clocks returns the DBM's clock names in matrix order, including the
// reference clock at index 0.
func (d *DBM) Clocks() []string {
	out := make([]string, len(d.clocks))
	copy(out, d.clocks)
	return out
}

func (d *DBM) at(i, j int) Bound { return d.m[i*d.n+j] }
func (d *DBM) set(i, j int, b Bound) { d.m[i*d.n+j] = b }

func (d *DBM) clockIndex(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return 0, dbmErrorf("clockIndex", ErrUnknownClock)
	}
	return i, nil
}

// At returns the raw bound for clock1 - clock2, i.e. the matrix entry at
// (index(clock1), index(clock2)). Exposed for diagnostics and for callers
// (such as the transition engine) that need to inspect a specific
// difference without going through GetInterval's reference-clock framing.
func (d *DBM) At(clock1, clock2 string) (Bound, error) {
	i, err := d.clockIndex(clock1)
	if err != nil {
		return Bound{}, dbmErrorf("At", err)
	}
	j, err := d.clockIndex(clock2)
	if err != nil {
		return Bound{}, dbmErrorf("At", err)
	}
	return d.at(i, j), nil
}

// Canonicalize tightens the matrix to its shortest-path closed form via
// Floyd-Warshall over the bound semiring (+ as Bound.Add, combine as Min).
// Loop order is fixed (k outer, i middle, j inner) for determinism.
func (d *DBM) Canonicalize() *DBM {
	n := d.n
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := d.at(i, k)
			if ik.V == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				kj := d.at(k, j)
				if kj.V == Inf {
					continue
				}
				cand := ik.Add(kj)
				if cand.LessThan(d.at(i, j)) {
					d.set(i, j, cand)
				}
			}
		}
	}
	return d
}

// IsEmpty reports whether the zone represented by the DBM is empty: true
// iff any diagonal-adjacent round trip through the reference clock is
// negative, i.e. M[i][0] + M[0][i] < (0, <=).
func (d *DBM) IsEmpty() bool {
	for i := 0; i < d.n; i++ {
		if d.at(i, 0).Add(d.at(0, i)).LessThan(Zero()) {
			return true
		}
	}
	return false
}

// Includes reports whether d is a superset zone of other: for every i,j,
// other's bound must be at least as tight as d's (other[i][j] <= d[i][j]).
// Both DBMs must share the same clock ordering.
func (d *DBM) Includes(other *DBM) (bool, error) {
	if err := d.sameShape(other); err != nil {
		return false, dbmErrorf("Includes", err)
	}
	for i := 0; i < d.n*d.n; i++ {
		if !other.m[i].LessEqual(d.m[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Intersect tightens d to the elementwise min of d and other, then
// canonicalizes. Both DBMs must share the same clock ordering.
func (d *DBM) Intersect(other *DBM) error {
	if err := d.sameShape(other); err != nil {
		return dbmErrorf("Intersect", err)
	}
	for i := range d.m {
		d.m[i] = Min(d.m[i], other.m[i])
	}
	d.Canonicalize()
	return nil
}

func (d *DBM) sameShape(other *DBM) error {
	if other == nil {
		return ErrNilDBM
	}
	if d.n != other.n {
		return ErrDimensionMismatch
	}
	for i, c := range d.clocks {
		if other.clocks[i] != c {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Conjugate constrains clock1 - clock2 rel val, where rel is one of
// "<", "<=", ">", ">=", "==". ">"/">=" are normalized by swapping the
// operands and negating val; "==" is applied as "<=" then ">=". The matrix
// is left in a (possibly) uncanonical but sound state; callers batch
// conjugations and Canonicalize once (spec: "the engine batches
// conjugations then closes once").
func (d *DBM) Conjugate(clock1, clock2, rel string, val int64) error {
	switch rel {
	case "<", "<=":
		return d.conjugateOne(clock1, clock2, rel == "<", val)
	case ">", ">=":
		return d.conjugateOne(clock2, clock1, rel == ">", -val)
	case "==":
		if err := d.conjugateOne(clock1, clock2, false, val); err != nil {
			return err
		}
		return d.conjugateOne(clock2, clock1, false, -val)
	default:
		return dbmErrorf("Conjugate", ErrBadRelation)
	}
}

func (d *DBM) conjugateOne(clock1, clock2 string, strict bool, val int64) error {
	i, err := d.clockIndex(clock1)
	if err != nil {
		return dbmErrorf("Conjugate", err)
	}
	j, err := d.clockIndex(clock2)
	if err != nil {
		return dbmErrorf("Conjugate", err)
	}
	cand := Bound{V: val, Strict: strict}
	if cand.LessThan(d.at(i, j)) {
		d.set(i, j, cand)
	}
	return nil
}

// Reset sets clock's value to val exactly, adjusting its differences to
// every other clock: M[i][k] = (-val,<=) + M[i][0], M[k][j] = (val,<=) + M[0][j].
// Produces a canonical DBM (reset commutes with close, testable property #3).
func (d *DBM) Reset(clock string, val int64) error {
	k, err := d.clockIndex(clock)
	if err != nil {
		return dbmErrorf("Reset", err)
	}
	lo := Bound{V: -val, Strict: false}
	hi := Bound{V: val, Strict: false}
	for i := 0; i < d.n; i++ {
		d.set(i, k, lo.Add(d.at(i, 0)))
	}
	for j := 0; j < d.n; j++ {
		d.set(k, j, hi.Add(d.at(0, j)))
	}
	d.set(k, k, Zero())
	return nil
}

// DelayFuture lets time pass: every non-reference clock's upper bound
// against the reference clock becomes unconstrained. Lower bounds are
// untouched (testable property #4).
func (d *DBM) DelayFuture() *DBM {
	for i := 1; i < d.n; i++ {
		d.set(i, 0, InfBound())
	}
	return d
}

// DelayPast resets every non-reference clock's lower bound to 0.
func (d *DBM) DelayPast() *DBM {
	for j := 1; j < d.n; j++ {
		d.set(0, j, Zero())
	}
	return d
}

// Interval is a closed/open integer interval [Lo, Hi] (bounds' strictness
// folded into LoIncl/HiIncl).
type Interval struct {
	Lo, Hi         int64
	LoIncl, HiIncl bool
}

// Empty reports whether the interval contains no value at all.
func (iv Interval) Empty() bool {
	if iv.Hi < iv.Lo {
		return true
	}
	return iv.Hi == iv.Lo && (!iv.LoIncl || !iv.HiIncl)
}

// GetInterval derives clock's current admissible value interval from the
// DBM: lower bound from -M[0][k], upper bound from M[k][0].
func (d *DBM) GetInterval(clock string) (Interval, error) {
	k, err := d.clockIndex(clock)
	if err != nil {
		return Interval{}, dbmErrorf("GetInterval", err)
	}
	lower := d.at(0, k)
	upper := d.at(k, 0)
	return Interval{
		Lo:     -lower.V,
		LoIncl: !lower.Strict,
		Hi:     upper.V,
		HiIncl: !upper.Strict,
	}, nil
}

// DrawInteger picks a uniformly random integer point from clock's current
// interval using pick(lo, hi) = lo + rng.Intn(hi-lo+1); rng must return a
// value in [0, n). Returns ErrEmptyInterval if the interval has no integer
// point (e.g. the upper bound is +Inf and hi must first be capped by the
// caller, or lo > hi after adjusting for exclusivity).
func (d *DBM) DrawInteger(clock string, rng func(n int64) int64) (int64, error) {
	iv, err := d.GetInterval(clock)
	if err != nil {
		return 0, err
	}
	lo := iv.Lo
	if !iv.LoIncl {
		lo++
	}
	hi := iv.Hi
	if !iv.HiIncl {
		hi--
	}
	if iv.Hi == Inf || hi < lo {
		return 0, dbmErrorf("DrawInteger", ErrEmptyInterval)
	}
	span := hi - lo + 1
	return lo + rng(span), nil
}

// Copy returns a deep copy of d; the copy shares no backing storage with d.
func (d *DBM) Copy() *DBM {
	out := &DBM{
		clocks: append([]string(nil), d.clocks...),
		index:  make(map[string]int, len(d.index)),
		n:      d.n,
		m:      append([]Bound(nil), d.m...),
	}
	for k, v := range d.index {
		out.index[k] = v
	}
	return out
}

// String renders the matrix as an aligned table for debugging, clock names
// as row/column headers.
func (d *DBM) String() string {
	var b strings.Builder
	b.WriteString("     ")
	for _, c := range d.clocks {
		b.WriteString(c)
		b.WriteString(" ")
	}
	b.WriteString("\n")
	for i := 0; i < d.n; i++ {
		b.WriteString(d.clocks[i])
		b.WriteString(": ")
		for j := 0; j < d.n; j++ {
			b.WriteString(d.at(i, j).String())
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SortedClockNames returns clock names (excluding the reference clock)
// sorted for deterministic iteration, used by callers building a DBM from
// an unordered set (e.g. a discovered clock-name set during instantiation).
func SortedClockNames(names map[string]struct{}) []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
