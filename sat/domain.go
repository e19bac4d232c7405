package sat

// Int is the bounded integer type used by every domain and view in this
// engine. Non-goal: unbounded-precision integers.
type Int = int32

// DomainID identifies an integer domain allocated by a Solver.
type DomainID int32

// BoundedIntVar is the capability shared by integer domains and the views
// built on top of them (affine transforms, binary combinators): read the
// current bounds, tighten them, and translate a bound into the atom that
// justifies it.
type BoundedIntVar interface {
	Min() Int
	Max() Int
	SetMin(ctx *Ctx, v Int, exp Explanation) bool
	SetMax(ctx *Ctx, v Int, exp Explanation) bool

	// LowerBoundAtom/UpperBoundAtom return the atom asserting "this variable
	// >= v" / "this variable <= v" respectively, translated through any
	// intervening views down to a concrete domain bound literal.
	LowerBoundAtom(v Int) Atom
	UpperBoundAtom(v Int) Atom

	// DomainIDs returns the underlying IntDomain ids this variable's bound
	// events ultimately surface through, so a propagator factory can
	// register domain-event watches without caring whether it was handed a
	// raw domain or a view stacked on top of one. The events are those of
	// the underlying domains: under a view with a negative scale, a domain's
	// lower-bound event moves the view's upper bound and vice versa.
	DomainIDs() []DomainID
}

// IntDomain is a bounded interval [lo, hi] with an eager bound-literal
// encoding: a fresh boolean L[v] for every v in [lo0, hi0+1] such that
// L[v] <=> x >= v, channeled together at creation time so that Boolean unit
// propagation alone keeps sub-bound literals consistent.
//
// Min/Max are derived from the current assignment rather than cached: a
// bound literal can become true through ordinary clause propagation (e.g.
// the channeling clauses themselves, or a root unit clause fixing a bound
// directly) without ever going through SetMin/SetMax, so a cached lo/hi
// field would desynchronize from the literals that are this domain's real
// source of truth. This means a value a propagator just pushed through
// SetMin/SetMax isn't necessarily reflected by Min()/Max() until Boolean
// propagation has drained the channeling clauses that connect L[v] to
// L[v-1] — true of every propagator call in this engine, since the main
// loop always runs Boolean propagation to a fixpoint before invoking any
// propagator.
type IntDomain struct {
	s        *Solver
	id       DomainID
	lo0, hi0 Int

	// bound[v-lo0] == L[v] for v in [lo0, hi0+1].
	bound []Lit
}

// NewIntDomain allocates hi0-lo0+2 fresh literals and posts the channeling
// and boundary clauses described in the data model, then registers the
// domain with the solver's domain store.
func NewIntDomain(s *Solver, lo0, hi0 Int) *IntDomain {
	if lo0 > hi0 {
		panic("sat: empty initial domain")
	}

	n := int(hi0-lo0) + 2
	lits := make([]Lit, n)
	for i := range lits {
		lits[i] = s.NewLit()
	}

	d := &IntDomain{s: s, lo0: lo0, hi0: hi0, bound: lits}

	// L[lo0] (lower bound enforced).
	s.AddClause([]Lit{d.bound[0]})
	// !L[hi0+1] (upper bound enforced).
	s.AddClause([]Lit{d.bound[n-1].Not()})
	// L[v] -> L[v-1] for v in (lo0, hi0].
	for i := 1; i < n-1; i++ {
		s.AddClause([]Lit{d.bound[i].Not(), d.bound[i-1]})
	}

	d.id = s.domains.add(d)

	// L[v] true is itself the event "lower bound >= v"; !L[v] true (L[v]
	// false) is the event "upper bound <= v-1". Registering this lets the
	// trail dispatch loop fire domain-event watchers even when a bound
	// literal is driven true by ordinary clause propagation, not just by
	// SetMin/SetMax.
	for _, lit := range lits {
		s.watches.registerBoundLit(lit, d.id, EventLowerBound)
		s.watches.registerBoundLit(lit.Not(), d.id, EventUpperBound)
	}

	return d
}

func (d *IntDomain) ID() DomainID { return d.id }

// Min returns the current lower bound: the largest v such that L[v] is
// assigned true.
func (d *IntDomain) Min() Int {
	v := d.lo0
	for v < d.hi0 && d.s.assign.Value(d.boundLitAt(v+1)) == True {
		v++
	}
	return v
}

// Max returns the current upper bound: one less than the smallest v such
// that L[v] is assigned false.
func (d *IntDomain) Max() Int {
	for v := d.lo0 + 1; v <= d.hi0+1; v++ {
		if d.s.assign.Value(d.boundLitAt(v)) == False {
			return v - 1
		}
	}
	return d.hi0
}

func (d *IntDomain) boundLitAt(v Int) Lit {
	if v <= d.lo0 {
		return d.bound[0]
	}
	if v > d.hi0+1 {
		return d.bound[len(d.bound)-1]
	}
	return d.bound[v-d.lo0]
}

// LowerBoundLit returns the literal equivalent to "x >= v", saturating at
// the domain's originally allocated range.
func (d *IntDomain) LowerBoundLit(v Int) Lit {
	return d.boundLitAt(v)
}

// UpperBoundLit returns the literal equivalent to "x <= v".
func (d *IntDomain) UpperBoundLit(v Int) Lit {
	return d.boundLitAt(v + 1).Not()
}

// SetMin tightens the lower bound to v, enqueuing L[v] with the given
// explanation. Returns false (propagation failed, domain would be empty)
// without mutating state beyond the enqueue that caused the failure.
func (d *IntDomain) SetMin(ctx *Ctx, v Int, exp Explanation) bool {
	if v <= d.Min() {
		return true
	}
	lit := d.LowerBoundLit(v)
	if ctx.s.assign.Value(lit) == False {
		ctx.conf = &Conflict{Lit: lit, Explanation: exp}
		return false
	}
	if ctx.s.assign.Value(lit) != True {
		ctx.s.enqueue(lit, ExplanationReason(lit, exp))
	}
	ctx.s.notifyDomainEvent(d.id, EventLowerBound)
	if v > d.Max() {
		ctx.conf = &Conflict{Lit: lit, Explanation: exp}
		return false
	}
	return true
}

// SetMax tightens the upper bound to v, enqueuing !L[v+1] with the given
// explanation.
func (d *IntDomain) SetMax(ctx *Ctx, v Int, exp Explanation) bool {
	if v >= d.Max() {
		return true
	}
	lit := d.UpperBoundLit(v)
	if ctx.s.assign.Value(lit) == False {
		ctx.conf = &Conflict{Lit: lit, Explanation: exp}
		return false
	}
	if ctx.s.assign.Value(lit) != True {
		ctx.s.enqueue(lit, ExplanationReason(lit, exp))
	}
	ctx.s.notifyDomainEvent(d.id, EventUpperBound)
	if d.Min() > v {
		ctx.conf = &Conflict{Lit: lit, Explanation: exp}
		return false
	}
	return true
}

// LowerBoundAtom returns the atom asserting x >= v.
func (d *IntDomain) LowerBoundAtom(v Int) Atom { return AtLeast{Domain: d, Bound: v} }

// UpperBoundAtom returns the atom asserting x <= v.
func (d *IntDomain) UpperBoundAtom(v Int) Atom { return AtMost{Domain: d, Bound: v} }

// DomainIDs returns this domain's own id.
func (d *IntDomain) DomainIDs() []DomainID { return []DomainID{d.id} }

// AtLeast is the atom asserting domain >= bound.
type AtLeast struct {
	Domain *IntDomain
	Bound  Int
}

func (a AtLeast) AsLit(*DomainStore) Lit { return a.Domain.LowerBoundLit(a.Bound) }
func (a AtLeast) String() string         { return "[x >= " + itoa(a.Bound) + "]" }

// AtMost is the atom asserting domain <= bound.
type AtMost struct {
	Domain *IntDomain
	Bound  Int
}

func (a AtMost) AsLit(*DomainStore) Lit { return a.Domain.UpperBoundLit(a.Bound) }
func (a AtMost) String() string         { return "[x <= " + itoa(a.Bound) + "]" }

func itoa(v Int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	if v == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// DomainStore owns every IntDomain allocated by a Solver. Since this engine
// only instantiates one domain kind, it specializes to a dense slice rather
// than the heterogeneous per-type stores a multi-domain-kind engine would
// need.
type DomainStore struct {
	domains []*IntDomain
}

func (ds *DomainStore) add(d *IntDomain) DomainID {
	id := DomainID(len(ds.domains))
	ds.domains = append(ds.domains, d)
	return id
}

func (ds *DomainStore) get(id DomainID) *IntDomain {
	return ds.domains[id]
}
