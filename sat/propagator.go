package sat

// Conflict is the failure outcome of propagation: a literal that is
// currently false, together with an explanation whose conjunction implies
// it. For conflicts raised directly by clauses, Clause is set instead and
// Lit/Explanation are unused.
type Conflict struct {
	Lit         Lit
	Explanation Explanation
	Clause      *Clause
}

// Propagator restricts variable domains based on one constraint. A
// propagator is registered once (via Solver.AddPropagator) and lives for
// the whole search; Propagate may be called many times and must be
// idempotent at fixpoint.
type Propagator interface {
	// Propagate must not observe partial state left over from a previous
	// failed run, and returns either nil (success) or a *Conflict.
	Propagate(ctx *Ctx) *Conflict
}

// EventFilter is an optional interface a Propagator can implement to skip
// being enqueued for some of its registered events. Propagators that don't
// implement it are always enqueued when any of their watched events fire.
type EventFilter interface {
	OnEvent(local LocalID) bool
}

// PropagatorFactory builds a Propagator against a Registrar, which is how
// the factory declares which variables/events it needs to watch.
type PropagatorFactory interface {
	Create(reg *Registrar) Propagator
}

// PropagatorFactoryFunc adapts a plain function to PropagatorFactory.
type PropagatorFactoryFunc func(reg *Registrar) Propagator

func (f PropagatorFactoryFunc) Create(reg *Registrar) Propagator { return f(reg) }

// Registrar is handed to a PropagatorFactory so it can register watches for
// the propagator being constructed.
type Registrar struct {
	s    *Solver
	id   PropagatorID
}

// WatchLitTrue requests a call-back when lit becomes true.
func (r *Registrar) WatchLitTrue(lit Lit, local LocalID) {
	r.s.watches.WatchLitTrue(lit, r.id, local)
}

// WatchLitFalse requests a call-back when lit becomes false.
func (r *Registrar) WatchLitFalse(lit Lit, local LocalID) {
	r.s.watches.WatchLitFalse(lit, r.id, local)
}

// WatchDomainEvent requests a call-back when domain d reports event ev.
func (r *Registrar) WatchDomainEvent(d DomainID, ev DomainEventKind, local LocalID) {
	r.s.watches.WatchDomainEvent(d, ev, r.id, local)
}

// propQueue is a FIFO of propagator ids with membership de-duplication, per
// the data model's "pushing an already-present id is a no-op." The FIFO
// itself is the ring-buffer Queue, so a push burst that outgrows its initial
// capacity resizes in place rather than reslicing a backing array on every
// pop.
type propQueue struct {
	q       *Queue[PropagatorID]
	present PresentSet
}

func (pq *propQueue) growTo(n int) {
	pq.present.GrowTo(n)
	if pq.q == nil {
		pq.q = NewQueue[PropagatorID](n + 1)
	}
}

func (pq *propQueue) push(id PropagatorID) {
	if pq.present.Contains(int(id)) {
		return
	}
	pq.present.Add(int(id))
	pq.q.Push(id)
}

func (pq *propQueue) empty() bool {
	return pq.q == nil || pq.q.IsEmpty()
}

func (pq *propQueue) pop() PropagatorID {
	id := pq.q.Pop()
	pq.present.Remove(int(id))
	return id
}

func (pq *propQueue) clear() {
	for !pq.q.IsEmpty() {
		pq.present.Remove(int(pq.q.Pop()))
	}
}

// Ctx is the narrowed view a Propagator's Propagate method receives. Every
// mutation of the trail, assignment, implication graph, and domain store
// during propagation goes through it, which is what keeps those components
// from needing to coordinate concurrent access.
type Ctx struct {
	s    *Solver
	conf *Conflict
}

// Value returns the current value of lit.
func (c *Ctx) Value(lit Lit) LBool {
	return c.s.assign.Value(lit)
}

// Domain returns the domain identified by id.
func (c *Ctx) Domain(id DomainID) *IntDomain {
	return c.s.domains.get(id)
}

// Assign forces lit to true with the given explanation. It returns false
// (and records the conflict) if lit is currently false.
func (c *Ctx) Assign(lit Lit, exp Explanation) bool {
	if c.s.assign.Value(lit) == False {
		c.conf = &Conflict{Lit: lit, Explanation: exp}
		return false
	}
	if c.s.assign.Value(lit) == True {
		return true
	}
	c.s.enqueue(lit, ExplanationReason(lit, exp))
	return true
}

// Fail immediately records a conflict over lit/exp without attempting to
// assign anything; used when a propagator detects that lit's own negation
// is already forced by the explanation alone.
func (c *Ctx) Fail(lit Lit, exp Explanation) *Conflict {
	c.conf = &Conflict{Lit: lit, Explanation: exp}
	return c.conf
}

// Conflict returns the conflict recorded so far this call, or nil. A
// BoundedIntVar's SetMin/SetMax records a conflict here (rather than
// returning one directly) when it fails, so a propagator that calls them
// checks this after a false return to get the *Conflict to propagate up.
func (c *Ctx) Conflict() *Conflict {
	return c.conf
}
