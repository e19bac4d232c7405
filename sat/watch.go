package sat

// PropagatorID identifies a registered propagator within the solver's
// propagator arena.
type PropagatorID int32

// LocalID is a propagator-local index for one of its watched variables,
// handed back to the propagator in OnEvent so it can tell which of its own
// variables triggered the call.
type LocalID int32

// watchKind discriminates the two ways a literal watch can fire.
type watchKind uint8

const (
	watchClause watchKind = iota
	watchPropagator
)

// litWatch is one entry in a literal's watch list.
type litWatch struct {
	kind watchKind

	// valid when kind == watchClause
	clause  *Clause
	blocker Lit

	// valid when kind == watchPropagator
	prop    PropagatorID
	local   LocalID
}

// DomainEventKind is the event an integer domain can report to propagators
// that registered interest in it.
type DomainEventKind uint8

const (
	EventLowerBound DomainEventKind = iota
	EventUpperBound
)

type domainEventWatch struct {
	prop  PropagatorID
	local LocalID
}

type domainEventKey struct {
	domain DomainID
	event  DomainEventKind
}

// boundLitEvent records that a literal's truth IS a domain bound event: it
// lets propagatePropositional notify domain-event watchers directly off the
// trail, for the case where a bound literal is driven true by plain clause
// propagation (a root unit clause, a channeling clause, a learned clause)
// rather than through IntDomain.SetMin/SetMax.
type boundLitEvent struct {
	domain DomainID
	event  DomainEventKind
}

// WatchList holds, per literal, the clause/propagator watches that fire
// when that literal is enqueued (becomes true), and, per (domain, event)
// pair, the propagators that must run when that domain's bound changes.
type WatchList struct {
	byLit      [][]litWatch
	byDomain   map[domainEventKey][]domainEventWatch
	boundEvent map[Lit]boundLitEvent
}

func newWatchList() *WatchList {
	return &WatchList{
		byDomain:   make(map[domainEventKey][]domainEventWatch),
		boundEvent: make(map[Lit]boundLitEvent),
	}
}

// registerBoundLit records that lit becoming true is itself the bound event
// (domain, event) for IntDomain's channeling literals.
func (w *WatchList) registerBoundLit(lit Lit, d DomainID, ev DomainEventKind) {
	w.boundEvent[lit] = boundLitEvent{domain: d, event: ev}
}

func (w *WatchList) boundEventFor(lit Lit) (boundLitEvent, bool) {
	be, ok := w.boundEvent[lit]
	return be, ok
}

func (w *WatchList) growTo(nLits int) {
	for len(w.byLit) < nLits {
		w.byLit = append(w.byLit, nil)
	}
}

func (w *WatchList) addClauseWatch(lit Lit, c *Clause, blocker Lit) {
	w.byLit[lit] = append(w.byLit[lit], litWatch{kind: watchClause, clause: c, blocker: blocker})
}

// WatchLitTrue registers a propagator to be enqueued when lit becomes true.
func (w *WatchList) WatchLitTrue(lit Lit, p PropagatorID, local LocalID) {
	w.byLit[lit] = append(w.byLit[lit], litWatch{kind: watchPropagator, prop: p, local: local})
}

// WatchLitFalse registers a propagator to be enqueued when lit becomes
// false, i.e. when its negation becomes true.
func (w *WatchList) WatchLitFalse(lit Lit, p PropagatorID, local LocalID) {
	w.WatchLitTrue(lit.Not(), p, local)
}

// WatchDomainEvent registers a propagator to be enqueued whenever domain d
// reports event ev.
func (w *WatchList) WatchDomainEvent(d DomainID, ev DomainEventKind, p PropagatorID, local LocalID) {
	key := domainEventKey{d, ev}
	w.byDomain[key] = append(w.byDomain[key], domainEventWatch{p, local})
}

func (w *WatchList) domainWatchers(d DomainID, ev DomainEventKind) []domainEventWatch {
	return w.byDomain[domainEventKey{d, ev}]
}
