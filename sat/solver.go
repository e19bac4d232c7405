package sat

// Outcome is the three-way result of Solve.
type Outcome uint8

const (
	SolveUnknown Outcome = iota
	Satisfiable
	Unsatisfiable
)

func (o Outcome) String() string {
	switch o {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Solution is a frozen snapshot of every variable's and domain's value at
// the moment Solve found a satisfying assignment. It is captured eagerly
// (rather than reading live off the solver) because Solve backtracks to the
// root level before returning, so that the solver is immediately ready for
// another incremental Solve call (e.g. after the caller posts a blocking
// clause to enumerate further models).
type Solution struct {
	values       []LBool
	domainValues []Int
}

func (s *Solver) snapshotSolution() *Solution {
	values := make([]LBool, s.NumVars())
	for v := range values {
		values[v] = s.assign.VarValue(Var(v))
	}
	domainValues := make([]Int, len(s.domains.domains))
	for i, d := range s.domains.domains {
		domainValues[i] = d.Min()
	}
	return &Solution{values: values, domainValues: domainValues}
}

// Value returns the boolean value variable v was assigned.
func (sol Solution) Value(v Var) bool {
	return sol.values[v] == True
}

// DomainValue returns the value a solved integer domain was fixed to (at a
// solution, Min()==Max()).
func (sol Solution) DomainValue(id DomainID) Int {
	return sol.domainValues[id]
}

// Solver is the LCG/CDCL engine: trail, assignment, clause database, watch
// lists, domain store, propagator registry, conflict analyzer and brancher,
// wired together by the main loop in Solve.
type Solver struct {
	assign Assignment
	trail  Trail

	watches *WatchList

	domains   DomainStore
	implGraph KeyedVec[Var, Reason]
	clauses   ClauseDB

	analyzer *ConflictAnalyzer
	brancher Brancher

	propagators []Propagator
	propFilters []EventFilter
	propQ       propQueue

	preprocessor Preprocessor

	// nextPropagationIdx is the trail index from which the next call to
	// propagatePropositional should resume dispatching literal watches.
	nextPropagationIdx int

	rootConflict bool

	opts  Options
	Stats Stats

	// scratch reused across conflicts to avoid per-conflict allocation.
	reasonScratch []Lit
}

// NewSolver returns an empty solver using the given options and brancher.
// Pass nil for brancher to use the default VSIDS realization.
func NewSolver(opts Options, brancher Brancher) *Solver {
	if brancher == nil {
		brancher = NewVSIDSBrancher(opts.VarDecay, opts.PhaseSaving)
	}
	return &Solver{
		watches:  newWatchList(),
		analyzer: newConflictAnalyzer(),
		brancher: brancher,
		opts:     opts,
	}
}

// NumVars returns the number of boolean variables allocated so far.
func (s *Solver) NumVars() int {
	return s.assign.NumVars()
}

// NewLit allocates a fresh boolean variable and returns its positive
// literal, growing every capacity that is indexed by variable.
func (s *Solver) NewLit() Lit {
	v := Var(s.assign.NumVars())
	s.assign.GrowTo(int(v) + 1)
	s.watches.growTo(2 * (int(v) + 1))
	s.implGraph.GrowTo(int(v) + 1)
	s.analyzer.growTo(int(v) + 1)
	s.propQ.growTo(len(s.propagators))
	s.brancher.OnNewVar(v)
	return PosLit(v)
}

// AddVariable is a convenience wrapper matching front-end vocabulary
// (DIMACS/CNF builders think in terms of "variables", not literals): it
// returns the new variable's 0-based code.
func (s *Solver) AddVariable() int {
	return int(s.NewLit().Var())
}

// NewDomain allocates a fresh integer interval domain over [lo, hi].
func (s *Solver) NewDomain(lo, hi Int) *IntDomain {
	return NewIntDomain(s, lo, hi)
}

// Domains returns the solver's domain store, so callers can translate an
// Atom returned by a BoundedIntVar into a concrete literal.
func (s *Solver) Domains() *DomainStore {
	return &s.domains
}

// AddPropagator registers a new propagator built by factory, presenting it
// with a Registrar scoped to its own propagator id.
func (s *Solver) AddPropagator(factory PropagatorFactory) PropagatorID {
	id := PropagatorID(len(s.propagators))
	s.propQ.growTo(len(s.propagators) + 1)

	reg := &Registrar{s: s, id: id}
	p := factory.Create(reg)

	s.propagators = append(s.propagators, p)
	filter, _ := p.(EventFilter)
	s.propFilters = append(s.propFilters, filter)

	return id
}

// AddClause runs lits through the preprocessor and adds whatever results:
// a no-op if trivially satisfied, a root unit, a stored clause, or it flips
// the solver into the sticky root-conflict state.
func (s *Solver) AddClause(lits []Lit) {
	if s.rootConflict {
		return
	}

	res := s.preprocessor.Preprocess(&s.assign, lits)
	if res.Satisfiable {
		return
	}

	switch len(res.Lits) {
	case 0:
		s.rootConflict = true
	case 1:
		if !s.enqueue(res.Lits[0], DecisionReason) {
			s.rootConflict = true
		}
	default:
		NewClause(s, res.Lits, ClauseOriginal)
	}
}

func (s *Solver) watchClause(c *Clause, lit Lit, blocker Lit) {
	s.watches.addClauseWatch(lit, c, blocker)
}

// enqueue appends lit to the trail with the given reason. It returns false
// (without mutating anything) if lit is already false.
func (s *Solver) enqueue(lit Lit, reason Reason) bool {
	switch s.assign.Value(lit) {
	case False:
		return false
	case True:
		return true
	default:
		s.assign.Assign(lit, s.trail.Depth())
		s.implGraph.Set(lit.Var(), reason)
		s.trail.Enqueue(lit)
		return true
	}
}

// notifyDomainEvent enqueues every propagator watching (d, ev).
func (s *Solver) notifyDomainEvent(d DomainID, ev DomainEventKind) {
	for _, w := range s.watches.domainWatchers(d, ev) {
		if f := s.propFilters[w.prop]; f != nil && !f.OnEvent(w.local) {
			continue
		}
		s.propQ.push(w.prop)
	}
}

// propagatePropositional drains the Boolean watch queue implicit in the
// trail: every literal enqueued since the last call is dispatched against
// its clause and propagator watches.
func (s *Solver) propagatePropositional() *Conflict {
	for s.nextPropagationIdx < s.trail.Len() {
		l := s.trail.At(s.nextPropagationIdx)
		s.nextPropagationIdx++

		if be, ok := s.watches.boundEventFor(l); ok {
			s.notifyDomainEvent(be.domain, be.event)
		}

		watchList := s.watches.byLit[l]
		s.watches.byLit[l] = watchList[:0]

		for i := 0; i < len(watchList); i++ {
			w := watchList[i]

			switch w.kind {
			case watchClause:
				if s.assign.Value(w.blocker) == True {
					s.watches.byLit[l] = append(s.watches.byLit[l], w)
					continue
				}
				if w.clause.Propagate(s, l) {
					continue
				}
				s.watches.byLit[l] = append(s.watches.byLit[l], watchList[i+1:]...)
				s.nextPropagationIdx = s.trail.Len()
				return &Conflict{Clause: w.clause}

			case watchPropagator:
				s.watches.byLit[l] = append(s.watches.byLit[l], w)
				if f := s.propFilters[w.prop]; f != nil && !f.OnEvent(w.local) {
					continue
				}
				s.propQ.push(w.prop)
			}
		}
	}
	return nil
}

// propagate runs the fixpoint loop of §4.9: drain Boolean propagation, then
// one propagator at a time, re-draining Boolean propagation after each
// (since a propagator's bound tightening enqueues bound literals).
func (s *Solver) propagate() *Conflict {
	for {
		if conf := s.propagatePropositional(); conf != nil {
			s.propQ.clear()
			return conf
		}
		if s.propQ.empty() {
			return nil
		}
		id := s.propQ.pop()
		ctx := &Ctx{s: s}
		if conf := s.propagators[id].Propagate(ctx); conf != nil {
			s.propQ.clear()
			return conf
		}
		if ctx.conf != nil {
			s.propQ.clear()
			return ctx.conf
		}
	}
}

// backtrackTo undoes every assignment made at a decision level above lvl.
func (s *Solver) backtrackTo(lvl int) {
	removed := s.trail.BacktrackTo(lvl)
	for _, l := range removed {
		v := l.Var()
		lastValue := s.assign.VarValue(v)
		s.assign.Unassign(v)
		s.brancher.OnVariableUnassigned(v, lastValue)
	}
	s.nextPropagationIdx = s.trail.Len()
}

// Solve runs the main CDCL/LCG loop described in the component design until
// a satisfiable assignment is found, unsatisfiability is proven, or the
// terminator asks to stop. It always leaves the solver backtracked to the
// root decision level before returning, so a caller can post more clauses
// (e.g. a blocking clause ruling out the model just found) and call Solve
// again to continue searching from a clean state.
func (s *Solver) Solve(term Terminator, brancher Brancher) (Outcome, *Solution) {
	if brancher != nil {
		s.brancher = brancher
	}
	if s.rootConflict {
		return Unsatisfiable, nil
	}
	if s.NumVars() == 0 {
		return Satisfiable, s.snapshotSolution()
	}

	defer s.backtrackTo(0)

	s.brancher.Initialize(Var(s.NumVars() - 1))

	if conf := s.propagate(); conf != nil {
		return Unsatisfiable, nil
	}
	s.SimplifyOriginal()

	conflictsUntilRestart := s.opts.RestartFirst
	if conflictsUntilRestart <= 0 {
		conflictsUntilRestart = 100
	}
	conflictsSinceRestart := 0

	for {
		if term != nil && term.ShouldStop() {
			return SolveUnknown, nil
		}

		conf := s.propagate()
		if conf != nil {
			s.Stats.Conflicts++
			conflictsSinceRestart++

			if s.trail.Depth() == 0 {
				return Unsatisfiable, nil
			}

			analysis := s.analyzer.Analyze(s, conf)

			var reason Reason
			if len(analysis.Clause) > 1 {
				c := NewClause(s, analysis.Clause, ClauseLearned)
				reason = ClauseReason(c)
			} else {
				reason = DecisionReason
			}

			s.backtrackTo(analysis.BackjumpLevel)
			s.enqueue(analysis.Clause[0], reason)
			s.brancher.OnConflict()

			if conflictsSinceRestart >= conflictsUntilRestart {
				s.Stats.Restarts++
				s.Stats.AvgConflictsPerRestart.Add(float64(conflictsSinceRestart))
				conflictsSinceRestart = 0
				growth := s.opts.RestartGrowth
				if growth <= 1 {
					growth = 2
				}
				conflictsUntilRestart = int(float64(conflictsUntilRestart) * growth)
				s.backtrackTo(0)
			}
			continue
		}

		s.trail.Push()
		lit, ok := s.brancher.NextDecision(&s.assign)
		if !ok {
			return Satisfiable, s.snapshotSolution()
		}
		s.Stats.Decisions++
		s.enqueue(lit, DecisionReason)
	}
}
