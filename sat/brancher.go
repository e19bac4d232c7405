package sat

// Brancher selects the next decision literal and reacts to solver events
// that should influence future selections. VSIDSBrancher is the realization
// provided by this package; callers may supply any other implementation of
// this interface to Solver.Solve.
type Brancher interface {
	// OnNewVar registers a freshly allocated variable.
	OnNewVar(v Var)
	// Initialize is called once, after all variables known at the start of
	// search have been registered, before the first decision.
	Initialize(lastVar Var)
	// OnVariableActivated is called by the analyzer for every variable it
	// encounters while building the learned clause.
	OnVariableActivated(v Var)
	// OnConflict is called once per conflict (the decay step).
	OnConflict()
	// OnVariableUnassigned is called when v is unassigned during
	// backtracking, so it can re-enter the selection pool.
	OnVariableUnassigned(v Var, lastValue LBool)
	// NextDecision returns an unassigned literal to branch on, or ok=false
	// if every variable is assigned.
	NextDecision(assign *Assignment) (lit Lit, ok bool)
}

// VSIDSBrancher is the classic variable-state-independent decaying-sum
// heuristic: a max-heap over per-variable activity (realized as a min-heap
// over negated activity, via github.com/rhartert/yagh), with phase saving.
type VSIDSBrancher struct {
	order *VarOrder
}

// NewVSIDSBrancher returns a brancher with the given activity decay factor
// (applied once per conflict) and phase-saving behavior.
func NewVSIDSBrancher(decay float64, phaseSaving bool) *VSIDSBrancher {
	return &VSIDSBrancher{order: NewVarOrder(decay, phaseSaving)}
}

func (b *VSIDSBrancher) OnNewVar(Var) {
	b.order.AddVar(0, true)
}

func (b *VSIDSBrancher) Initialize(Var) {}

func (b *VSIDSBrancher) OnVariableActivated(v Var) {
	b.order.BumpScore(int(v))
}

func (b *VSIDSBrancher) OnConflict() {
	b.order.DecayScores()
}

func (b *VSIDSBrancher) OnVariableUnassigned(v Var, lastValue LBool) {
	b.order.Reinsert(int(v), lastValue)
}

func (b *VSIDSBrancher) NextDecision(assign *Assignment) (Lit, bool) {
	if assign.NumVars() == 0 {
		return 0, false
	}
	for {
		next, ok := b.order.order.Pop()
		if !ok {
			return 0, false
		}
		if assign.VarValue(Var(next.Elem)) != Unknown {
			continue
		}
		switch b.order.phases[next.Elem] {
		case False:
			return NegLit(Var(next.Elem)), true
		default:
			return PosLit(Var(next.Elem)), true
		}
	}
}
