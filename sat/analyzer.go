package sat

// ConflictAnalyzer performs 1-UIP resolution with recursive self-subsumption
// minimization. It owns its scratch buffers so that repeated analyses (one
// per conflict, for the life of the search) do not allocate.
type ConflictAnalyzer struct {
	buffer           []Lit
	currentLevelCount int

	seen    []bool
	toClear []Var

	stack     []Lit
	reasonTmp []Lit
}

func newConflictAnalyzer() *ConflictAnalyzer {
	return &ConflictAnalyzer{}
}

func (a *ConflictAnalyzer) growTo(n int) {
	for len(a.seen) < n {
		a.seen = append(a.seen, false)
	}
}

// Analysis is the result of analyzing one conflict: an asserting learned
// clause and the level to backjump to.
type Analysis struct {
	Clause        []Lit
	BackjumpLevel int
}

// addLiteral marks l's variable seen (if not already, and if assigned past
// the root) and either bumps the current-level counter or appends l to the
// growing clause buffer.
func (a *ConflictAnalyzer) addLiteral(s *Solver, l Lit) {
	v := l.Var()
	if s.assign.Level(v) <= 0 || a.seen[v] {
		return
	}
	a.seen[v] = true
	a.toClear = append(a.toClear, v)
	s.brancher.OnVariableActivated(v)

	if s.assign.Level(v) == s.trail.Depth() {
		a.currentLevelCount++
	} else {
		a.buffer = append(a.buffer, l)
	}
}

// Analyze materializes conf as a clause and walks the trail backwards to
// find the first unique implication point, then minimizes the result.
func (a *ConflictAnalyzer) Analyze(s *Solver, conf *Conflict) Analysis {
	a.buffer = a.buffer[:0]
	a.currentLevelCount = 0
	a.toClear = a.toClear[:0]

	var confLits []Lit
	if conf.Clause != nil {
		conf.Clause.explainConflict(&a.reasonTmp)
		confLits = a.reasonTmp
	} else {
		confLits = conf.Explanation.asConflictLits(conf.Lit, &a.reasonTmp)
	}
	for _, l := range confLits {
		a.addLiteral(s, l)
	}

	assertingLit := Lit(-1)
	idx := s.trail.Len() - 1
	for assertingLit == -1 {
		l := s.trail.At(idx)
		idx--
		if !a.seen[l.Var()] {
			continue
		}
		a.currentLevelCount--
		if a.currentLevelCount == 0 {
			assertingLit = l.Not()
			a.buffer = append(a.buffer, assertingLit)
			last := len(a.buffer) - 1
			a.buffer[0], a.buffer[last] = a.buffer[last], a.buffer[0]
			break
		}
		reason := s.implGraph.Get(l.Var())
		lits := reason.AsClauseLits(&s.domains, a.reasonTmp)
		for _, rl := range lits[1:] {
			a.addLiteral(s, rl)
		}
	}

	a.minimize(s)

	for _, v := range a.toClear {
		a.seen[v] = false
	}

	backjump := 0
	wl := -1
	for i := 1; i < len(a.buffer); i++ {
		if lvl := s.assign.Level(a.buffer[i].Var()); lvl > backjump {
			backjump = lvl
			wl = i
		}
	}
	if wl >= 0 && len(a.buffer) > 1 {
		a.buffer[1], a.buffer[wl] = a.buffer[wl], a.buffer[1]
	}

	out := make([]Lit, len(a.buffer))
	copy(out, a.buffer)
	return Analysis{Clause: out, BackjumpLevel: backjump}
}

// minimize removes literals from a.buffer (other than the asserting literal
// at index 0) whose reason closure is already subsumed by literals already
// in the clause.
func (a *ConflictAnalyzer) minimize(s *Solver) {
	for i := 1; i < len(a.buffer); {
		l := a.buffer[i]
		reason := s.implGraph.Get(l.Var())
		if reason.Kind == ReasonDecision {
			i++
			continue
		}

		if a.redundant(s, l) {
			last := len(a.buffer) - 1
			a.buffer[i] = a.buffer[last]
			a.buffer = a.buffer[:last]
			continue
		}
		i++
	}
}

// redundant runs a bounded DFS over !l's reason closure. l is redundant if
// every literal it transitively depends on (besides ones already seen) has
// a non-decision reason; hitting a decision outside the clause aborts the
// DFS and rolls back exactly the seen-flags this sub-proof added.
func (a *ConflictAnalyzer) redundant(s *Solver, l Lit) bool {
	top := len(a.toClear)
	a.stack = a.stack[:0]
	for _, rl := range s.implGraph.Get(l.Var()).AsClauseLits(&s.domains, nil)[1:] {
		a.stack = append(a.stack, rl.Not())
	}

	for len(a.stack) > 0 {
		cur := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]

		v := cur.Var()
		if s.assign.Level(v) == 0 || a.seen[v] {
			continue
		}

		reason := s.implGraph.Get(v)
		if reason.Kind == ReasonDecision {
			for _, c := range a.toClear[top:] {
				a.seen[c] = false
			}
			a.toClear = a.toClear[:top]
			return false
		}

		a.seen[v] = true
		a.toClear = append(a.toClear, v)

		lits := reason.AsClauseLits(&s.domains, nil)
		for _, rl := range lits[1:] {
			a.stack = append(a.stack, rl.Not())
		}
	}
	return true
}

// asConflictLits materializes an explanation-backed conflict as the literals
// of the implied clause: {lit} U {!a : a in explanation}.
func (e Explanation) asConflictLits(lit Lit, out *[]Lit) []Lit {
	buf := (*out)[:0]
	buf = append(buf, lit)
	for _, a := range e.atoms {
		buf = append(buf, a.AsLit(nil).Not())
	}
	*out = buf
	return buf
}
