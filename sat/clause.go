package sat

import "strings"

// ClauseKind classifies a stored clause, per the data model's "original,
// learned, or explanation" distinction.
type ClauseKind uint8

const (
	ClauseOriginal ClauseKind = iota
	ClauseLearned
	ClauseExplanation
)

// Clause is a stored disjunction of at least two literals. Position 0 is the
// propagating slot; position 1 is the other watched literal.
type Clause struct {
	// literals always has length >= 2 while the clause is live.
	literals []Lit

	// prevPos remembers where the last watch-swap search left off, so the
	// next Propagate call resumes scanning instead of restarting at 2.
	prevPos int

	kind ClauseKind
}

// NewClause builds a clause from lits (which must have length >= 2) and
// registers its two watches with the solver. For a learned clause, position
// 0 keeps the asserting literal and the watched literal at position 1 is
// chosen as the one among the remaining positions assigned at the highest
// decision level, so that backtracking to the backjump level makes the
// clause unit exactly when expected.
func NewClause(s *Solver, lits []Lit, kind ClauseKind) *Clause {
	if len(lits) < 2 {
		panic("sat: clause must have at least two literals")
	}

	c := &Clause{
		literals: append([]Lit(nil), lits...),
		prevPos:  2,
		kind:     kind,
	}

	if kind == ClauseLearned {
		maxLevel := -1
		wl := 1
		for i := 1; i < len(c.literals); i++ {
			if lvl := s.assign.Level(c.literals[i].Var()); lvl > maxLevel {
				maxLevel = lvl
				wl = i
			}
		}
		c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]
	}

	s.watchClause(c, c.literals[0].Not(), c.literals[1])
	s.watchClause(c, c.literals[1].Not(), c.literals[0])
	s.clauses.add(c)

	return c
}

func (c *Clause) Kind() ClauseKind { return c.kind }
func (c *Clause) Literals() []Lit  { return c.literals }
func (c *Clause) Len() int         { return len(c.literals) }

// Simplify drops literals already false under the assignment, reporting
// true if the clause is satisfied (and therefore removable) at the current
// (necessarily root) decision level.
func (c *Clause) Simplify(s *Solver) bool {
	k := 0
	for _, lit := range c.literals {
		switch s.assign.Value(lit) {
		case True:
			return true
		case False:
			// discard
		default:
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// Propagate is invoked when literal l has just become true, i.e. when its
// negation, one of the clause's two watched literals, has just become false.
// It restores the two-watched-literal invariant or propagates/conflicts on
// the head literal.
func (c *Clause) Propagate(s *Solver, l Lit) bool {
	opp := l.Not()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], opp
	}

	if s.assign.Value(c.literals[0]) == True {
		s.watchClause(c, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i, lit := range c.literals[c.prevPos:] {
		if s.assign.Value(lit) != False {
			c.prevPos += i
			c.literals[1] = lit
			c.literals[c.prevPos] = l.Not()
			s.watchClause(c, lit.Not(), c.literals[0])
			return true
		}
	}
	for i, lit := range c.literals[2:c.prevPos] {
		if s.assign.Value(lit) != False {
			c.prevPos = i + 2
			c.literals[1] = lit
			c.literals[c.prevPos] = l.Not()
			s.watchClause(c, lit.Not(), c.literals[0])
			return true
		}
	}

	s.watchClause(c, l, c.literals[0])
	return s.enqueue(c.literals[0], ClauseReason(c))
}

// explainConflict copies the clause's literals (all currently false) into
// out, for use when this clause is itself the conflict.
func (c *Clause) explainConflict(out *[]Lit) {
	exp := (*out)[:0]
	exp = append(exp, c.literals...)
	*out = exp
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
