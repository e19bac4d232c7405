package sat

// ClauseDB owns every stored non-unit clause: the original and the learned
// clauses. Propagator explanations are turned into scratch literal lists
// during analysis and are never stored here. Clause references elsewhere in the engine are plain *Clause
// pointers into slots owned here; nothing outside this type ever frees a
// clause (see the design notes on learned-clause management).
type ClauseDB struct {
	original []*Clause
	learned  []*Clause
}

func (db *ClauseDB) add(c *Clause) {
	switch c.kind {
	case ClauseLearned:
		db.learned = append(db.learned, c)
	default:
		db.original = append(db.original, c)
	}
}

// NumOriginal and NumLearned report the clause database's size, split by
// classification.
func (db *ClauseDB) NumOriginal() int { return len(db.original) }
func (db *ClauseDB) NumLearned() int  { return len(db.learned) }

// SimplifyOriginal shortens every original clause by dropping literals
// already false at the root. It must only be called at decision level 0,
// after propagation has reached a fixpoint. It never removes a whole
// clause from the database (that would require re-checking watches against
// every other literal still present); it only ever shrinks one.
func (s *Solver) SimplifyOriginal() {
	if s.trail.Depth() != 0 {
		panic("sat: SimplifyOriginal called above decision level 0")
	}
	for _, c := range s.clauses.original {
		c.Simplify(s)
	}
}
