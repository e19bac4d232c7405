package sat

import "sort"

// PreprocessResult is the outcome of running the Preprocessor over a
// candidate clause.
type PreprocessResult struct {
	// Satisfiable is true if the clause is trivially true (a root-true
	// literal, or both polarities of some variable) and can be discarded.
	Satisfiable bool
	// Lits is the deduplicated, root-false-literal-free clause; valid only
	// when !Satisfiable. May be empty (root conflict) or a single literal
	// (root unit).
	Lits []Lit
}

// Preprocessor removes duplicate literals and literals already false at the
// root from a candidate clause, and detects trivially satisfied clauses. It
// reuses an internal buffer across calls.
type Preprocessor struct {
	buffer []Lit
}

// Preprocess runs the preprocessor over lits against the current (root)
// assignment.
func (p *Preprocessor) Preprocess(assign *Assignment, lits []Lit) PreprocessResult {
	p.buffer = p.buffer[:0]
	p.buffer = append(p.buffer, lits...)

	sort.Slice(p.buffer, func(i, j int) bool { return p.buffer[i] < p.buffer[j] })

	k := 0
	for i, l := range p.buffer {
		if assign.Value(l) == True {
			return PreprocessResult{Satisfiable: true}
		}
		if assign.Value(l) == False {
			continue
		}
		if i+1 < len(p.buffer) && p.buffer[i+1] == l.Not() {
			return PreprocessResult{Satisfiable: true}
		}
		if k > 0 && p.buffer[k-1] == l {
			continue // duplicate
		}
		p.buffer[k] = l
		k++
	}
	p.buffer = p.buffer[:k]

	return PreprocessResult{Lits: p.buffer}
}
