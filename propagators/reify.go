package propagators

import "github.com/maartenflippo/limiga/sat"

// BoolAnd posts the clausal encoding of `r <-> (a /\ b)` directly to the
// solver's clause database: `(!a \/ !b \/ r)` for the forward implication,
// and `(!r \/ a)`, `(!r \/ b)` for the reverse.
//
// Grounded on crates/constraints/src/lib.rs's bool_and.
func BoolAnd(s *sat.Solver, a, b, r sat.Lit) {
	s.AddClause([]sat.Lit{a.Not(), b.Not(), r})
	s.AddClause([]sat.Lit{r.Not(), a})
	s.AddClause([]sat.Lit{r.Not(), b})
}

// AllDifferent posts a bound-literal decomposition of the all-different
// constraint over vars, all of which must share the value range [lo, hi].
// vars may be raw domains or views (e.g. an Affine x_i+i/x_i-i diagonal),
// since everything here goes through the BoundedIntVar/Atom abstraction.
//
// For every variable i and value v in [lo, hi], a fresh indicator literal
// eq[i][v] is reified via BoolAnd to assert `(x_i >= v) /\ (x_i <= v)`,
// i.e. `x_i == v`. Then, for every pair i < j and every value v, the clause
// `!eq[i][v] \/ !eq[j][v]` rules out two variables taking the same value.
//
// Grounded on the original workspace's pairwise-disequality propagator
// concept (a bitset-domain `not_eq` propagator that does not itself port,
// since this engine's domains are bound-only), re-expressed here over the
// bound-literal encoding the way the distilled spec's own pigeonhole
// scenario already reifies per-value equality — see SPEC_FULL.md §4.16.
func AllDifferent(s *sat.Solver, vars []sat.BoundedIntVar, lo, hi sat.Int) {
	n := len(vars)
	width := int(hi-lo) + 1
	eq := make([][]sat.Lit, n)
	domains := s.Domains()

	for i, v := range vars {
		eq[i] = make([]sat.Lit, width)
		for k := 0; k < width; k++ {
			val := lo + sat.Int(k)
			r := s.NewLit()
			geLit := v.LowerBoundAtom(val).AsLit(domains)
			leLit := v.UpperBoundAtom(val).AsLit(domains)
			BoolAnd(s, geLit, leLit, r)
			eq[i][k] = r
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := 0; k < width; k++ {
				s.AddClause([]sat.Lit{eq[i][k].Not(), eq[j][k].Not()})
			}
		}
	}
}
