package propagators_test

import (
	"testing"

	"github.com/maartenflippo/limiga/propagators"
	"github.com/maartenflippo/limiga/sat"
)

// TestBoolLinEq_ForcesRemainingLiteralsOnceCountIsReached checks sum(x) == y:
// once enough literals are fixed true to reach y, every other literal in x
// must be forced false.
func TestBoolLinEq_ForcesRemainingLiteralsOnceCountIsReached(t *testing.T) {
	s := sat.NewSolver(sat.DefaultOptions, nil)
	x := []sat.Lit{s.NewLit(), s.NewLit(), s.NewLit()}
	y := s.NewDomain(0, 3)

	propagators.BoolLinEq(s, x, y)

	s.AddClause([]sat.Lit{y.UpperBoundLit(2)})
	s.AddClause([]sat.Lit{x[0]})
	s.AddClause([]sat.Lit{x[1]})

	outcome, solution := s.Solve(nil, nil)
	if outcome != sat.Satisfiable {
		t.Fatalf("outcome = %v, want Satisfiable", outcome)
	}
	if got := solution.Value(x[2].Var()); got {
		t.Errorf("x[2] = %v, want false once the true count reaches y's upper bound", got)
	}
}

// TestBoolLinEq_UnsatisfiableWhenTooManyLiteralsAreTrue checks that forcing
// more literals true than y allows leads to unsatisfiability.
func TestBoolLinEq_UnsatisfiableWhenTooManyLiteralsAreTrue(t *testing.T) {
	s := sat.NewSolver(sat.DefaultOptions, nil)
	x := []sat.Lit{s.NewLit(), s.NewLit(), s.NewLit()}
	y := s.NewDomain(0, 3)

	propagators.BoolLinEq(s, x, y)

	s.AddClause([]sat.Lit{y.UpperBoundLit(1)})
	s.AddClause([]sat.Lit{x[0]})
	s.AddClause([]sat.Lit{x[1]})

	outcome, _ := s.Solve(nil, nil)
	if outcome != sat.Unsatisfiable {
		t.Fatalf("outcome = %v, want Unsatisfiable (two literals true exceeds y<=1)", outcome)
	}
}

// TestLinearLeq_UnsatisfiableWhenOthersMinimumsExceedRhs checks
// sum(x,y,z) <= 4 with x >= 3 and y >= 2 pinned: the minimums alone already
// exceed the right-hand side, so propagation must report unsatisfiability.
func TestLinearLeq_UnsatisfiableWhenOthersMinimumsExceedRhs(t *testing.T) {
	s := sat.NewSolver(sat.DefaultOptions, nil)
	x := s.NewDomain(0, 5)
	y := s.NewDomain(0, 5)
	z := s.NewDomain(0, 5)

	factory := propagators.NewLinearLeq(
		[]sat.Int{1, 1, 1},
		[]sat.BoundedIntVar{x, y, z},
		4,
	)
	s.AddPropagator(factory)

	s.AddClause([]sat.Lit{x.LowerBoundLit(3)})
	s.AddClause([]sat.Lit{y.LowerBoundLit(2)})

	outcome, _ := s.Solve(nil, nil)
	if outcome != sat.Unsatisfiable {
		t.Fatalf("outcome = %v, want Unsatisfiable: x>=3, y>=2 already exceeds rhs 4 regardless of z", outcome)
	}
}

// TestLinearLeq_SatisfiableWithinBudget checks a satisfiable instance of the
// same constraint shape stays satisfiable and respects the bound.
func TestLinearLeq_SatisfiableWithinBudget(t *testing.T) {
	s := sat.NewSolver(sat.DefaultOptions, nil)
	x := s.NewDomain(0, 5)
	y := s.NewDomain(0, 5)
	z := s.NewDomain(0, 5)

	factory := propagators.NewLinearLeq(
		[]sat.Int{1, 1, 1},
		[]sat.BoundedIntVar{x, y, z},
		4,
	)
	s.AddPropagator(factory)

	s.AddClause([]sat.Lit{x.LowerBoundLit(1)})
	s.AddClause([]sat.Lit{x.UpperBoundLit(1)})
	s.AddClause([]sat.Lit{y.LowerBoundLit(1)})
	s.AddClause([]sat.Lit{y.UpperBoundLit(1)})

	outcome, solution := s.Solve(nil, nil)
	if outcome != sat.Satisfiable {
		t.Fatalf("outcome = %v, want Satisfiable", outcome)
	}
	if got := solution.DomainValue(z.ID()) + 2; got > 4 {
		t.Errorf("x+y+z = %d, want <= 4", got)
	}
}

// TestAllDifferent_RejectsSharedValue checks two single-value domains pinned
// to the same value are unsatisfiable under an all-different decomposition.
func TestAllDifferent_RejectsSharedValue(t *testing.T) {
	s := sat.NewSolver(sat.DefaultOptions, nil)
	a := s.NewDomain(0, 2)
	b := s.NewDomain(0, 2)

	propagators.AllDifferent(s, []sat.BoundedIntVar{a, b}, 0, 2)

	s.AddClause([]sat.Lit{a.LowerBoundLit(1)})
	s.AddClause([]sat.Lit{a.UpperBoundLit(1)})
	s.AddClause([]sat.Lit{b.LowerBoundLit(1)})
	s.AddClause([]sat.Lit{b.UpperBoundLit(1)})

	outcome, _ := s.Solve(nil, nil)
	if outcome != sat.Unsatisfiable {
		t.Fatalf("outcome = %v, want Unsatisfiable: both variables pinned to value 1", outcome)
	}
}

// TestAllDifferent_SatisfiableWithDistinctValues checks two variables free to
// take different values within a shared range remain satisfiable.
func TestAllDifferent_SatisfiableWithDistinctValues(t *testing.T) {
	s := sat.NewSolver(sat.DefaultOptions, nil)
	a := s.NewDomain(0, 1)
	b := s.NewDomain(0, 1)

	propagators.AllDifferent(s, []sat.BoundedIntVar{a, b}, 0, 1)

	outcome, solution := s.Solve(nil, nil)
	if outcome != sat.Satisfiable {
		t.Fatalf("outcome = %v, want Satisfiable", outcome)
	}
	if solution.DomainValue(a.ID()) == solution.DomainValue(b.ID()) {
		t.Errorf("a and b both resolved to %d, want distinct values", solution.DomainValue(a.ID()))
	}
}

// TestBoolAnd_ReifiesConjunction exercises the raw BoolAnd clausal encoding
// directly: r must track a && b in every one of the four assignments.
func TestBoolAnd_ReifiesConjunction(t *testing.T) {
	for _, tc := range []struct {
		aVal, bVal bool
		wantR      bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	} {
		s := sat.NewSolver(sat.DefaultOptions, nil)
		a, b, r := s.NewLit(), s.NewLit(), s.NewLit()
		propagators.BoolAnd(s, a, b, r)

		if tc.aVal {
			s.AddClause([]sat.Lit{a})
		} else {
			s.AddClause([]sat.Lit{a.Not()})
		}
		if tc.bVal {
			s.AddClause([]sat.Lit{b})
		} else {
			s.AddClause([]sat.Lit{b.Not()})
		}

		outcome, solution := s.Solve(nil, nil)
		if outcome != sat.Satisfiable {
			t.Fatalf("a=%v b=%v: outcome = %v, want Satisfiable", tc.aVal, tc.bVal, outcome)
		}
		if got := solution.Value(r.Var()); got != tc.wantR {
			t.Errorf("a=%v b=%v: r = %v, want %v", tc.aVal, tc.bVal, got, tc.wantR)
		}
	}
}
