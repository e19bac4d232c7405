package sat

import "testing"

// TestClause_Propagate_UnitsOnLastUnassignedLiteral exercises the
// two-watched-literal search across a clause with several currently-false
// literals: propagating the watched literal down to false should find the
// one remaining unassigned literal and watch it instead, and once every
// other literal is false it should unit-propagate the head.
func TestClause_Propagate_UnitsOnLastUnassignedLiteral(t *testing.T) {
	s := NewSolver(DefaultOptions, nil)
	a, b, c, d := s.NewLit(), s.NewLit(), s.NewLit(), s.NewLit()

	s.AddClause([]Lit{a, b, c, d})

	s.enqueue(a.Not(), DecisionReason)
	s.enqueue(b.Not(), DecisionReason)
	s.enqueue(c.Not(), DecisionReason)
	if conf := s.propagatePropositional(); conf != nil {
		t.Fatalf("unexpected conflict after three falsified literals: %v", conf)
	}
	if s.assign.Value(d) != True {
		t.Fatalf("expected d to be unit-propagated true, got %v", s.assign.Value(d))
	}
}

// TestClause_Propagate_Conflict confirms a clause with every literal false
// is reported as a conflict rather than silently accepted.
func TestClause_Propagate_Conflict(t *testing.T) {
	s := NewSolver(DefaultOptions, nil)
	a, b := s.NewLit(), s.NewLit()
	s.AddClause([]Lit{a, b})

	s.enqueue(a.Not(), DecisionReason)
	s.enqueue(b.Not(), DecisionReason)

	conf := s.propagatePropositional()
	if conf == nil || conf.Clause == nil {
		t.Fatalf("expected a clause conflict, got %v", conf)
	}
}

func TestClause_Simplify_DropsFalseKeepsTrue(t *testing.T) {
	s := NewSolver(DefaultOptions, nil)
	a, b, c := s.NewLit(), s.NewLit(), s.NewLit()
	cl := &Clause{literals: []Lit{a, b, c}}

	s.enqueue(b.Not(), DecisionReason)

	if sat := cl.Simplify(s); sat {
		t.Fatal("did not expect clause to be reported satisfied")
	}
	want := []Lit{a, c}
	if len(cl.literals) != len(want) || cl.literals[0] != want[0] || cl.literals[1] != want[1] {
		t.Errorf("literals after Simplify = %v, want %v", cl.literals, want)
	}
}

func TestClause_Simplify_SatisfiedWhenALiteralIsTrue(t *testing.T) {
	s := NewSolver(DefaultOptions, nil)
	a, b := s.NewLit(), s.NewLit()
	cl := &Clause{literals: []Lit{a, b}}

	s.enqueue(a, DecisionReason)

	if sat := cl.Simplify(s); !sat {
		t.Fatal("expected clause to be reported satisfied")
	}
}
