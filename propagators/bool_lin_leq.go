// Package propagators provides constraint implementations built on top of
// the sat package's Propagator extension point: a pseudo-Boolean sum
// constraint, a linear-integer sum constraint over affine-view coefficients,
// a boolean conjunction reifier, and an all-different decomposition built
// from the other two.
package propagators

import "github.com/maartenflippo/limiga/sat"

// BoolLinLeqFactory builds a propagator for the constraint `sum(x) <= y`,
// where every x_i is a propositional literal and y is a bounded integer
// variable (or view).
//
// Grounded on crates/constraints/src/bool_lin_leq.rs.
type BoolLinLeqFactory struct {
	X []sat.Lit
	Y sat.BoundedIntVar
}

// BoolLinEq posts `sum(x) == y` as two pseudo-Boolean leq propagators: one
// over x itself bounding the sum from above by y, and one over the negated
// literals bounding the complement count from above by len(x) - y, which
// together pin the sum to exactly y.
//
// Grounded on crates/constraints/src/lib.rs's bool_lin_eq.
func BoolLinEq(s *sat.Solver, x []sat.Lit, y sat.BoundedIntVar) {
	negX := make([]sat.Lit, len(x))
	for i, xi := range x {
		negX[i] = xi.Not()
	}
	s.AddPropagator(BoolLinLeqFactory{X: x, Y: y})
	s.AddPropagator(BoolLinLeqFactory{X: negX, Y: sat.NewAffine(y, -1, sat.Int(len(x)))})
}

func (f BoolLinLeqFactory) Create(reg *sat.Registrar) sat.Propagator {
	for i, xi := range f.X {
		reg.WatchLitTrue(xi, sat.LocalID(i))
	}
	yLocal := sat.LocalID(len(f.X))
	for _, id := range f.Y.DomainIDs() {
		reg.WatchDomainEvent(id, sat.EventUpperBound, yLocal)
		reg.WatchDomainEvent(id, sat.EventLowerBound, yLocal)
	}

	return &boolLinLeq{x: append([]sat.Lit(nil), f.X...), y: f.Y}
}

// boolLinLeq is the pseudo-Boolean sum-leq propagator: sum(x_i) <= y. The
// lower bound of y is the count of literals already fixed true in x, and
// once that count reaches y's upper bound every remaining literal in x is
// forced false.
type boolLinLeq struct {
	x []sat.Lit
	y sat.BoundedIntVar
}

func (p *boolLinLeq) Propagate(ctx *sat.Ctx) *sat.Conflict {
	trueAtoms := make([]sat.Atom, 0, len(p.x))
	for _, xi := range p.x {
		if ctx.Value(xi) == sat.True {
			trueAtoms = append(trueAtoms, sat.LitAtom{L: xi})
		}
	}
	fixedTrueCount := sat.Int(len(trueAtoms))

	if !p.y.SetMin(ctx, fixedTrueCount, sat.NewExplanation(trueAtoms...)) {
		return ctx.Conflict()
	}

	yMax := p.y.Max()
	if fixedTrueCount != yMax {
		return nil
	}

	reasonAtoms := append([]sat.Atom{p.y.UpperBoundAtom(yMax)}, trueAtoms...)
	reason := sat.NewExplanation(reasonAtoms...)

	for _, xi := range p.x {
		if ctx.Value(xi) != sat.Unknown {
			continue
		}
		if !ctx.Assign(xi.Not(), reason.Clone()) {
			return ctx.Conflict()
		}
	}
	return nil
}
