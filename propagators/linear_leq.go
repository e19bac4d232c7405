package propagators

import "github.com/maartenflippo/limiga/sat"

// LinearLeqFactory builds a propagator for `sum(terms) <= rhs`, where each
// term is a bounded integer variable or view (coefficients are folded in by
// wrapping a variable in a sat.Affine view before it reaches here — see
// NewLinearLeq).
//
// Grounded on crates/constraints/src/linear_leq.rs, which the original
// workspace leaves as an unfinished `todo!()` stub: its per-term bound
// computation subtracts the term's own minimum a second time
// (`rhs - optimistic_lhs - term_lb`) instead of adding it back
// (`rhs - (optimistic_lhs - term_lb)`). This propagator uses the corrected
// formula, matching the arithmetic given in the data model: for term k,
// `max_k <- rhs - (sum_i min_i - min_k)`.
type LinearLeqFactory struct {
	Terms []sat.BoundedIntVar
	Rhs   sat.Int
}

// NewLinearLeq wraps each variable in an Affine view scaled by its
// coefficient (skipping the wrap when the coefficient is 1, since Affine
// requires a non-zero scale and a bare variable is cheaper to propagate
// through than a scale-1 view), producing a ready-to-register factory for
// `sum(coeffs[i] * vars[i]) <= rhs`.
func NewLinearLeq(coeffs []sat.Int, vars []sat.BoundedIntVar, rhs sat.Int) LinearLeqFactory {
	terms := make([]sat.BoundedIntVar, len(vars))
	for i, v := range vars {
		if coeffs[i] == 1 {
			terms[i] = v
		} else {
			terms[i] = sat.NewAffine(v, coeffs[i], 0)
		}
	}
	return LinearLeqFactory{Terms: terms, Rhs: rhs}
}

func (f LinearLeqFactory) Create(reg *sat.Registrar) sat.Propagator {
	for i, t := range f.Terms {
		for _, id := range t.DomainIDs() {
			reg.WatchDomainEvent(id, sat.EventLowerBound, sat.LocalID(i))
			reg.WatchDomainEvent(id, sat.EventUpperBound, sat.LocalID(i))
		}
	}
	return &linearLeq{terms: append([]sat.BoundedIntVar(nil), f.Terms...), rhs: f.Rhs}
}

type linearLeq struct {
	terms []sat.BoundedIntVar
	rhs   sat.Int
}

// Propagate tightens every term's upper bound to what the other terms'
// current minimums allow, in a single pass: `max_k <- rhs - (s - min_k)`
// where `s` is the sum of every term's current minimum.
func (p *linearLeq) Propagate(ctx *sat.Ctx) *sat.Conflict {
	mins := make([]sat.Int, len(p.terms))
	var s sat.Int
	for i, t := range p.terms {
		mins[i] = t.Min()
		s += mins[i]
	}

	for k, t := range p.terms {
		newMax := p.rhs - (s - mins[k])

		atoms := make([]sat.Atom, 0, len(p.terms)-1)
		for i, other := range p.terms {
			if i == k {
				continue
			}
			atoms = append(atoms, other.LowerBoundAtom(mins[i]))
		}

		if !t.SetMax(ctx, newMax, sat.NewExplanation(atoms...)) {
			return ctx.Conflict()
		}
	}
	return nil
}
