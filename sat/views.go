package sat

// Affine is the view y = scale*x + offset over an inner BoundedIntVar,
// scale != 0. Bound-atom translation accounts for the sign of scale: a
// positive scale keeps lower bound <-> lower bound, a negative scale swaps
// them, and both directions divide with the rounding that keeps the
// translated bound sound (ceiling when tightening a lower bound, floor when
// tightening an upper bound).
type Affine struct {
	Inner        BoundedIntVar
	Scale, Offset Int
}

// NewAffine returns the view scale*inner + offset.
func NewAffine(inner BoundedIntVar, scale, offset Int) *Affine {
	if scale == 0 {
		panic("sat: affine view scale must be non-zero")
	}
	return &Affine{Inner: inner, Scale: scale, Offset: offset}
}

func divFloor(a, b Int) Int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func divCeil(a, b Int) Int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

func (a *Affine) Min() Int {
	if a.Scale > 0 {
		return a.Scale*a.Inner.Min() + a.Offset
	}
	return a.Scale*a.Inner.Max() + a.Offset
}

func (a *Affine) Max() Int {
	if a.Scale > 0 {
		return a.Scale*a.Inner.Max() + a.Offset
	}
	return a.Scale*a.Inner.Min() + a.Offset
}

// SetMin tightens y >= v, which translates to a bound on the inner variable
// depending on the sign of scale.
func (a *Affine) SetMin(ctx *Ctx, v Int, exp Explanation) bool {
	if a.Scale > 0 {
		bound := divCeil(v-a.Offset, a.Scale)
		return a.Inner.SetMin(ctx, bound, exp)
	}
	bound := divFloor(v-a.Offset, a.Scale)
	return a.Inner.SetMax(ctx, bound, exp)
}

// SetMax tightens y <= v.
func (a *Affine) SetMax(ctx *Ctx, v Int, exp Explanation) bool {
	if a.Scale > 0 {
		bound := divFloor(v-a.Offset, a.Scale)
		return a.Inner.SetMax(ctx, bound, exp)
	}
	bound := divCeil(v-a.Offset, a.Scale)
	return a.Inner.SetMin(ctx, bound, exp)
}

// DomainIDs delegates to the inner variable.
func (a *Affine) DomainIDs() []DomainID { return a.Inner.DomainIDs() }

// LowerBoundAtom returns the atom asserting y >= v, translated to the
// equivalent atom on the inner variable.
func (a *Affine) LowerBoundAtom(v Int) Atom {
	if a.Scale > 0 {
		return a.Inner.LowerBoundAtom(divCeil(v-a.Offset, a.Scale))
	}
	return a.Inner.UpperBoundAtom(divFloor(v-a.Offset, a.Scale))
}

// UpperBoundAtom returns the atom asserting y <= v, translated to the
// equivalent atom on the inner variable.
func (a *Affine) UpperBoundAtom(v Int) Atom {
	if a.Scale > 0 {
		return a.Inner.UpperBoundAtom(divFloor(v-a.Offset, a.Scale))
	}
	return a.Inner.LowerBoundAtom(divCeil(v-a.Offset, a.Scale))
}

// MinView is z = min(x, y), bound-only: it supports tightening its lower
// bound via SetMin on both operands; SetMax is not implemented, and (per the
// known extension point recorded in the design notes) it does not translate its own bound into
// atoms over x and y — that would require picking which operand is
// responsible for the tightened bound, which depends on runtime values and
// is left unimplemented here exactly as in the source this was distilled
// from.
type MinView struct {
	X, Y BoundedIntVar
}

func NewMinView(x, y BoundedIntVar) *MinView { return &MinView{X: x, Y: y} }

// DomainIDs returns the union of both operands' underlying domain ids.
func (m *MinView) DomainIDs() []DomainID {
	return append(append([]DomainID(nil), m.X.DomainIDs()...), m.Y.DomainIDs()...)
}

func (m *MinView) Min() Int { return maxInt(m.X.Min(), m.Y.Min()) }
func (m *MinView) Max() Int { return minInt(m.X.Max(), m.Y.Max()) }

// SetMin tightens both operands to v, since min(x,y) >= v requires x >= v
// and y >= v.
func (m *MinView) SetMin(ctx *Ctx, v Int, exp Explanation) bool {
	if !m.X.SetMin(ctx, v, exp.Clone()) {
		return false
	}
	return m.Y.SetMin(ctx, v, exp.Clone())
}

// SetMax is an unimplemented extension point: tightening the max of a
// min-view does not by itself bound either operand (only one of them needs
// to drop), so there is no single sound propagation without search.
func (m *MinView) SetMax(*Ctx, Int, Explanation) bool {
	panic("sat: MinView.SetMax is not implemented (extension point)")
}

func (m *MinView) LowerBoundAtom(Int) Atom {
	panic("sat: MinView.LowerBoundAtom is not implemented (extension point)")
}

func (m *MinView) UpperBoundAtom(Int) Atom {
	panic("sat: MinView.UpperBoundAtom is not implemented (extension point)")
}

func maxInt(a, b Int) Int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b Int) Int {
	if a < b {
		return a
	}
	return b
}
