package sat

import "testing"

func TestLit_NegationIsInvolutive(t *testing.T) {
	for v := Var(0); v < 8; v++ {
		l := PosLit(v)
		if got := l.Not().Not(); got != l {
			t.Errorf("var %d: Not().Not() = %v, want %v", v, got, l)
		}
		if got := l.Not().Var(); got != v {
			t.Errorf("var %d: Not().Var() = %v, want %v", v, got, v)
		}
		if l.IsPositive() == l.Not().IsPositive() {
			t.Errorf("var %d: polarity did not invert under Not", v)
		}
	}
}

func TestPosLit_NegLit_SamePolarityAsConstructed(t *testing.T) {
	v := Var(3)
	if !PosLit(v).IsPositive() {
		t.Error("PosLit should be positive")
	}
	if NegLit(v).IsPositive() {
		t.Error("NegLit should not be positive")
	}
	if PosLit(v).Var() != v || NegLit(v).Var() != v {
		t.Error("Var() should be unaffected by polarity")
	}
}

func TestLBool_NotIsInvolutiveAndFixesUnknown(t *testing.T) {
	if True.Not() != False || False.Not() != True {
		t.Error("Not should swap True/False")
	}
	if Unknown.Not() != Unknown {
		t.Error("Not should fix Unknown")
	}
}

func TestLiftBool(t *testing.T) {
	if LiftBool(true) != True {
		t.Error("LiftBool(true) should be True")
	}
	if LiftBool(false) != False {
		t.Error("LiftBool(false) should be False")
	}
}
