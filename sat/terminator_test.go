package sat

import "testing"

func TestConflictBudget_StopsAfterNTicks(t *testing.T) {
	b := NewConflictBudget(2)
	if b.ShouldStop() {
		t.Fatal("fresh budget should not stop immediately")
	}
	b.Tick()
	if b.ShouldStop() {
		t.Fatal("budget should not stop after one of two allowed conflicts")
	}
	b.Tick()
	if !b.ShouldStop() {
		t.Fatal("budget should stop once its conflict allowance is exhausted")
	}
}

func TestConflictBudget_ZeroStopsImmediately(t *testing.T) {
	b := NewConflictBudget(0)
	if !b.ShouldStop() {
		t.Fatal("a zero-conflict budget should stop immediately")
	}
}

func TestTimeBudget_NegativeDurationIsAlreadyExpired(t *testing.T) {
	b := NewTimeBudget(-1)
	if !b.ShouldStop() {
		t.Fatal("a budget with a deadline in the past should stop immediately")
	}
}

func TestAnyOf_StopsAsSoonAsOneMemberStops(t *testing.T) {
	never := TerminatorFunc(func() bool { return false })
	always := TerminatorFunc(func() bool { return true })

	if AnyOf(never, never).ShouldStop() {
		t.Fatal("composite of two never-stopping terminators should not stop")
	}
	if !AnyOf(never, always).ShouldStop() {
		t.Fatal("composite should stop as soon as any member does")
	}
}

func TestNeverTerminate_NeverStops(t *testing.T) {
	if NeverTerminate.ShouldStop() {
		t.Fatal("NeverTerminate should never ask the solver to stop")
	}
}
