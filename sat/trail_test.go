package sat

import "testing"

func TestTrail_BacktrackTo_RemovesOnlyAboveLevel(t *testing.T) {
	var tr Trail

	tr.Enqueue(PosLit(0)) // level 0
	tr.Push()
	tr.Enqueue(PosLit(1)) // level 1
	tr.Enqueue(PosLit(2)) // level 1
	tr.Push()
	tr.Enqueue(PosLit(3)) // level 2

	if tr.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", tr.Depth())
	}

	removed := tr.BacktrackTo(1)
	if tr.Depth() != 1 {
		t.Fatalf("Depth() after backtrack = %d, want 1", tr.Depth())
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() after backtrack = %d, want 3", tr.Len())
	}
	if len(removed) != 1 || removed[0] != PosLit(3) {
		t.Fatalf("removed = %v, want [PosLit(3)]", removed)
	}

	// Levels <= 1 are untouched.
	want := []Lit{PosLit(0), PosLit(1), PosLit(2)}
	for i, l := range want {
		if tr.At(i) != l {
			t.Errorf("At(%d) = %v, want %v", i, tr.At(i), l)
		}
	}
}

func TestTrail_BacktrackTo_AboveCurrentDepthIsNoop(t *testing.T) {
	var tr Trail
	tr.Enqueue(PosLit(0))
	tr.Push()
	tr.Enqueue(PosLit(1))

	removed := tr.BacktrackTo(5)
	if removed != nil {
		t.Errorf("removed = %v, want nil", removed)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestTrail_LevelStart(t *testing.T) {
	var tr Trail
	tr.Enqueue(PosLit(0))
	tr.Push()
	tr.Enqueue(PosLit(1))
	tr.Enqueue(PosLit(2))
	tr.Push()
	tr.Enqueue(PosLit(3))

	if got := tr.LevelStart(0); got != 0 {
		t.Errorf("LevelStart(0) = %d, want 0", got)
	}
	if got := tr.LevelStart(1); got != 1 {
		t.Errorf("LevelStart(1) = %d, want 1", got)
	}
	if got := tr.LevelStart(2); got != 3 {
		t.Errorf("LevelStart(2) = %d, want 3", got)
	}
	if got := tr.LevelStart(3); got != tr.Len() {
		t.Errorf("LevelStart(3) = %d, want %d", got, tr.Len())
	}
}
